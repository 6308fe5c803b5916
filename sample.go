package main

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
)

// ---------------------------------------------------------------------------
// Sample Monthly Report
// ---------------------------------------------------------------------------

// Demo billing constants for the sample report.
const (
	sampleHoursPerDay = 8
	sampleHourlyRate  = 95.0
)

// sampleClients are the demo clients workdays are distributed among.
var sampleClients = []string{"Acme Corp", "Globex GmbH", "Initech AG"}

// newBusinessCalendar creates a calendar with the default German holiday
// set used by the sample report.
func newBusinessCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.Name = "Default company calendar"
	c.AddHoliday(de.HolidaysBW...)
	return c
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// buildMonthlyReport creates a complete demo request for one month: an
// intro, an activity table with one row per workday (distributed
// round-robin among the demo clients), a bar chart of days per client, a
// pie chart of the billing share and a signature block.
func buildMonthlyReport(company, logo string, year int, month time.Month) *Request {
	bc := newBusinessCalendar()

	var rows []map[string]any
	perClient := make([]float64, len(sampleClients))
	idx := 0
	for day := 1; day <= daysInMonth(year, month); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if !bc.IsWorkday(date) {
			continue
		}
		client := sampleClients[idx%len(sampleClients)]
		perClient[idx%len(sampleClients)]++
		rows = append(rows, map[string]any{
			"Date":         formatDate(date),
			"Client":       client,
			"Hours":        sampleHoursPerDay,
			"Amount (EUR)": sampleHoursPerDay * sampleHourlyRate,
		})
		idx++
	}

	amounts := make([]float64, len(sampleClients))
	for i, days := range perClient {
		amounts[i] = days * sampleHoursPerDay * sampleHourlyRate
	}

	return &Request{
		CompanyName: company,
		Logo:        logo,
		Blocks: []ContentBlock{
			Paragraph(fmt.Sprintf("Activity Report %02d/%d", month, year)),
			JustifiedParagraph(fmt.Sprintf(
				"This report lists all billable workdays of %02d/%d. Workdays are "+
					"distributed equally among the active clients; weekends and "+
					"public holidays are excluded.", month, year)),
			Signature("Jane Doe"),
			Designation("Managing Director"),
		},
		Tables: []TableSpec{{
			Heading: "Billable Days",
			Columns: []string{"Date", "Client", "Hours", "Amount (EUR)"},
			Rows:    rows,
		}},
		Charts: []ChartSpec{
			{
				Kind:   chartBar,
				Title:  "Workdays per Client",
				Labels: sampleClients,
				Data:   perClient,
				Height: 60,
			},
			{
				Kind:   chartPie,
				Title:  "Billing Share",
				Labels: sampleClients,
				Data:   amounts,
				Height: 50,
			},
		},
	}
}
