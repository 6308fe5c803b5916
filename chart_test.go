package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestChartValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    ChartSpec
		wantErr bool
	}{
		{"valid", ChartSpec{Labels: []string{"A"}, Data: []float64{1}}, false},
		{"empty data", ChartSpec{}, true},
		{"length mismatch", ChartSpec{Labels: []string{"A"}, Data: []float64{1, 2}}, true},
		{"negative value", ChartSpec{Labels: []string{"A", "B"}, Data: []float64{1, -2}}, true},
		{"all zero", ChartSpec{Labels: []string{"A", "B"}, Data: []float64{0, 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("validate() error type = %T, want *ValidationError", err)
				}
			}
		})
	}
}

// The bar holding the maximum value spans the full chart height; all others
// scale proportionally below it.
func TestBarHeights(t *testing.T) {
	cv := newFakeCanvas()
	lc := newTestLayout(cv)

	data := []float64{45000, 52000, 48000, 61000, 55000, 67000}
	spec := ChartSpec{
		Kind:   chartBar,
		Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		Data:   data,
		Height: 60,
	}
	if err := renderChart(lc, &spec); err != nil {
		t.Fatalf("renderChart() error = %v", err)
	}

	bars := cv.opsOfKind("rect")
	if len(bars) != len(data) {
		t.Fatalf("bar count = %d, want %d", len(bars), len(data))
	}

	const eps = 1e-9
	for i, bar := range bars {
		want := 60 * data[i] / 67000
		if math.Abs(bar.h-want) > eps {
			t.Errorf("bar %d height = %v, want %v", i, bar.h, want)
		}
	}
	if math.Abs(bars[5].h-60) > eps {
		t.Errorf("max bar height = %v, want full chart height 60", bars[5].h)
	}
}

func TestBarSlotSplit(t *testing.T) {
	cv := newFakeCanvas()
	lc := newTestLayout(cv)

	spec := ChartSpec{
		Kind:   chartBar,
		Labels: []string{"A", "B", "C", "D"},
		Data:   []float64{1, 2, 3, 4},
		Width:  100,
		Height: 40,
	}
	if err := renderChart(lc, &spec); err != nil {
		t.Fatalf("renderChart() error = %v", err)
	}

	bars := cv.opsOfKind("rect")
	// 80/20 width/spacing split of each 25mm slot
	for i, bar := range bars {
		if bar.w != 20 {
			t.Errorf("bar %d width = %v, want 20", i, bar.w)
		}
	}
	if gap := bars[1].x - (bars[0].x + bars[0].w); math.Abs(gap-5) > 1e-9 {
		t.Errorf("inter-bar gap = %v, want 5", gap)
	}

	// L-shaped axis: one vertical, one horizontal line
	lines := cv.opsOfKind("line")
	if len(lines) != 2 {
		t.Fatalf("axis line count = %d, want 2", len(lines))
	}
}

func TestBarLabels(t *testing.T) {
	cv := newFakeCanvas()
	lc := newTestLayout(cv)

	spec := ChartSpec{
		Kind:   chartBar,
		Labels: []string{"Q1", "Q2", "Q3"},
		Data:   []float64{1, 2, 3},
		Height: 40,
	}
	if err := renderChart(lc, &spec); err != nil {
		t.Fatalf("renderChart() error = %v", err)
	}

	texts := cv.opsOfKind("text")
	if len(texts) != 3 {
		t.Fatalf("label count = %d, want 3", len(texts))
	}
	for i, want := range spec.Labels {
		if texts[i].text != want || texts[i].align != "C" {
			t.Errorf("label %d = %q (%s), want %q (C)", i, texts[i].text, texts[i].align, want)
		}
	}
}

// Wedge angles always sum to a full circle and legend percentages to 100%.
func TestPieWedgesAndLegend(t *testing.T) {
	cv := newFakeCanvas()
	lc := newTestLayout(cv)

	data := []float64{35, 28, 20, 12, 5}
	labels := []string{"A", "B", "C", "D", "E"}
	spec := ChartSpec{Kind: chartPie, Labels: labels, Data: data, Height: 50}
	if err := renderChart(lc, &spec); err != nil {
		t.Fatalf("renderChart() error = %v", err)
	}

	wedges := cv.opsOfKind("polygon")
	if len(wedges) != 5 {
		t.Fatalf("wedge count = %d, want 5", len(wedges))
	}

	// Every wedge starts at the pie center; arc points sit on the radius
	cx, cy, r := wedges[0].pts[0].X, wedges[0].pts[0].Y, 25.0
	var total float64
	for i, w := range wedges {
		if w.pts[0].X != cx || w.pts[0].Y != cy {
			t.Errorf("wedge %d does not start at center", i)
		}
		for _, p := range w.pts[1:] {
			d := math.Hypot(p.X-cx, p.Y-cy)
			if math.Abs(d-r) > 1e-6 {
				t.Errorf("wedge %d arc point at distance %v, want %v", i, d, r)
			}
		}
		total += data[i]
	}

	var angleSum float64
	for _, v := range data {
		angleSum += 2 * math.Pi * v / total
	}
	if math.Abs(angleSum-2*math.Pi) > 1e-12 {
		t.Errorf("wedge angle sum = %v, want 2π", angleSum)
	}

	wantLegend := []string{"A (35.0%)", "B (28.0%)", "C (20.0%)", "D (12.0%)", "E (5.0%)"}
	texts := cv.opsOfKind("text")
	if len(texts) != len(wantLegend) {
		t.Fatalf("legend entry count = %d, want %d", len(texts), len(wantLegend))
	}
	var pctSum float64
	for i, want := range wantLegend {
		if texts[i].text != want {
			t.Errorf("legend %d = %q, want %q", i, texts[i].text, want)
		}
		var pct float64
		fmt.Sscanf(texts[i].text[strings.Index(texts[i].text, "(")+1:], "%f%%", &pct)
		pctSum += pct
	}
	if math.Abs(pctSum-100) > 0.1 {
		t.Errorf("legend percentage sum = %v, want 100", pctSum)
	}
}

// Entries with a value of exactly zero draw no wedge and no legend line.
func TestPieSkipsZeroEntries(t *testing.T) {
	cv := newFakeCanvas()
	lc := newTestLayout(cv)

	spec := ChartSpec{
		Kind:   chartPie,
		Labels: []string{"A", "B", "C"},
		Data:   []float64{60, 0, 40},
		Height: 50,
	}
	if err := renderChart(lc, &spec); err != nil {
		t.Fatalf("renderChart() error = %v", err)
	}

	if wedges := cv.opsOfKind("polygon"); len(wedges) != 2 {
		t.Errorf("wedge count = %d, want 2", len(wedges))
	}
	for _, op := range cv.opsOfKind("text") {
		if strings.HasPrefix(op.text, "B") {
			t.Errorf("zero-valued entry appears in legend: %q", op.text)
		}
	}
}

// A box too narrow for pie plus legend shrinks the pie; the legend text
// column keeps its floor width and stays inside the box.
func TestPieNarrowBoxShrinksPie(t *testing.T) {
	cv := newFakeCanvas()
	lc := newTestLayout(cv)

	spec := ChartSpec{
		Kind:   chartPie,
		Labels: []string{"A", "B"},
		Data:   []float64{60, 40},
		Width:  40,
		Height: 50,
	}
	if err := renderChart(lc, &spec); err != nil {
		t.Fatalf("renderChart() error = %v", err)
	}

	texts := cv.opsOfKind("text")
	if len(texts) != 2 {
		t.Fatalf("legend entry count = %d, want 2", len(texts))
	}
	right := lc.contentLeft() + spec.Width
	for i, op := range texts {
		if op.w < minLegendWidth {
			t.Errorf("legend entry %d width = %v, want >= %v", i, op.w, minLegendWidth)
		}
		if op.x+op.w > right+1e-9 {
			t.Errorf("legend entry %d extends past the box: x=%v w=%v", i, op.x, op.w)
		}
	}

	// The pie itself gave up the width the legend needed
	maxX := right - pieLegendGap - legendSwatch - cellPadding - minLegendWidth
	for _, w := range cv.opsOfKind("polygon") {
		for _, p := range w.pts {
			if p.X > maxX+1e-9 {
				t.Errorf("wedge point x = %v, want <= %v", p.X, maxX)
			}
		}
	}
}

// A chart that no longer fits moves to the next page as one unit.
func TestChartWholePageBreak(t *testing.T) {
	cv := newFakeCanvas()
	lc := newTestLayout(cv)
	lc.y = lc.bottom() - 30

	spec := ChartSpec{
		Kind:   chartBar,
		Title:  "Late Chart",
		Labels: []string{"A", "B"},
		Data:   []float64{1, 2},
		Height: 60,
	}
	if err := renderChart(lc, &spec); err != nil {
		t.Fatalf("renderChart() error = %v", err)
	}

	for _, op := range cv.ops {
		if op.page != 2 {
			t.Errorf("chart op %s drawn on page %d, want 2", op.kind, op.page)
		}
	}
}

func TestChartColorCycling(t *testing.T) {
	spec := &ChartSpec{Colors: []Color{{1, 2, 3}, {4, 5, 6}}}
	if got := spec.color(2); got != (Color{1, 2, 3}) {
		t.Errorf("color(2) = %v, want first explicit color", got)
	}

	var defaulted ChartSpec
	if got := defaulted.color(len(defaultPalette)); got != defaultPalette[0] {
		t.Errorf("color cycling through default palette failed: %v", got)
	}
}

func TestLegendEntry(t *testing.T) {
	if got := legendEntry("A", 35, 100); got != "A (35.0%)" {
		t.Errorf("legendEntry = %q, want %q", got, "A (35.0%)")
	}
}
