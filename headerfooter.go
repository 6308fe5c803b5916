package main

import (
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// Page Header & Footer
// ---------------------------------------------------------------------------

// Footer constants.
const (
	footerFontDelta = 3.0 // points below body size
	footerOffset    = 3.0 // mm below the bottom content bound
)

// headerFooter draws the repeating page furniture: logo plus company name at
// the top of every page, and the date / page-count line at the bottom.
//
// The footer needs the total page count, which is only known once all
// content (including table- and chart-induced breaks) has been laid out, so
// it is stamped in a second pass over the finished pages.
type headerFooter struct {
	company string
	logo    *LogoAsset
	opts    *Options
	now     time.Time
}

// drawHeader renders the header at the fixed top offset of the current page
// and returns its height. The logo (if any) sits on the left, the company
// name right-aligned, both vertically centered against the taller of the
// two.
func (hf *headerFooter) drawHeader(lc *LayoutContext) float64 {
	cv := lc.cv
	top := hf.opts.Margin

	cv.SetFont("B", hf.opts.FontSize+2)
	nameH := cv.TextHeight(hf.company, lc.contentWidth())

	var logoH float64
	if hf.logo != nil {
		logoH = hf.logo.Height
	}

	headerH := nameH
	if logoH > headerH {
		headerH = logoH
	}

	if hf.logo != nil {
		cv.DrawImage(hf.logo, lc.contentLeft(), top+(headerH-logoH)/2, hf.logo.Width, hf.logo.Height)
	}
	cv.DrawText(hf.company, lc.contentLeft(), top+(headerH-nameH)/2, lc.contentWidth(), "R")

	cv.SetFont("", hf.opts.FontSize)
	return headerH
}

// footerText is the single line stamped at the bottom of page n of total.
func (hf *headerFooter) footerText(n, total int) string {
	return fmt.Sprintf("%s  |  Page %d of %d", formatDate(hf.now), n, total)
}

// stampFooters revisits every finished page by index and writes the footer
// line, now that the total page count is known.
func (hf *headerFooter) stampFooters(lc *LayoutContext) {
	cv := lc.cv
	total := cv.PageCount()

	cv.SetFont("", hf.opts.FontSize-footerFontDelta)
	y := lc.bottom() + footerOffset
	for n := 1; n <= total; n++ {
		cv.SwitchToPage(n)
		cv.DrawText(hf.footerText(n, total), lc.contentLeft(), y, lc.contentWidth(), "C")
	}
	cv.SetFont("", hf.opts.FontSize)
}
