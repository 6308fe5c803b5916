package main

// ---------------------------------------------------------------------------
// Layout Context
// ---------------------------------------------------------------------------

// LayoutContext carries the explicit writing cursor through every drawing
// operation: current page index, vertical position and the page content box.
// It is created fresh per render call and must never be shared between
// concurrent renders.
//
// Invariant: y is within [marginTop, pageHeight-marginBottom] immediately
// before any draw; ensureRoom triggers a page break first otherwise.
type LayoutContext struct {
	cv   canvas
	opts *Options

	pageW, pageH float64
	page         int     // 0-based page index
	y            float64 // writing cursor
	headerH      float64 // height of the header on the current page

	// drawHeader renders the page furniture at the top of a fresh page and
	// returns its height. Set by the renderer before the first page.
	drawHeader func(lc *LayoutContext) float64
}

func newLayoutContext(cv canvas, opts *Options, drawHeader func(*LayoutContext) float64) *LayoutContext {
	w, h := opts.pageDimensions()
	return &LayoutContext{
		cv:         cv,
		opts:       opts,
		pageW:      w,
		pageH:      h,
		drawHeader: drawHeader,
	}
}

// contentLeft is the left edge of the content box.
func (lc *LayoutContext) contentLeft() float64 {
	return lc.opts.Margin
}

// contentWidth is the usable width between the side margins.
func (lc *LayoutContext) contentWidth() float64 {
	return lc.pageW - 2*lc.opts.Margin
}

// bottom is the lowest Y a drawn block may extend to.
func (lc *LayoutContext) bottom() float64 {
	return lc.pageH - lc.opts.Margin
}

// startPage begins a new physical page, draws the header and resets the
// cursor below it.
func (lc *LayoutContext) startPage() {
	lc.cv.BeginPage()
	lc.headerH = 0
	if lc.drawHeader != nil {
		lc.headerH = lc.drawHeader(lc)
	}
	lc.y = lc.opts.Margin + lc.headerH + lc.opts.HeaderSpacing
}

// breakPage finalizes the current page and starts the next one.
func (lc *LayoutContext) breakPage() {
	lc.page++
	lc.startPage()
}

// ensureRoom checks whether a block of measured height h still fits above
// the bottom content bound, breaking to a new page first if not. It reports
// whether a break occurred. The check runs per atomic drawable unit (one
// paragraph, one table row, one whole chart), never for a composite.
func (lc *LayoutContext) ensureRoom(h float64) bool {
	if lc.y+h > lc.bottom() {
		lc.breakPage()
		return true
	}
	return false
}

// advance moves the cursor down by h.
func (lc *LayoutContext) advance(h float64) {
	lc.y += h
}
