package main

import (
	"fmt"
	"math"
)

// ---------------------------------------------------------------------------
// Chart Rendering
// ---------------------------------------------------------------------------

// Chart layout constants.
const (
	chartTitleGap  = 2.0  // mm between title and chart box
	chartFontDelta = 2.0  // points below body size for labels and legend
	barWidthRatio  = 0.8  // bar width vs. slot width; the rest is spacing
	barLabelGap    = 1.5  // mm between axis and bar labels
	axisLineWidth  = 0.3  // mm
	pieArcSegments = 48   // polyline points per full circle
	pieLegendGap   = 8.0  // mm between pie and legend column
	legendSwatch   = 4.0  // mm, legend color square
	minLegendWidth = 15.0 // mm, floor for the legend text column
	legendRowStep  = 5.5  // mm between legend rows
	pieStartAngle  = -math.Pi / 2
)

// renderChart draws one bar or pie chart inside its bounding box. The whole
// chart (title, box, labels) reserves its vertical footprint up front and
// breaks to a new page as one unit; a chart is never split mid-draw.
//
// A ValidationError return means the chart is skipped with nothing drawn.
func renderChart(lc *LayoutContext, c *ChartSpec) error {
	if err := c.validate(); err != nil {
		return err
	}

	cv := lc.cv
	w := c.Width
	if w <= 0 || w > lc.contentWidth() {
		w = lc.contentWidth()
	}
	h := c.Height
	if h <= 0 {
		h = lc.opts.ChartHeight
	}

	var titleH float64
	if c.Title != "" {
		cv.SetFont("B", lc.opts.FontSize+headingFontDelta)
		titleH = cv.TextHeight(c.Title, w) + chartTitleGap
	}
	var labelH float64
	if c.Kind == chartBar {
		labelH = barLabelGap + lc.opts.LineHeight
	}
	if c.Kind == chartPie {
		// The side legend may be taller than the pie itself
		if legendH := float64(c.nonZeroCount()) * legendRowStep; legendH > h {
			labelH = legendH - h
		}
	}

	lc.ensureRoom(titleH + h + labelH)

	if c.Title != "" {
		cv.SetFont("B", lc.opts.FontSize+headingFontDelta)
		cv.DrawText(c.Title, lc.contentLeft(), lc.y, w, "L")
		lc.advance(titleH)
	}

	switch c.Kind {
	case chartBar:
		drawBarChart(lc, c, w, h)
	case chartPie:
		drawPieChart(lc, c, w, h)
	}

	lc.advance(lc.opts.BlockSpacing)
	cv.SetFont("", lc.opts.FontSize)
	return nil
}

// drawBarChart renders vertical bars scaled against the maximum value, an
// L-shaped axis and one label per bar below it. The tallest bar always spans
// the full chart height.
func drawBarChart(lc *LayoutContext, c *ChartSpec, w, h float64) {
	cv := lc.cv
	left := lc.contentLeft()
	top := lc.y

	var maxV float64
	for _, v := range c.Data {
		if v > maxV {
			maxV = v
		}
	}

	n := len(c.Data)
	slot := w / float64(n)
	barW := slot * barWidthRatio

	for i, v := range c.Data {
		bh := h * v / maxV
		if bh == 0 {
			continue
		}
		x := left + float64(i)*slot + slot*(1-barWidthRatio)/2
		cv.FillRect(x, top+h-bh, barW, bh, c.color(i))
	}

	cv.SetLineWidth(axisLineWidth)
	cv.DrawLine(left, top, left, top+h)
	cv.DrawLine(left, top+h, left+w, top+h)

	cv.SetFont("", lc.opts.FontSize-chartFontDelta)
	for i, label := range c.Labels {
		x := left + float64(i)*slot
		cv.DrawText(label, x, top+h+barLabelGap, slot, "C")
	}

	lc.advance(h + barLabelGap + lc.opts.LineHeight)
}

// drawPieChart renders filled wedges plus a side legend listing label and
// percentage for every non-zero entry.
func drawPieChart(lc *LayoutContext, c *ChartSpec, w, h float64) {
	cv := lc.cv
	left := lc.contentLeft()
	top := lc.y

	// The pie and its legend share the box width. A narrow box shrinks the
	// pie instead of squeezing the legend text column below its floor.
	r := h / 2
	if w-2*r-pieLegendGap-legendSwatch-cellPadding < minLegendWidth {
		if shrunk := (w - minLegendWidth - pieLegendGap - legendSwatch - cellPadding) / 2; shrunk < r {
			r = shrunk
		}
		if r < 0 {
			r = 0
		}
	}
	cx := left + r
	cy := top + r

	var total float64
	for _, v := range c.Data {
		total += v
	}

	angle := pieStartAngle
	for i, v := range c.Data {
		if v == 0 {
			continue
		}
		theta := 2 * math.Pi * v / total
		cv.FillPolygon(wedgePoints(cx, cy, r, angle, theta), c.color(i))
		angle += theta
	}

	lx := left + 2*r + pieLegendGap
	ly := top
	legendW := left + w - lx - legendSwatch - cellPadding
	if legendW < minLegendWidth {
		legendW = minLegendWidth
	}
	cv.SetFont("", lc.opts.FontSize-chartFontDelta)
	for i, v := range c.Data {
		if v == 0 {
			continue
		}
		cv.FillRect(lx, ly+0.5, legendSwatch, legendSwatch, c.color(i))
		entry := legendEntry(c.Labels[i], v, total)
		cv.DrawText(entry, lx+legendSwatch+cellPadding, ly, legendW, "L")
		ly += legendRowStep
	}

	footprint := h
	if legendH := ly - top; legendH > footprint {
		footprint = legendH
	}
	lc.advance(footprint)
}

// legendEntry formats one legend line, e.g. "A (35.0%)".
func legendEntry(label string, v, total float64) string {
	return fmt.Sprintf("%s (%.1f%%)", label, v/total*100)
}

// wedgePoints approximates one pie wedge as a polygon from the center along
// a polyline on the arc and back. The polyline stands in for native arc
// drawing, which is unreliable across backend versions.
func wedgePoints(cx, cy, r, start, theta float64) []point {
	segs := int(theta/(2*math.Pi)*pieArcSegments) + 1
	if segs < 2 {
		segs = 2
	}

	pts := make([]point, 0, segs+2)
	pts = append(pts, point{X: cx, Y: cy})
	for k := 0; k <= segs; k++ {
		a := start + theta*float64(k)/float64(segs)
		pts = append(pts, point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}
