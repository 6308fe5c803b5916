package main

// ---------------------------------------------------------------------------
// Table Rendering
// ---------------------------------------------------------------------------

// Table layout constants.
const (
	cellPadding      = 1.2 // mm, inside every cell on all sides
	headingGap       = 2.0 // mm between table heading and header row
	headingFontDelta = 1.0 // points above body size
	separatorWidth   = 0.2 // mm, row separator line
	headerRuleWidth  = 0.4 // mm, line under the header row
)

// renderTable lays out one table: heading, bold header row, then data rows
// at uniform per-row height with separator lines. Mid-table page breaks
// repeat the header row verbatim at the top of the continuation page.
//
// A ValidationError return means the table cannot be drawn and should be
// skipped; nothing has been written to the page in that case.
func renderTable(lc *LayoutContext, t *TableSpec) error {
	if err := t.validate(); err != nil {
		return err
	}

	cv := lc.cv
	cols := t.columnNames()
	widths := columnWidths(t, lc.contentWidth(), len(cols))

	var headingH float64
	if t.Heading != "" {
		cv.SetFont("B", lc.opts.FontSize+headingFontDelta)
		headingH = cv.TextHeight(t.Heading, lc.contentWidth()) + headingGap
	}
	headerH := headerRowHeight(lc, cols, widths)
	firstRowH := rowHeight(lc, t.Rows[0], cols, widths)

	// If the heading plus header row plus at least one data row cannot fit,
	// the whole table starts on a new page instead of splitting right after
	// its heading.
	lc.ensureRoom(headingH + headerH + firstRowH)

	if t.Heading != "" {
		cv.SetFont("B", lc.opts.FontSize+headingFontDelta)
		cv.DrawText(t.Heading, lc.contentLeft(), lc.y, lc.contentWidth(), "L")
		lc.advance(headingH)
	}

	drawHeaderRow(lc, cols, widths)

	for _, row := range t.Rows {
		h := rowHeight(lc, row, cols, widths)
		if lc.ensureRoom(h) {
			drawHeaderRow(lc, cols, widths)
		}
		drawDataRow(lc, row, cols, widths, h)
	}

	cv.SetFont("", lc.opts.FontSize)
	return nil
}

// columnWidths returns one width per column. Explicit widths are normalized
// to fill the available width; otherwise it is divided evenly.
func columnWidths(t *TableSpec, available float64, n int) []float64 {
	widths := make([]float64, n)
	if len(t.ColumnWidths) == n {
		var total float64
		for _, w := range t.ColumnWidths {
			total += w
		}
		if total > 0 {
			for i, w := range t.ColumnWidths {
				widths[i] = w / total * available
			}
			return widths
		}
	}
	for i := range widths {
		widths[i] = available / float64(n)
	}
	return widths
}

// headerRowHeight measures the bold header row.
func headerRowHeight(lc *LayoutContext, cols []string, widths []float64) float64 {
	lc.cv.SetFont("B", lc.opts.FontSize)
	var max float64
	for i, col := range cols {
		h := lc.cv.TextHeight(col, widths[i]-2*cellPadding)
		if h > max {
			max = h
		}
	}
	return max + 2*cellPadding
}

// rowHeight measures a data row: the maximum wrapped cell height across all
// columns, so multi-line cells stretch the whole row.
func rowHeight(lc *LayoutContext, row map[string]any, cols []string, widths []float64) float64 {
	lc.cv.SetFont("", lc.opts.FontSize)
	var max float64
	for i, col := range cols {
		text := cellText(row[col])
		if text == "" {
			continue
		}
		h := lc.cv.TextHeight(text, widths[i]-2*cellPadding)
		if h > max {
			max = h
		}
	}
	if max == 0 {
		max = lc.opts.LineHeight
	}
	return max + 2*cellPadding
}

// drawHeaderRow draws the bold column names and the rule below them. The
// exact same text is re-drawn at the top of every continuation page.
func drawHeaderRow(lc *LayoutContext, cols []string, widths []float64) {
	cv := lc.cv
	h := headerRowHeight(lc, cols, widths)

	cv.SetFont("B", lc.opts.FontSize)
	x := lc.contentLeft()
	for i, col := range cols {
		cv.DrawText(col, x+cellPadding, lc.y+cellPadding, widths[i]-2*cellPadding, "L")
		x += widths[i]
	}
	lc.advance(h)

	cv.SetLineWidth(headerRuleWidth)
	cv.DrawLine(lc.contentLeft(), lc.y, lc.contentLeft()+lc.contentWidth(), lc.y)
	cv.SetLineWidth(separatorWidth)
	cv.SetFont("", lc.opts.FontSize)
}

// drawDataRow draws all cells of one row at the uniform measured height,
// followed by a separator line.
func drawDataRow(lc *LayoutContext, row map[string]any, cols []string, widths []float64, h float64) {
	cv := lc.cv
	cv.SetFont("", lc.opts.FontSize)

	x := lc.contentLeft()
	for i, col := range cols {
		text := cellText(row[col])
		if text != "" {
			cv.DrawText(text, x+cellPadding, lc.y+cellPadding, widths[i]-2*cellPadding, "L")
		}
		x += widths[i]
	}
	lc.advance(h)
	cv.DrawLine(lc.contentLeft(), lc.y, lc.contentLeft()+lc.contentWidth(), lc.y)
}
