package main

import "strings"

// ---------------------------------------------------------------------------
// Content Flow
// ---------------------------------------------------------------------------

// designationFontDelta is how many points smaller a designation renders than
// the body text.
const designationFontDelta = 2.0

// filterBlocks drops blocks with empty or whitespace-only text before the
// flow state machine runs. A blank paragraph contributes no block and no
// spacing.
func filterBlocks(blocks []ContentBlock) []ContentBlock {
	out := make([]ContentBlock, 0, len(blocks))
	for _, b := range blocks {
		if strings.TrimSpace(b.Text) == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

// renderContent walks the ordered block list, dispatching on each block's
// tag. Every block is measured before it is drawn so the page-break decision
// always precedes drawing.
func renderContent(lc *LayoutContext, blocks []ContentBlock) {
	blocks = filterBlocks(blocks)
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		switch b.Kind {
		case blockParagraph:
			drawParagraph(lc, b)
		case blockSignature:
			// A directly following designation belongs to the signature;
			// the pair is measured and placed as one atomic unit so a page
			// break can never separate them.
			if i+1 < len(blocks) && blocks[i+1].Kind == blockDesignation {
				drawSignature(lc, b, &blocks[i+1])
				i++
			} else {
				drawSignature(lc, b, nil)
			}
		case blockDesignation:
			drawDesignation(lc, b)
		}
	}
}

// drawParagraph places one paragraph whole on the page where it starts. The
// text primitive may wrap lines internally but the block itself is never
// split across pages.
func drawParagraph(lc *LayoutContext, b ContentBlock) {
	cv := lc.cv
	cv.SetFont("", lc.opts.FontSize)

	w := lc.contentWidth()
	h := cv.TextHeight(b.Text, w)
	lc.ensureRoom(h)

	align := b.Align
	if align == "" {
		align = "L"
	}
	cv.DrawText(b.Text, lc.contentLeft(), lc.y, w, align)
	lc.advance(h + lc.opts.BlockSpacing)
}

// drawSignature renders the name right-aligned in bold, immediately followed
// by its designation in a smaller regular face when one is attached.
func drawSignature(lc *LayoutContext, name ContentBlock, desig *ContentBlock) {
	cv := lc.cv
	w := lc.contentWidth()

	cv.SetFont("B", lc.opts.FontSize)
	nameH := cv.TextHeight(name.Text, w)

	var desigH float64
	if desig != nil {
		cv.SetFont("", lc.opts.FontSize-designationFontDelta)
		desigH = cv.TextHeight(desig.Text, w)
	}

	lc.ensureRoom(nameH + desigH)

	cv.SetFont("B", lc.opts.FontSize)
	cv.DrawText(name.Text, lc.contentLeft(), lc.y, w, "R")
	lc.advance(nameH)

	if desig != nil {
		cv.SetFont("", lc.opts.FontSize-designationFontDelta)
		cv.DrawText(desig.Text, lc.contentLeft(), lc.y, w, "R")
		lc.advance(desigH)
	}

	lc.advance(lc.opts.BlockSpacing)
	cv.SetFont("", lc.opts.FontSize)
}

// drawDesignation renders a standalone designation, wrapping independently
// at content width.
func drawDesignation(lc *LayoutContext, b ContentBlock) {
	cv := lc.cv
	cv.SetFont("", lc.opts.FontSize-designationFontDelta)

	w := lc.contentWidth()
	h := cv.TextHeight(b.Text, w)
	lc.ensureRoom(h)

	// A break redraws the header, which restores the body font
	cv.SetFont("", lc.opts.FontSize-designationFontDelta)
	cv.DrawText(b.Text, lc.contentLeft(), lc.y, w, "R")
	lc.advance(h + lc.opts.BlockSpacing)

	cv.SetFont("", lc.opts.FontSize)
}
