package main

import (
	"strings"
)

// ---------------------------------------------------------------------------
// Recording Canvas Double
// ---------------------------------------------------------------------------

// drawOp is one recorded drawing operation.
type drawOp struct {
	page  int // 1-based
	kind  string
	text  string
	x, y  float64
	w, h  float64
	align string
	color Color
	pts   []point
}

// fakeCanvas records every draw operation so pagination logic can be
// asserted without a real PDF backend. Text height is deterministic: one
// line per newline-separated segment, no soft wrapping, fixed line height.
type fakeCanvas struct {
	lineH     float64
	fontStyle string
	fontSize  float64
	page      int
	pages     int
	ops       []drawOp
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{lineH: 5.5}
}

func (c *fakeCanvas) BeginPage() {
	c.pages++
	c.page = c.pages
}

func (c *fakeCanvas) PageCount() int { return c.pages }

func (c *fakeCanvas) SwitchToPage(n int) { c.page = n }

func (c *fakeCanvas) SetFont(style string, size float64) {
	c.fontStyle, c.fontSize = style, size
}

func (c *fakeCanvas) TextHeight(text string, width float64) float64 {
	return float64(strings.Count(text, "\n")+1) * c.lineH
}

func (c *fakeCanvas) DrawText(text string, x, y, width float64, align string) {
	c.ops = append(c.ops, drawOp{page: c.page, kind: "text", text: text, x: x, y: y, w: width, align: align})
}

func (c *fakeCanvas) DrawImage(logo *LogoAsset, x, y, w, h float64) {
	c.ops = append(c.ops, drawOp{page: c.page, kind: "image", x: x, y: y, w: w, h: h})
}

func (c *fakeCanvas) DrawLine(x1, y1, x2, y2 float64) {
	c.ops = append(c.ops, drawOp{page: c.page, kind: "line", x: x1, y: y1, w: x2 - x1, h: y2 - y1})
}

func (c *fakeCanvas) SetLineWidth(w float64) {}

func (c *fakeCanvas) FillRect(x, y, w, h float64, col Color) {
	c.ops = append(c.ops, drawOp{page: c.page, kind: "rect", x: x, y: y, w: w, h: h, color: col})
}

func (c *fakeCanvas) FillPolygon(pts []point, col Color) {
	c.ops = append(c.ops, drawOp{page: c.page, kind: "polygon", pts: pts, color: col})
}

func (c *fakeCanvas) Err() error { return nil }

// opsOfKind returns all recorded operations of one kind, in order.
func (c *fakeCanvas) opsOfKind(kind string) []drawOp {
	var out []drawOp
	for _, op := range c.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// textsOnPage returns the text of every text operation on page n, in order.
func (c *fakeCanvas) textsOnPage(n int) []string {
	var out []string
	for _, op := range c.ops {
		if op.kind == "text" && op.page == n {
			out = append(out, op.text)
		}
	}
	return out
}

// newTestLayout builds a LayoutContext over cv with default options and a
// fixed-height header that draws nothing, so recorded operations are all
// content.
func newTestLayout(cv canvas) *LayoutContext {
	opts := resolveOptions(nil)
	lc := newLayoutContext(cv, opts, func(*LayoutContext) float64 { return 10 })
	lc.startPage()
	return lc
}
