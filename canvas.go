package main

import (
	"bytes"
	"io"

	"github.com/go-pdf/fpdf"
)

// ---------------------------------------------------------------------------
// Page-Drawing Collaborator
// ---------------------------------------------------------------------------

// point is a 2D coordinate in document units (mm).
type point struct {
	X, Y float64
}

// canvas is the page-drawing primitive the layout engine draws through. It
// keeps pagination logic independent of the PDF backend: tests substitute a
// recording implementation and assert on the operation sequence instead of
// parsing PDF bytes. All coordinates are explicit; the engine owns the
// writing cursor, never the backend.
type canvas interface {
	// BeginPage appends a new page and makes it current.
	BeginPage()
	// PageCount returns the number of pages begun so far.
	PageCount() int
	// SwitchToPage makes an already-begun page current again (1-based).
	SwitchToPage(n int)
	// SetFont selects style ("", "B", "I") and size in points. The family
	// is fixed per document.
	SetFont(style string, size float64)
	// TextHeight measures the wrapped height of text at the given width
	// with the current font.
	TextHeight(text string, width float64) float64
	// DrawText renders wrapped text at (x, y). align is "L", "C", "R" or "J".
	DrawText(text string, x, y, width float64, align string)
	DrawImage(logo *LogoAsset, x, y, w, h float64)
	DrawLine(x1, y1, x2, y2 float64)
	SetLineWidth(w float64)
	FillRect(x, y, w, h float64, c Color)
	FillPolygon(pts []point, c Color)
	// Err returns the backend's sticky error, if any.
	Err() error
}

// ---------------------------------------------------------------------------
// fpdf Implementation
// ---------------------------------------------------------------------------

// pdfCanvas draws onto an fpdf document. Automatic page breaks are disabled;
// the layout engine decides every break itself.
type pdfCanvas struct {
	pdf            *fpdf.Fpdf
	opts           *Options
	lineH          float64 // current line height, scales with font size
	logoRegistered bool
}

func newPDFCanvas(opts *Options) *pdfCanvas {
	pdf := fpdf.New("P", "mm", opts.PageSize, "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(opts.Margin, opts.Margin, opts.Margin)
	pdf.SetFont(opts.FontFamily, "", opts.FontSize)
	return &pdfCanvas{pdf: pdf, opts: opts, lineH: opts.LineHeight}
}

func (c *pdfCanvas) BeginPage() {
	c.pdf.AddPage()
}

func (c *pdfCanvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *pdfCanvas) SwitchToPage(n int) {
	c.pdf.SetPage(n)
}

func (c *pdfCanvas) SetFont(style string, size float64) {
	c.pdf.SetFont(c.opts.FontFamily, style, size)
	c.lineH = c.opts.LineHeight * size / c.opts.FontSize
}

func (c *pdfCanvas) TextHeight(text string, width float64) float64 {
	lines := c.pdf.SplitText(text, width)
	if len(lines) == 0 {
		return c.lineH
	}
	return float64(len(lines)) * c.lineH
}

func (c *pdfCanvas) DrawText(text string, x, y, width float64, align string) {
	c.pdf.SetXY(x, y)
	c.pdf.MultiCell(width, c.lineH, text, "", align, false)
}

func (c *pdfCanvas) DrawImage(logo *LogoAsset, x, y, w, h float64) {
	if logo == nil {
		return
	}
	// One registration per document; repeat placements on later pages reuse
	// the embedded image instead of duplicating its bytes.
	opt := fpdf.ImageOptions{ImageType: logo.Format}
	if !c.logoRegistered {
		c.pdf.RegisterImageOptionsReader("logo", opt, bytes.NewReader(logo.Data))
		c.logoRegistered = true
	}
	c.pdf.ImageOptions("logo", x, y, w, h, false, opt, 0, "")
}

func (c *pdfCanvas) DrawLine(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *pdfCanvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

func (c *pdfCanvas) FillRect(x, y, w, h float64, col Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *pdfCanvas) FillPolygon(pts []point, col Color) {
	if len(pts) < 3 {
		return
	}
	c.pdf.SetFillColor(col.R, col.G, col.B)
	fp := make([]fpdf.PointType, len(pts))
	for i, p := range pts {
		fp[i] = fpdf.PointType{X: p.X, Y: p.Y}
	}
	c.pdf.Polygon(fp, "F")
}

func (c *pdfCanvas) Err() error {
	if c.pdf.Err() {
		return c.pdf.Error()
	}
	return nil
}

// output finalizes the document and writes the PDF bytes to w.
func (c *pdfCanvas) output(w io.Writer) error {
	return c.pdf.Output(w)
}

// setMetadata stamps document information into the PDF catalog. The
// reference number is ASCII by construction and written unencoded so it
// stays greppable in the finished file.
func (c *pdfCanvas) setMetadata(title, creator, reference string) {
	c.pdf.SetTitle(title, true)
	c.pdf.SetCreator(creator, true)
	c.pdf.SetSubject(reference, false)
}
