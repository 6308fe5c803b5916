package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ---------------------------------------------------------------------------
// Content Blocks
// ---------------------------------------------------------------------------

// blockKind discriminates the closed set of flowing content block variants.
type blockKind int

const (
	blockParagraph blockKind = iota
	blockSignature
	blockDesignation
)

func (k blockKind) String() string {
	switch k {
	case blockParagraph:
		return "paragraph"
	case blockSignature:
		return "signature"
	case blockDesignation:
		return "designation"
	}
	return "unknown"
}

// ContentBlock is one atomic unit of flowing text. Blocks are consumed
// top-to-bottom and each is independently measurable before drawing.
type ContentBlock struct {
	Kind  blockKind
	Text  string
	Align string // "L" or "J"; paragraphs only, empty means left
}

// Paragraph creates a left-aligned paragraph block.
func Paragraph(text string) ContentBlock {
	return ContentBlock{Kind: blockParagraph, Text: text}
}

// JustifiedParagraph creates a justified paragraph block.
func JustifiedParagraph(text string) ContentBlock {
	return ContentBlock{Kind: blockParagraph, Text: text, Align: "J"}
}

// Signature creates a right-aligned bold signature name block.
func Signature(name string) ContentBlock {
	return ContentBlock{Kind: blockSignature, Text: name}
}

// Designation creates a designation (job title) block. When it directly
// follows a Signature the two are laid out as one atomic unit.
func Designation(title string) ContentBlock {
	return ContentBlock{Kind: blockDesignation, Text: title}
}

// ---------------------------------------------------------------------------
// Tables
// ---------------------------------------------------------------------------

// TableSpec describes one table: a heading, ordered column names and ordered
// rows mapping column name to a stringifiable cell value. All rows render
// with the first row's column set and widths; missing keys render as empty
// cells.
type TableSpec struct {
	Heading      string
	Columns      []string
	ColumnWidths []float64 // optional explicit widths; empty = even split
	Rows         []map[string]any
}

// validate reports whether the table can be drawn at all.
func (t *TableSpec) validate() error {
	if len(t.Rows) == 0 {
		return &ValidationError{Element: "table", Reason: "item list is empty"}
	}
	if len(t.columnNames()) == 0 {
		return &ValidationError{Element: "table", Reason: "no columns"}
	}
	if len(t.ColumnWidths) > 0 && len(t.ColumnWidths) != len(t.columnNames()) {
		return &ValidationError{Element: "table", Reason: "column width count does not match column count"}
	}
	return nil
}

// columnNames returns the explicit column order, falling back to the sorted
// keys of the first row. The YAML loader always fills Columns from the
// author's key order, so the fallback only applies to programmatic requests.
func (t *TableSpec) columnNames() []string {
	if len(t.Columns) > 0 {
		return t.Columns
	}
	if len(t.Rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(t.Rows[0]))
	for k := range t.Rows[0] {
		cols = append(cols, k)
	}
	// Deterministic order for unordered map input
	for i := 1; i < len(cols); i++ {
		for j := i; j > 0 && cols[j] < cols[j-1]; j-- {
			cols[j], cols[j-1] = cols[j-1], cols[j]
		}
	}
	t.Columns = cols
	return cols
}

// numPrinter renders numeric cell values with locale-aware grouping.
var numPrinter = message.NewPrinter(language.English)

// cellText converts an arbitrary cell value to its display string.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case int:
		return numPrinter.Sprint(number.Decimal(x))
	case int64:
		return numPrinter.Sprint(number.Decimal(x))
	case uint64:
		return numPrinter.Sprint(number.Decimal(x))
	case float64:
		return numPrinter.Sprint(number.Decimal(x))
	case float32:
		return numPrinter.Sprint(number.Decimal(x))
	default:
		return fmt.Sprintf("%v", x)
	}
}

// ---------------------------------------------------------------------------
// Charts
// ---------------------------------------------------------------------------

// chartKind discriminates the supported chart types.
type chartKind int

const (
	chartBar chartKind = iota
	chartPie
)

func (k chartKind) String() string {
	if k == chartPie {
		return "pie"
	}
	return "bar"
}

// ChartSpec describes one bar or pie chart. Labels and Data are parallel
// arrays; Colors is optional and cycles through the default palette when
// shorter than Data.
type ChartSpec struct {
	Kind   chartKind
	Title  string
	Labels []string
	Data   []float64
	Colors []Color
	Width  float64 // bounding box, document units; 0 = content width
	Height float64 // 0 = default chart height
}

func (c *ChartSpec) validate() error {
	if len(c.Data) == 0 {
		return &ValidationError{Element: "chart", Reason: "data is empty"}
	}
	if len(c.Labels) != len(c.Data) {
		return &ValidationError{Element: "chart", Reason: "labels and data lengths differ"}
	}
	var sum float64
	for _, v := range c.Data {
		if v < 0 {
			return &ValidationError{Element: "chart", Reason: "negative data value"}
		}
		sum += v
	}
	if sum == 0 {
		return &ValidationError{Element: "chart", Reason: "all data values are zero"}
	}
	return nil
}

// nonZeroCount reports how many entries carry a non-zero value. Zero-valued
// entries draw no wedge and no legend line.
func (c *ChartSpec) nonZeroCount() int {
	var n int
	for _, v := range c.Data {
		if v != 0 {
			n++
		}
	}
	return n
}

// color at index i, cycling the explicit list first and the default palette
// otherwise.
func (c *ChartSpec) color(i int) Color {
	if len(c.Colors) > 0 {
		return c.Colors[i%len(c.Colors)]
	}
	return defaultPalette[i%len(defaultPalette)]
}

// Color is an RGB fill/draw color.
type Color struct {
	R, G, B int
}

// defaultPalette is cycled for bars and wedges without explicit colors.
var defaultPalette = []Color{
	{76, 114, 176},
	{221, 132, 82},
	{85, 168, 104},
	{196, 78, 82},
	{129, 114, 179},
	{147, 120, 96},
	{218, 139, 195},
	{140, 140, 140},
}

// parseHexColor parses "#RRGGBB" (leading '#' optional).
func parseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Document Request
// ---------------------------------------------------------------------------

// Request is one complete document generation request. All fields except
// CompanyName are optional.
type Request struct {
	CompanyName string
	Logo        string // URL or local path; empty = no logo
	Blocks      []ContentBlock
	Tables      []TableSpec
	Charts      []ChartSpec
	Options     *Options // nil = defaults
}

func (r *Request) validate() error {
	if strings.TrimSpace(r.CompanyName) == "" {
		return ErrEmptyCompanyName
	}
	if len(r.Blocks) == 0 && len(r.Tables) == 0 && len(r.Charts) == 0 {
		return ErrNoContent
	}
	return nil
}

// ---------------------------------------------------------------------------
// YAML Request Loading
// ---------------------------------------------------------------------------

type rawTable struct {
	Heading string          `yaml:"heading"`
	Columns []string        `yaml:"columns"`
	Widths  []float64       `yaml:"widths"`
	Rows    []yaml.MapSlice `yaml:"rows"`
}

type rawChart struct {
	Kind   string    `yaml:"kind"`
	Title  string    `yaml:"title"`
	Labels []string  `yaml:"labels"`
	Data   []float64 `yaml:"data"`
	Colors []string  `yaml:"colors"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
}

type rawRequest struct {
	Company string           `yaml:"company"`
	Logo    string           `yaml:"logo"`
	Content []map[string]any `yaml:"content"`
	Tables  []rawTable       `yaml:"tables"`
	Charts  []rawChart       `yaml:"charts"`
	Options *Options         `yaml:"options"`
}

// blockText converts a raw block value to its text. A key written with a
// null value reads as empty text; the block is then filtered out with the
// other blank blocks before layout.
func blockText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// loadRequest reads and parses a YAML document request file.
func loadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}
	return parseRequest(data)
}

// parseRequest converts YAML bytes into a Request. Table column order is
// taken from the first row's key order as written in the file.
func parseRequest(data []byte) (*Request, error) {
	var raw rawRequest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	req := &Request{
		CompanyName: raw.Company,
		Logo:        raw.Logo,
		Options:     raw.Options,
	}

	for i, b := range raw.Content {
		// Key presence decides the block kind, so `paragraph: null` stays a
		// paragraph instead of failing the parse.
		_, isParagraph := b["paragraph"]
		_, isSignature := b["signature"]
		_, isDesignation := b["designation"]
		switch {
		case isParagraph:
			blk := Paragraph(blockText(b["paragraph"]))
			if a, ok := b["align"].(string); ok {
				blk.Align = a
			}
			req.Blocks = append(req.Blocks, blk)
		case isSignature:
			req.Blocks = append(req.Blocks, Signature(blockText(b["signature"])))
		case isDesignation:
			req.Blocks = append(req.Blocks, Designation(blockText(b["designation"])))
		default:
			return nil, fmt.Errorf("content block %d: expected one of paragraph, signature, designation", i)
		}
	}

	for _, t := range raw.Tables {
		spec := TableSpec{Heading: t.Heading, Columns: t.Columns, ColumnWidths: t.Widths}
		deriveColumns := len(spec.Columns) == 0
		for ri, row := range t.Rows {
			m := make(map[string]any, len(row))
			for _, item := range row {
				key := fmt.Sprintf("%v", item.Key)
				m[key] = item.Value
				// Column order comes from the first row as written
				if deriveColumns && ri == 0 {
					spec.Columns = append(spec.Columns, key)
				}
			}
			spec.Rows = append(spec.Rows, m)
		}
		req.Tables = append(req.Tables, spec)
	}

	for i, c := range raw.Charts {
		spec := ChartSpec{
			Title:  c.Title,
			Labels: c.Labels,
			Data:   c.Data,
			Width:  c.Width,
			Height: c.Height,
		}
		switch c.Kind {
		case "bar", "":
			spec.Kind = chartBar
		case "pie":
			spec.Kind = chartPie
		default:
			return nil, fmt.Errorf("chart %d: unknown kind %q", i, c.Kind)
		}
		for _, hex := range c.Colors {
			col, err := parseHexColor(hex)
			if err != nil {
				return nil, fmt.Errorf("chart %d: %w", i, err)
			}
			spec.Colors = append(spec.Colors, col)
		}
		req.Charts = append(req.Charts, spec)
	}

	return req, nil
}

// ---------------------------------------------------------------------------
// Document Helpers
// ---------------------------------------------------------------------------

// documentID generates a structured document reference number.
// Format: DOC-YYYY-MM-XXXX (e.g., DOC-2026-08-A7K2)
func documentID(t time.Time) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, 4)
	rand.Read(b)
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}

	return fmt.Sprintf("DOC-%d-%02d-%s", t.Year(), t.Month(), string(b))
}

// formatDate formats a date as DD.MM.YYYY.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%02d.%02d.%d", t.Day(), t.Month(), t.Year())
}
