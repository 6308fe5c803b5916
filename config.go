package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ---------------------------------------------------------------------------
// Render Options
// ---------------------------------------------------------------------------

// Options controls page geometry, fonts and spacing for one render call.
// Zero-valued fields fall back to the shared defaults; call-site options
// always win over defaults, field by field.
type Options struct {
	PageSize      string  `yaml:"pageSize"`      // "A4" or "Letter"
	Margin        float64 `yaml:"margin"`        // all four sides, mm
	FontFamily    string  `yaml:"fontFamily"`    // core font name (Helvetica, Times, Courier)
	FontSize      float64 `yaml:"fontSize"`      // base body size, points
	LineHeight    float64 `yaml:"lineHeight"`    // body line height, mm
	LogoMaxWidth  float64 `yaml:"logoMaxWidth"`  // logo bounding box, mm
	LogoMaxHeight float64 `yaml:"logoMaxHeight"` // logo bounding box, mm
	HeaderSpacing float64 `yaml:"headerSpacing"` // gap between header and content, mm
	BlockSpacing  float64 `yaml:"blockSpacing"`  // gap between content blocks, mm
	TableSpacing  float64 `yaml:"tableSpacing"`  // gap between consecutive tables, mm
	ChartHeight   float64 `yaml:"chartHeight"`   // default chart height, mm
	OutputPath    string  `yaml:"outputPath"`    // write to file instead of returning a buffer
}

// pageSizes maps the recognized page size names to width/height in mm.
var pageSizes = map[string][2]float64{
	"A4":     {210.0, 297.0},
	"Letter": {215.9, 279.4},
}

// defaultOptions is the single shared default record. Call sites never
// mutate it; resolveOptions copies it.
func defaultOptions() *Options {
	return &Options{
		PageSize:      "A4",
		Margin:        15.0,
		FontFamily:    "Helvetica",
		FontSize:      11,
		LineHeight:    5.5,
		LogoMaxWidth:  50.0,
		LogoMaxHeight: 18.0,
		HeaderSpacing: 8.0,
		BlockSpacing:  3.0,
		TableSpacing:  8.0,
		ChartHeight:   70.0,
	}
}

// presets replaces the historical forked spacing variants with named
// configuration records.
var presets = map[string]*Options{
	"default": defaultOptions(),
	"compact": {
		PageSize:      "A4",
		Margin:        10.0,
		FontFamily:    "Helvetica",
		FontSize:      9,
		LineHeight:    4.5,
		LogoMaxWidth:  40.0,
		LogoMaxHeight: 14.0,
		HeaderSpacing: 5.0,
		BlockSpacing:  2.0,
		TableSpacing:  5.0,
		ChartHeight:   55.0,
	},
}

// preset returns a copy of a named options preset.
func preset(name string) (*Options, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown options preset %q", name)
	}
	cp := *p
	return &cp, nil
}

// resolveOptions merges o over the built-in defaults. A nil o yields pure
// defaults.
func resolveOptions(o *Options) *Options {
	return overlayOptions(defaultOptions(), o)
}

// overlayOptions copies base and overrides every field o sets. Used for the
// explicit precedence chain: request options > config defaults or preset >
// built-in defaults.
func overlayOptions(base, o *Options) *Options {
	r := &Options{}
	if base != nil {
		*r = *base
	}
	if o == nil {
		return r
	}
	if o.PageSize != "" {
		r.PageSize = o.PageSize
	}
	if o.Margin > 0 {
		r.Margin = o.Margin
	}
	if o.FontFamily != "" {
		r.FontFamily = o.FontFamily
	}
	if o.FontSize > 0 {
		r.FontSize = o.FontSize
	}
	if o.LineHeight > 0 {
		r.LineHeight = o.LineHeight
	}
	if o.LogoMaxWidth > 0 {
		r.LogoMaxWidth = o.LogoMaxWidth
	}
	if o.LogoMaxHeight > 0 {
		r.LogoMaxHeight = o.LogoMaxHeight
	}
	if o.HeaderSpacing > 0 {
		r.HeaderSpacing = o.HeaderSpacing
	}
	if o.BlockSpacing > 0 {
		r.BlockSpacing = o.BlockSpacing
	}
	if o.TableSpacing > 0 {
		r.TableSpacing = o.TableSpacing
	}
	if o.ChartHeight > 0 {
		r.ChartHeight = o.ChartHeight
	}
	if o.OutputPath != "" {
		r.OutputPath = o.OutputPath
	}
	return r
}

// pageDimensions returns the page width/height in mm for the resolved size.
func (o *Options) pageDimensions() (float64, float64) {
	dims, ok := pageSizes[o.PageSize]
	if !ok {
		dims = pageSizes["A4"]
	}
	return dims[0], dims[1]
}

// ---------------------------------------------------------------------------
// Application Configuration
// ---------------------------------------------------------------------------

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"pass"`
}

type EmailConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Config is the CLI application configuration.
type Config struct {
	SMTP     SMTPConfig  `yaml:"smtp"`
	Email    EmailConfig `yaml:"email"`
	Company  string      `yaml:"company"`
	Logo     string      `yaml:"logo"`
	Defaults *Options    `yaml:"defaults"`
}

// loadConfig reads and parses the YAML configuration file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Company == "" {
		return nil, fmt.Errorf("no company name configured")
	}

	return &cfg, nil
}
