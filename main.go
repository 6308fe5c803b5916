// Command pdf-gen-ai renders structured business documents (header with
// logo and company name, flowing paragraphs, signature blocks, tables, bar
// and pie charts, footer with date and page count) onto A4 or Letter pages.
//
// A document is described by a YAML request file:
//
//	company: Acme Corp
//	logo: https://example.com/logo.png
//	content:
//	  - paragraph: Dear customer, ...
//	  - signature: Jane Doe
//	  - designation: Managing Director
//	tables:
//	  - heading: Items
//	    rows:
//	      - {Item: Widget, Qty: 10, Price: 5.0}
//	charts:
//	  - kind: pie
//	    labels: [A, B]
//	    data: [60, 40]
//
// Usage:
//
//	pdf-gen-ai --input request.yaml [--output out.pdf]
//	pdf-gen-ai --sample 8/2026 --config config.yaml --email
package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const version = "1.0.0"

// monthArgRegex validates the --sample argument format: M/YYYY or MM/YYYY.
var monthArgRegex = regexp.MustCompile(`^(0?[1-9]|1[0-2])/(20[0-9]{2})$`)

// parseMonthYear extracts month and year from a M/YYYY argument, falling
// back to the current month.
func parseMonthYear(arg string) (int, time.Month) {
	if monthArgRegex.MatchString(arg) {
		parts := strings.Split(arg, "/")
		month, _ := strconv.Atoi(parts[0])
		year, _ := strconv.Atoi(parts[1])
		return year, time.Month(month)
	}

	year, month, _ := time.Now().Date()
	return year, month
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	var (
		inputPath   = pflag.StringP("input", "i", "", "document request YAML file")
		outputPath  = pflag.StringP("output", "o", "", "output PDF path (overrides request options)")
		configPath  = pflag.StringP("config", "c", "", "application config YAML file")
		presetName  = pflag.String("preset", "", "options preset: default or compact")
		sampleMonth = pflag.String("sample", "", "generate a sample monthly report for M/YYYY")
		emailFlag   = pflag.Bool("email", false, "email the generated document (requires --config)")
		showVersion = pflag.BoolP("version", "v", false, "print version and exit")
	)
	pflag.Parse()

	if *showVersion {
		fmt.Printf("pdf-gen-ai v%s\n", version)
		return
	}

	var cfg *Config
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fatal(err)
		}
	}

	// Build the request from either a sample month or a request file.
	var req *Request
	switch {
	case *sampleMonth != "":
		company := "Sample Consulting GmbH"
		logo := ""
		if cfg != nil {
			company = cfg.Company
			logo = cfg.Logo
		}
		year, month := parseMonthYear(*sampleMonth)
		req = buildMonthlyReport(company, logo, year, month)
	case *inputPath != "":
		var err error
		req, err = loadRequest(*inputPath)
		if err != nil {
			fatal(err)
		}
		if req.CompanyName == "" && cfg != nil {
			req.CompanyName = cfg.Company
		}
		if req.Logo == "" && cfg != nil {
			req.Logo = cfg.Logo
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: pdf-gen-ai --input request.yaml | --sample M/YYYY")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	// Options precedence: request > preset or config defaults > built-in.
	base := (*Options)(nil)
	if cfg != nil {
		base = cfg.Defaults
	}
	if *presetName != "" {
		p, err := preset(*presetName)
		if err != nil {
			fatal(err)
		}
		base = p
	}
	req.Options = overlayOptions(base, req.Options)
	if *outputPath != "" {
		req.Options.OutputPath = *outputPath
	}
	if req.Options.OutputPath == "" {
		req.Options.OutputPath = "document.pdf"
	}

	data, path, err := renderToOutput(req)
	if err != nil {
		fatal(err)
	}
	if path != "" {
		fmt.Printf("Created %s\n", path)
	}

	if *emailFlag {
		if cfg == nil {
			fatal(fmt.Errorf("--email requires --config"))
		}
		if data == nil {
			data, err = os.ReadFile(path)
			if err != nil {
				fatal(err)
			}
		}
		subject := fmt.Sprintf("Document from %s", req.CompanyName)
		name := path
		if name == "" {
			name = "document.pdf"
		}
		if err := sendEmail(cfg, subject, name, data); err != nil {
			fatal(err)
		}
		fmt.Println("Emailed document")
	}
}
