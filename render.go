package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// producerName is stamped into the PDF metadata.
const producerName = "pdf-gen-ai"

// ---------------------------------------------------------------------------
// Document Rendering
// ---------------------------------------------------------------------------

// render generates the complete PDF for one request and returns its bytes.
//
// Layout runs in two passes: pass one walks blocks, tables and charts,
// drawing the header on every page it opens; pass two stamps the footer on
// each finished page once the total page count is known. The call either
// returns a complete document or an error; partial output is never exposed.
func render(req *Request) ([]byte, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	opts := resolveOptions(req.Options)

	// Resolved once, before layout begins. A missing logo degrades the
	// header; it never fails the document.
	logo := resolveLogo(req.Logo, opts)

	now := time.Now()
	cv := newPDFCanvas(opts)
	cv.setMetadata(req.CompanyName, producerName, documentID(now))

	hf := &headerFooter{company: req.CompanyName, logo: logo, opts: opts, now: now}
	lc := newLayoutContext(cv, opts, hf.drawHeader)

	lc.startPage()
	if err := cv.Err(); err != nil {
		return nil, renderErr(stageHeader, err)
	}

	renderContent(lc, req.Blocks)
	if err := cv.Err(); err != nil {
		return nil, renderErr(stageContent, err)
	}

	for i := range req.Tables {
		if i > 0 {
			lc.advance(opts.TableSpacing)
		}
		if err := renderTable(lc, &req.Tables[i]); err != nil {
			if skippable(err) {
				slog.Warn("skipping table", "index", i, "error", err)
				continue
			}
			return nil, renderErr(stageTable, err)
		}
		if err := cv.Err(); err != nil {
			return nil, renderErr(stageTable, err)
		}
	}

	for i := range req.Charts {
		if err := renderChart(lc, &req.Charts[i]); err != nil {
			if skippable(err) {
				slog.Warn("skipping chart", "index", i, "error", err)
				continue
			}
			return nil, renderErr(stageChart, err)
		}
		if err := cv.Err(); err != nil {
			return nil, renderErr(stageChart, err)
		}
	}

	hf.stampFooters(lc)
	if err := cv.Err(); err != nil {
		return nil, renderErr(stageFinalize, err)
	}

	var buf bytes.Buffer
	if err := cv.output(&buf); err != nil {
		return nil, renderErr(stageFinalize, err)
	}
	return buf.Bytes(), nil
}

// renderToOutput renders the request and either writes the file named by
// its options (returning the path) or returns the in-memory buffer.
func renderToOutput(req *Request) ([]byte, string, error) {
	data, err := render(req)
	if err != nil {
		return nil, "", err
	}

	opts := resolveOptions(req.Options)
	if opts.OutputPath == "" {
		return data, "", nil
	}
	if err := os.WriteFile(opts.OutputPath, data, 0o644); err != nil {
		return nil, "", renderErr(stageFinalize, fmt.Errorf("failed to write output file: %w", err))
	}
	return nil, opts.OutputPath, nil
}
