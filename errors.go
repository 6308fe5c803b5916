package main

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Error Types
// ---------------------------------------------------------------------------

// Sentinel errors for request handling.
var (
	ErrEmptyCompanyName = errors.New("company name is empty")
	ErrNoContent        = errors.New("request has no content blocks, tables or charts")
)

// renderStage identifies the phase of document generation at which a fatal
// error occurred.
type renderStage string

const (
	stageHeader   renderStage = "header"
	stageContent  renderStage = "content"
	stageTable    renderStage = "table"
	stageChart    renderStage = "chart"
	stageFinalize renderStage = "finalize"
)

// RenderError is a fatal document generation failure, tagged with the stage
// that produced it. Partial output is never returned alongside one.
type RenderError struct {
	Stage renderStage
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed at %s stage: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// renderErr wraps err with its stage, passing nil through.
func renderErr(stage renderStage, err error) error {
	if err == nil {
		return nil
	}
	return &RenderError{Stage: stage, Err: err}
}

// ValidationError marks a table or chart spec that cannot be drawn. It is
// non-fatal: the offending element is skipped and the rest of the document
// still renders.
type ValidationError struct {
	Element string // "table" or "chart"
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Element, e.Reason)
}

// skippable reports whether err is a ValidationError that the renderer may
// absorb by dropping the element.
func skippable(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
