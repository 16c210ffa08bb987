// Package faults defines the error taxonomy shared across the export/import
// pipeline. Three categories exist: validation (required structural data
// absent), format (schema-version mismatch), and render (an output-producing
// dependency failed). Callers classify with errors.As via the Is* helpers.
package faults

import (
	"errors"
	"fmt"
)

// ValidationError reports required structural data missing from an input
// payload. It is always surfaced to the caller, never silently recovered.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation: %s", e.Reason)
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for the given field.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// FormatError reports a snapshot schema-version mismatch. Cross-version field
// shapes are not assignment-compatible, so consumption must stop here.
type FormatError struct {
	Got  string
	Want string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format: schema version %q, expected %q", e.Got, e.Want)
}

// NewFormat builds a FormatError for an unexpected schema version.
func NewFormat(got, want string) error {
	return &FormatError{Got: got, Want: want}
}

// RenderError reports that a renderer failed to produce bytes. Whether this is
// fatal depends on the caller: mandatory formats (pdf, json) abort the export,
// optional formats (csv, xlsx) are skipped inside a bundle.
type RenderError struct {
	Format string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// NewRender wraps a renderer failure with its format name.
func NewRender(format string, err error) error {
	return &RenderError{Format: format, Err: err}
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsFormat reports whether err is or wraps a FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsRender reports whether err is or wraps a RenderError.
func IsRender(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}
