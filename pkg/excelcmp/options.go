// Package excelcmp grades a workbook against a ground-truth workbook.
package excelcmp

import (
	"io"
	"log/slog"
)

// Options configures comparison behavior.
type Options struct {
	// CheckStyle additionally compares cell fills and conditional formatting.
	CheckStyle bool
	// TextHints attaches an inline character diff to text mismatches.
	// If nil, defaults to true.
	TextHints *bool
	// Logger receives debug diagnostics. If nil, logging is discarded.
	Logger *slog.Logger
}

// DefaultOptions returns default comparison options (values only, no style).
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeTextHints returns whether to attach text diff hints.
func (o Options) ShouldIncludeTextHints() bool {
	if o.TextHints != nil {
		return *o.TextHints
	}
	return true
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
