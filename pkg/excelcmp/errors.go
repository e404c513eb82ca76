package excelcmp

import (
	"errors"
	"fmt"

	"github.com/khaledbashir/excel/pkg/excelcmp/parser"
)

// ErrFileNotFound indicates the workbook to grade does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates a file that cannot be read as an xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// RangeParseError reports a malformed cell or range token.
type RangeParseError = parser.RangeParseError

// SheetNotFoundError reports a sheet missing from a workbook.
type SheetNotFoundError struct {
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found (has: %v)", e.Sheet, e.Available)
}

// LoadError represents a workbook that exists but could not be opened.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{
		Path: path,
		Err:  fmt.Errorf("%w: %v", ErrInvalidFormat, err),
	}
}
