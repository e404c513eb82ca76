// Package parser provides workbook reading and comparison primitives.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

var (
	// ErrMissingColumn indicates a cell reference without column letters.
	ErrMissingColumn = errors.New("missing column letters")
	// ErrMissingRow indicates a cell reference without row digits.
	ErrMissingRow = errors.New("missing row number")
	// ErrColumnOutOfRange indicates a column past the last worksheet column.
	ErrColumnOutOfRange = errors.New("column out of range")
	// ErrRowOutOfRange indicates a row of zero or past the last worksheet row.
	ErrRowOutOfRange = errors.New("row out of range")
	// ErrRangeTooLarge indicates a range with more than MaxRangeCells cells.
	ErrRangeTooLarge = errors.New("range too large")
)

// MaxRangeCells bounds the number of cells a single range may expand to.
const MaxRangeCells = 1 << 22


// RangeParseError reports a malformed cell or range token.
type RangeParseError struct {
	Input string
	Err   error
}

func (e *RangeParseError) Error() string {
	return fmt.Sprintf("invalid range %q: %v", e.Input, e.Err)
}

func (e *RangeParseError) Unwrap() error {
	return e.Err
}

// ColumnToName converts a 1-based column number to its letters (1 -> A, 27 -> AA).
func ColumnToName(n int) string {
	var buf []byte
	for n > 0 {
		rem := (n - 1) % 26
		buf = append(buf, byte('A'+rem))
		n = (n - 1) / 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// NameToColumn converts column letters to a 1-based column number.
// Columns past XFD fail with ErrColumnOutOfRange.
func NameToColumn(name string) (int, error) {
	if name == "" {
		return 0, ErrMissingColumn
	}
	num := 0
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isLetter(c) {
			return 0, fmt.Errorf("unexpected %q in column %q", c, name)
		}
		if c >= 'a' {
			c -= 'a' - 'A'
		}
		num = num*26 + int(c-'A'+1)
		if num > excelize.MaxColumns {
			return 0, fmt.Errorf("%w: %s", ErrColumnOutOfRange, name)
		}
	}
	return num, nil
}

// CellName renders an address in A1 form.
func CellName(addr models.CellAddress) string {
	return ColumnToName(addr.Col) + strconv.Itoa(addr.Row)
}

// ParseCell parses an A1 reference. "$" anchors are ignored.
// The column letters must precede the row digits.
func ParseCell(s string) (models.CellAddress, error) {
	ref := strings.ReplaceAll(strings.TrimSpace(s), "$", "")

	i := 0
	for i < len(ref) && isLetter(ref[i]) {
		i++
	}
	letters, digits := ref[:i], ref[i:]
	if letters == "" {
		return models.CellAddress{}, &RangeParseError{Input: s, Err: ErrMissingColumn}
	}
	if digits == "" {
		return models.CellAddress{}, &RangeParseError{Input: s, Err: ErrMissingRow}
	}
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return models.CellAddress{}, &RangeParseError{Input: s, Err: fmt.Errorf("unexpected %q after row digits", digits[j])}
		}
	}

	col, err := NameToColumn(letters)
	if err != nil {
		return models.CellAddress{}, &RangeParseError{Input: s, Err: err}
	}

	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || row > excelize.TotalRows {
		return models.CellAddress{}, &RangeParseError{Input: s, Err: fmt.Errorf("%w: %s", ErrRowOutOfRange, digits)}
	}

	return models.CellAddress{Col: col, Row: row}, nil
}

// ParseRange parses "A1:B5" or a single cell "C3" into a range.
// Reversed corners are swapped so that Start is the top-left cell.
func ParseRange(s string) (models.CellRange, error) {
	startRef, endRef, found := strings.Cut(s, ":")

	start, err := ParseCell(startRef)
	if err != nil {
		return models.CellRange{}, &RangeParseError{Input: s, Err: err}
	}
	if !found {
		return models.CellRange{Start: start, End: start}, nil
	}

	end, err := ParseCell(endRef)
	if err != nil {
		return models.CellRange{}, &RangeParseError{Input: s, Err: err}
	}

	if end.Col < start.Col {
		start.Col, end.Col = end.Col, start.Col
	}
	if end.Row < start.Row {
		start.Row, end.Row = end.Row, start.Row
	}

	rng := models.CellRange{Start: start, End: end}
	if rng.Size() > MaxRangeCells {
		return models.CellRange{}, &RangeParseError{Input: s, Err: fmt.Errorf("%w: %d cells", ErrRangeTooLarge, rng.Size())}
	}
	return rng, nil
}

// ExpandRange lists every address in the range, columns outer and rows inner.
func ExpandRange(r models.CellRange) []models.CellAddress {
	addrs := make([]models.CellAddress, 0, r.Size())
	for col := r.Start.Col; col <= r.End.Col; col++ {
		for row := r.Start.Row; row <= r.End.Row; row++ {
			addrs = append(addrs, models.CellAddress{Col: col, Row: row})
		}
	}
	return addrs
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
