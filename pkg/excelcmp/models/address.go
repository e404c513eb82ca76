// Package models defines data structures for workbook comparison.
package models

// CellAddress is a single cell position.
type CellAddress struct {
	// Col is the column index (1-based).
	Col int `json:"col"`
	// Row is the row index (1-based).
	Row int `json:"row"`
}

// Less orders addresses columns first, then rows.
func (a CellAddress) Less(b CellAddress) bool {
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	return a.Row < b.Row
}

// CellRange represents inclusive cell coordinate bounds.
type CellRange struct {
	// Start is the top-left corner.
	Start CellAddress `json:"start"`
	// End is the bottom-right corner (inclusive).
	End CellAddress `json:"end"`
}

// Size returns the number of cells covered by the range.
func (r CellRange) Size() int {
	return (r.End.Col - r.Start.Col + 1) * (r.End.Row - r.Start.Row + 1)
}

// PositionEntry is one sheet-qualified range of a position spec.
type PositionEntry struct {
	// Sheet is the sheet name, empty when the entry had no "Sheet!" prefix.
	Sheet string `json:"sheet,omitempty"`
	// Range is the A1 range string (e.g. "A1:B5" or "C3").
	Range string `json:"range"`
}
