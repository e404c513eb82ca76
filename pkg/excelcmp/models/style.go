package models

// TransparentRGB is the sentinel for an absent color (fully transparent black).
const TransparentRGB = "00000000"

// ColorKind identifies which encoding a ColorSpec carries.
type ColorKind int

const (
	// ColorNone means no color was specified.
	ColorNone ColorKind = iota
	// ColorTheme is an index into the workbook theme palette.
	ColorTheme
	// ColorIndexed is an index into the legacy indexed palette.
	ColorIndexed
	// ColorRGB is a literal ARGB or RGB hex string.
	ColorRGB
)

// ColorSpec is one color in exactly one of the spreadsheet color encodings.
type ColorSpec struct {
	Kind  ColorKind
	Index int
	RGB   string
}

// ThemeColor returns a theme palette color.
func ThemeColor(index int) ColorSpec { return ColorSpec{Kind: ColorTheme, Index: index} }

// IndexedColor returns a legacy palette color.
func IndexedColor(index int) ColorSpec { return ColorSpec{Kind: ColorIndexed, Index: index} }

// RGBColor returns a literal hex color.
func RGBColor(rgb string) ColorSpec { return ColorSpec{Kind: ColorRGB, RGB: rgb} }

// PatternFill is a cell or differential-style pattern fill.
type PatternFill struct {
	// PatternType is the OOXML pattern name ("solid", "gray125", ...), empty for none.
	PatternType string
	// FgColor is the foreground (start) color.
	FgColor ColorSpec
	// BgColor is the background (end) color.
	BgColor ColorSpec
}

// FillKind identifies the variant of a FillOutcome.
type FillKind int

const (
	// FillNone is an absent fill.
	FillNone FillKind = iota
	// FillSolid is a solid fill with a single color.
	FillSolid
	// FillPattern is any non-solid pattern, compared by name only.
	FillPattern
)

// FillOutcome is the effective visual fill of a cell.
type FillOutcome struct {
	Kind    FillKind
	Color   ColorSpec
	Pattern string
}
