package parser

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

// Normalize converts a raw cell value into its comparable form.
// Rules are applied in order and the first applicable one wins:
// numbers round to 2 decimals, times render as "HH:MM", datetimes become a
// whole-day Excel serial, and strings are tried as percent, number and date
// before being kept as text.
func Normalize(v models.RawValue) models.NormalizedValue {
	switch v.Kind {
	case models.RawNumber:
		return models.NumberNormalized(RoundTo(v.Number, 2))
	case models.RawBool:
		if v.Bool {
			return models.NumberNormalized(1)
		}
		return models.NumberNormalized(0)
	case models.RawTime:
		return models.TimeOfDayNormalized(v.Time.Format("15:04"))
	case models.RawDateTime:
		// The time of day is intentionally lost by rounding to whole days.
		return models.NumberNormalized(RoundTo(ExcelSerial(v.Time), 0))
	case models.RawString:
		return normalizeString(v.Str)
	default:
		return models.EmptyNormalized()
	}
}

func normalizeString(s string) models.NormalizedValue {
	if strings.HasSuffix(s, "%") {
		if f, ok := parseNumber(s[:len(s)-1]); ok {
			return models.NumberNormalized(RoundTo(f/100, 2))
		}
	}
	if f, ok := parseNumber(s); ok {
		return models.NumberNormalized(RoundTo(f, 2))
	}
	if t, _, ok := ParseDateString(s); ok {
		return models.NumberNormalized(RoundTo(ExcelSerial(t), 0))
	}
	return models.TextNormalized(s)
}

// parseNumber parses a decimal number, allowing surrounding whitespace.
// Hexadecimal float syntax is rejected.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "0x") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Equal reports whether two normalized values are equivalent.
// Absent and empty-string values are interchangeable, values of different
// kinds never match, and text compares case-insensitively.
func Equal(a, b models.NormalizedValue) bool {
	if a.IsBlank() && b.IsBlank() {
		return true
	}

	switch {
	case a.IsTextual() && b.IsTextual():
		lower := cases.Lower(language.Und)
		return lower.String(a.Text) == lower.String(b.Text)
	case a.Kind != b.Kind:
		return false
	case a.Kind == models.KindNumber:
		return a.Number == b.Number
	default:
		return true
	}
}

// CompareValues normalizes both raw values and reports whether they are equivalent.
func CompareValues(expected, actual models.RawValue) bool {
	return Equal(Normalize(expected), Normalize(actual))
}
