package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    models.RawValue
		expected models.NormalizedValue
	}{
		{"integer", models.NumberValue(42), models.NumberNormalized(42)},
		{"rounds to two places", models.NumberValue(3.14159), models.NumberNormalized(3.14)},
		{"bool true", models.BoolValue(true), models.NumberNormalized(1)},
		{"bool false", models.BoolValue(false), models.NumberNormalized(0)},
		{"time truncates seconds", models.TimeValue(time.Date(1899, 12, 30, 9, 5, 59, 0, time.UTC)), models.TimeOfDayNormalized("09:05")},
		{"date", models.DateTimeValue(time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC)), models.NumberNormalized(45338)},
		{"datetime rounds to whole day", models.DateTimeValue(time.Date(2024, 2, 16, 18, 0, 0, 0, time.UTC)), models.NumberNormalized(45339)},
		{"percent", models.StringValue("99%"), models.NumberNormalized(0.99)},
		{"percent with fraction", models.StringValue("12.345%"), models.NumberNormalized(0.12)},
		{"bad percent stays text", models.StringValue("abc%"), models.TextNormalized("abc%")},
		{"numeric string", models.StringValue(" 1.239 "), models.NumberNormalized(1.24)},
		{"scientific string", models.StringValue("1e3"), models.NumberNormalized(1000)},
		{"iso date string", models.StringValue("2024-02-16"), models.NumberNormalized(45338)},
		{"european date string", models.StringValue("16.02.2024"), models.NumberNormalized(45338)},
		{"datetime string", models.StringValue("2024-02-16 13:30:00"), models.NumberNormalized(45339)},
		{"plain text", models.StringValue("Hello"), models.TextNormalized("Hello")},
		{"hex is text", models.StringValue("0x1p-2"), models.TextNormalized("0x1p-2")},
		{"empty string", models.StringValue(""), models.TextNormalized("")},
		{"nil", models.NilValue(), models.EmptyNormalized()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestDateAmbiguityPrefersDayFirst(t *testing.T) {
	parsed, df, ok := ParseDateString("02/03/24")
	require.True(t, ok)
	assert.Equal(t, "%d/%m/%y", df.Pattern)
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 2, parsed.Day())

	// Day-first is impossible here, so the month-first layout wins.
	parsed, df, ok = ParseDateString("02/16/24")
	require.True(t, ok)
	assert.Equal(t, "%m/%d/%y", df.Pattern)
	assert.Equal(t, time.February, parsed.Month())
	assert.Equal(t, 16, parsed.Day())
	assert.Equal(t, 2024, parsed.Year())
}

func TestDateFormatsOrder(t *testing.T) {
	require.Len(t, DateFormats, 18)
	assert.Equal(t, "%d.%m.%y", DateFormats[0].Pattern)
	assert.Equal(t, "%Y-%m-%d", DateFormats[6].Pattern)
	assert.Equal(t, "%m/%d/%y", DateFormats[9].Pattern)
	assert.Equal(t, "%m/%d/%Y %H:%M:%S", DateFormats[17].Pattern)

	for i, df := range DateFormats {
		for _, earlier := range DateFormats[:i] {
			assert.NotEqual(t, earlier.Layout, df.Layout, "duplicate layout %s", df.Layout)
		}
	}
}

func TestParseDateStringRejects(t *testing.T) {
	for _, s := range []string{"", "hello", "31/02/2024", "2024-13-01", "16.02.24 extra"} {
		_, _, ok := ParseDateString(s)
		assert.False(t, ok, "ParseDateString(%q)", s)
	}
}

func TestRoundingBoundary(t *testing.T) {
	assert.True(t, CompareValues(models.NumberValue(1.005), models.NumberValue(1.0049999)))
	assert.False(t, CompareValues(models.NumberValue(1.001), models.NumberValue(1.009)))
	assert.True(t, CompareValues(models.NumberValue(1.001), models.NumberValue(1.004)))
	assert.Equal(t, 2.0, RoundTo(2.5, 0), "exact ties round to even")
	assert.Equal(t, 4.0, RoundTo(3.5, 0))
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name     string
		a, b     models.RawValue
		expected bool
	}{
		{"empty vs nil", models.StringValue(""), models.NilValue(), true},
		{"nil vs empty", models.NilValue(), models.StringValue(""), true},
		{"nil vs nil", models.NilValue(), models.NilValue(), true},
		{"empty vs empty", models.StringValue(""), models.StringValue(""), true},
		{"nil vs zero", models.NilValue(), models.NumberValue(0), false},
		{"percent vs number", models.StringValue("99%"), models.NumberValue(0.99), true},
		{"numeric string vs number", models.StringValue("10"), models.NumberValue(10), true},
		{"case insensitive", models.StringValue("Total"), models.StringValue("TOTAL"), true},
		{"unicode case", models.StringValue("STRASSE"), models.StringValue("strasse"), true},
		{"number vs text", models.NumberValue(1), models.StringValue("one"), false},
		{"date vs string date", models.DateTimeValue(time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC)), models.StringValue("16/02/2024"), true},
		{"date vs serial", models.DateTimeValue(time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC)), models.NumberValue(45338), true},
		{"time vs clock text", models.TimeValue(time.Date(1899, 12, 30, 9, 30, 0, 0, time.UTC)), models.StringValue("09:30"), true},
		{"time vs other time", models.TimeValue(time.Date(1899, 12, 30, 9, 30, 0, 0, time.UTC)), models.TimeValue(time.Date(1899, 12, 30, 9, 31, 0, 0, time.UTC)), false},
		{"bool vs one", models.BoolValue(true), models.NumberValue(1), true},
		{"text differs", models.StringValue("abc"), models.StringValue("abd"), false},
		{"whitespace is not empty", models.StringValue(" "), models.NilValue(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompareValues(tt.a, tt.b))
		})
	}
}

func TestExcelSerial(t *testing.T) {
	assert.Equal(t, 0.0, ExcelSerial(time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1.5, ExcelSerial(time.Date(1899, 12, 31, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 45338.0, ExcelSerial(time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -0.75, ExcelSerial(time.Date(1899, 12, 29, 6, 0, 0, 0, time.UTC)))
	assert.Equal(t, 109574.0, ExcelSerial(time.Date(2199, 12, 31, 0, 0, 0, 0, time.UTC)))
}
