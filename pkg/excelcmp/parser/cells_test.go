package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

// saveAndOpen writes f to a temporary xlsx and reopens it together with its styles.
func saveAndOpen(t *testing.T, f *excelize.File) (*excelize.File, *Styles, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))

	opened, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { opened.Close() })

	styles, err := LoadStyles(path)
	require.NoError(t, err)
	return opened, styles, path
}

func TestReadCell(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Header1"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "A3", 200.5))
	require.NoError(t, f.SetCellValue(sheetName, "A4", true))
	require.NoError(t, f.SetCellValue(sheetName, "A5", time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, f.SetCellValue(sheetName, "A6", 0.5))
	timeStyle, err := f.NewStyle(&excelize.Style{NumFmt: 20})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheetName, "A6", "A6", timeStyle))

	require.NoError(t, f.SetCellValue(sheetName, "A7", 45338))
	code := "yyyy-mm-dd"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &code})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheetName, "A7", "A7", dateStyle))

	require.NoError(t, f.SetCellValue(sheetName, "A8", 0.25))
	pctStyle, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheetName, "A8", "A8", pctStyle))

	opened, styles, _ := saveAndOpen(t, f)

	read := func(cell string) models.RawValue {
		v, err := ReadCell(opened, styles, false, sheetName, cell)
		require.NoError(t, err, cell)
		return v
	}

	assert.Equal(t, models.StringValue("Header1"), read("A1"))
	assert.Equal(t, models.NumberValue(100), read("A2"))
	assert.Equal(t, models.NumberValue(200.5), read("A3"))
	assert.Equal(t, models.BoolValue(true), read("A4"))

	date := read("A5")
	require.Equal(t, models.RawDateTime, date.Kind)
	assert.Equal(t, "2024-02-16 00:00:00", date.Interface())

	clock := read("A6")
	require.Equal(t, models.RawTime, clock.Kind)
	assert.Equal(t, "12:00:00", clock.Interface())

	custom := read("A7")
	require.Equal(t, models.RawDateTime, custom.Kind)
	assert.Equal(t, 2024, custom.Time.Year())

	assert.Equal(t, models.NumberValue(0.25), read("A8"), "percent format is not a date")
	assert.Equal(t, models.NilValue(), read("Z99"))
}

func TestReadCellUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ReadCell(f, nil, false, "Missing", "A1")
	assert.Error(t, err)
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		id       int
		code     string
		expected bool
	}{
		{0, "", false},
		{2, "", false},
		{10, "", false},
		{14, "", true},
		{22, "", true},
		{46, "", true},
		{164, "yyyy-mm-dd", true},
		{165, "[h]:mm", true},
		{166, "#,##0.00", false},
		{167, `"Total" 0`, false},
	}

	for _, tt := range tests {
		if got := IsDateFormat(tt.id, tt.code); got != tt.expected {
			t.Errorf("IsDateFormat(%d, %q) = %v, expected %v", tt.id, tt.code, got, tt.expected)
		}
	}
}
