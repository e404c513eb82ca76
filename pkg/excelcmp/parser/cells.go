package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

// isoDateLayouts are the layouts accepted for inline ISO 8601 date cells (t="d").
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
}

// ReadCell reads the cached value of a cell. Formulas are not evaluated;
// the value stored by the application that last saved the file is used.
// Numbers in a date or time number format are returned as DateTime or Time.
func ReadCell(f *excelize.File, styles *Styles, date1904 bool, sheetName, cell string) (models.RawValue, error) {
	raw, err := f.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.NilValue(), err
	}
	cellType, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return models.NilValue(), err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.BoolValue(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return dateOrTime(t), nil
		}
		return models.StringValue(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.StringValue(raw), nil
	}

	if raw == "" {
		return models.NilValue(), nil
	}
	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.StringValue(raw), nil
	}

	xf, err := f.GetCellStyle(sheetName, cell)
	if err != nil || styles == nil {
		return models.NumberValue(num), nil
	}
	if id, code := styles.NumFmt(xf); num >= 0 && IsDateFormat(id, code) {
		if t, err := excelize.ExcelDateToTime(num, date1904); err == nil {
			return serialToValue(num, t.Round(time.Millisecond)), nil
		}
	}
	return models.NumberValue(num), nil
}

// serialToValue returns a time of day for serials below one day, a datetime otherwise.
func serialToValue(serial float64, t time.Time) models.RawValue {
	if serial < 1 {
		return models.TimeValue(t)
	}
	return models.DateTimeValue(t)
}

func dateOrTime(t time.Time) models.RawValue {
	if t.Year() == 0 {
		return models.TimeValue(t)
	}
	return models.DateTimeValue(t)
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDateFormat reports whether a number format displays dates or times.
// Built-in ids are checked first, then the custom format code is tokenized.
func IsDateFormat(numFmtID int, code string) bool {
	switch {
	case numFmtID >= 14 && numFmtID <= 22,
		numFmtID >= 27 && numFmtID <= 36,
		numFmtID >= 45 && numFmtID <= 47,
		numFmtID >= 50 && numFmtID <= 58:
		return true
	}
	if code == "" {
		return false
	}

	p := nfp.NumberFormatParser()
	for _, section := range p.Parse(code) {
		for _, token := range section.Items {
			if token.TType == nfp.TokenTypeDateTimes || token.TType == nfp.TokenTypeElapsedDateTimes {
				return true
			}
		}
	}
	return false
}
