package excelcmp

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
	"github.com/khaledbashir/excel/pkg/excelcmp/parser"
)

// workbook is an opened xlsx file with its stylesheet.
type workbook struct {
	path     string
	file     *excelize.File
	styles   *parser.Styles
	date1904 bool
}

// openWorkbook opens an xlsx file for reading cached cell values.
func openWorkbook(path string) (*workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, err)
	}

	styles, err := parser.LoadStyles(path)
	if err != nil {
		f.Close()
		return nil, NewLoadError(path, err)
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	return &workbook{path: path, file: f, styles: styles, date1904: date1904}, nil
}

func (w *workbook) Close() error {
	return w.file.Close()
}

func (w *workbook) sheetNames() []string {
	return w.file.GetSheetList()
}

// resolveSheet finds a sheet by case-insensitive name.
func (w *workbook) resolveSheet(name string) (string, error) {
	names := w.sheetNames()
	for _, candidate := range names {
		if strings.EqualFold(candidate, name) {
			return candidate, nil
		}
	}
	return "", &SheetNotFoundError{Sheet: name, Available: names}
}

func (w *workbook) readCell(sheetName, cell string) (models.RawValue, error) {
	return parser.ReadCell(w.file, w.styles, w.date1904, sheetName, cell)
}

func (w *workbook) cellFill(sheetName, cell string) (models.FillOutcome, error) {
	xf, err := w.file.GetCellStyle(sheetName, cell)
	if err != nil {
		return models.FillOutcome{}, err
	}
	return parser.EffectiveFill(w.styles.CellFill(xf)), nil
}

func (w *workbook) conditionalFormats(sheetName string) (parser.CFMap, []error) {
	return parser.LoadConditionalFormats(w.path, w.styles, sheetName)
}
