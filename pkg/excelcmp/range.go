package excelcmp

import (
	"log/slog"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
	"github.com/khaledbashir/excel/pkg/excelcmp/parser"
)

// rangeComparison compares one range of one sheet pair.
type rangeComparison struct {
	expected, actual           *workbook
	expectedSheet, actualSheet string
	opts                       Options
	logger                     *slog.Logger
}

// run compares every cell of rangeStr. Differences are reported against the
// expected sheet name, in column-major cell order.
func (rc *rangeComparison) run(rangeStr string) *models.ComparisonResult {
	result := models.NewComparisonResult()

	rng, err := parser.ParseRange(rangeStr)
	if err != nil {
		rc.logger.Debug("invalid range", "sheet", rc.expectedSheet, "range", rangeStr, "error", err)
		result.AddDifference(models.NewDifference(rc.expectedSheet, rangeStr, "valid range", err.Error()))
		return result
	}

	for _, addr := range parser.ExpandRange(rng) {
		cell := parser.CellName(addr)
		rc.compareValue(cell, result)
		if rc.opts.CheckStyle {
			rc.compareFill(cell, result)
		}
	}

	if rc.opts.CheckStyle {
		expectedCF, skipped := rc.expected.conditionalFormats(rc.expectedSheet)
		rc.logSkipped(rc.expectedSheet, skipped)
		actualCF, skipped := rc.actual.conditionalFormats(rc.actualSheet)
		rc.logSkipped(rc.actualSheet, skipped)
		parser.CompareConditionalFormats(rc.expectedSheet, expectedCF, actualCF, result)
	}

	rc.logger.Debug("range compared", "sheet", rc.expectedSheet, "range", rangeStr,
		"correct", result.CorrectCount, "total", result.TotalCount)
	return result
}

func (rc *rangeComparison) compareValue(cell string, result *models.ComparisonResult) {
	expected, err := rc.expected.readCell(rc.expectedSheet, cell)
	if err != nil {
		result.AddDifference(models.NewDifference(rc.expectedSheet, cell, err.Error(), nil))
		return
	}
	actual, err := rc.actual.readCell(rc.actualSheet, cell)
	if err != nil {
		result.AddDifference(models.NewDifference(rc.expectedSheet, cell, expected.Interface(), err.Error()))
		return
	}

	if parser.CompareValues(expected, actual) {
		result.AddMatch()
		return
	}

	d := models.NewDifference(rc.expectedSheet, cell, expected.Interface(), actual.Interface())
	if rc.opts.ShouldIncludeTextHints() && isText(expected) && isText(actual) {
		d.Hint = textHint(expected.Str, actual.Str)
	}
	result.AddDifference(d)
}

func (rc *rangeComparison) compareFill(cell string, result *models.ComparisonResult) {
	location := cell + " (fill)"
	expected, err := rc.expected.cellFill(rc.expectedSheet, cell)
	if err != nil {
		rc.logger.Debug("read fill", "sheet", rc.expectedSheet, "cell", cell, "error", err)
		result.AddDifference(models.NewDifference(rc.expectedSheet, location, err.Error(), nil))
		return
	}
	actual, err := rc.actual.cellFill(rc.actualSheet, cell)
	if err != nil {
		rc.logger.Debug("read fill", "sheet", rc.actualSheet, "cell", cell, "error", err)
		result.AddDifference(models.NewDifference(rc.expectedSheet, location, parser.FillString(expected), err.Error()))
		return
	}

	if !parser.FillsEqual(expected, actual) {
		result.AddDifference(models.NewDifference(rc.expectedSheet, location,
			parser.FillString(expected), parser.FillString(actual)))
	}
}

func (rc *rangeComparison) logSkipped(sheetName string, skipped []error) {
	for _, err := range skipped {
		rc.logger.Debug("skipped conditional format range", "sheet", sheetName, "error", err)
	}
}

// isText reports whether v stays text after normalization.
func isText(v models.RawValue) bool {
	return v.Kind == models.RawString && parser.Normalize(v).Kind == models.KindText
}
