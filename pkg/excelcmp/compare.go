package excelcmp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

// CompareWorkbooks grades the workbook at actualPath against the ground truth
// at expectedPath over the ranges named by positions, e.g.
// "Sheet1!A1:B5,Sheet2!C1". Entries without a sheet use the first sheet of
// the expected workbook.
//
// Data problems never produce an error: a missing or unreadable file, a
// missing sheet or a malformed range is recorded as a Difference and the
// result does not match. Each call opens and closes its own workbooks, so
// concurrent calls are safe.
func CompareWorkbooks(expectedPath, actualPath, positions string, opts Options) *models.ComparisonResult {
	logger := opts.logger()

	if err := checkExists(actualPath); err != nil {
		logger.Debug("actual workbook missing", "path", actualPath)
		result := models.NewComparisonResult()
		result.AddDifference(models.NewDifference("", "file", expectedPath, err.Error()))
		return result
	}

	expected, err := openWorkbook(expectedPath)
	if err != nil {
		return loadFailure(err)
	}
	defer expected.Close()

	actual, err := openWorkbook(actualPath)
	if err != nil {
		return loadFailure(err)
	}
	defer actual.Close()

	combined := models.NewComparisonResult()
	for _, entry := range ParsePositions(positions) {
		sheetName := entry.Sheet
		if sheetName == "" {
			names := expected.sheetNames()
			if len(names) == 0 {
				combined.AddDifference(models.NewDifference("", entry.Range, "default sheet", "expected workbook has no sheets"))
				continue
			}
			sheetName = names[0]
		}

		expectedSheet, err := expected.resolveSheet(sheetName)
		if err != nil {
			logger.Debug("sheet missing from expected workbook", "sheet", sheetName)
			combined.AddDifference(models.NewDifference("", fmt.Sprintf("(missing sheet '%s' in expected)", sheetName),
				"sheet exists", err.Error()))
			continue
		}

		actualSheet, err := actual.resolveSheet(sheetName)
		if err != nil {
			logger.Debug("sheet missing from actual workbook", "sheet", sheetName)
			combined.AddDifference(models.NewDifference("", fmt.Sprintf("(missing sheet '%s')", sheetName),
				"sheet exists", fmt.Sprintf("sheet not found in output (has: %v)", actual.sheetNames())))
			continue
		}

		rc := &rangeComparison{
			expected:      expected,
			actual:        actual,
			expectedSheet: expectedSheet,
			actualSheet:   actualSheet,
			opts:          opts,
			logger:        logger,
		}
		combined.Merge(rc.run(entry.Range))
	}

	return combined
}

func loadFailure(err error) *models.ComparisonResult {
	result := models.NewComparisonResult()
	result.AddDifference(models.NewDifference("", "load", "success", err.Error()))
	return result
}

func checkExists(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return nil
}
