package excelcmp

import (
	"strings"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

// ParsePositions splits a position spec such as "Sheet1!A1:B5,'My Sheet'!C1,D4"
// into entries. The sheet is split off at the first "!" and quotes around the
// sheet and range are removed. Entries without a sheet leave Sheet empty.
func ParsePositions(spec string) []models.PositionEntry {
	var entries []models.PositionEntry

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var sheetName string
		rangeStr := part
		if idx := strings.Index(part, "!"); idx >= 0 {
			sheetName = strings.Trim(strings.TrimSpace(part[:idx]), "'")
			rangeStr = part[idx+1:]
		}
		rangeStr = strings.Trim(strings.TrimSpace(rangeStr), "'")

		entries = append(entries, models.PositionEntry{Sheet: sheetName, Range: rangeStr})
	}

	return entries
}
