// Package output serializes comparison results.
package output

import (
	"encoding/json"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

// ToJSON serializes a comparison result, indented when pretty is set.
func ToJSON(result *models.ComparisonResult, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
