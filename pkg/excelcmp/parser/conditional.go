package parser

import (
	"archive/zip"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

// CFMap maps each cell covered by conditional formatting to the set of fill
// identifiers its rules could paint. A covered cell may have an empty set.
type CFMap map[models.CellAddress]map[string]struct{}

// Fills returns the sorted fill identifiers for addr.
func (m CFMap) Fills(addr models.CellAddress) []string {
	fills := make([]string, 0, len(m[addr]))
	for id := range m[addr] {
		fills = append(fills, id)
	}
	sort.Strings(fills)
	return fills
}

// Cells returns the covered addresses, columns first then rows.
func (m CFMap) Cells() []models.CellAddress {
	cells := make([]models.CellAddress, 0, len(m))
	for addr := range m {
		cells = append(cells, addr)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}

func (m CFMap) add(addr models.CellAddress, fills map[string]struct{}) {
	set, ok := m[addr]
	if !ok {
		set = make(map[string]struct{}, len(fills))
		m[addr] = set
	}
	for id := range fills {
		set[id] = struct{}{}
	}
}

// LoadConditionalFormats reads the conditional formats of a sheet of the
// xlsx file at path and expands them with ReadConditionalFormats.
func LoadConditionalFormats(xlsxPath string, styles *Styles, sheetName string) (CFMap, []error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return make(CFMap), []error{err}
	}
	defer r.Close()

	return ReadConditionalFormats(&r.Reader, styles, sheetName)
}

// ReadConditionalFormats builds the per-cell fill sets of a sheet's
// conditional formats. Every conditionalFormatting block contributes, so
// blocks repeating the same sqref are unioned. Malformed sqref tokens are
// skipped and returned as *RangeParseError values; they never abort the
// expansion. A sheet that cannot be read yields an empty map and its error.
func ReadConditionalFormats(r *zip.Reader, styles *Styles, sheetName string) (CFMap, []error) {
	result := make(CFMap)

	part, err := sheetPartPath(r, sheetName)
	if err != nil {
		return result, []error{err}
	}
	blocks, err := readConditionalFormatting(r, part)
	if err != nil {
		return result, []error{err}
	}

	var skipped []error
	for _, block := range blocks {
		fills := make(map[string]struct{})
		for _, rule := range block.CfRule {
			if rule.DxfID == nil || styles == nil {
				continue
			}
			dxf, ok := styles.DxfFill(*rule.DxfID)
			if !ok {
				continue
			}
			if id := ResolveDxfFill(dxf); id != noneFill {
				fills[id] = struct{}{}
			}
		}

		skipped = append(skipped, result.addSqref(block.SQRef, fills)...)
	}

	return result, skipped
}

// addSqref unions fills onto every cell of the space-separated ranges in sqref.
func (m CFMap) addSqref(sqref string, fills map[string]struct{}) []error {
	var skipped []error
	for _, token := range strings.Fields(sqref) {
		rng, err := ParseRange(token)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		for _, addr := range ExpandRange(rng) {
			m.add(addr, fills)
		}
	}
	return skipped
}

// CompareConditionalFormats records differences where the actual sheet does
// not reproduce the conditional formatting of the expected sheet. Coverage
// present only in the actual sheet is not reported.
func CompareConditionalFormats(sheetName string, expected, actual CFMap, result *models.ComparisonResult) {
	if len(expected) > 0 && len(actual) == 0 {
		result.AddDifference(models.NewDifference(sheetName, "conditional_formatting",
			fmt.Sprintf("%d cells have CF", len(expected)), "no CF rules"))
		return
	}

	for _, addr := range expected.Cells() {
		cell := CellName(addr)
		expFills := expected.Fills(addr)

		if _, ok := actual[addr]; !ok {
			result.AddDifference(models.NewDifference(sheetName, "CF "+cell,
				fmt.Sprintf("fills: %v", expFills), "no CF"))
			continue
		}

		if actFills := actual.Fills(addr); !slices.Equal(expFills, actFills) {
			result.AddDifference(models.NewDifference(sheetName, "CF "+cell+" fill", expFills, actFills))
		}
	}
}
