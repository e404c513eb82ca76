package parser

import (
	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

const (
	noneFill     = "none"
	solidPattern = "solid"
)

// EffectiveFill reduces a pattern fill to what the comparison looks at:
// nothing, a solid color, or a named pattern.
func EffectiveFill(p models.PatternFill) models.FillOutcome {
	switch p.PatternType {
	case "", noneFill:
		return models.FillOutcome{Kind: models.FillNone}
	case solidPattern:
		return models.FillOutcome{Kind: models.FillSolid, Color: p.FgColor}
	default:
		return models.FillOutcome{Kind: models.FillPattern, Pattern: p.PatternType}
	}
}

// FillString renders a fill outcome for reports.
func FillString(o models.FillOutcome) string {
	switch o.Kind {
	case models.FillSolid:
		return ResolveColor(o.Color)
	case models.FillPattern:
		return "pattern:" + o.Pattern
	default:
		return noneFill
	}
}

// FillsEqual reports whether two fill outcomes look the same. Solid fills
// compare by color, other patterns by name only.
func FillsEqual(a, b models.FillOutcome) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case models.FillSolid:
		return ColorsEqual(a.Color, b.Color)
	case models.FillPattern:
		return a.Pattern == b.Pattern
	default:
		return true
	}
}

// ResolveDxfFill returns the fill identifier a conditional format would
// paint. The foreground color is used when set, otherwise the background
// color, which is where spreadsheet applications store solid dxf fills.
func ResolveDxfFill(p models.PatternFill) string {
	if id := ResolveDxfColor(p.FgColor); id != noneFill {
		return id
	}
	return ResolveDxfColor(p.BgColor)
}
