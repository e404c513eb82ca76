package parser

import (
	"strconv"
	"strings"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

const (
	themePrefix   = "theme:"
	indexedPrefix = "indexed:"
)

// ResolveColor renders a color as "theme:<n>", "indexed:<n>" or an rgb hex
// string. Absent colors resolve to models.TransparentRGB.
func ResolveColor(c models.ColorSpec) string {
	switch c.Kind {
	case models.ColorTheme:
		return themePrefix + strconv.Itoa(c.Index)
	case models.ColorIndexed:
		return indexedPrefix + strconv.Itoa(c.Index)
	case models.ColorRGB:
		if c.RGB != "" && c.RGB != models.TransparentRGB {
			return c.RGB
		}
	}
	return models.TransparentRGB
}

// ColorsEqual compares two colors. Theme and indexed colors only equal the
// identical symbolic color; rgb colors compare on their last six hex digits,
// so a difference in alpha alone is ignored.
func ColorsEqual(a, b models.ColorSpec) bool {
	ra, rb := ResolveColor(a), ResolveColor(b)
	if isSymbolicColor(ra) || isSymbolicColor(rb) {
		return ra == rb
	}
	return strings.EqualFold(lastHex(ra), lastHex(rb))
}

// ResolveDxfColor renders a differential-style color as "rgb:<hex>",
// "theme:<n>" or "indexed:<n>", or "none" when nothing is set.
func ResolveDxfColor(c models.ColorSpec) string {
	switch c.Kind {
	case models.ColorRGB:
		if c.RGB != "" && c.RGB != models.TransparentRGB {
			return "rgb:" + c.RGB
		}
	case models.ColorTheme:
		return themePrefix + strconv.Itoa(c.Index)
	case models.ColorIndexed:
		return indexedPrefix + strconv.Itoa(c.Index)
	}
	return noneFill
}

func isSymbolicColor(s string) bool {
	return strings.HasPrefix(s, themePrefix) || strings.HasPrefix(s, indexedPrefix)
}

func lastHex(s string) string {
	if len(s) > 6 {
		return s[len(s)-6:]
	}
	return s
}
