package parser

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

const testStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <numFmts count="1"><numFmt numFmtId="164" formatCode="yyyy\-mm\-dd"/></numFmts>
  <fills count="5">
    <fill><patternFill patternType="none"/></fill>
    <fill><patternFill patternType="gray125"/></fill>
    <fill><patternFill patternType="solid"><fgColor theme="4" tint="0.4"/><bgColor indexed="64"/></patternFill></fill>
    <fill><patternFill patternType="solid"><fgColor rgb="FFFF0000"/></patternFill></fill>
    <fill><patternFill patternType="solid"><fgColor indexed="13"/></patternFill></fill>
  </fills>
  <cellXfs count="6">
    <xf numFmtId="0" fillId="0"/>
    <xf numFmtId="0" fillId="1"/>
    <xf numFmtId="0" fillId="2"/>
    <xf numFmtId="14" fillId="3"/>
    <xf numFmtId="164" fillId="4"/>
    <xf numFmtId="0" fillId="99"/>
  </cellXfs>
  <dxfs count="4">
    <dxf><fill><patternFill><bgColor rgb="FFFFC7CE"/></patternFill></fill></dxf>
    <dxf><font><b/></font></dxf>
    <dxf><fill><patternFill patternType="solid"><fgColor rgb="00000000" theme="5"/></patternFill></fill></dxf>
    <dxf><fill><patternFill><bgColor indexed="10"/></patternFill></fill></dxf>
  </dxfs>
</styleSheet>`

const testWorkbookRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="custom/styles.xml"/>
</Relationships>`

func zipReader(t *testing.T, parts map[string]string) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range parts {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return r
}

func TestReadStyles(t *testing.T) {
	styles, err := ReadStyles(zipReader(t, map[string]string{"xl/styles.xml": testStylesXML}))
	require.NoError(t, err)

	assert.Equal(t, models.PatternFill{PatternType: "none"}, styles.CellFill(0))
	assert.Equal(t, "gray125", styles.CellFill(1).PatternType)

	themed := styles.CellFill(2)
	assert.Equal(t, "solid", themed.PatternType)
	assert.Equal(t, models.ThemeColor(4), themed.FgColor)
	assert.Equal(t, models.IndexedColor(64), themed.BgColor)

	assert.Equal(t, models.RGBColor("FFFF0000"), styles.CellFill(3).FgColor)
	assert.Equal(t, models.IndexedColor(13), styles.CellFill(4).FgColor)
	assert.Equal(t, models.PatternFill{}, styles.CellFill(5), "dangling fill id")
	assert.Equal(t, models.PatternFill{}, styles.CellFill(42), "unknown xf")

	id, code := styles.NumFmt(3)
	assert.Equal(t, 14, id)
	assert.Empty(t, code)
	id, code = styles.NumFmt(4)
	assert.Equal(t, 164, id)
	assert.Equal(t, `yyyy\-mm\-dd`, code)

	dxf, ok := styles.DxfFill(0)
	require.True(t, ok)
	assert.Equal(t, "rgb:FFFFC7CE", ResolveDxfFill(dxf))

	_, ok = styles.DxfFill(1)
	assert.False(t, ok, "font-only dxf has no fill")

	dxf, ok = styles.DxfFill(2)
	require.True(t, ok)
	assert.Equal(t, "theme:5", ResolveDxfFill(dxf), "transparent rgb falls back to theme")

	dxf, ok = styles.DxfFill(3)
	require.True(t, ok)
	assert.Equal(t, "indexed:10", ResolveDxfFill(dxf))

	_, ok = styles.DxfFill(7)
	assert.False(t, ok)
}

func TestReadStylesFollowsRelationship(t *testing.T) {
	styles, err := ReadStyles(zipReader(t, map[string]string{
		"xl/_rels/workbook.xml.rels": testWorkbookRels,
		"xl/custom/styles.xml":       testStylesXML,
	}))
	require.NoError(t, err)
	assert.Equal(t, "gray125", styles.CellFill(1).PatternType)
}

func TestReadStylesMissingPart(t *testing.T) {
	styles, err := ReadStyles(zipReader(t, map[string]string{"xl/workbook.xml": "<workbook/>"}))
	require.NoError(t, err)
	assert.Equal(t, models.PatternFill{}, styles.CellFill(0))
	_, ok := styles.DxfFill(0)
	assert.False(t, ok)
}

func TestReadStylesMalformed(t *testing.T) {
	_, err := ReadStyles(zipReader(t, map[string]string{"xl/styles.xml": "<styleSheet><fills>"}))
	assert.Error(t, err)
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"styles.xml", "xl/styles.xml"},
		{"/xl/styles.xml", "xl/styles.xml"},
		{"../styles.xml", "styles.xml"},
	}

	for _, tt := range tests {
		if got := resolveRelativePath(tt.target, "xl"); got != tt.expected {
			t.Errorf("resolveRelativePath(%q) = %q, expected %q", tt.target, got, tt.expected)
		}
	}
}
