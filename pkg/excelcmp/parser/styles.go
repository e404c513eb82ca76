package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/khaledbashir/excel/pkg/excelcmp/models"
)

const (
	defaultStylesPath = "xl/styles.xml"
	workbookPath      = "xl/workbook.xml"
	workbookRelsPath  = "xl/_rels/workbook.xml.rels"
)

// xlsxStyleSheet maps the parts of styles.xml the comparison needs.
type xlsxStyleSheet struct {
	XMLName xml.Name     `xml:"styleSheet"`
	NumFmts *xlsxNumFmts `xml:"numFmts"`
	Fills   *xlsxFills   `xml:"fills"`
	CellXfs *xlsxCellXfs `xml:"cellXfs"`
	Dxfs    *xlsxDxfs    `xml:"dxfs"`
}

type xlsxNumFmts struct {
	NumFmt []xlsxNumFmt `xml:"numFmt"`
}

type xlsxNumFmt struct {
	NumFmtID   int    `xml:"numFmtId,attr"`
	FormatCode string `xml:"formatCode,attr"`
}

type xlsxFills struct {
	Fill []xlsxFill `xml:"fill"`
}

type xlsxFill struct {
	PatternFill *xlsxPatternFill `xml:"patternFill"`
}

type xlsxPatternFill struct {
	PatternType string     `xml:"patternType,attr"`
	FgColor     *xlsxColor `xml:"fgColor"`
	BgColor     *xlsxColor `xml:"bgColor"`
}

type xlsxColor struct {
	RGB     string `xml:"rgb,attr"`
	Indexed *int   `xml:"indexed,attr"`
	Theme   *int   `xml:"theme,attr"`
}

type xlsxCellXfs struct {
	Xf []xlsxXf `xml:"xf"`
}

type xlsxXf struct {
	NumFmtID int `xml:"numFmtId,attr"`
	FillID   int `xml:"fillId,attr"`
}

type xlsxDxfs struct {
	Dxf []xlsxDxf `xml:"dxf"`
}

type xlsxDxf struct {
	Fill *xlsxFill `xml:"fill"`
}

// Styles holds the cell formats, fills and differential styles of a workbook.
type Styles struct {
	numFmts map[int]string
	fills   []models.PatternFill
	xfs     []xlsxXf
	dxfs    []*models.PatternFill
}

// LoadStyles reads the stylesheet of the xlsx file at path.
func LoadStyles(xlsxPath string) (*Styles, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ReadStyles(&r.Reader)
}

// ReadStyles parses the stylesheet part of an opened xlsx package.
// A package without a stylesheet yields empty Styles.
func ReadStyles(r *zip.Reader) (*Styles, error) {
	stylesPath := defaultStylesPath
	if relsXML, err := readZipFile(r, workbookRelsPath); err == nil && relsXML != nil {
		if target := findStylesRelationship(relsXML); target != "" {
			stylesPath = resolveRelativePath(target, "xl")
		}
	}

	data, err := readZipFile(r, stylesPath)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return newStyles(nil), nil
	}

	var ss xlsxStyleSheet
	if err := xml.Unmarshal(data, &ss); err != nil {
		return nil, fmt.Errorf("parse %s: %w", stylesPath, err)
	}
	return newStyles(&ss), nil
}

func newStyles(ss *xlsxStyleSheet) *Styles {
	s := &Styles{numFmts: make(map[int]string)}
	if ss == nil {
		return s
	}

	if ss.NumFmts != nil {
		for _, nf := range ss.NumFmts.NumFmt {
			s.numFmts[nf.NumFmtID] = nf.FormatCode
		}
	}
	if ss.Fills != nil {
		for _, fl := range ss.Fills.Fill {
			s.fills = append(s.fills, convertFill(fl.PatternFill, cellColor))
		}
	}
	if ss.CellXfs != nil {
		s.xfs = ss.CellXfs.Xf
	}
	if ss.Dxfs != nil {
		for _, dxf := range ss.Dxfs.Dxf {
			if dxf.Fill == nil || dxf.Fill.PatternFill == nil {
				s.dxfs = append(s.dxfs, nil)
				continue
			}
			fill := convertFill(dxf.Fill.PatternFill, dxfColor)
			s.dxfs = append(s.dxfs, &fill)
		}
	}
	return s
}

// CellFill returns the pattern fill referenced by the cell format xf.
// Unknown formats resolve to an empty fill.
func (s *Styles) CellFill(xf int) models.PatternFill {
	if xf < 0 || xf >= len(s.xfs) {
		return models.PatternFill{}
	}
	fillID := s.xfs[xf].FillID
	if fillID < 0 || fillID >= len(s.fills) {
		return models.PatternFill{}
	}
	return s.fills[fillID]
}

// NumFmt returns the number format id and custom format code of the cell format xf.
// The code is empty for built-in formats.
func (s *Styles) NumFmt(xf int) (int, string) {
	if xf < 0 || xf >= len(s.xfs) {
		return 0, ""
	}
	id := s.xfs[xf].NumFmtID
	return id, s.numFmts[id]
}

// DxfFill returns the fill of the differential style at index id.
func (s *Styles) DxfFill(id int) (models.PatternFill, bool) {
	if id < 0 || id >= len(s.dxfs) || s.dxfs[id] == nil {
		return models.PatternFill{}, false
	}
	return *s.dxfs[id], true
}

func convertFill(pf *xlsxPatternFill, color func(*xlsxColor) models.ColorSpec) models.PatternFill {
	if pf == nil {
		return models.PatternFill{}
	}
	return models.PatternFill{
		PatternType: pf.PatternType,
		FgColor:     color(pf.FgColor),
		BgColor:     color(pf.BgColor),
	}
}

// cellColor picks the encoding for cell fill colors: theme, then indexed, then rgb.
func cellColor(c *xlsxColor) models.ColorSpec {
	switch {
	case c == nil:
		return models.ColorSpec{}
	case c.Theme != nil:
		return models.ThemeColor(*c.Theme)
	case c.Indexed != nil:
		return models.IndexedColor(*c.Indexed)
	case c.RGB != "":
		return models.RGBColor(c.RGB)
	}
	return models.ColorSpec{}
}

// dxfColor picks the encoding for differential-style colors: a non-transparent
// rgb first, then theme, then indexed.
func dxfColor(c *xlsxColor) models.ColorSpec {
	switch {
	case c == nil:
		return models.ColorSpec{}
	case c.RGB != "" && c.RGB != models.TransparentRGB:
		return models.RGBColor(c.RGB)
	case c.Theme != nil:
		return models.ThemeColor(*c.Theme)
	case c.Indexed != nil:
		return models.IndexedColor(*c.Indexed)
	}
	return models.ColorSpec{}
}

// relationship is one entry of a .rels part.
type relationship struct {
	ID     string
	Type   string
	Target string
}

// readRelationships decodes the Relationship entries of a .rels part.
func readRelationships(data []byte) []relationship {
	var rels []relationship
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var rel relationship
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Id":
				rel.ID = attr.Value
			case "Type":
				rel.Type = attr.Value
			case "Target":
				rel.Target = attr.Value
			}
		}
		rels = append(rels, rel)
	}
	return rels
}

// findStylesRelationship returns the target of the styles relationship in workbook.xml.rels.
func findStylesRelationship(data []byte) string {
	for _, rel := range readRelationships(data) {
		if strings.HasSuffix(rel.Type, "/styles") {
			return rel.Target
		}
	}
	return ""
}

// readZipFile returns the content of a package part, or nil if it is absent.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// resolveRelativePath resolves a relationship target against the directory of its source part.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	clean := target
	for strings.HasPrefix(clean, "../") {
		clean = strings.TrimPrefix(clean, "../")
	}
	if clean != target {
		return clean
	}
	return baseDir + "/" + target
}
