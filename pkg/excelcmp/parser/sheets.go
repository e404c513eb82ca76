package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
)

// xlsxConditionalFormatting is one conditionalFormatting block of a worksheet.
// A worksheet may hold several blocks with the same sqref.
type xlsxConditionalFormatting struct {
	SQRef  string       `xml:"sqref,attr"`
	CfRule []xlsxCfRule `xml:"cfRule"`
}

type xlsxCfRule struct {
	DxfID *int `xml:"dxfId,attr"`
}

// sheetPartPath resolves the package part holding the named sheet through
// workbook.xml and its relationships.
func sheetPartPath(r *zip.Reader, sheetName string) (string, error) {
	wbXML, err := readZipFile(r, workbookPath)
	if err != nil {
		return "", err
	}
	if wbXML == nil {
		return "", fmt.Errorf("%s not found", workbookPath)
	}

	relID := findSheetRelID(wbXML, sheetName)
	if relID == "" {
		return "", fmt.Errorf("sheet %q not found in %s", sheetName, workbookPath)
	}

	relsXML, err := readZipFile(r, workbookRelsPath)
	if err != nil {
		return "", err
	}
	for _, rel := range readRelationships(relsXML) {
		if rel.ID == relID {
			return resolveRelativePath(rel.Target, "xl"), nil
		}
	}
	return "", fmt.Errorf("relationship %s of sheet %q not found", relID, sheetName)
}

// findSheetRelID returns the r:id of the sheet entry named sheetName.
func findSheetRelID(data []byte, sheetName string) string {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			return ""
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var name, id string
		for _, attr := range se.Attr {
			switch {
			case attr.Name.Local == "name":
				name = attr.Value
			case attr.Name.Local == "id" && attr.Name.Space != "":
				id = attr.Value
			}
		}
		if name == sheetName {
			return id
		}
	}
}

// readConditionalFormatting decodes every conditionalFormatting block of a
// worksheet part in document order. Cell data and the extension list are
// skipped.
func readConditionalFormatting(r *zip.Reader, part string) ([]xlsxConditionalFormatting, error) {
	data, err := readZipFile(r, part)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%s not found", part)
	}

	var blocks []xlsxConditionalFormatting
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "sheetData", "extLst":
			if err := decoder.Skip(); err != nil {
				return nil, fmt.Errorf("parse %s: %w", part, err)
			}
		case "conditionalFormatting":
			var block xlsxConditionalFormatting
			if err := decoder.DecodeElement(&block, &se); err != nil {
				return nil, fmt.Errorf("parse %s: %w", part, err)
			}
			blocks = append(blocks, block)
		}
	}
	return blocks, nil
}
