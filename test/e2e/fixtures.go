// Package e2e exercises the full analysis pipeline over a mixed-format corpus.
package e2e

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SectionFixture is one titled section of a corpus document. Titles are kept
// short or all-uppercase so segmentation treats them as headings; bodies carry
// enough words to read as prose.
type SectionFixture struct {
	Title string
	Body  string
}

// DocumentFixture is a corpus document: a file name (the extension selects the
// on-disk format) plus its sections in order.
type DocumentFixture struct {
	Name     string
	Sections []SectionFixture
}

// WriteFixture writes the document into dir in the format its extension names
// and returns the file path. Supported: .txt/.md (plain), .docx, .xlsx.
func WriteFixture(dir string, doc DocumentFixture) (string, error) {
	var content []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(doc.Name)); ext {
	case ".docx":
		content = minimalDocx(doc.Sections)
	case ".xlsx":
		content, err = minimalXlsx(doc.Sections)
		if err != nil {
			return "", fmt.Errorf("build xlsx %s: %w", doc.Name, err)
		}
	default:
		content = []byte(plainText(doc.Sections))
	}
	path := filepath.Join(dir, doc.Name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", doc.Name, err)
	}
	return path, nil
}

func plainText(secs []SectionFixture) string {
	var b strings.Builder
	for _, s := range secs {
		b.WriteString(s.Title)
		b.WriteString("\n\n")
		b.WriteString(s.Body)
		b.WriteString("\n\n")
	}
	return b.String()
}

// minimalDocx builds a docx with one paragraph per title and body; the
// extractor falls back to word/document.xml when [Content_Types].xml is absent.
func minimalDocx(secs []SectionFixture) []byte {
	var xml strings.Builder
	xml.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, s := range secs {
		xml.WriteString(`<w:p><w:r><w:t>` + s.Title + `</w:t></w:r></w:p>`)
		xml.WriteString(`<w:p><w:r><w:t>` + s.Body + `</w:t></w:r></w:p>`)
	}
	xml.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("word/document.xml")
	_, _ = fw.Write([]byte(xml.String()))
	_ = w.Close()
	return buf.Bytes()
}

// minimalXlsx builds a workbook with one row per title and body on the default
// sheet; the extractor reads each sheet as a page and each row as a block.
func minimalXlsx(secs []SectionFixture) ([]byte, error) {
	f := excelize.NewFile()
	row := 1
	for _, s := range secs {
		for _, text := range []string{s.Title, s.Body} {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue("Sheet1", cell, text); err != nil {
				return nil, err
			}
			row++
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildTravelCorpus returns a small mixed-topic corpus whose sections carry
// distinctive signature phrases, so tests can assert which section a refined
// excerpt came from.
func BuildTravelCorpus() []DocumentFixture {
	return []DocumentFixture{
		{
			Name: "south-of-france-coast.txt",
			Sections: []SectionFixture{
				{
					Title: "BEACH ACTIVITIES",
					Body: "Sheltered coves along the southern coastline attract swimmers and snorkelers " +
						"throughout the warm season, and beach volleyball courts stay busy until sunset.",
				},
				{
					Title: "NIGHTLIFE AND BARS",
					Body: "Waterfront bars and late night clubs keep the harbor district lively well past " +
						"midnight, with live music on most summer weekends drawing large crowds.",
				},
			},
		},
		{
			Name: "south-of-france-cuisine.docx",
			Sections: []SectionFixture{
				{
					Title: "CULINARY EXPERIENCES",
					Body: "Cooking classes in the old town teach visitors to prepare traditional seafood " +
						"stews, and the morning markets sell fresh produce from the surrounding farms.",
				},
				{
					Title: "WINE TASTING TOURS",
					Body: "Family run vineyards in the hills open their cellars for guided wine tasting " +
						"tours, pairing regional vintages with local cheeses and cured meats.",
				},
			},
		},
		{
			Name: "south-of-france-planning.xlsx",
			Sections: []SectionFixture{
				{
					Title: "PACKING TIPS",
					Body: "Light cotton clothing and comfortable walking shoes cover most situations, and " +
						"a compact rain jacket earns its place during the changeable spring weeks.",
				},
				{
					Title: "GROUP TRANSPORT",
					Body: "Regional trains connect the coastal towns every hour, and larger groups often " +
						"split the cost of a minivan rental to reach the hillside villages.",
				},
			},
		},
	}
}
