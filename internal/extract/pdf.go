package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

func extractPDF(content []byte) ([]Page, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	var pages []Page
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		blocks := pdfPageBlocks(page)
		pages = append(pages, Page{Number: i, Blocks: blocks})
	}
	return pages, nil
}

// pdfPageBlocks returns the page's text rows as blocks, top to bottom.
// When row extraction fails, the page's plain text becomes a single block.
func pdfPageBlocks(page pdf.Page) []string {
	rows, err := page.GetTextByRow()
	if err != nil {
		text, terr := page.GetPlainText(nil)
		if terr != nil {
			return nil
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}
		return []string{text}
	}
	var blocks []string
	for _, row := range rows {
		var b strings.Builder
		for _, word := range row.Content {
			b.WriteString(word.S)
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			blocks = append(blocks, text)
		}
	}
	return blocks
}
