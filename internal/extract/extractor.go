// Package extract provides per-page text block extraction from document files.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Page is one page of a document: a 1-indexed page number and the ordered
// raw text blocks found on it. Blocks carry no formatting metadata.
type Page struct {
	Number int
	Blocks []string
}

// Extractor extracts page-structured text blocks from document files.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path and returns its pages of text blocks.
// For plain text files (.txt, .md, .rst), the whole file is one page with
// blank-line-separated paragraph blocks. For PDF, each PDF page yields one
// Page with its text rows as blocks. For DOCX, the document body is one page
// with paragraph blocks. For XLSX, each sheet is a page with row blocks.
// Returns an error if the file cannot be read or parsed.
func (e *Extractor) Extract(path string) ([]Page, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	return e.ExtractBytes(content, ext)
}

// ExtractBytes extracts pages from content based on the given extension.
// ext should include the leading dot (e.g. ".pdf").
func (e *Extractor) ExtractBytes(content []byte, ext string) ([]Page, error) {
	switch ext {
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		return extractDOCX(content)
	case ".xlsx":
		return extractExcel(content)
	default:
		// Plain text (.txt, .md, .rst) and anything unknown.
		return extractPlain(content)
	}
}
