package extract

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractBytes_plain(t *testing.T) {
	e := NewExtractor()
	content := []byte("INTRODUCTION\n\nFirst paragraph of body text.\n\nSecond paragraph.")
	pages, err := e.ExtractBytes(content, ".txt")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(pages) != 1 || pages[0].Number != 1 {
		t.Fatalf("pages = %+v", pages)
	}
	want := []string{"INTRODUCTION", "First paragraph of body text.", "Second paragraph."}
	if len(pages[0].Blocks) != len(want) {
		t.Fatalf("blocks = %v", pages[0].Blocks)
	}
	for i, b := range want {
		if pages[0].Blocks[i] != b {
			t.Errorf("block %d = %q, want %q", i, pages[0].Blocks[i], b)
		}
	}
}

func TestExtractBytes_plainInvalidUTF8(t *testing.T) {
	e := NewExtractor()
	pages, err := e.ExtractBytes([]byte("hello\x80world"), ".md")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if pages[0].Blocks[0] != "hello�world" {
		t.Errorf("got %q", pages[0].Blocks[0])
	}
}

func TestExtractBytes_plainEmpty(t *testing.T) {
	e := NewExtractor()
	pages, err := e.ExtractBytes([]byte("  \n \n  "), ".txt")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if pages != nil {
		t.Errorf("blank content should yield no pages, got %+v", pages)
	}
}

func TestExtractBytes_excel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "QUARTERLY REVENUE")
	f.SetCellValue("Sheet1", "A2", "North region grew by twelve percent over the previous fiscal year overall.")
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	e := NewExtractor()
	pages, err := e.ExtractBytes(buf.Bytes(), ".xlsx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(pages) != 1 || pages[0].Number != 1 {
		t.Fatalf("pages = %+v", pages)
	}
	if len(pages[0].Blocks) != 2 {
		t.Fatalf("blocks = %v", pages[0].Blocks)
	}
	if pages[0].Blocks[0] != "QUARTERLY REVENUE" {
		t.Errorf("got %q", pages[0].Blocks[0])
	}
}

func TestExtractBytes_docx(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	doc, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<w:document><w:body>` +
		`<w:p w:rsidR="001"><w:r><w:t>OVERVIEW</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>This paragraph describes the </w:t></w:r><w:r><w:t xml:space="preserve">system in detail.</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	if _, err := doc.Write([]byte(xml)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	e := NewExtractor()
	pages, err := e.ExtractBytes(buf.Bytes(), ".docx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if len(pages) != 1 || len(pages[0].Blocks) != 2 {
		t.Fatalf("pages = %+v", pages)
	}
	if pages[0].Blocks[0] != "OVERVIEW" {
		t.Errorf("got %q", pages[0].Blocks[0])
	}
	if pages[0].Blocks[1] != "This paragraph describes the system in detail." {
		t.Errorf("got %q", pages[0].Blocks[1])
	}
}

func TestExtract_file(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("TITLE\n\nBody."), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	e := NewExtractor()
	pages, err := e.Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(pages) != 1 || len(pages[0].Blocks) != 2 {
		t.Fatalf("pages = %+v", pages)
	}
}

func TestExtract_missingFile(t *testing.T) {
	e := NewExtractor()
	if _, err := e.Extract(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
