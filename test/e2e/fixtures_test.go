package e2e

import (
	"os"
	"strings"
	"testing"

	"github.com/hyperjump/nukigaki/internal/extract"
)

func TestWriteFixture_AllFormatsExtractable(t *testing.T) {
	e := extract.NewExtractor()
	for _, doc := range BuildTravelCorpus() {
		doc := doc
		t.Run(doc.Name, func(t *testing.T) {
			path, err := WriteFixture(t.TempDir(), doc)
			if err != nil {
				t.Fatalf("WriteFixture: %v", err)
			}
			pages, err := e.Extract(path)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if len(pages) == 0 {
				t.Fatal("no pages extracted")
			}
			var all []string
			for _, p := range pages {
				all = append(all, p.Blocks...)
			}
			joined := strings.Join(all, "\n")
			for _, sec := range doc.Sections {
				if !strings.Contains(joined, sec.Title) {
					t.Errorf("extracted blocks missing title %q", sec.Title)
				}
			}
		})
	}
}

func TestWriteFixture_TitlesAndBodiesAreSeparateBlocks(t *testing.T) {
	e := extract.NewExtractor()
	for _, doc := range BuildTravelCorpus() {
		path, err := WriteFixture(t.TempDir(), doc)
		if err != nil {
			t.Fatalf("WriteFixture %s: %v", doc.Name, err)
		}
		pages, err := e.Extract(path)
		if err != nil {
			t.Fatalf("Extract %s: %v", doc.Name, err)
		}
		blocks := 0
		for _, p := range pages {
			blocks += len(p.Blocks)
		}
		if want := len(doc.Sections) * 2; blocks != want {
			t.Errorf("%s: %d blocks, want %d (one per title and body)", doc.Name, blocks, want)
		}
	}
}

func TestWriteFixture_WritesFile(t *testing.T) {
	doc := BuildTravelCorpus()[0]
	path, err := WriteFixture(t.TempDir(), doc)
	if err != nil {
		t.Fatalf("WriteFixture: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("fixture file is empty")
	}
}
