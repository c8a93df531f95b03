package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hyperjump/nukigaki/internal/models"
)

func sampleAnalysis() *models.Analysis {
	return &models.Analysis{
		Metadata: models.Metadata{
			InputDocuments:      []string{"a.pdf"},
			Persona:             "Chef",
			JobToBeDone:         "plan a menu",
			ProcessingTimestamp: "2024-01-02T03:04:05Z",
		},
		ExtractedSections: []models.ExtractedSection{
			{Document: "a.pdf", PageNumber: 2, SectionTitle: "Starters", ImportanceRank: 1},
		},
		SubSectionAnalysis: []models.RefinedSubsection{
			{Document: "a.pdf", RefinedText: "Soup first.", PageNumber: 2},
		},
	}
}

func TestWriteAnalysis_json(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, sampleAnalysis(), OutputJSON); err != nil {
		t.Fatalf("WriteAnalysis: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"metadata", "extracted_sections", "sub_section_analysis"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
	meta, ok := decoded["metadata"].(map[string]any)
	if !ok {
		t.Fatal("metadata is not an object")
	}
	if meta["persona"] != "Chef" || meta["job_to_be_done"] != "plan a menu" {
		t.Errorf("metadata = %v", meta)
	}
}

func TestWriteAnalysis_text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, sampleAnalysis(), OutputText); err != nil {
		t.Fatalf("WriteAnalysis: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Persona: Chef", "Starters", "Soup first."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteNoText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNoText(&buf); err != nil {
		t.Fatalf("WriteNoText: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	// The single-key shape is a contract: callers detect the empty corpus by it.
	if len(decoded) != 1 || decoded["error"] != "No text extracted" {
		t.Errorf("got %v, want exactly {\"error\": \"No text extracted\"}", decoded)
	}
}
