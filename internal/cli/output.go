// Package cli provides result output writing for nukigaki.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperjump/nukigaki/internal/models"
	"github.com/hyperjump/nukigaki/pkg/utils"
)

// OutputFormat is the format for analysis output.
type OutputFormat string

const (
	// OutputJSON is the structured result (default; the persisted contract).
	OutputJSON OutputFormat = "json"
	// OutputText is a human-readable rank listing.
	OutputText OutputFormat = "text"
)

// WriteAnalysis writes the analysis to w in the given format.
// JSON output is the persisted structure other tools consume.
func WriteAnalysis(w io.Writer, analysis *models.Analysis, format OutputFormat) error {
	switch format {
	case OutputText:
		writeAnalysisText(w, analysis)
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(analysis)
	}
}

// WriteNoText writes the exact single-key error structure for the
// empty-corpus case. The shape must stay detectable by callers.
func WriteNoText(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(models.ErrorResult{Error: models.NoTextMessage})
}

func writeAnalysisText(w io.Writer, analysis *models.Analysis) {
	fmt.Fprintf(w, "Persona: %s\n", analysis.Metadata.Persona)
	fmt.Fprintf(w, "Job:     %s\n", analysis.Metadata.JobToBeDone)
	fmt.Fprintf(w, "Run:     %s\n\n", analysis.Metadata.ProcessingTimestamp)

	fmt.Fprintf(w, "--- Extracted sections (%d) ---\n", len(analysis.ExtractedSections))
	for _, sec := range analysis.ExtractedSections {
		title := sec.SectionTitle
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "%2d. %s | page %d | %s\n", sec.ImportanceRank, sec.Document, sec.PageNumber, title)
	}

	fmt.Fprintf(w, "\n--- Refined excerpts (%d) ---\n", len(analysis.SubSectionAnalysis))
	for _, sub := range analysis.SubSectionAnalysis {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "%s | page %d\n", sub.Document, sub.PageNumber)
		if sub.RefinedText == "" {
			fmt.Fprintln(w, "(no sentences matched the chunk keyphrases)")
			continue
		}
		fmt.Fprintf(w, "%s\n", utils.Truncate(sub.RefinedText, 200))
	}
}
