package models

import "errors"

// ErrNoText is returned when no text could be extracted from any input document.
var ErrNoText = errors.New("no text extracted")

// NoTextMessage is the exact user-visible message for the empty-corpus result.
const NoTextMessage = "No text extracted"

// AnalyzeRequest is the input for one analysis run.
type AnalyzeRequest struct {
	// Documents are file paths, in the order given by the caller.
	Documents []string `json:"documents"`
	Persona   string   `json:"persona"`
	Job       string   `json:"job"`
}

// Metadata describes one analysis run.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is the output projection of a selected section.
type ExtractedSection struct {
	Document       string `json:"document"`
	PageNumber     int    `json:"page_number"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
}

// Analysis is the full result of one run. ExtractedSections are ordered
// ascending by importance rank; SubSectionAnalysis is ordered by source
// section rank, then descending chunk score.
type Analysis struct {
	Metadata           Metadata            `json:"metadata"`
	ExtractedSections  []ExtractedSection  `json:"extracted_sections"`
	SubSectionAnalysis []RefinedSubsection `json:"sub_section_analysis"`
}

// ErrorResult is the single-key structure written instead of an Analysis
// when no text was extracted. Callers depend on this exact shape.
type ErrorResult struct {
	Error string `json:"error"`
}
