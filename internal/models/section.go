// Package models defines core data structures for sections, refined excerpts, and analysis results.
package models

// Section is a titled span of one document's text, the unit of relevance ranking.
// Document is attached after segmentation; ImportanceRank is set only for
// sections that survive selection (zero means unranked).
type Section struct {
	Title          string
	Text           string
	Page           int
	Document       string
	ImportanceRank int
}

// RefinedSubsection is a keyphrase-filtered, length-capped excerpt distilled
// from a selected section. Independent of the Section after creation.
type RefinedSubsection struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}
