package pipeline

import "github.com/hyperjump/nukigaki/internal/models"

// Assemble builds the output structure from the selected sections and their
// refined subsections. Pure data transformation: both inputs arrive in their
// final order (ascending importance rank; within a section, descending chunk
// score) and no ranking or filtering happens here.
func Assemble(req models.AnalyzeRequest, timestamp string, selected []models.Section, refined [][]models.RefinedSubsection) *models.Analysis {
	out := &models.Analysis{
		Metadata: models.Metadata{
			InputDocuments:      req.Documents,
			Persona:             req.Persona,
			JobToBeDone:         req.Job,
			ProcessingTimestamp: timestamp,
		},
		ExtractedSections:  make([]models.ExtractedSection, 0, len(selected)),
		SubSectionAnalysis: []models.RefinedSubsection{},
	}
	for i, sec := range selected {
		out.ExtractedSections = append(out.ExtractedSections, models.ExtractedSection{
			Document:       sec.Document,
			PageNumber:     sec.Page,
			SectionTitle:   sec.Title,
			ImportanceRank: sec.ImportanceRank,
		})
		if i < len(refined) {
			out.SubSectionAnalysis = append(out.SubSectionAnalysis, refined[i]...)
		}
	}
	return out
}
