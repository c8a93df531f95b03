// Package segment converts per-page text blocks into titled sections.
package segment

import (
	"strings"

	"github.com/hyperjump/nukigaki/internal/extract"
	"github.com/hyperjump/nukigaki/internal/models"
)

// Segmenter accumulates page blocks into titled sections.
type Segmenter struct {
	titleWordLimit int
}

// NewSegmenter returns a segmenter using the default title word limit.
func NewSegmenter() *Segmenter {
	return &Segmenter{titleWordLimit: defaultTitleWordLimit}
}

// Segment walks pages in order and emits sections. A title-candidate block
// closes the current section (if it has body text) and opens a new one at the
// current page. Other blocks are space-joined into the current section's body.
// A document that opens with body text yields a section with an empty title at
// page 1; a trailing section with no body text is dropped.
func (s *Segmenter) Segment(pages []extract.Page) []models.Section {
	var sections []models.Section
	current := models.Section{Page: 1}
	for _, page := range pages {
		for _, block := range page.Blocks {
			text := strings.TrimSpace(block)
			if text == "" {
				continue
			}
			if IsTitleCandidate(text, s.titleWordLimit) {
				if current.Text != "" {
					sections = append(sections, current)
				}
				current = models.Section{Title: text, Page: page.Number}
				continue
			}
			if current.Text == "" {
				current.Text = text
			} else {
				current.Text += " " + text
			}
		}
	}
	if current.Text != "" {
		sections = append(sections, current)
	}
	return sections
}
