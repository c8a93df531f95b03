// Package sentence provides deterministic sentence boundary splitting.
package sentence

import (
	"regexp"
	"strings"
)

// Splitter splits text into an ordered sequence of sentences on terminal
// punctuation. Deterministic and locale-independent for English-like text.
type Splitter struct {
	re *regexp.Regexp
}

// NewSplitter returns a new Splitter.
func NewSplitter() *Splitter {
	return &Splitter{
		re: regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`),
	}
}

// Split returns the trimmed sentences of text in order. Text with no terminal
// punctuation yields a single sentence (the trimmed text); text after the last
// terminal mark is kept as a final sentence; empty or blank text yields nil.
func (s *Splitter) Split(text string) []string {
	matches := s.re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}
	sentences := make([]string, 0, len(matches)+1)
	for _, m := range matches {
		if t := strings.TrimSpace(text[m[0]:m[1]]); t != "" {
			sentences = append(sentences, t)
		}
	}
	if tail := strings.TrimSpace(text[matches[len(matches)-1][1]:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
