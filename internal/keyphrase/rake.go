// Package keyphrase extracts ranked keyphrases from text using RAKE
// (rapid automatic keyword extraction): candidate phrases are split on
// stopwords and punctuation, and scored by word co-occurrence degree over
// frequency. Tokenization and the English stop-word set come from bleve.
package keyphrase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
)

// Extractor extracts ranked keyphrases from text. Safe for concurrent use.
type Extractor struct {
	stop      analysis.TokenMap
	tokenizer analysis.Tokenizer
}

// NewExtractor returns an extractor with the English stop-word set.
func NewExtractor() (*Extractor, error) {
	stop := analysis.NewTokenMap()
	if err := stop.LoadBytes(en.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("load stop words: %w", err)
	}
	return &Extractor{
		stop:      stop,
		tokenizer: unicode.NewUnicodeTokenizer(),
	}, nil
}

// phrase is a candidate keyphrase with its accumulated score.
type phrase struct {
	text  string
	words []string
	score float64
	order int
}

// RankedPhrases returns the candidate phrases of text ranked by descending
// RAKE score. Phrases are lowercased; ties keep first-occurrence order.
func (e *Extractor) RankedPhrases(text string) []string {
	candidates := e.candidates(strings.ToLower(text))
	if len(candidates) == 0 {
		return nil
	}

	// Word scores: degree (total phrase length over all occurrences) over frequency.
	freq := make(map[string]float64)
	degree := make(map[string]float64)
	for _, c := range candidates {
		for _, w := range c.words {
			freq[w]++
			degree[w] += float64(len(c.words))
		}
	}

	seen := make(map[string]*phrase, len(candidates))
	unique := make([]*phrase, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		if _, ok := seen[c.text]; ok {
			continue
		}
		for _, w := range c.words {
			c.score += degree[w] / freq[w]
		}
		c.order = len(unique)
		seen[c.text] = c
		unique = append(unique, c)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].score > unique[j].score
	})

	ranked := make([]string, len(unique))
	for i, p := range unique {
		ranked[i] = p.text
	}
	return ranked
}

// Top returns the first n ranked phrases (all of them when fewer exist).
func (e *Extractor) Top(text string, n int) []string {
	ranked := e.RankedPhrases(text)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// candidates splits text into phrases at stopwords and punctuation gaps.
func (e *Extractor) candidates(text string) []phrase {
	stream := e.tokenizer.Tokenize([]byte(text))

	var out []phrase
	var current []string
	prevEnd := -1
	flush := func() {
		if len(current) > 0 {
			out = append(out, phrase{
				text:  strings.Join(current, " "),
				words: current,
			})
			current = nil
		}
	}
	for _, tok := range stream {
		term := string(tok.Term)
		// A non-space gap between tokens is punctuation: phrase boundary.
		if prevEnd >= 0 && strings.TrimSpace(text[prevEnd:tok.Start]) != "" {
			flush()
		}
		prevEnd = tok.End
		if e.stop[term] {
			flush()
			continue
		}
		current = append(current, term)
	}
	flush()
	return out
}
