// Package ranking scores candidate texts against a query via embedding
// similarity and selects a diverse subset of sections.
package ranking

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyperjump/nukigaki/internal/embedding"
	"github.com/hyperjump/nukigaki/internal/vector"
)

// ErrNoCandidates is returned when there are no texts to rank.
var ErrNoCandidates = errors.New("no candidate texts to rank")

// Scorer computes query-to-text relevance scores. Embedding calls are batched
// with a bounded batch size; only the ordering of scores is meaningful to
// consumers, not their absolute magnitude.
type Scorer struct {
	embedder  embedding.Embedder
	batchSize int
}

// NewScorer returns a scorer over the given embedder.
func NewScorer(embedder embedding.Embedder, batchSize int) *Scorer {
	if batchSize <= 0 {
		batchSize = 32
	}
	return &Scorer{embedder: embedder, batchSize: batchSize}
}

// Scores returns the cosine similarity of each text to the query, parallel to
// texts, each in [-1, 1]. Returns ErrNoCandidates when texts is empty.
func (s *Scorer) Scores(ctx context.Context, query string, texts []string) ([]float64, error) {
	if len(texts) == 0 {
		return nil, ErrNoCandidates
	}
	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	scores := make([]float64, 0, len(texts))
	for start := 0; start < len(texts); start += s.batchSize {
		end := start + s.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		vecs, err := s.embedder.EmbedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("embed candidates: %w", err)
		}
		for _, v := range vecs {
			scores = append(scores, vector.Cosine(queryVec, v))
		}
	}
	return scores, nil
}
