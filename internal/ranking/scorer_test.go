package ranking

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/hyperjump/nukigaki/internal/embedding"
)

func TestScores_empty(t *testing.T) {
	s := NewScorer(embedding.NewHashEmbedder(64), 32)
	_, err := s.Scores(context.Background(), "query", nil)
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("err = %v, want ErrNoCandidates", err)
	}
}

func TestScores_parallelToTexts(t *testing.T) {
	s := NewScorer(embedding.NewHashEmbedder(64), 32)
	texts := []string{"alpha", "beta", "gamma", "delta"}
	scores, err := s.Scores(context.Background(), "some query", texts)
	if err != nil {
		t.Fatalf("Scores: %v", err)
	}
	if len(scores) != len(texts) {
		t.Fatalf("len(scores) = %d, want %d", len(scores), len(texts))
	}
	for i, sc := range scores {
		if sc < -1.0001 || sc > 1.0001 || math.IsNaN(sc) {
			t.Errorf("score %d = %v, outside [-1, 1]", i, sc)
		}
	}
}

func TestScores_identicalTextScoresHighest(t *testing.T) {
	s := NewScorer(embedding.NewHashEmbedder(64), 32)
	texts := []string{"completely unrelated words here", "the exact query text"}
	scores, err := s.Scores(context.Background(), "the exact query text", texts)
	if err != nil {
		t.Fatalf("Scores: %v", err)
	}
	if scores[1] < 0.999 {
		t.Errorf("self-similarity = %v, want ~1", scores[1])
	}
	if scores[1] <= scores[0] {
		t.Errorf("identical text did not score highest: %v", scores)
	}
}

func TestScores_batchSizeDoesNotChangeScores(t *testing.T) {
	texts := []string{"one", "two", "three", "four", "five"}
	big := NewScorer(embedding.NewHashEmbedder(64), 32)
	small := NewScorer(embedding.NewHashEmbedder(64), 2)

	a, err := big.Scores(context.Background(), "q", texts)
	if err != nil {
		t.Fatalf("Scores: %v", err)
	}
	b, err := small.Scores(context.Background(), "q", texts)
	if err != nil {
		t.Fatalf("Scores: %v", err)
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			t.Errorf("score %d differs across batch sizes: %v vs %v", i, a[i], b[i])
		}
	}
}
