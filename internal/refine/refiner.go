package refine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/nukigaki/internal/config"
	"github.com/hyperjump/nukigaki/internal/keyphrase"
	"github.com/hyperjump/nukigaki/internal/models"
	"github.com/hyperjump/nukigaki/internal/ranking"
	"github.com/hyperjump/nukigaki/internal/sentence"
	"github.com/hyperjump/nukigaki/pkg/utils"
)

// Refiner chunks a section's text, re-ranks the chunks against the query,
// and filters the section's sentences by each top chunk's keyphrases.
type Refiner struct {
	scorer     *ranking.Scorer
	splitter   *sentence.Splitter
	keyphrases *keyphrase.Extractor
	cfg        config.RefineConfig
	logger     *zap.Logger // optional; when set, logs debug events
}

// RefinerOption configures a Refiner.
type RefinerOption func(*Refiner)

// WithLogger sets a logger for debug output (chunk scores, keyphrases, etc.).
func WithLogger(l *zap.Logger) RefinerOption {
	return func(r *Refiner) { r.logger = l }
}

// NewRefiner creates a refiner with the given dependencies.
func NewRefiner(
	scorer *ranking.Scorer,
	splitter *sentence.Splitter,
	keyphrases *keyphrase.Extractor,
	cfg config.RefineConfig,
	opts ...RefinerOption,
) *Refiner {
	r := &Refiner{
		scorer:     scorer,
		splitter:   splitter,
		keyphrases: keyphrases,
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Refine produces up to TopChunks refined subsections for one selected
// section, ordered by descending chunk score (stable on ties). A keyphrase
// mined from a winning chunk filters the WHOLE section's sentence list, not
// just that chunk's sentences, so a sentence from a low-scoring chunk can
// surface when it contains a keyphrase from a high-scoring one. An excerpt
// with no matching sentences is emitted with empty text; that is valid output.
func (r *Refiner) Refine(ctx context.Context, query string, sec models.Section) ([]models.RefinedSubsection, error) {
	sentences := r.splitter.Split(sec.Text)
	chunks := ChunkSentences(sentences, r.cfg.ChunkSentences)
	if len(chunks) == 0 {
		return nil, nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	scores, err := r.scorer.Scores(ctx, query, texts)
	if err != nil {
		return nil, fmt.Errorf("score chunks: %w", err)
	}

	order := make([]int, len(chunks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	top := r.cfg.TopChunks
	if top > len(order) {
		top = len(order)
	}

	out := make([]models.RefinedSubsection, 0, top)
	for _, idx := range order[:top] {
		chunk := chunks[idx]
		phrases := r.keyphrases.Top(chunk.Text, r.cfg.TopKeyphrases)
		refined := utils.TruncateRunes(filterSentences(sentences, phrases), r.cfg.MaxChars)
		if r.logger != nil {
			r.logger.Debug("chunk refined",
				zap.String("chunk_id", chunk.ID),
				zap.Int("chunk_index", chunk.Index),
				zap.Float64("score", scores[idx]),
				zap.Strings("keyphrases", phrases),
				zap.Int("refined_len", len(refined)),
			)
		}
		out = append(out, models.RefinedSubsection{
			Document:    sec.Document,
			RefinedText: refined,
			PageNumber:  sec.Page,
		})
	}
	return out, nil
}

// filterSentences keeps the sentences containing at least one of the phrases
// as a case-insensitive substring, joined by single spaces.
func filterSentences(sentences []string, phrases []string) string {
	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(p)
	}
	var kept []string
	for _, sent := range sentences {
		ls := strings.ToLower(sent)
		for _, p := range lowered {
			if strings.Contains(ls, p) {
				kept = append(kept, sent)
				break
			}
		}
	}
	return strings.Join(kept, " ")
}
