// Package pipeline orchestrates extraction, segmentation, ranking, selection,
// refinement, and result assembly for one analysis run.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/nukigaki/internal/config"
	"github.com/hyperjump/nukigaki/internal/embedding"
	"github.com/hyperjump/nukigaki/internal/extract"
	"github.com/hyperjump/nukigaki/internal/keyphrase"
	"github.com/hyperjump/nukigaki/internal/models"
	"github.com/hyperjump/nukigaki/internal/ranking"
	"github.com/hyperjump/nukigaki/internal/refine"
	"github.com/hyperjump/nukigaki/internal/segment"
	"github.com/hyperjump/nukigaki/internal/sentence"
)

// Pipeline runs the full analysis: documents in, Analysis out. One Pipeline
// can serve many runs; each run is an independent batch with no shared state
// beyond the embedder and its cache.
type Pipeline struct {
	extractor *extract.Extractor
	segmenter *segment.Segmenter
	scorer    *ranking.Scorer
	refiner   *refine.Refiner
	caps      ranking.Caps
	workers   int
	logger    *zap.Logger // optional; when set, logs debug events
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a logger for debug output (per-document sections, selection, refinement).
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New builds a pipeline from the config and a shared embedder. The embedder is
// constructed once per process and owned by the caller; its lifetime spans all
// runs, so it is passed in rather than created here.
func New(cfg *config.Config, embedder embedding.Embedder, opts ...Option) (*Pipeline, error) {
	keyphrases, err := keyphrase.NewExtractor()
	if err != nil {
		return nil, fmt.Errorf("keyphrase extractor: %w", err)
	}
	scorer := ranking.NewScorer(embedder, cfg.Embedding.BatchSize)
	p := &Pipeline{
		extractor: extract.NewExtractor(),
		segmenter: segment.NewSegmenter(),
		scorer:    scorer,
		caps: ranking.Caps{
			Overall:     cfg.Selection.OverallCap,
			PerDocument: cfg.Selection.PerDocumentCap,
		},
		workers: cfg.Workers,
	}
	for _, opt := range opts {
		opt(p)
	}
	refineOpts := []refine.RefinerOption{}
	if p.logger != nil {
		refineOpts = append(refineOpts, refine.WithLogger(p.logger))
	}
	p.refiner = refine.NewRefiner(scorer, sentence.NewSplitter(), keyphrases, cfg.Refine, refineOpts...)
	return p, nil
}

// Analyze runs one batch analysis. Returns models.ErrNoText when no document
// yields any section; any other failure aborts the run (there is no
// partial-result semantics and nothing is retried).
func (p *Pipeline) Analyze(ctx context.Context, req models.AnalyzeRequest) (*models.Analysis, error) {
	timestamp := time.Now().Format(time.RFC3339)
	query := BuildQuery(req.Persona, req.Job)

	perDoc, err := p.segmentDocuments(req.Documents)
	if err != nil {
		return nil, err
	}
	var sections []models.Section
	for i, docSections := range perDoc {
		name := filepath.Base(req.Documents[i])
		for _, sec := range docSections {
			sec.Document = name
			sections = append(sections, sec)
		}
		if p.logger != nil {
			p.logger.Debug("document segmented",
				zap.String("document", name),
				zap.Int("sections", len(docSections)),
			)
		}
	}
	if len(sections) == 0 {
		return nil, models.ErrNoText
	}

	texts := make([]string, len(sections))
	for i, sec := range sections {
		texts[i] = sec.Text
	}
	scores, err := p.scorer.Scores(ctx, query, texts)
	if err != nil {
		return nil, fmt.Errorf("rank sections: %w", err)
	}

	selected := ranking.Select(sections, scores, p.caps)
	if p.logger != nil {
		p.logger.Debug("sections selected", zap.Int("selected", len(selected)), zap.Int("candidates", len(sections)))
	}

	refined, err := p.refineSections(ctx, query, selected)
	if err != nil {
		return nil, err
	}

	return Assemble(req, timestamp, selected, refined), nil
}

// segmentDocuments extracts and segments every document with a bounded worker
// pool. Results are kept in input order; completion order never matters.
func (p *Pipeline) segmentDocuments(paths []string) ([][]models.Section, error) {
	results := make([][]models.Section, len(paths))
	errs := make([]error, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.poolSize(len(paths)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				pages, err := p.extractor.Extract(paths[i])
				if err != nil {
					errs[i] = fmt.Errorf("extract %s: %w", paths[i], err)
					continue
				}
				results[i] = p.segmenter.Segment(pages)
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// refineSections refines selected sections with a bounded worker pool.
// Output stays grouped by importance rank regardless of completion order.
func (p *Pipeline) refineSections(ctx context.Context, query string, selected []models.Section) ([][]models.RefinedSubsection, error) {
	results := make([][]models.RefinedSubsection, len(selected))
	errs := make([]error, len(selected))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.poolSize(len(selected)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				subs, err := p.refiner.Refine(ctx, query, selected[i])
				if err != nil {
					errs[i] = fmt.Errorf("refine section %q: %w", selected[i].Title, err)
					continue
				}
				results[i] = subs
			}
		}()
	}
	for i := range selected {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (p *Pipeline) poolSize(n int) int {
	workers := p.workers
	if workers <= 0 {
		workers = 1
	}
	if n < workers {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
