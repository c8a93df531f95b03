// Package embedding provides text embedding via ONNX with a deterministic fallback.
package embedding

import "context"

// Embedder produces vector embeddings for text. Embeddings are unit-normalized,
// so the inner product of two embeddings is their cosine similarity.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}
