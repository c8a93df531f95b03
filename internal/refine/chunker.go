// Package refine distills selected sections into keyphrase-anchored excerpts.
package refine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Chunk is an ephemeral grouping of consecutive sentences from one section,
// used only for re-ranking during refinement. Never persisted; the ID exists
// so debug logs can correlate score and keyphrase events for one chunk.
type Chunk struct {
	ID    string
	Index int
	Text  string
}

// ChunkSentences groups consecutive sentences into chunks of size sentences
// each (the last chunk may be shorter). Chunk boundaries never reorder
// sentences. Each chunk's text is its sentences joined by single spaces.
func ChunkSentences(sentences []string, size int) []Chunk {
	if len(sentences) == 0 {
		return nil
	}
	if size <= 0 {
		size = 5
	}
	chunks := make([]Chunk, 0, (len(sentences)+size-1)/size)
	for i := 0; i < len(sentences); i += size {
		end := i + size
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks = append(chunks, Chunk{
			ID:    fmt.Sprintf("chunk_%s", uuid.New().String()[:8]),
			Index: len(chunks),
			Text:  strings.Join(sentences[i:end], " "),
		})
	}
	return chunks
}
