package vectorindex

import (
	"context"
	"sort"
	"sync"

	"github.com/davrk/leadbot/internal/models"
)

// MemoryIndex is an in-process Index with brute-force cosine search. It
// backs tests and single-node deployments that run without postgres.
type MemoryIndex struct {
	mu    sync.RWMutex
	pages map[string][]models.ContentChunk
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{pages: make(map[string][]models.ContentChunk)}
}

func (x *MemoryIndex) ReplacePage(_ context.Context, pageURL string, chunks []models.ContentChunk) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if len(chunks) == 0 {
		delete(x.pages, pageURL)
		return nil
	}
	x.pages[pageURL] = append([]models.ContentChunk(nil), chunks...)
	return nil
}

func (x *MemoryIndex) Search(_ context.Context, embedding []float32, topK int) ([]Hit, error) {
	if topK <= 0 {
		topK = 3
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	var hits []Hit
	for _, chunks := range x.pages {
		for _, c := range chunks {
			score := cosine(embedding, c.Embedding.Slice())
			if score <= 0 {
				continue
			}
			hits = append(hits, Hit{Chunk: c, Similarity: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Similarity == hits[j].Similarity {
			return hits[i].Chunk.ID < hits[j].Chunk.ID
		}
		return hits[i].Similarity > hits[j].Similarity
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}

func (x *MemoryIndex) Count(_ context.Context) (int64, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	var n int64
	for _, chunks := range x.pages {
		n += int64(len(chunks))
	}
	return n, nil
}

// cosine assumes both vectors are L2-normalized, so the dot product is the
// cosine similarity.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}
