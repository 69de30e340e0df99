package vectorindex

import (
	"context"

	"github.com/davrk/leadbot/internal/models"
)

// Hit is one nearest-neighbor result. Similarity is cosine similarity in
// [0,1] for normalized embeddings; higher is closer.
type Hit struct {
	Chunk      models.ContentChunk
	Similarity float64
}

// Index stores embedded content chunks and answers nearest-neighbor queries.
// Writes happen page-at-a-time so re-ingesting a URL replaces its rows.
type Index interface {
	ReplacePage(ctx context.Context, pageURL string, chunks []models.ContentChunk) error
	Search(ctx context.Context, embedding []float32, topK int) ([]Hit, error)
	Count(ctx context.Context) (int64, error)
}
