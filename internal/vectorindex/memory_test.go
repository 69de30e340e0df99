package vectorindex

import (
	"context"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrk/leadbot/internal/models"
)

func chunk(id, url string, emb []float32) models.ContentChunk {
	return models.ContentChunk{ID: id, PageURL: url, Embedding: pgvector.NewVector(emb)}
}

func TestMemoryIndexReplacePage(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex()

	require.NoError(t, idx.ReplacePage(ctx, "u1", []models.ContentChunk{
		chunk("a", "u1", []float32{1, 0}),
		chunk("b", "u1", []float32{0, 1}),
	}))

	n, err := idx.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// Replacing shrinks, never accumulates.
	require.NoError(t, idx.ReplacePage(ctx, "u1", []models.ContentChunk{
		chunk("a", "u1", []float32{1, 0}),
	}))
	n, _ = idx.Count(ctx)
	assert.Equal(t, int64(1), n)

	require.NoError(t, idx.ReplacePage(ctx, "u1", nil))
	n, _ = idx.Count(ctx)
	assert.Equal(t, int64(0), n)
}

func TestMemoryIndexSearchOrdering(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex()

	require.NoError(t, idx.ReplacePage(ctx, "u1", []models.ContentChunk{
		chunk("exact", "u1", []float32{1, 0}),
		chunk("close", "u1", []float32{0.9, 0.4359}),
		chunk("orthogonal", "u1", []float32{0, 1}),
	}))

	hits, err := idx.Search(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "exact", hits[0].Chunk.ID)
	assert.Equal(t, "close", hits[1].Chunk.ID)
	assert.Greater(t, hits[0].Similarity, hits[1].Similarity)
}

func TestMemoryIndexSearchDropsNonPositive(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex()

	require.NoError(t, idx.ReplacePage(ctx, "u1", []models.ContentChunk{
		chunk("orthogonal", "u1", []float32{0, 1}),
	}))

	hits, err := idx.Search(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
