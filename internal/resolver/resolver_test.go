package resolver

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrk/leadbot/internal/embeddings"
	"github.com/davrk/leadbot/internal/models"
	"github.com/davrk/leadbot/internal/vectorindex"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, fmt.Errorf("embedder down")
}
func (failingEmbedder) Dim() int { return models.EmbeddingDim }

type failingIndex struct{}

func (failingIndex) ReplacePage(context.Context, string, []models.ContentChunk) error { return nil }
func (failingIndex) Search(context.Context, []float32, int) ([]vectorindex.Hit, error) {
	return nil, fmt.Errorf("index down")
}
func (failingIndex) Count(context.Context) (int64, error) { return 0, nil }

type failingComposer struct{}

func (failingComposer) Compose(context.Context, string, []vectorindex.Hit) (string, error) {
	return "", fmt.Errorf("compose down")
}

// seededIndex embeds the given texts and stores them under one page.
func seededIndex(t *testing.T, emb embeddings.Provider, texts ...string) *vectorindex.MemoryIndex {
	t.Helper()
	index := vectorindex.NewMemoryIndex()
	chunks := make([]models.ContentChunk, 0, len(texts))
	for i, text := range texts {
		v, err := emb.Embed(context.Background(), text)
		require.NoError(t, err)
		chunks = append(chunks, models.ContentChunk{
			ID:        fmt.Sprintf("chunk-%d", i),
			PageURL:   "https://site.example/services",
			PageTitle: "Services",
			Position:  i,
			Content:   text,
			Embedding: pgvector.NewVector(v),
		})
	}
	require.NoError(t, index.ReplacePage(context.Background(), "https://site.example/services", chunks))
	return index
}

func TestResolvePredefinedFirst(t *testing.T) {
	emb := embeddings.NewHashingProvider(models.EmbeddingDim)
	r := New(NewMatcher(faq()), emb, seededIndex(t, emb, "pricing page text"), ExtractiveComposer{}, quietLogger(), Config{})

	res := r.Resolve(context.Background(), "what are your pricing models?")
	assert.Equal(t, models.SourcePredefined, res.Source)
	assert.Equal(t, "Flat monthly rates.", res.Answer)
	assert.False(t, res.SuggestSupport)
	assert.Empty(t, res.Sources)
}

func TestResolveRetrieves(t *testing.T) {
	emb := embeddings.NewHashingProvider(models.EmbeddingDim)
	index := seededIndex(t, emb,
		"We build web development and design services for digital agencies.",
		"Our office is closed on public holidays.",
	)
	r := New(NewMatcher(faq()), emb, index, ExtractiveComposer{}, quietLogger(), Config{})

	res := r.Resolve(context.Background(), "web development services")
	assert.Equal(t, models.SourceRAG, res.Source)
	assert.False(t, res.SuggestSupport)
	assert.Contains(t, res.Answer, "web development and design services")

	require.NotEmpty(t, res.Sources)
	assert.Equal(t, "https://site.example/services", res.Sources[0].URL)
	assert.Equal(t, "Services", res.Sources[0].Title)
	assert.Greater(t, res.Sources[0].Similarity, 0.0)
}

func TestResolveLowConfidenceFallsBack(t *testing.T) {
	emb := embeddings.NewHashingProvider(models.EmbeddingDim)
	index := seededIndex(t, emb, "We build web development and design services for digital agencies.")
	// floor high enough that weak hits never pass
	r := New(NewMatcher(faq()), emb, index, ExtractiveComposer{}, quietLogger(), Config{ConfidenceFloor: 0.6})

	res := r.Resolve(context.Background(), "penguin migration routes")
	assert.Equal(t, FallbackAnswer, res.Answer)
	assert.Equal(t, models.SourceRAG, res.Source)
	assert.True(t, res.SuggestSupport)
}

func TestResolveEmptyIndexFallsBack(t *testing.T) {
	emb := embeddings.NewHashingProvider(models.EmbeddingDim)
	r := New(NewMatcher(faq()), emb, vectorindex.NewMemoryIndex(), ExtractiveComposer{}, quietLogger(), Config{})

	res := r.Resolve(context.Background(), "something not in the faq")
	assert.True(t, res.SuggestSupport)
	assert.Equal(t, FallbackAnswer, res.Answer)
}

func TestResolveEmbedderFailureFallsBack(t *testing.T) {
	r := New(NewMatcher(faq()), failingEmbedder{}, vectorindex.NewMemoryIndex(), ExtractiveComposer{}, quietLogger(), Config{})

	res := r.Resolve(context.Background(), "anything unmatched")
	assert.True(t, res.SuggestSupport)
	assert.Equal(t, FallbackAnswer, res.Answer)
}

func TestResolveIndexFailureFallsBack(t *testing.T) {
	emb := embeddings.NewHashingProvider(models.EmbeddingDim)
	r := New(NewMatcher(faq()), emb, failingIndex{}, ExtractiveComposer{}, quietLogger(), Config{})

	res := r.Resolve(context.Background(), "anything unmatched")
	assert.True(t, res.SuggestSupport)
}

func TestResolveComposerFailureFallsBack(t *testing.T) {
	emb := embeddings.NewHashingProvider(models.EmbeddingDim)
	index := seededIndex(t, emb, "We build web development and design services for digital agencies.")
	r := New(NewMatcher(faq()), emb, index, failingComposer{}, quietLogger(), Config{})

	res := r.Resolve(context.Background(), "web development services")
	assert.True(t, res.SuggestSupport)
	assert.Equal(t, FallbackAnswer, res.Answer)
}
