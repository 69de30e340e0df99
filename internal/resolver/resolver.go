package resolver

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/davrk/leadbot/internal/embeddings"
	"github.com/davrk/leadbot/internal/models"
	"github.com/davrk/leadbot/internal/vectorindex"
)

// FallbackAnswer is returned whenever retrieval cannot produce anything
// useful; callers should steer the user toward the support form.
const FallbackAnswer = "I couldn't find a confident answer to that on our site. " +
	"Would you like to open a support ticket so our team can follow up directly?"

// SourceRef attributes a RAG answer to the page a chunk came from.
type SourceRef struct {
	URL        string  `json:"url"`
	Title      string  `json:"title"`
	Similarity float64 `json:"similarity"`
}

// Resolution is the outcome of resolving one question.
type Resolution struct {
	Answer         string
	Source         string // models.SourcePredefined | models.SourceRAG
	SuggestSupport bool
	Sources        []SourceRef
}

type Config struct {
	TopK            int     // retrieved chunks per query
	ConfidenceFloor float64 // below this best similarity, suggest support
}

func (c Config) withDefaults() Config {
	if c.TopK <= 0 {
		c.TopK = 3
	}
	if c.ConfidenceFloor <= 0 {
		c.ConfidenceFloor = 0.15
	}
	return c
}

// Resolver answers questions from the predefined set or, failing that, the
// vector index. It is read-only with respect to the index and never returns
// an error: upstream failures degrade to the fallback answer.
type Resolver struct {
	matcher  *Matcher
	embedder embeddings.Provider
	index    vectorindex.Index
	composer Composer
	log      *logrus.Logger
	cfg      Config
}

func New(matcher *Matcher, embedder embeddings.Provider, index vectorindex.Index, composer Composer, log *logrus.Logger, cfg Config) *Resolver {
	return &Resolver{
		matcher:  matcher,
		embedder: embedder,
		index:    index,
		composer: composer,
		log:      log,
		cfg:      cfg.withDefaults(),
	}
}

func (r *Resolver) Resolve(ctx context.Context, question string) Resolution {
	if qa, ok := r.matcher.Match(question); ok {
		return Resolution{Answer: qa.Answer, Source: models.SourcePredefined}
	}

	emb, err := r.embedder.Embed(ctx, question)
	if err != nil {
		r.log.WithError(err).Warn("embedding failed, falling back")
		return fallback()
	}

	hits, err := r.index.Search(ctx, emb, r.cfg.TopK)
	if err != nil {
		r.log.WithError(err).Warn("vector search failed, falling back")
		return fallback()
	}

	confident := hits[:0:0]
	for _, h := range hits {
		if h.Similarity >= r.cfg.ConfidenceFloor {
			confident = append(confident, h)
		}
	}
	if len(confident) == 0 {
		return fallback()
	}

	answer, err := r.composer.Compose(ctx, question, confident)
	if err != nil {
		r.log.WithError(err).Warn("answer composition failed, falling back")
		return fallback()
	}

	sources := make([]SourceRef, 0, len(confident))
	for _, h := range confident {
		sources = append(sources, SourceRef{
			URL:        h.Chunk.PageURL,
			Title:      h.Chunk.PageTitle,
			Similarity: h.Similarity,
		})
	}

	return Resolution{
		Answer:  answer,
		Source:  models.SourceRAG,
		Sources: sources,
	}
}

func fallback() Resolution {
	return Resolution{
		Answer:         FallbackAnswer,
		Source:         models.SourceRAG,
		SuggestSupport: true,
	}
}
