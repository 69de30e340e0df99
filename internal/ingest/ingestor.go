package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"

	"github.com/davrk/leadbot/internal/embeddings"
	"github.com/davrk/leadbot/internal/models"
	"github.com/davrk/leadbot/internal/vectorindex"
)

// Namespace for deterministic chunk ids; the same (url, position) always
// maps to the same id.
var chunkNamespace = uuid.MustParse("9f2c1a66-1b7e-4c43-9d3b-6f4a3a1c8e55")

func chunkID(pageURL string, position int) string {
	return uuid.NewSHA1(chunkNamespace, []byte(fmt.Sprintf("%s#%d", pageURL, position))).String()
}

// Archive persists raw page snapshots; the ingestor treats it as optional,
// best-effort storage.
type Archive interface {
	SavePage(ctx context.Context, snap *models.PageSnapshot) error
}

// Ingestor fetches the configured page set, chunks each page, embeds the
// chunks, and replaces the page's rows in the vector index.
type Ingestor struct {
	scraper  *Scraper
	embedder embeddings.Provider
	index    vectorindex.Index
	archive  Archive
	log      *logrus.Logger

	// Ingestion is an administrative operation; the mutex keeps a startup
	// run and an admin-triggered run from interleaving.
	mu sync.Mutex
}

func NewIngestor(scraper *Scraper, embedder embeddings.Provider, index vectorindex.Index, archive Archive, log *logrus.Logger) *Ingestor {
	return &Ingestor{scraper: scraper, embedder: embedder, index: index, archive: archive, log: log}
}

// Ingest processes urls in order and returns the number of chunks indexed.
// Per-URL failures are logged and skipped; only a total wipeout is an error
// to the caller.
func (ing *Ingestor) Ingest(ctx context.Context, urls []string) (int, error) {
	ing.mu.Lock()
	defer ing.mu.Unlock()

	total := 0
	failed := 0
	for _, url := range urls {
		n, err := ing.ingestPage(ctx, url)
		if err != nil {
			failed++
			ing.log.WithError(err).WithField("url", url).Warn("skipping page")
			continue
		}
		total += n
	}

	if failed == len(urls) && len(urls) > 0 {
		return 0, fmt.Errorf("ingest: all %d pages failed", len(urls))
	}
	return total, nil
}

func (ing *Ingestor) ingestPage(ctx context.Context, url string) (int, error) {
	page, err := ing.scraper.Fetch(ctx, url)
	if err != nil {
		return 0, err
	}

	pieces := ChunkText(page.Text, ChunkWords, ChunkOverlap)
	chunks := make([]models.ContentChunk, 0, len(pieces))
	now := time.Now().UTC()
	for i, piece := range pieces {
		emb, err := ing.embedder.Embed(ctx, piece)
		if err != nil {
			return 0, fmt.Errorf("embed chunk %d: %w", i, err)
		}
		chunks = append(chunks, models.ContentChunk{
			ID:        chunkID(url, i),
			PageURL:   url,
			PageTitle: page.Title,
			Position:  i,
			Content:   piece,
			Embedding: pgvector.NewVector(emb),
			CreatedAt: now,
		})
	}

	if err := ing.index.ReplacePage(ctx, url, chunks); err != nil {
		return 0, err
	}

	if ing.archive != nil {
		snap := &models.PageSnapshot{
			URL:         page.URL,
			Title:       page.Title,
			Description: page.Description,
			Text:        page.Text,
			ChunkCount:  len(chunks),
			FetchedAt:   now,
			ExpiresAt:   now.Add(30 * 24 * time.Hour),
		}
		if err := ing.archive.SavePage(ctx, snap); err != nil {
			ing.log.WithError(err).WithField("url", url).Warn("page archive write failed")
		}
	}

	ing.log.WithFields(logrus.Fields{"url": url, "chunks": len(chunks)}).Info("page indexed")
	return len(chunks), nil
}

// Bootstrap runs an initial ingest only when the index is empty, so restarts
// don't re-scrape a populated index.
func (ing *Ingestor) Bootstrap(ctx context.Context, urls []string) error {
	n, err := ing.index.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		ing.log.WithField("chunks", n).Info("vector index already populated")
		return nil
	}

	ing.log.Info("vector index empty, running initial ingest")
	total, err := ing.Ingest(ctx, urls)
	if err != nil {
		return err
	}
	ing.log.WithField("chunks", total).Info("initial ingest complete")
	return nil
}
