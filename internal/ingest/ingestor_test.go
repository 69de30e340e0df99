package ingest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

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

type archiveSpy struct {
	snaps []*models.PageSnapshot
}

func (a *archiveSpy) SavePage(_ context.Context, snap *models.PageSnapshot) error {
	a.snaps = append(a.snaps, snap)
	return nil
}

func contentServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Home</title></head><body><p>We are a white label partner for digital agencies offering development teams.</p></body></html>`))
	})
	mux.HandleFunc("/services", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Services</title></head><body><p>Web development, mobile apps, UI and UX design, dedicated teams.</p></body></html>`))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestIngestIdempotent(t *testing.T) {
	srv := contentServer(t)
	index := vectorindex.NewMemoryIndex()
	ing := NewIngestor(NewScraper(), embeddings.NewHashingProvider(64), index, nil, quietLogger())

	urls := []string{srv.URL + "/", srv.URL + "/services"}

	first, err := ing.Ingest(context.Background(), urls)
	require.NoError(t, err)
	require.Greater(t, first, 0)

	second, err := ing.Ingest(context.Background(), urls)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// re-ingesting replaced rows instead of duplicating them
	n, err := index.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(first), n)
}

func TestIngestSkipsFailingURL(t *testing.T) {
	srv := contentServer(t)
	index := vectorindex.NewMemoryIndex()
	ing := NewIngestor(NewScraper(), embeddings.NewHashingProvider(64), index, nil, quietLogger())

	count, err := ing.Ingest(context.Background(), []string{
		srv.URL + "/broken",
		srv.URL + "/services",
	})
	require.NoError(t, err)
	assert.Greater(t, count, 0)
}

func TestIngestAllURLsFailing(t *testing.T) {
	srv := contentServer(t)
	index := vectorindex.NewMemoryIndex()
	ing := NewIngestor(NewScraper(), embeddings.NewHashingProvider(64), index, nil, quietLogger())

	_, err := ing.Ingest(context.Background(), []string{srv.URL + "/broken"})
	assert.Error(t, err)
}

func TestIngestArchivesPages(t *testing.T) {
	srv := contentServer(t)
	spy := &archiveSpy{}
	ing := NewIngestor(NewScraper(), embeddings.NewHashingProvider(64), vectorindex.NewMemoryIndex(), spy, quietLogger())

	_, err := ing.Ingest(context.Background(), []string{srv.URL + "/services"})
	require.NoError(t, err)

	require.Len(t, spy.snaps, 1)
	assert.Equal(t, "Services", spy.snaps[0].Title)
	assert.Equal(t, 1, spy.snaps[0].ChunkCount)
	assert.False(t, spy.snaps[0].ExpiresAt.IsZero())
}

func TestChunkIDStable(t *testing.T) {
	a := chunkID("https://x.example/page", 2)
	b := chunkID("https://x.example/page", 2)
	c := chunkID("https://x.example/page", 3)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestBootstrapSkipsPopulatedIndex(t *testing.T) {
	srv := contentServer(t)
	index := vectorindex.NewMemoryIndex()
	ing := NewIngestor(NewScraper(), embeddings.NewHashingProvider(64), index, nil, quietLogger())

	first, err := ing.Ingest(context.Background(), []string{srv.URL + "/"})
	require.NoError(t, err)

	// Bootstrap must not touch a non-empty index, even with different URLs.
	require.NoError(t, ing.Bootstrap(context.Background(), []string{srv.URL + "/services"}))
	n, _ := index.Count(context.Background())
	assert.Equal(t, int64(first), n)
}
