package embeddings

import "context"

// Provider turns text into a fixed-dimension vector. The same provider must
// be used at ingestion time and at query time or nearest-neighbor scores are
// meaningless.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dim() int
}
