package embeddings

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

var tokenRegex = regexp.MustCompile(`[a-zA-Z0-9]+`)

// HashingProvider is a deterministic feature-hashing embedder: token
// frequencies hashed into a fixed number of buckets, L2-normalized. It needs
// no model weights or network access, which keeps ingestion and query
// self-contained.
type HashingProvider struct {
	dim int
}

func NewHashingProvider(dim int) *HashingProvider {
	if dim <= 0 {
		dim = 256
	}
	return &HashingProvider{dim: dim}
}

func (p *HashingProvider) Dim() int { return p.dim }

func (p *HashingProvider) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, p.dim)

	tokens := tokenRegex.FindAllString(strings.ToLower(text), -1)
	for _, token := range tokens {
		if len(token) < 2 {
			continue
		}
		h := fnv.New32a()
		_, _ = h.Write([]byte(token))
		vec[int(h.Sum32())%p.dim]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec, nil
}
