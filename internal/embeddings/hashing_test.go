package embeddings

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingProviderDeterministic(t *testing.T) {
	p := NewHashingProvider(64)

	a, err := p.Embed(context.Background(), "what services do you offer")
	require.NoError(t, err)
	b, err := p.Embed(context.Background(), "what services do you offer")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestHashingProviderNormalized(t *testing.T) {
	p := NewHashingProvider(128)

	v, err := p.Embed(context.Background(), "pricing models and billing for agencies")
	require.NoError(t, err)

	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, norm, 1e-5)
}

func TestHashingProviderEmptyText(t *testing.T) {
	p := NewHashingProvider(32)

	v, err := p.Embed(context.Background(), "   ")
	require.NoError(t, err)

	for _, x := range v {
		assert.True(t, math.Abs(float64(x)) < 1e-9)
	}
}

func TestHashingProviderSimilarTextCloser(t *testing.T) {
	p := NewHashingProvider(256)
	ctx := context.Background()

	q, _ := p.Embed(ctx, "how much does web development cost")
	near, _ := p.Embed(ctx, "web development cost and pricing")
	far, _ := p.Embed(ctx, "penguin migration patterns in antarctica")

	dot := func(a, b []float32) float64 {
		var s float64
		for i := range a {
			s += float64(a[i]) * float64(b[i])
		}
		return s
	}
	assert.Greater(t, dot(q, near), dot(q, far))
}
