package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/davrk/leadbot/internal/vectorindex"
)

// Composer turns retrieved chunks into an answer. The strategy is a policy:
// the extractive composer needs nothing external, the generative one is used
// when an LLM is configured.
type Composer interface {
	Compose(ctx context.Context, question string, hits []vectorindex.Hit) (string, error)
}

// snippetChars caps how much of each retrieved chunk is quoted.
const snippetChars = 400

// ExtractiveComposer templates the retrieved text directly, without any
// generative model.
type ExtractiveComposer struct{}

func (ExtractiveComposer) Compose(_ context.Context, _ string, hits []vectorindex.Hit) (string, error) {
	if len(hits) == 0 {
		return "", fmt.Errorf("no retrieved content to compose from")
	}

	var b strings.Builder
	b.WriteString("Here is what I found on our site:\n")
	for _, h := range hits {
		b.WriteString("\n")
		b.WriteString(snippet(h.Chunk.Content))
		if h.Chunk.PageTitle != "" {
			fmt.Fprintf(&b, "\n(from %s)", h.Chunk.PageTitle)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

// snippet truncates at a word boundary.
func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= snippetChars {
		return s
	}
	cut := s[:snippetChars]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
