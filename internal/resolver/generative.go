package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/davrk/leadbot/internal/providers/llm"
	"github.com/davrk/leadbot/internal/vectorindex"
)

const answerPrompt = `You are a helpful customer service assistant for a white label partner for digital agencies.
You provide accurate, friendly, and professional responses about the company's services, billing, and offerings.
Use the provided context to answer accurately. If the context doesn't contain relevant information,
give a helpful general response and suggest contacting the company directly for specifics.

Context from the company website:
%s

User question: %s

Provide a helpful and accurate response based on the context above.`

// GenerativeComposer grounds an LLM answer on the retrieved chunks.
type GenerativeComposer struct {
	provider llm.Provider
}

func NewGenerativeComposer(provider llm.Provider) *GenerativeComposer {
	return &GenerativeComposer{provider: provider}
}

func (g *GenerativeComposer) Compose(ctx context.Context, question string, hits []vectorindex.Hit) (string, error) {
	texts := make([]string, 0, len(hits))
	for _, h := range hits {
		texts = append(texts, h.Chunk.Content)
	}

	answer, err := g.provider.Answer(ctx, fmt.Sprintf(answerPrompt, strings.Join(texts, "\n\n"), question))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", fmt.Errorf("empty model response")
	}
	return answer, nil
}
