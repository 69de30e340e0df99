package llm

import "context"

// Provider generates a grounded answer from a prompt.
type Provider interface {
	Answer(ctx context.Context, prompt string) (string, error)
	Close() error
}
