package reply

import (
	"context"
	"time"

	"my-diary-be/internal/pkg/apperror"
	"my-diary-be/pkg/llm"
)

// DefaultTimeout bounds the external generative call. The upstream API has
// no timeout of its own; expiry surfaces as a GenerationError.
const DefaultTimeout = 30 * time.Second

// Generator invokes the generative provider and parses its structured
// output. Transport failures, timeouts and unparsable output all come back
// as *apperror.GenerationError.
type Generator struct {
	provider llm.LLMProvider
	timeout  time.Duration
}

func NewGenerator(provider llm.LLMProvider) *Generator {
	return &Generator{
		provider: provider,
		timeout:  DefaultTimeout,
	}
}

func (g *Generator) Generate(ctx context.Context, prompt string) (*GeneratedReply, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, apperror.NewGeneration(err)
	}

	parsed, err := Parse(raw)
	if err != nil {
		return nil, apperror.NewGeneration(err)
	}

	return parsed, nil
}
