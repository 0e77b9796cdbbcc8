package mock

import (
	"context"

	"github.com/fwojciec/blogsmith"
)

var _ blogsmith.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of blogsmith.TokenCounter.
type TokenCounter struct {
	CountPromptTokensFn func(ctx context.Context, prompt *blogsmith.Prompt) (int, error)
}

func (tc *TokenCounter) CountPromptTokens(ctx context.Context, prompt *blogsmith.Prompt) (int, error) {
	return tc.CountPromptTokensFn(ctx, prompt)
}
