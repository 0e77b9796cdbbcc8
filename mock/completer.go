package mock

import (
	"context"

	"github.com/fwojciec/blogsmith"
)

var _ blogsmith.Completer = (*Completer)(nil)

// Completer is a mock implementation of blogsmith.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt *blogsmith.Prompt) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt *blogsmith.Prompt) (string, error) {
	return c.CompleteFn(ctx, prompt)
}

// Reply returns a Completer that always answers with text.
func Reply(text string) *Completer {
	return &Completer{
		CompleteFn: func(context.Context, *blogsmith.Prompt) (string, error) {
			return text, nil
		},
	}
}
