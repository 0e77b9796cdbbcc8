package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blogsmith"
	"golang.org/x/sync/errgroup"
)

// Ensure LoggingCompleter implements blogsmith.Completer.
var _ blogsmith.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging. When a TokenCounter is
// set, the prompt size in tokens is logged as well.
type LoggingCompleter struct {
	next    blogsmith.Completer
	counter blogsmith.TokenCounter
	logger  *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter. counter may be nil.
func NewLoggingCompleter(next blogsmith.Completer, counter blogsmith.TokenCounter, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, counter: counter, logger: logger}
}

// Complete delegates to the wrapped completer and logs the call. Token
// counting runs alongside the completion so it adds no latency.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt *blogsmith.Prompt) (string, error) {
	if prompt == nil {
		return "", blogsmith.Errorf(blogsmith.EINVALID, "prompt required")
	}

	begin := time.Now()
	tokens := -1
	g, gctx := errgroup.WithContext(ctx)
	if c.counter != nil {
		g.Go(func() error {
			n, err := c.counter.CountPromptTokens(gctx, prompt)
			if err != nil {
				c.logger.Debug("token count failed", "task", prompt.Task, "err", err)
				return nil
			}
			tokens = n
			return nil
		})
	}

	var text string
	g.Go(func() error {
		var err error
		text, err = c.next.Complete(ctx, prompt)
		return err
	})
	err := g.Wait()

	attrs := []any{"task", prompt.Task}
	if tokens >= 0 {
		attrs = append(attrs, "prompt_tokens", tokens)
	}
	c.logger.Info("completion",
		append(attrs,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)...,
	)
	return text, err
}
