package blogsmith

import "context"

// Task names used to label prompts in logs and metrics.
const (
	TaskTitles   = "titles"
	TaskArticle  = "article"
	TaskMetadata = "metadata"
)

// Prompt is a system/user message pair with sampling parameters.
type Prompt struct {
	Task            string
	System          string
	User            string
	Temperature     float32
	MaxOutputTokens int32

	// JSON asks the endpoint to constrain output to a JSON document.
	// Replies still pass through ExtractJSON.
	JSON bool
}

// Completer sends a prompt to a hosted text-generation endpoint.
type Completer interface {
	// Complete returns the generated text, which may be empty.
	Complete(ctx context.Context, prompt *Prompt) (string, error)
}

// TokenCounter counts prompt tokens for a specific model.
type TokenCounter interface {
	CountPromptTokens(ctx context.Context, prompt *Prompt) (int, error)
}
