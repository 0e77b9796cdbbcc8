package gemini

import (
	"context"

	"github.com/fwojciec/blogsmith"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ blogsmith.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts prompt tokens locally using the Gemini tokenizer.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountPromptTokens counts the tokens of the system and user text combined.
func (tc *TokenCounter) CountPromptTokens(ctx context.Context, prompt *blogsmith.Prompt) (int, error) {
	if prompt == nil || (prompt.System == "" && prompt.User == "") {
		return 0, nil
	}

	// System text is counted as an extra content.
	var contents []*genai.Content
	for _, text := range []string{prompt.System, prompt.User} {
		if text != "" {
			contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
		}
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
