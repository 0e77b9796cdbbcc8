package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/blogsmith"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements blogsmith.Completer at compile time.
var _ blogsmith.Completer = (*Completer)(nil)

// Completer implements blogsmith.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer for the given model.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// NewClient creates a Gemini API client. It fails fast when apiKey is empty
// so that a missing credential is reported at startup.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, blogsmith.Errorf(blogsmith.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Model returns the configured model name.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends the prompt to Gemini and returns the reply text.
// A nil result or a result without text yields an empty string.
func (c *Completer) Complete(ctx context.Context, prompt *blogsmith.Prompt) (string, error) {
	if prompt == nil || strings.TrimSpace(prompt.User) == "" {
		return "", blogsmith.Errorf(blogsmith.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, BuildContents(prompt), BuildConfig(prompt))
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for a prompt.
func BuildConfig(prompt *blogsmith.Prompt) *genai.GenerateContentConfig {
	temp := prompt.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: prompt.MaxOutputTokens,
	}
	if prompt.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: prompt.System}},
		}
	}
	if prompt.JSON {
		config.ResponseMIMEType = "application/json"
	}
	return config
}

// BuildContents returns the user turn for a prompt.
func BuildContents(prompt *blogsmith.Prompt) []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromText(prompt.User, genai.RoleUser),
	}
}
