// Package generate drafts blog content with a blogsmith.Completer.
// Each service builds a prompt, sends it once, recovers JSON from the
// reply, and validates its shape before returning domain types.
package generate

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/blogsmith"
)

// complete sends the prompt and decodes the recovered JSON into v.
//
// An empty reply is EEMPTY, text that is not JSON is EUNPARSEABLE, and JSON
// that does not fit v is EMALFORMED. Callers validate required fields.
func complete(ctx context.Context, c blogsmith.Completer, prompt *blogsmith.Prompt, v any) error {
	reply, err := c.Complete(ctx, prompt)
	if err != nil {
		return err
	}
	if strings.TrimSpace(reply) == "" {
		return blogsmith.Errorf(blogsmith.EEMPTY, "model returned no content for %s", prompt.Task)
	}

	text := blogsmith.ExtractJSON(reply)

	var probe any
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return blogsmith.Errorf(blogsmith.EUNPARSEABLE, "failed to parse %s response: %s", prompt.Task, err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return blogsmith.Errorf(blogsmith.EMALFORMED, "%s response is not a JSON object", prompt.Task)
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return blogsmith.Errorf(blogsmith.EMALFORMED, "unexpected %s response structure: %s", prompt.Task, err)
	}
	return nil
}
