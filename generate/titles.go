package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/blogsmith"
	"github.com/google/uuid"
)

// Ensure TitleService implements blogsmith.TitleGenerator at compile time.
var _ blogsmith.TitleGenerator = (*TitleService)(nil)

// TitleService proposes blog-post titles.
type TitleService struct {
	completer blogsmith.Completer

	// NewID assigns identifiers to candidates the model left without one.
	NewID func() string
}

// NewTitleService creates a new TitleService.
func NewTitleService(completer blogsmith.Completer) *TitleService {
	return &TitleService{
		completer: completer,
		NewID:     uuid.NewString,
	}
}

type titlesResponse struct {
	Titles []*blogsmith.TitleCandidate `json:"titles"`
}

// GenerateTitles returns title candidates for the keyword.
func (s *TitleService) GenerateTitles(ctx context.Context, req *blogsmith.TitleRequest) ([]*blogsmith.TitleCandidate, error) {
	if req == nil {
		return nil, blogsmith.Errorf(blogsmith.EINVALID, "title request required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp titlesResponse
	if err := complete(ctx, s.completer, BuildTitlePrompt(req), &resp); err != nil {
		return nil, fmt.Errorf("generate titles: %w", err)
	}
	if resp.Titles == nil {
		return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "titles response missing titles array")
	}
	if len(resp.Titles) == 0 {
		return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "titles response contained no titles")
	}

	for i, c := range resp.Titles {
		if c == nil || strings.TrimSpace(c.Title) == "" {
			return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "title %d is empty", i+1)
		}
		if strings.TrimSpace(c.Description) == "" {
			return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "title %d has no description", i+1)
		}
		if strings.TrimSpace(c.ID) == "" {
			c.ID = s.NewID()
		}
	}

	return resp.Titles, nil
}
