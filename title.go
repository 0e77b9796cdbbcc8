package blogsmith

import (
	"context"
	"strings"
)

// TitleCandidate is a proposed blog-post title with its rationale.
type TitleCandidate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TitleRequest holds the inputs for title generation.
type TitleRequest struct {
	Keyword  string `json:"keyword"`
	Overview string `json:"overview"`
}

// Validate returns an error if required request fields are missing.
func (r *TitleRequest) Validate() error {
	if strings.TrimSpace(r.Keyword) == "" {
		return Errorf(EINVALID, "keyword required")
	}
	return nil
}

// TitleGenerator proposes title candidates for a keyword.
type TitleGenerator interface {
	// GenerateTitles returns candidate titles in the order the model produced them.
	// Returns EINVALID if the keyword is missing.
	GenerateTitles(ctx context.Context, req *TitleRequest) ([]*TitleCandidate, error)
}
