package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogsmith"
)

// Ensure MetadataService implements blogsmith.MetadataGenerator at compile time.
var _ blogsmith.MetadataGenerator = (*MetadataService)(nil)

// MetadataService produces SEO and social metadata for an article.
type MetadataService struct {
	completer blogsmith.Completer

	// Converter, if set, turns HTML content into Markdown before it is
	// excerpted into the prompt.
	Converter blogsmith.Converter
}

// NewMetadataService creates a new MetadataService.
func NewMetadataService(completer blogsmith.Completer) *MetadataService {
	return &MetadataService{completer: completer}
}

type metadataResponse struct {
	blogsmith.SEOMetadata

	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Keywords    []string `json:"keywords"`
}

// GenerateMetadata returns metadata for the described article.
func (s *MetadataService) GenerateMetadata(ctx context.Context, req *blogsmith.MetadataRequest) (*blogsmith.SEOMetadata, error) {
	if req == nil {
		return nil, blogsmith.Errorf(blogsmith.EINVALID, "metadata request required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	excerpt := Excerpt(s.plainContent(req.Content), MaxExcerptRunes)

	var resp metadataResponse
	if err := complete(ctx, s.completer, BuildMetadataPrompt(req, excerpt), &resp); err != nil {
		return nil, fmt.Errorf("generate metadata: %w", err)
	}
	if resp.Title == nil || strings.TrimSpace(*resp.Title) == "" {
		return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "metadata response missing title")
	}
	if resp.Description == nil || strings.TrimSpace(*resp.Description) == "" {
		return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "metadata response missing description")
	}
	if resp.Keywords == nil {
		return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "metadata response missing keywords array")
	}

	meta := resp.SEOMetadata
	meta.Title = *resp.Title
	meta.Description = *resp.Description
	meta.Keywords = resp.Keywords
	fillDefaults(&meta, req)

	return &meta, nil
}

// plainContent converts HTML content to Markdown when a Converter is set.
// Conversion failures fall back to the raw content.
func (s *MetadataService) plainContent(content string) string {
	if s.Converter == nil || !hasMarkup(content) {
		return content
	}
	md, err := s.Converter.Convert(content)
	if err != nil {
		return content
	}
	return md
}

// hasMarkup reports whether content parses to at least one HTML element.
// Text that merely contains angle brackets, like "x < y", has none.
func hasMarkup(content string) bool {
	if !strings.Contains(content, "<") {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return false
	}
	return doc.Find("body *").Length() > 0
}

// fillDefaults copies the search title and description into empty social
// fields and applies the robots and canonical defaults.
func fillDefaults(meta *blogsmith.SEOMetadata, req *blogsmith.MetadataRequest) {
	if meta.OGTitle == "" {
		meta.OGTitle = meta.Title
	}
	if meta.OGDescription == "" {
		meta.OGDescription = meta.Description
	}
	if meta.TwitterTitle == "" {
		meta.TwitterTitle = meta.Title
	}
	if meta.TwitterDescription == "" {
		meta.TwitterDescription = meta.Description
	}
	if meta.TwitterCard == "" {
		meta.TwitterCard = "summary_large_image"
	}
	if strings.TrimSpace(meta.Robots) == "" {
		meta.Robots = blogsmith.DefaultRobots
	}
	if meta.CanonicalURL == "" {
		meta.CanonicalURL = strings.TrimSpace(req.BaseURL)
	}
}
