package blogsmith

import (
	"context"
	"strings"
)

// DefaultRobots is the robots directive used when the model supplies none.
const DefaultRobots = "index, follow"

// SEOMetadata holds search and social metadata for an article.
type SEOMetadata struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Keywords           []string        `json:"keywords"`
	OGTitle            string          `json:"ogTitle"`
	OGDescription      string          `json:"ogDescription"`
	TwitterCard        string          `json:"twitterCard,omitempty"`
	TwitterTitle       string          `json:"twitterTitle"`
	TwitterDescription string          `json:"twitterDescription"`
	Robots             string          `json:"robots"`
	CanonicalURL       string          `json:"canonicalUrl,omitempty"`
	StructuredData     *StructuredData `json:"structuredData,omitempty"`
}

// StructuredData describes the article for search engines.
// It is rendered as a schema.org JSON-LD block.
type StructuredData struct {
	Type          string   `json:"type"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Author        string   `json:"author"`
	DatePublished string   `json:"datePublished"`
	DateModified  string   `json:"dateModified"`
	Keywords      []string `json:"keywords"`
}

// MetadataRequest holds the inputs for SEO metadata generation.
type MetadataRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Keyword     string `json:"keyword"`
	Description string `json:"description"`
	BaseURL     string `json:"baseUrl"`
}

// Validate returns an error if required request fields are missing.
func (r *MetadataRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return Errorf(EINVALID, "title required")
	}
	if strings.TrimSpace(r.Keyword) == "" {
		return Errorf(EINVALID, "keyword required")
	}
	return nil
}

// MetadataGenerator produces SEO metadata for an article.
type MetadataGenerator interface {
	// GenerateMetadata returns metadata for the described article.
	// Returns EINVALID if the title or keyword is missing.
	GenerateMetadata(ctx context.Context, req *MetadataRequest) (*SEOMetadata, error)
}
