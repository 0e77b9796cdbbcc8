package blogsmith

import (
	"context"
	"strings"
)

// Article represents a generated blog post.
type Article struct {
	Title       string       `json:"title"`
	Sections    []Section    `json:"sections"`
	SEOMetadata *SEOMetadata `json:"seoMetadata,omitempty"`
}

// Section is a top-level block of an article.
// Order is significant and preserved end to end.
type Section struct {
	Heading     string       `json:"heading"`
	Content     string       `json:"content"`
	Subheadings []Subsection `json:"subheadings,omitempty"`
}

// Subsection is a nested block inside a Section.
type Subsection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a == nil {
		return Errorf(EINVALID, "article required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return Errorf(EINVALID, "article title required")
	}
	if len(a.Sections) == 0 {
		return Errorf(EINVALID, "article sections required")
	}
	for i, s := range a.Sections {
		if strings.TrimSpace(s.Heading) == "" {
			return Errorf(EINVALID, "section %d heading required", i+1)
		}
		if strings.TrimSpace(s.Content) == "" {
			return Errorf(EINVALID, "section %d content required", i+1)
		}
	}
	return nil
}

// Flatten joins section and subsection headings with their bodies into a
// single newline-separated text blob.
func (a *Article) Flatten() string {
	var parts []string
	for _, s := range a.Sections {
		parts = append(parts, s.Heading+"\n"+s.Content)
		for _, sub := range s.Subheadings {
			parts = append(parts, sub.Title+"\n"+sub.Content)
		}
	}
	return strings.Join(parts, "\n")
}

// ArticleRequest holds the inputs for article generation.
type ArticleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keyword     string `json:"keyword"`
	Overview    string `json:"overview"`
	GenerateSEO bool   `json:"generateSEO"`
	BaseURL     string `json:"baseUrl"`
}

// Validate returns an error if required request fields are missing.
func (r *ArticleRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return Errorf(EINVALID, "title required")
	}
	if strings.TrimSpace(r.Keyword) == "" {
		return Errorf(EINVALID, "keyword required")
	}
	return nil
}

// ArticleGenerator drafts a full article for a chosen title.
type ArticleGenerator interface {
	// GenerateArticle drafts an article.
	// Returns EINVALID if the title or keyword is missing.
	GenerateArticle(ctx context.Context, req *ArticleRequest) (*Article, error)
}
