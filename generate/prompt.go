package generate

import (
	"fmt"
	"strings"

	"github.com/fwojciec/blogsmith"
)

// Sampling parameters per task. Titles favor variety; metadata favors
// consistency.
const (
	TitleTemperature    = float32(0.9)
	ArticleTemperature  = float32(0.7)
	MetadataTemperature = float32(0.3)

	TitleMaxTokens    = int32(2048)
	ArticleMaxTokens  = int32(8192)
	MetadataMaxTokens = int32(2048)
)

// MaxExcerptRunes caps the article text included in the metadata prompt.
const MaxExcerptRunes = 3000

const titleSystem = `You are an experienced content strategist and SEO copywriter.
You propose blog-post titles that are specific, benefit-driven, and naturally include the target keyword.
Respond with a single JSON object and nothing else.`

const articleSystem = `You are a professional blog writer.
You write well-structured, accurate, reader-friendly articles optimized for search without keyword stuffing.
Respond with a single JSON object and nothing else.`

const metadataSystem = `You are a technical SEO specialist.
You write concise search and social metadata that accurately reflects the article.
Respond with a single JSON object and nothing else.`

// BuildTitlePrompt builds the prompt for title generation.
func BuildTitlePrompt(req *blogsmith.TitleRequest) *blogsmith.Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Target keyword: %s\n", req.Keyword)
	if overview := strings.TrimSpace(req.Overview); overview != "" {
		fmt.Fprintf(&sb, "Article overview: %s\n", overview)
	}
	sb.WriteString(`
Propose 5 blog-post titles for this keyword.
Each title must be under 60 characters and take a distinct angle (how-to, list, question, comparison, opinion).
For each title, explain in one or two sentences why it would attract readers.

Return JSON in exactly this shape:
{
  "titles": [
    {"id": "1", "title": "...", "description": "..."}
  ]
}`)

	return &blogsmith.Prompt{
		Task:            blogsmith.TaskTitles,
		System:          titleSystem,
		User:            sb.String(),
		Temperature:     TitleTemperature,
		MaxOutputTokens: TitleMaxTokens,
		JSON:            true,
	}
}

// BuildArticlePrompt builds the prompt for article generation.
func BuildArticlePrompt(req *blogsmith.ArticleRequest) *blogsmith.Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", req.Title)
	fmt.Fprintf(&sb, "Target keyword: %s\n", req.Keyword)
	if description := strings.TrimSpace(req.Description); description != "" {
		fmt.Fprintf(&sb, "Angle: %s\n", description)
	}
	if overview := strings.TrimSpace(req.Overview); overview != "" {
		fmt.Fprintf(&sb, "Overview from the author: %s\n", overview)
	}
	sb.WriteString(`
Write the complete article for this title.
Use 4 to 7 sections. Each section needs a clear heading and at least two paragraphs separated by newlines.
Add subheadings inside a section only where they help the reader scan long material.
Open with an introduction section and close with a conclusion section.
Use plain text in content fields; do not use Markdown headings.

Return JSON in exactly this shape:
{
  "title": "...",
  "sections": [
    {
      "heading": "...",
      "content": "...",
      "subheadings": [
        {"title": "...", "content": "..."}
      ]
    }
  ]
}`)

	return &blogsmith.Prompt{
		Task:            blogsmith.TaskArticle,
		System:          articleSystem,
		User:            sb.String(),
		Temperature:     ArticleTemperature,
		MaxOutputTokens: ArticleMaxTokens,
		JSON:            true,
	}
}

// BuildMetadataPrompt builds the prompt for SEO metadata generation.
// The excerpt should already be trimmed to MaxExcerptRunes.
func BuildMetadataPrompt(req *blogsmith.MetadataRequest, excerpt string) *blogsmith.Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", req.Title)
	fmt.Fprintf(&sb, "Target keyword: %s\n", req.Keyword)
	if description := strings.TrimSpace(req.Description); description != "" {
		fmt.Fprintf(&sb, "Summary: %s\n", description)
	}
	if baseURL := strings.TrimSpace(req.BaseURL); baseURL != "" {
		fmt.Fprintf(&sb, "Canonical URL: %s\n", baseURL)
	}
	if excerpt != "" {
		fmt.Fprintf(&sb, "\n<article>\n%s\n</article>\n", excerpt)
	}
	sb.WriteString(`
Write search and social metadata for this article.
The title must be under 60 characters and the description between 120 and 160 characters.
Provide 5 to 10 keywords ordered by relevance, starting with the target keyword.
Set robots to a standard directive such as "index, follow".
Only set canonicalUrl when a canonical URL was given above.

Return JSON in exactly this shape:
{
  "title": "...",
  "description": "...",
  "keywords": ["..."],
  "ogTitle": "...",
  "ogDescription": "...",
  "twitterCard": "summary_large_image",
  "twitterTitle": "...",
  "twitterDescription": "...",
  "robots": "index, follow",
  "canonicalUrl": "...",
  "structuredData": {
    "type": "BlogPosting",
    "name": "...",
    "description": "...",
    "author": "...",
    "datePublished": "YYYY-MM-DD",
    "dateModified": "YYYY-MM-DD",
    "keywords": ["..."]
  }
}`)

	return &blogsmith.Prompt{
		Task:            blogsmith.TaskMetadata,
		System:          metadataSystem,
		User:            sb.String(),
		Temperature:     MetadataTemperature,
		MaxOutputTokens: MetadataMaxTokens,
		JSON:            true,
	}
}

// Excerpt returns at most max runes of s.
func Excerpt(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max]))
}
