package export

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/fwojciec/blogsmith"
)

const stylesheet = `
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
      line-height: 1.7;
      color: #1f2933;
      max-width: 760px;
      margin: 0 auto;
      padding: 2rem 1.25rem;
      background: #ffffff;
    }
    h1 { font-size: 2.2rem; line-height: 1.25; margin-bottom: 1.5rem; }
    h2 { font-size: 1.6rem; margin-top: 2.5rem; padding-bottom: 0.3rem; border-bottom: 2px solid #e4e7eb; }
    h3 { font-size: 1.25rem; margin-top: 1.75rem; }
    p { margin: 0 0 1rem; }
    .article-info { background: #f5f7fa; border-left: 4px solid #3e7bfa; padding: 1rem 1.25rem; margin-bottom: 2rem; font-size: 0.95rem; }
    .article-info p { margin: 0.25rem 0; }
    .subsection { margin-left: 1.5rem; padding-left: 1rem; border-left: 2px solid #e4e7eb; }
    footer { margin-top: 3rem; padding-top: 1rem; border-top: 1px solid #e4e7eb; color: #7b8794; font-size: 0.875rem; }
`

// jsonLD is the schema.org payload embedded in exported HTML.
type jsonLD struct {
	Context       string        `json:"@context"`
	Type          string        `json:"@type"`
	Headline      string        `json:"headline"`
	Description   string        `json:"description,omitempty"`
	Author        *jsonLDPerson `json:"author,omitempty"`
	DatePublished string        `json:"datePublished,omitempty"`
	DateModified  string        `json:"dateModified,omitempty"`
	Keywords      string        `json:"keywords,omitempty"`
}

type jsonLDPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// HTML renders the article as a standalone HTML document. Every
// interpolated string is escaped; the JSON-LD payload is JSON-encoded.
func (e *Exporter) HTML(article *blogsmith.Article, opts blogsmith.ExportOptions) string {
	now := e.now()
	meta := article.SEOMetadata
	withSEO := opts.IncludeSEO && meta != nil

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n<head>\n")
	sb.WriteString("  <meta charset=\"UTF-8\">\n")
	sb.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")

	if withSEO {
		writeHead(&sb, meta)
	} else {
		fmt.Fprintf(&sb, "  <title>%s</title>\n", esc(article.Title))
	}

	if opts.IncludeStyles {
		fmt.Fprintf(&sb, "  <style>%s  </style>\n", stylesheet)
	}
	sb.WriteString("</head>\n<body>\n<article>\n")

	if withSEO {
		sb.WriteString("  <div class=\"article-info\">\n")
		if meta.Description != "" {
			fmt.Fprintf(&sb, "    <p><strong>Description:</strong> %s</p>\n", esc(meta.Description))
		}
		if len(meta.Keywords) > 0 {
			fmt.Fprintf(&sb, "    <p><strong>Keywords:</strong> %s</p>\n", esc(strings.Join(meta.Keywords, ", ")))
		}
		fmt.Fprintf(&sb, "    <p><strong>Generated:</strong> %s</p>\n", now.Format("2006-01-02"))
		sb.WriteString("  </div>\n")
	}

	fmt.Fprintf(&sb, "  <h1>%s</h1>\n", esc(article.Title))
	for _, s := range article.Sections {
		sb.WriteString("  <section>\n")
		fmt.Fprintf(&sb, "    <h2>%s</h2>\n", esc(s.Heading))
		writeParagraphs(&sb, s.Content, "    ")
		for _, sub := range s.Subheadings {
			sb.WriteString("    <div class=\"subsection\">\n")
			fmt.Fprintf(&sb, "      <h3>%s</h3>\n", esc(sub.Title))
			writeParagraphs(&sb, sub.Content, "      ")
			sb.WriteString("    </div>\n")
		}
		sb.WriteString("  </section>\n")
	}

	sb.WriteString("</article>\n")
	fmt.Fprintf(&sb, "<footer>\n  <p>Generated by %s on %s</p>\n</footer>\n", Author, now.Format("2006-01-02 15:04"))
	sb.WriteString("</body>\n</html>\n")

	return sb.String()
}

func writeHead(sb *strings.Builder, meta *blogsmith.SEOMetadata) {
	fmt.Fprintf(sb, "  <title>%s</title>\n", esc(meta.Title))
	writeMeta(sb, "name", "description", meta.Description)
	writeMeta(sb, "name", "keywords", strings.Join(meta.Keywords, ", "))
	writeMeta(sb, "name", "robots", meta.Robots)
	writeMeta(sb, "name", "author", Author)
	if meta.CanonicalURL != "" {
		fmt.Fprintf(sb, "  <link rel=\"canonical\" href=\"%s\">\n", esc(meta.CanonicalURL))
	}

	writeMeta(sb, "property", "og:type", "article")
	writeMeta(sb, "property", "og:title", meta.OGTitle)
	writeMeta(sb, "property", "og:description", meta.OGDescription)
	if meta.CanonicalURL != "" {
		writeMeta(sb, "property", "og:url", meta.CanonicalURL)
	}

	card := meta.TwitterCard
	if card == "" {
		card = "summary_large_image"
	}
	writeMeta(sb, "name", "twitter:card", card)
	writeMeta(sb, "name", "twitter:title", meta.TwitterTitle)
	writeMeta(sb, "name", "twitter:description", meta.TwitterDescription)

	if sd := meta.StructuredData; sd != nil {
		b, err := json.MarshalIndent(newJSONLD(sd), "  ", "  ")
		if err == nil {
			fmt.Fprintf(sb, "  <script type=\"application/ld+json\">\n  %s\n  </script>\n", b)
		}
	}
}

func newJSONLD(sd *blogsmith.StructuredData) jsonLD {
	ld := jsonLD{
		Context:       "https://schema.org",
		Type:          sd.Type,
		Headline:      sd.Name,
		Description:   sd.Description,
		DatePublished: sd.DatePublished,
		DateModified:  sd.DateModified,
		Keywords:      strings.Join(sd.Keywords, ", "),
	}
	if ld.Type == "" {
		ld.Type = "BlogPosting"
	}
	if sd.Author != "" {
		ld.Author = &jsonLDPerson{Type: "Person", Name: sd.Author}
	}
	return ld
}

func writeMeta(sb *strings.Builder, attr, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "  <meta %s=\"%s\" content=\"%s\">\n", attr, key, esc(value))
}

// writeParagraphs wraps each non-blank line of text in a <p> element.
func writeParagraphs(sb *strings.Builder, text, indent string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(sb, "%s<p>%s</p>\n", indent, esc(line))
	}
}

// esc escapes the five HTML-significant characters: & < > " '.
func esc(s string) string {
	return html.EscapeString(s)
}
