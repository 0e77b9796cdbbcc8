package export

import (
	"fmt"
	"strings"

	"github.com/fwojciec/blogsmith"
	"gopkg.in/yaml.v3"
)

type frontMatter struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Keywords    []string     `yaml:"keywords"`
	Robots      string       `yaml:"robots,omitempty"`
	Canonical   string       `yaml:"canonical,omitempty"`
	OG          socialBlock  `yaml:"og"`
	Twitter     twitterBlock `yaml:"twitter"`
	Date        string       `yaml:"date"`
	Author      string       `yaml:"author"`
}

type socialBlock struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type twitterBlock struct {
	Card        string `yaml:"card,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Markdown renders the article as Markdown. When opts.IncludeSEO is set and
// metadata is attached, a YAML front matter block is prepended.
func (e *Exporter) Markdown(article *blogsmith.Article, opts blogsmith.ExportOptions) (string, error) {
	date := e.now().Format("2006-01-02")

	var sb strings.Builder
	if meta := article.SEOMetadata; opts.IncludeSEO && meta != nil {
		fm := frontMatter{
			Title:       meta.Title,
			Description: meta.Description,
			Keywords:    meta.Keywords,
			Robots:      meta.Robots,
			Canonical:   meta.CanonicalURL,
			OG:          socialBlock{Title: meta.OGTitle, Description: meta.OGDescription},
			Twitter:     twitterBlock{Card: meta.TwitterCard, Title: meta.TwitterTitle, Description: meta.TwitterDescription},
			Date:        date,
			Author:      Author,
		}
		if fm.Keywords == nil {
			fm.Keywords = []string{}
		}
		b, err := yaml.Marshal(&fm)
		if err != nil {
			return "", fmt.Errorf("marshal front matter: %w", err)
		}
		sb.WriteString("---\n")
		sb.Write(b)
		sb.WriteString("---\n\n")
	}

	fmt.Fprintf(&sb, "# %s\n\n", article.Title)
	for _, s := range article.Sections {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", s.Heading, markdownBody(s.Content))
		for _, sub := range s.Subheadings {
			fmt.Fprintf(&sb, "### %s\n\n%s\n\n", sub.Title, markdownBody(sub.Content))
		}
	}
	fmt.Fprintf(&sb, "---\n\n*Generated by %s on %s*\n", Author, date)

	return sb.String(), nil
}

// markdownBody drops trailing whitespace only. Leading indentation is
// significant in Markdown.
func markdownBody(content string) string {
	return strings.TrimRight(content, " \t\r\n")
}
