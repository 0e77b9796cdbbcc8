// Package export renders blogsmith articles as Markdown or HTML documents.
package export

import (
	"strings"
	"time"

	"github.com/fwojciec/blogsmith"
)

// Author is the fixed author label written into exported documents.
const Author = "blogsmith"

// Ensure Exporter implements blogsmith.Exporter at compile time.
var _ blogsmith.Exporter = (*Exporter)(nil)

// Exporter implements blogsmith.Exporter.
type Exporter struct {
	// Now returns the generation timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{Now: time.Now}
}

// Export renders the article in the given format.
func (e *Exporter) Export(article *blogsmith.Article, format blogsmith.ExportFormat, opts blogsmith.ExportOptions) (*blogsmith.Document, error) {
	var ext, mime string
	switch format {
	case blogsmith.FormatMarkdown:
		ext, mime = ".md", blogsmith.MIMEMarkdown
	case blogsmith.FormatHTML:
		ext, mime = ".html", blogsmith.MIMEHTML
	default:
		return nil, blogsmith.Errorf(blogsmith.EUNSUPPORTED, "unsupported export format %q", format)
	}

	if err := article.Validate(); err != nil {
		return nil, err
	}

	var content string
	if format == blogsmith.FormatMarkdown {
		md, err := e.Markdown(article, opts)
		if err != nil {
			return nil, err
		}
		content = md
	} else {
		content = e.HTML(article, opts)
	}

	return &blogsmith.Document{
		Content:  content,
		MIMEType: mime,
		Filename: Filename(article.Title, opts.Filename, ext),
	}, nil
}

// Filename returns the download name for an export. An explicit name gets
// ext appended when missing; otherwise the title is slugified.
func Filename(title, name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return blogsmith.Slugify(title, "article") + ext
	}
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return name
}

func (e *Exporter) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
