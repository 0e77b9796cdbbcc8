package blogsmith

// ExportFormat selects the document format produced by an Exporter.
type ExportFormat string

// Supported export formats.
const (
	FormatMarkdown ExportFormat = "markdown"
	FormatHTML     ExportFormat = "html"
)

// MIME types of exported documents.
const (
	MIMEMarkdown = "text/markdown; charset=utf-8"
	MIMEHTML     = "text/html; charset=utf-8"
)

// ExportOptions configures document export.
type ExportOptions struct {
	IncludeSEO    bool   `json:"includeSEO"`
	IncludeStyles bool   `json:"includeStyles"`
	Filename      string `json:"filename"`
}

// Document is a serialized article ready for download.
type Document struct {
	Content  string
	MIMEType string
	Filename string
}

// Exporter serializes articles into downloadable documents.
type Exporter interface {
	// Export renders the article in the given format.
	// Returns EUNSUPPORTED for unknown formats and EINVALID for invalid articles.
	Export(article *Article, format ExportFormat, opts ExportOptions) (*Document, error)
}
