package mock

import "github.com/fwojciec/blogsmith"

var _ blogsmith.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of blogsmith.Exporter.
type Exporter struct {
	ExportFn func(article *blogsmith.Article, format blogsmith.ExportFormat, opts blogsmith.ExportOptions) (*blogsmith.Document, error)
}

func (e *Exporter) Export(article *blogsmith.Article, format blogsmith.ExportFormat, opts blogsmith.ExportOptions) (*blogsmith.Document, error) {
	return e.ExportFn(article, format, opts)
}
