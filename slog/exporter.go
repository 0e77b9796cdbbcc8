package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/blogsmith"
)

// Ensure LoggingExporter implements blogsmith.Exporter.
var _ blogsmith.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with logging.
type LoggingExporter struct {
	next   blogsmith.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next blogsmith.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Export delegates to the wrapped exporter and logs the operation.
func (e *LoggingExporter) Export(article *blogsmith.Article, format blogsmith.ExportFormat, opts blogsmith.ExportOptions) (doc *blogsmith.Document, err error) {
	defer func(begin time.Time) {
		var filename string
		var size int
		if doc != nil {
			filename = doc.Filename
			size = len(doc.Content)
		}
		e.logger.Info("export",
			"format", string(format),
			"filename", filename,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Export(article, format, opts)
}
