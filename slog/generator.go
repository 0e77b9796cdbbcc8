package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blogsmith"
)

var (
	_ blogsmith.TitleGenerator    = (*LoggingTitleGenerator)(nil)
	_ blogsmith.ArticleGenerator  = (*LoggingArticleGenerator)(nil)
	_ blogsmith.MetadataGenerator = (*LoggingMetadataGenerator)(nil)
)

// LoggingTitleGenerator wraps a TitleGenerator with logging.
type LoggingTitleGenerator struct {
	next   blogsmith.TitleGenerator
	logger *slog.Logger
}

// NewLoggingTitleGenerator creates a new LoggingTitleGenerator.
func NewLoggingTitleGenerator(next blogsmith.TitleGenerator, logger *slog.Logger) *LoggingTitleGenerator {
	return &LoggingTitleGenerator{next: next, logger: logger}
}

// GenerateTitles delegates to the wrapped generator and logs the operation.
func (g *LoggingTitleGenerator) GenerateTitles(ctx context.Context, req *blogsmith.TitleRequest) (titles []*blogsmith.TitleCandidate, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate titles",
			"keyword", req.Keyword,
			"count", len(titles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateTitles(ctx, req)
}

// LoggingArticleGenerator wraps an ArticleGenerator with logging.
type LoggingArticleGenerator struct {
	next   blogsmith.ArticleGenerator
	logger *slog.Logger
}

// NewLoggingArticleGenerator creates a new LoggingArticleGenerator.
func NewLoggingArticleGenerator(next blogsmith.ArticleGenerator, logger *slog.Logger) *LoggingArticleGenerator {
	return &LoggingArticleGenerator{next: next, logger: logger}
}

// GenerateArticle delegates to the wrapped generator and logs the operation.
func (g *LoggingArticleGenerator) GenerateArticle(ctx context.Context, req *blogsmith.ArticleRequest) (article *blogsmith.Article, err error) {
	defer func(begin time.Time) {
		sections := 0
		seo := false
		if article != nil {
			sections = len(article.Sections)
			seo = article.SEOMetadata != nil
		}
		g.logger.Info("generate article",
			"title", req.Title,
			"sections", sections,
			"seo", seo,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateArticle(ctx, req)
}

// LoggingMetadataGenerator wraps a MetadataGenerator with logging.
type LoggingMetadataGenerator struct {
	next   blogsmith.MetadataGenerator
	logger *slog.Logger
}

// NewLoggingMetadataGenerator creates a new LoggingMetadataGenerator.
func NewLoggingMetadataGenerator(next blogsmith.MetadataGenerator, logger *slog.Logger) *LoggingMetadataGenerator {
	return &LoggingMetadataGenerator{next: next, logger: logger}
}

// GenerateMetadata delegates to the wrapped generator and logs the operation.
func (g *LoggingMetadataGenerator) GenerateMetadata(ctx context.Context, req *blogsmith.MetadataRequest) (meta *blogsmith.SEOMetadata, err error) {
	defer func(begin time.Time) {
		keywords := 0
		if meta != nil {
			keywords = len(meta.Keywords)
		}
		g.logger.Info("generate metadata",
			"title", req.Title,
			"keywords", keywords,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateMetadata(ctx, req)
}
