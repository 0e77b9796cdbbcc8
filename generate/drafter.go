package generate

import (
	"context"
	"log/slog"

	"github.com/fwojciec/blogsmith"
)

// Ensure Drafter implements blogsmith.ArticleGenerator at compile time.
var _ blogsmith.ArticleGenerator = (*Drafter)(nil)

// Drafter generates an article and, when requested, attaches SEO metadata
// from a dependent call. A metadata failure is logged and the article is
// returned without metadata.
type Drafter struct {
	Articles blogsmith.ArticleGenerator
	Metadata blogsmith.MetadataGenerator
	Logger   *slog.Logger
}

// GenerateArticle drafts the article and attaches metadata if req.GenerateSEO is set.
func (d *Drafter) GenerateArticle(ctx context.Context, req *blogsmith.ArticleRequest) (*blogsmith.Article, error) {
	article, err := d.Articles.GenerateArticle(ctx, req)
	if err != nil {
		return nil, err
	}
	if !req.GenerateSEO || d.Metadata == nil {
		return article, nil
	}

	metaReq := &blogsmith.MetadataRequest{
		Title:       article.Title,
		Content:     article.Flatten(),
		Keyword:     req.Keyword,
		Description: req.Description,
		BaseURL:     req.BaseURL,
	}

	meta, err := d.Metadata.GenerateMetadata(ctx, metaReq)
	if err != nil {
		d.logger().Warn("seo metadata generation failed",
			"title", article.Title,
			"code", blogsmith.ErrorCode(err),
			"err", err,
		)
		return article, nil
	}

	article.SEOMetadata = meta
	return article, nil
}

func (d *Drafter) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
