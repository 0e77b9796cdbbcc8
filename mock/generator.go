package mock

import (
	"context"

	"github.com/fwojciec/blogsmith"
)

var (
	_ blogsmith.TitleGenerator    = (*TitleGenerator)(nil)
	_ blogsmith.ArticleGenerator  = (*ArticleGenerator)(nil)
	_ blogsmith.MetadataGenerator = (*MetadataGenerator)(nil)
)

// TitleGenerator is a mock implementation of blogsmith.TitleGenerator.
type TitleGenerator struct {
	GenerateTitlesFn func(ctx context.Context, req *blogsmith.TitleRequest) ([]*blogsmith.TitleCandidate, error)
}

func (g *TitleGenerator) GenerateTitles(ctx context.Context, req *blogsmith.TitleRequest) ([]*blogsmith.TitleCandidate, error) {
	return g.GenerateTitlesFn(ctx, req)
}

// ArticleGenerator is a mock implementation of blogsmith.ArticleGenerator.
type ArticleGenerator struct {
	GenerateArticleFn func(ctx context.Context, req *blogsmith.ArticleRequest) (*blogsmith.Article, error)
}

func (g *ArticleGenerator) GenerateArticle(ctx context.Context, req *blogsmith.ArticleRequest) (*blogsmith.Article, error) {
	return g.GenerateArticleFn(ctx, req)
}

// MetadataGenerator is a mock implementation of blogsmith.MetadataGenerator.
type MetadataGenerator struct {
	GenerateMetadataFn func(ctx context.Context, req *blogsmith.MetadataRequest) (*blogsmith.SEOMetadata, error)
}

func (g *MetadataGenerator) GenerateMetadata(ctx context.Context, req *blogsmith.MetadataRequest) (*blogsmith.SEOMetadata, error) {
	return g.GenerateMetadataFn(ctx, req)
}
