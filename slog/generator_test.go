package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/blogsmith"
	"github.com/fwojciec/blogsmith/mock"
	bsslog "github.com/fwojciec/blogsmith/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTitleGenerator_GenerateTitles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.TitleGenerator{
		GenerateTitlesFn: func(context.Context, *blogsmith.TitleRequest) ([]*blogsmith.TitleCandidate, error) {
			return []*blogsmith.TitleCandidate{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}}, nil
		},
	}

	g := bsslog.NewLoggingTitleGenerator(inner, newTextLogger(&buf))
	titles, err := g.GenerateTitles(context.Background(), &blogsmith.TitleRequest{Keyword: "remote work"})

	require.NoError(t, err)
	assert.Len(t, titles, 2)
	output := buf.String()
	assert.Contains(t, output, `msg="generate titles"`)
	assert.Contains(t, output, `keyword="remote work"`)
	assert.Contains(t, output, "count=2")
}

func TestLoggingArticleGenerator_GenerateArticle(t *testing.T) {
	t.Parallel()

	t.Run("logs section count and seo flag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArticleGenerator{
			GenerateArticleFn: func(context.Context, *blogsmith.ArticleRequest) (*blogsmith.Article, error) {
				return &blogsmith.Article{
					Title:       "T",
					Sections:    []blogsmith.Section{{Heading: "H", Content: "C"}},
					SEOMetadata: &blogsmith.SEOMetadata{Title: "T"},
				}, nil
			},
		}

		g := bsslog.NewLoggingArticleGenerator(inner, newTextLogger(&buf))
		_, err := g.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Title: "T", Keyword: "k"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "sections=1")
		assert.Contains(t, output, "seo=true")
	})

	t.Run("logs errors with nil article", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArticleGenerator{
			GenerateArticleFn: func(context.Context, *blogsmith.ArticleRequest) (*blogsmith.Article, error) {
				return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "article response missing sections")
			},
		}

		g := bsslog.NewLoggingArticleGenerator(inner, newTextLogger(&buf))
		_, err := g.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Title: "T", Keyword: "k"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "sections=0")
		assert.Contains(t, output, "article response missing sections")
	})
}

func TestLoggingMetadataGenerator_GenerateMetadata(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.MetadataGenerator{
		GenerateMetadataFn: func(context.Context, *blogsmith.MetadataRequest) (*blogsmith.SEOMetadata, error) {
			return &blogsmith.SEOMetadata{Title: "T", Keywords: []string{"a", "b", "c"}}, nil
		},
	}

	g := bsslog.NewLoggingMetadataGenerator(inner, newTextLogger(&buf))
	meta, err := g.GenerateMetadata(context.Background(), &blogsmith.MetadataRequest{Title: "Post", Keyword: "k"})

	require.NoError(t, err)
	assert.Equal(t, "T", meta.Title)
	output := buf.String()
	assert.Contains(t, output, `msg="generate metadata"`)
	assert.Contains(t, output, "title=Post")
	assert.Contains(t, output, "keywords=3")
}
