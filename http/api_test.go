package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/fwojciec/blogsmith"
	bshttp "github.com/fwojciec/blogsmith/http"
	"github.com/fwojciec/blogsmith/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_GenerateTitles(t *testing.T) {
	t.Parallel()

	t.Run("returns candidates", func(t *testing.T) {
		t.Parallel()

		var got *blogsmith.TitleRequest
		s := newServer(t, nil)
		s.Titles = &mock.TitleGenerator{
			GenerateTitlesFn: func(_ context.Context, req *blogsmith.TitleRequest) ([]*blogsmith.TitleCandidate, error) {
				got = req
				return []*blogsmith.TitleCandidate{{ID: "1", Title: "Remote Work 101", Description: "Clear."}}, nil
			},
		}

		rec := do(t, s.Handler(), http.MethodPost, "/api/generate-titles", `{"keyword":"remote work","overview":"for beginners"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, &blogsmith.TitleRequest{Keyword: "remote work", Overview: "for beginners"}, got)
		assert.JSONEq(t, `{"titles":[{"id":"1","title":"Remote Work 101","description":"Clear."}]}`, rec.Body.String())
	})

	t.Run("invalid input is 400 with message", func(t *testing.T) {
		t.Parallel()

		s := newServer(t, nil)
		s.Titles = &mock.TitleGenerator{
			GenerateTitlesFn: func(context.Context, *blogsmith.TitleRequest) ([]*blogsmith.TitleCandidate, error) {
				return nil, blogsmith.Errorf(blogsmith.EINVALID, "keyword required")
			},
		}

		rec := do(t, s.Handler(), http.MethodPost, "/api/generate-titles", `{"keyword":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "keyword required", decodeError(t, rec))
	})

	t.Run("upstream failure is 500 without detail", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		s := newServer(t, &logs)
		s.Titles = &mock.TitleGenerator{
			GenerateTitlesFn: func(context.Context, *blogsmith.TitleRequest) ([]*blogsmith.TitleCandidate, error) {
				return nil, blogsmith.Errorf(blogsmith.EUNPARSEABLE, "invalid character 'x' looking for beginning of value")
			},
		}

		rec := do(t, s.Handler(), http.MethodPost, "/api/generate-titles", `{"keyword":"k"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to generate titles.", decodeError(t, rec))
		assert.NotContains(t, rec.Body.String(), "invalid character")
		assert.Contains(t, logs.String(), "invalid character")
		assert.Contains(t, logs.String(), "code=unparseable")
	})

	t.Run("transport errors are 500", func(t *testing.T) {
		t.Parallel()

		s := newServer(t, nil)
		s.Titles = &mock.TitleGenerator{
			GenerateTitlesFn: func(context.Context, *blogsmith.TitleRequest) ([]*blogsmith.TitleCandidate, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		}

		rec := do(t, s.Handler(), http.MethodPost, "/api/generate-titles", `{"keyword":"k"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		t.Parallel()

		rec := do(t, newServer(t, nil).Handler(), http.MethodPost, "/api/generate-titles", `{"keyword":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "invalid JSON body")
	})

	t.Run("rejects GET", func(t *testing.T) {
		t.Parallel()

		rec := do(t, newServer(t, nil).Handler(), http.MethodGet, "/api/generate-titles", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestServer_GenerateArticle(t *testing.T) {
	t.Parallel()

	article := &blogsmith.Article{
		Title:       "Remote Work 101",
		Sections:    []blogsmith.Section{{Heading: "Intro", Content: "Hello."}},
		SEOMetadata: &blogsmith.SEOMetadata{Title: "Remote Work 101", Keywords: []string{"remote work"}},
	}

	t.Run("defaults generateSEO to true", func(t *testing.T) {
		t.Parallel()

		var got *blogsmith.ArticleRequest
		s := newServer(t, nil)
		s.Articles = &mock.ArticleGenerator{
			GenerateArticleFn: func(_ context.Context, req *blogsmith.ArticleRequest) (*blogsmith.Article, error) {
				got = req
				return article, nil
			},
		}

		rec := do(t, s.Handler(), http.MethodPost, "/api/generate-article",
			`{"title":"Remote Work 101","keyword":"remote work","baseUrl":"https://example.com/p"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, got.GenerateSEO)
		assert.Equal(t, "https://example.com/p", got.BaseURL)

		var resp bshttp.ArticleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, article, resp.Article)
	})

	t.Run("respects explicit generateSEO false", func(t *testing.T) {
		t.Parallel()

		var got *blogsmith.ArticleRequest
		s := newServer(t, nil)
		s.Articles = &mock.ArticleGenerator{
			GenerateArticleFn: func(_ context.Context, req *blogsmith.ArticleRequest) (*blogsmith.Article, error) {
				got = req
				return &blogsmith.Article{Title: "T", Sections: article.Sections}, nil
			},
		}

		rec := do(t, s.Handler(), http.MethodPost, "/api/generate-article",
			`{"title":"T","keyword":"k","generateSEO":false}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, got.GenerateSEO)
		assert.NotContains(t, rec.Body.String(), "seoMetadata")
	})

	t.Run("malformed model output is 500", func(t *testing.T) {
		t.Parallel()

		s := newServer(t, nil)
		s.Articles = &mock.ArticleGenerator{
			GenerateArticleFn: func(context.Context, *blogsmith.ArticleRequest) (*blogsmith.Article, error) {
				return nil, blogsmith.Errorf(blogsmith.EMALFORMED, "article response missing sections")
			},
		}

		rec := do(t, s.Handler(), http.MethodPost, "/api/generate-article", `{"title":"T","keyword":"k"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to generate article.", decodeError(t, rec))
	})
}

func TestServer_GenerateSEO(t *testing.T) {
	t.Parallel()

	t.Run("returns metadata", func(t *testing.T) {
		t.Parallel()

		var got *blogsmith.MetadataRequest
		s := newServer(t, nil)
		s.Metadata = &mock.MetadataGenerator{
			GenerateMetadataFn: func(_ context.Context, req *blogsmith.MetadataRequest) (*blogsmith.SEOMetadata, error) {
				got = req
				return &blogsmith.SEOMetadata{Title: "T", Description: "D", Keywords: []string{"k"}, Robots: blogsmith.DefaultRobots}, nil
			},
		}

		rec := do(t, s.Handler(), http.MethodPost, "/api/generate-seo",
			`{"title":"T","content":"<p>Body</p>","keyword":"k","description":"D","baseUrl":"https://example.com"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, &blogsmith.MetadataRequest{
			Title:       "T",
			Content:     "<p>Body</p>",
			Keyword:     "k",
			Description: "D",
			BaseURL:     "https://example.com",
		}, got)

		var resp bshttp.SEOResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "T", resp.SEOMetadata.Title)
		assert.Equal(t, "index, follow", resp.SEOMetadata.Robots)
	})

	t.Run("empty upstream reply is 500", func(t *testing.T) {
		t.Parallel()

		s := newServer(t, nil)
		s.Metadata = &mock.MetadataGenerator{
			GenerateMetadataFn: func(context.Context, *blogsmith.MetadataRequest) (*blogsmith.SEOMetadata, error) {
				return nil, blogsmith.Errorf(blogsmith.EEMPTY, "empty response from model")
			},
		}

		rec := do(t, s.Handler(), http.MethodPost, "/api/generate-seo", `{"title":"T","keyword":"k"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to generate SEO metadata.", decodeError(t, rec))
	})
}
