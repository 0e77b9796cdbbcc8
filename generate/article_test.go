package generate_test

import (
	"context"
	"testing"

	"github.com/fwojciec/blogsmith"
	"github.com/fwojciec/blogsmith/generate"
	"github.com/fwojciec/blogsmith/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleReply = `{
  "title": "Remote Work 101",
  "sections": [
    {
      "heading": "Introduction",
      "content": "Remote work is here to stay.\nThis guide covers the basics.",
      "subheadings": [
        {"title": "Who this is for", "content": "New remote workers."}
      ]
    },
    {"heading": "Conclusion", "content": "Start small."}
  ]
}`

func TestArticleService_GenerateArticle(t *testing.T) {
	t.Parallel()

	t.Run("returns parsed article with nested subsections", func(t *testing.T) {
		t.Parallel()

		var got *blogsmith.Prompt
		svc := generate.NewArticleService(&mock.Completer{
			CompleteFn: func(_ context.Context, p *blogsmith.Prompt) (string, error) {
				got = p
				return articleReply, nil
			},
		})

		article, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{
			Title:   "Remote Work 101",
			Keyword: "remote work",
		})

		require.NoError(t, err)
		assert.Equal(t, "Remote Work 101", article.Title)
		require.Len(t, article.Sections, 2)
		assert.Equal(t, "Introduction", article.Sections[0].Heading)
		require.Len(t, article.Sections[0].Subheadings, 1)
		assert.Equal(t, "Who this is for", article.Sections[0].Subheadings[0].Title)
		assert.Nil(t, article.SEOMetadata)
		assert.Equal(t, blogsmith.TaskArticle, got.Task)
	})

	t.Run("ignores GenerateSEO", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(mock.Reply(articleReply))

		article, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{
			Title:       "T",
			Keyword:     "k",
			GenerateSEO: true,
		})

		require.NoError(t, err)
		assert.Nil(t, article.SEOMetadata)
	})

	t.Run("returns EINVALID when title missing", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(nil)

		_, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Keyword: "k"})

		assert.Equal(t, blogsmith.EINVALID, blogsmith.ErrorCode(err))
		assert.Equal(t, "title required", blogsmith.ErrorMessage(err))
	})

	t.Run("returns EINVALID when keyword missing", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(nil)

		_, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Title: "T"})

		assert.Equal(t, blogsmith.EINVALID, blogsmith.ErrorCode(err))
		assert.Equal(t, "keyword required", blogsmith.ErrorMessage(err))
	})

	t.Run("returns EINVALID for nil request", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(nil)

		_, err := svc.GenerateArticle(context.Background(), nil)

		assert.Equal(t, blogsmith.EINVALID, blogsmith.ErrorCode(err))
	})

	t.Run("returns EEMPTY for empty reply", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(mock.Reply(""))

		_, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Title: "T", Keyword: "k"})

		assert.Equal(t, blogsmith.EEMPTY, blogsmith.ErrorCode(err))
	})

	t.Run("returns EUNPARSEABLE for prose reply", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(mock.Reply("Sorry, I can't write that article."))

		_, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Title: "T", Keyword: "k"})

		assert.Equal(t, blogsmith.EUNPARSEABLE, blogsmith.ErrorCode(err))
	})

	t.Run("returns EMALFORMED when title missing from reply", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(mock.Reply(`{"sections":[{"heading":"H","content":"C"}]}`))

		_, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Title: "T", Keyword: "k"})

		assert.Equal(t, blogsmith.EMALFORMED, blogsmith.ErrorCode(err))
		assert.Contains(t, blogsmith.ErrorMessage(err), "missing title")
	})

	t.Run("returns EMALFORMED when sections missing from reply", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(mock.Reply(`{"title":"T"}`))

		_, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Title: "T", Keyword: "k"})

		assert.Equal(t, blogsmith.EMALFORMED, blogsmith.ErrorCode(err))
		assert.Contains(t, blogsmith.ErrorMessage(err), "missing sections")
	})

	t.Run("returns EMALFORMED when sections is an object", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(mock.Reply(`{"title":"T","sections":{"heading":"H"}}`))

		_, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Title: "T", Keyword: "k"})

		assert.Equal(t, blogsmith.EMALFORMED, blogsmith.ErrorCode(err))
	})

	t.Run("returns EMALFORMED for empty sections", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(mock.Reply(`{"title":"T","sections":[]}`))

		_, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Title: "T", Keyword: "k"})

		assert.Equal(t, blogsmith.EMALFORMED, blogsmith.ErrorCode(err))
	})

	t.Run("returns EMALFORMED for section without content", func(t *testing.T) {
		t.Parallel()

		svc := generate.NewArticleService(mock.Reply(`{"title":"T","sections":[{"heading":"H","content":""}]}`))

		_, err := svc.GenerateArticle(context.Background(), &blogsmith.ArticleRequest{Title: "T", Keyword: "k"})

		assert.Equal(t, blogsmith.EMALFORMED, blogsmith.ErrorCode(err))
		assert.Contains(t, blogsmith.ErrorMessage(err), "section 1 content required")
	})
}
