package generate_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/blogsmith"
	"github.com/fwojciec/blogsmith/generate"
	"github.com/stretchr/testify/assert"
)

func TestBuildTitlePrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes keyword and overview", func(t *testing.T) {
		t.Parallel()

		p := generate.BuildTitlePrompt(&blogsmith.TitleRequest{Keyword: "remote work", Overview: "for managers"})

		assert.Contains(t, p.User, "Target keyword: remote work")
		assert.Contains(t, p.User, "Article overview: for managers")
		assert.Contains(t, p.User, `"titles"`)
		assert.NotEmpty(t, p.System)
		assert.True(t, p.JSON)
	})

	t.Run("omits empty overview", func(t *testing.T) {
		t.Parallel()

		p := generate.BuildTitlePrompt(&blogsmith.TitleRequest{Keyword: "k"})

		assert.NotContains(t, p.User, "Article overview")
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		req := &blogsmith.TitleRequest{Keyword: "k", Overview: "o"}

		assert.Equal(t, generate.BuildTitlePrompt(req), generate.BuildTitlePrompt(req))
	})
}

func TestBuildArticlePrompt(t *testing.T) {
	t.Parallel()

	p := generate.BuildArticlePrompt(&blogsmith.ArticleRequest{
		Title:       "Remote Work 101",
		Keyword:     "remote work",
		Description: "beginner angle",
		Overview:    "cover tooling",
	})

	assert.Equal(t, blogsmith.TaskArticle, p.Task)
	assert.Contains(t, p.User, "Title: Remote Work 101")
	assert.Contains(t, p.User, "Angle: beginner angle")
	assert.Contains(t, p.User, "Overview from the author: cover tooling")
	assert.Contains(t, p.User, `"subheadings"`)
	assert.Equal(t, generate.ArticleMaxTokens, p.MaxOutputTokens)
}

func TestBuildMetadataPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes excerpt and canonical URL", func(t *testing.T) {
		t.Parallel()

		p := generate.BuildMetadataPrompt(&blogsmith.MetadataRequest{
			Title:   "T",
			Keyword: "k",
			BaseURL: "https://example.com/t",
		}, "article body")

		assert.Contains(t, p.User, "<article>\narticle body\n</article>")
		assert.Contains(t, p.User, "Canonical URL: https://example.com/t")
		assert.Equal(t, generate.MetadataTemperature, p.Temperature)
	})

	t.Run("omits empty excerpt", func(t *testing.T) {
		t.Parallel()

		p := generate.BuildMetadataPrompt(&blogsmith.MetadataRequest{Title: "T", Keyword: "k"}, "")

		assert.NotContains(t, p.User, "<article>")
		assert.NotContains(t, p.User, "Canonical URL:")
	})
}

func TestTemperatures(t *testing.T) {
	t.Parallel()

	assert.Greater(t, generate.TitleTemperature, generate.ArticleTemperature)
	assert.Greater(t, generate.ArticleTemperature, generate.MetadataTemperature)
	assert.Less(t, generate.MetadataMaxTokens, generate.ArticleMaxTokens)
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	t.Run("returns short text unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello", generate.Excerpt("  hello ", 10))
	})

	t.Run("truncates by runes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "日本語", generate.Excerpt("日本語のテキスト", 3))
	})

	t.Run("returns empty for non-positive max", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, generate.Excerpt(strings.Repeat("x", 5), 0))
	})
}
