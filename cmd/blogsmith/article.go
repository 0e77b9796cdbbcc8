package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/blogsmith"
)

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.GenerateArticle(deps.Ctx, &blogsmith.ArticleRequest{
		Title:       c.Title,
		Description: c.Description,
		Keyword:     c.Keyword,
		Overview:    c.Overview,
		GenerateSEO: !c.NoSEO,
		BaseURL:     c.BaseURL,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogsmith.ErrorMessage(err))
		return err
	}

	if c.Out == "" {
		return writeJSON(deps.Stdout, article)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.Out, err)
	}
	if err := writeJSON(f, article); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s (%d sections)\n", c.Out, len(article.Sections))
	return nil
}
