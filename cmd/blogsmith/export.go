package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/blogsmith"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	article, err := readArticle(c.Article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogsmith.ErrorMessage(err))
		return err
	}

	doc, err := deps.Exporter.Export(article, blogsmith.ExportFormat(c.Format), blogsmith.ExportOptions{
		IncludeSEO:    !c.NoSEO,
		IncludeStyles: !c.NoStyles,
		Filename:      c.Filename,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogsmith.ErrorMessage(err))
		return err
	}

	path := filepath.Join(c.Out, filepath.Base(doc.Filename))
	if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}

// readArticle loads an article from a JSON file. Both a bare article and
// the {"article": ...} body returned by the HTTP API are accepted.
func readArticle(path string) (*blogsmith.Article, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var wrapped struct {
		Article *blogsmith.Article `json:"article"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return nil, blogsmith.Errorf(blogsmith.EINVALID, "%s is not valid JSON: %v", path, err)
	}
	if wrapped.Article != nil {
		return wrapped.Article, nil
	}

	var article blogsmith.Article
	if err := json.Unmarshal(b, &article); err != nil {
		return nil, blogsmith.Errorf(blogsmith.EINVALID, "%s is not an article: %v", path, err)
	}
	return &article, nil
}
