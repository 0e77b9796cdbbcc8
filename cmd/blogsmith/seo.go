package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/blogsmith"
)

// Run executes the seo command.
func (c *SEOCmd) Run(deps *Dependencies) error {
	var content string
	if c.ContentFile != "" {
		b, err := os.ReadFile(c.ContentFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", c.ContentFile, err)
		}
		content = string(b)
	}

	meta, err := deps.Metadata.GenerateMetadata(deps.Ctx, &blogsmith.MetadataRequest{
		Title:       c.Title,
		Content:     content,
		Keyword:     c.Keyword,
		Description: c.Description,
		BaseURL:     c.BaseURL,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogsmith.ErrorMessage(err))
		return err
	}
	return writeJSON(deps.Stdout, meta)
}
