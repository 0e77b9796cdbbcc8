package main

import (
	"fmt"

	"github.com/fwojciec/blogsmith"
)

// Run executes the titles command.
func (c *TitlesCmd) Run(deps *Dependencies) error {
	titles, err := deps.Titles.GenerateTitles(deps.Ctx, &blogsmith.TitleRequest{
		Keyword:  c.Keyword,
		Overview: c.Overview,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogsmith.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, titles)
	}
	for i, t := range titles {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, t.Title)
		if t.Description != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", t.Description)
		}
	}
	return nil
}
