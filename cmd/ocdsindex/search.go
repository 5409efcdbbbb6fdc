package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/open-contracting/ocdsindex"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Index.Search(deps.Ctx, c.Lang, c.Query, ocdsindex.SearchOptions{
		BaseURL: c.BaseURL,
		Limit:   c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ocdsindex.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", formatTitle(r.Title, c.Width), r.URL)
	}
	return nil
}

// formatTitle truncates or pads a title to exactly width terminal columns.
func formatTitle(title string, width int) string {
	if width <= 0 {
		return title
	}
	return runewidth.FillRight(runewidth.Truncate(title, width, "…"), width)
}
