package main

import (
	"fmt"
	"strings"

	"github.com/open-contracting/ocdsindex"
	"github.com/open-contracting/ocdsindex/fs"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	batch, err := fs.ReadBatch(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ocdsindex.ErrorMessage(err))
		return err
	}

	if err := deps.Index.Index(deps.Ctx, batch); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ocdsindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d documents for %s (%s)\n",
		batch.Documents.Len(), batch.BaseURL, strings.Join(batch.Documents.Languages(), ", "))
	return nil
}

// Run executes the copy command.
func (c *CopyCmd) Run(deps *Dependencies) error {
	n, err := deps.Index.Copy(deps.Ctx, c.Source, c.Destination)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ocdsindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Copied %d documents from %s to %s\n", n, c.Source, c.Destination)
	return nil
}
