package main

import (
	"encoding/json"
	"fmt"

	"github.com/open-contracting/ocdsindex"
	"github.com/open-contracting/ocdsindex/bloom"
	"github.com/open-contracting/ocdsindex/fs"
	"github.com/open-contracting/ocdsindex/goquery"
	ocdsslog "github.com/open-contracting/ocdsindex/slog"
)

// Run executes the sphinx command.
func (c *SphinxCmd) Run(deps *Dependencies) error {
	excluded := c.ExcludeDir
	if len(excluded) == 0 {
		excluded = deps.Config.excludedDirs()
	}

	return crawl(deps, c.Directory, c.BaseURL, goquery.NewSphinxExtractor(), ocdsindex.NewExcludeDirs(excluded...), c.Output)
}

// Run executes the extension-explorer command.
func (c *ExtensionExplorerCmd) Run(deps *Dependencies) error {
	return crawl(deps, c.Directory, goquery.ExtensionExplorerURL, goquery.NewExtensionExplorerExtractor(), ocdsindex.AllowAll{}, c.Output)
}

// crawl crawls directory and writes the resulting batch to output, or to
// stdout if output is empty.
func crawl(deps *Dependencies, directory, baseURL string, extractor ocdsindex.Extractor, allower ocdsindex.Allower, output string) error {
	if deps.Logger != nil {
		extractor = ocdsslog.NewLoggingExtractor(extractor, deps.Logger)
	}

	result, err := fs.NewCrawler(directory, baseURL, extractor, allower).Crawl()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ocdsindex.ErrorMessage(err))
		return err
	}

	for _, lang := range result.Languages() {
		if !ocdsindex.IsIndexLanguage(lang) {
			fmt.Fprintf(deps.Stderr, "warning: language directory %q cannot be indexed\n", lang)
		}
	}

	for _, url := range bloom.Duplicates(result) {
		fmt.Fprintf(deps.Stderr, "warning: duplicate URL %s\n", url)
	}

	batch := ocdsindex.NewBatch(baseURL, result, deps.Now())

	if output != "" {
		if err := fs.WriteBatch(output, batch); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ocdsindex.ErrorMessage(err))
			return err
		}
		return nil
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(batch)
}
