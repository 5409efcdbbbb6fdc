// Package fs crawls documentation builds on the local filesystem.
package fs

import (
	"bytes"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/open-contracting/ocdsindex"
	"golang.org/x/net/html"
)

// Extension is the extension of the files that are parsed and extracted.
// Other files (images, scripts, etc.) are walked but yield no records.
const Extension = ".html"

// Crawler walks a documentation build in which each top-level directory named
// by a two-letter language code holds the pages for that language.
type Crawler struct {
	// Root is the directory of the documentation build.
	Root string

	// BaseURL is the remote URL at which the contents of Root are served.
	BaseURL string

	// Extractor produces records from each parsed page.
	Extractor ocdsindex.Extractor

	// Allower decides which files to crawl. Nil admits every file.
	Allower ocdsindex.Allower
}

// NewCrawler creates a new Crawler.
func NewCrawler(root, baseURL string, extractor ocdsindex.Extractor, allower ocdsindex.Allower) *Crawler {
	return &Crawler{
		Root:      root,
		BaseURL:   baseURL,
		Extractor: extractor,
		Allower:   allower,
	}
}

// Crawl returns the records of every admitted page, grouped by language.
// Language directories are visited in name order so that two crawls of the
// same tree return identical results. The first unreadable or unparseable
// page aborts the crawl.
func (c *Crawler) Crawl() (ocdsindex.CrawlResult, error) {
	// os.ReadDir sorts entries by filename.
	entries, err := os.ReadDir(c.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	allower := c.Allower
	if allower == nil {
		allower = ocdsindex.AllowAll{}
	}

	result := make(ocdsindex.CrawlResult)
	for _, entry := range entries {
		lang := entry.Name()
		if !ocdsindex.IsLanguageCode(lang) {
			continue
		}

		dir := filepath.Join(c.Root, lang)
		if !isDir(dir, entry) {
			continue
		}

		// WalkDir doesn't follow a symbolic link at its root, so the target is
		// walked and paths are mapped back under dir.
		walkRoot, err := filepath.EvalSymlinks(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve directory: %w", err)
		}

		err = filepath.WalkDir(walkRoot, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(walkRoot, path)
			if err != nil {
				return err
			}
			path = filepath.Join(dir, rel)

			if d.IsDir() || !allower.Allow(filepath.Dir(path), d.Name()) {
				return nil
			}

			records, err := c.crawlFile(path)
			if err != nil {
				return err
			}

			if _, ok := result[lang]; !ok {
				result[lang] = []ocdsindex.Record{}
			}
			result[lang] = append(result[lang], records...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// crawlFile parses an HTML file, computes its remote URL and returns the
// records extracted from it.
func (c *Crawler) crawlFile(path string) ([]ocdsindex.Record, error) {
	if !strings.HasSuffix(path, Extension) {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	rel, err := filepath.Rel(c.Root, path)
	if err != nil {
		return nil, err
	}

	remote, err := RemoteURL(c.BaseURL, filepath.ToSlash(rel))
	if err != nil {
		return nil, err
	}

	// The parser accepts any input, so an empty document is the one case
	// rejected as malformed.
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ocdsindex.Errorf(ocdsindex.EINVALID, "failed to parse %s: document is empty", path)
	}

	root, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, ocdsindex.Errorf(ocdsindex.EINVALID, "failed to parse %s: %v", path, err)
	}

	records, err := c.Extractor.Extract(remote, root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// isDir reports whether the entry is a directory, following symbolic links.
func isDir(path string, entry iofs.DirEntry) bool {
	if entry.Type()&iofs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
