package ocdsindex

import "path/filepath"

// Allower decides whether a file participates in a crawl.
type Allower interface {
	// Allow receives the path of the directory containing the file and the
	// file's basename.
	Allow(dir, name string) bool
}

// AllowAll admits every file.
type AllowAll struct{}

// Allow always returns true.
func (AllowAll) Allow(dir, name string) bool {
	return true
}

// DefaultExcludedDirs are the directories of a Sphinx documentation build that
// hold non-content pages.
var DefaultExcludedDirs = []string{"404", "privacy-notice"}

// ExcludeDirs rejects files whose immediate containing directory has one of
// the given basenames. Matching is on the filesystem path, not the URL.
type ExcludeDirs map[string]struct{}

// NewExcludeDirs returns an ExcludeDirs for the given directory basenames.
func NewExcludeDirs(names ...string) ExcludeDirs {
	dirs := make(ExcludeDirs, len(names))
	for _, name := range names {
		dirs[name] = struct{}{}
	}
	return dirs
}

// Allow returns false if the basename of dir is excluded.
func (e ExcludeDirs) Allow(dir, name string) bool {
	_, excluded := e[filepath.Base(dir)]
	return !excluded
}
