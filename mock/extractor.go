package mock

import (
	"github.com/open-contracting/ocdsindex"
	"golang.org/x/net/html"
)

var (
	_ ocdsindex.Extractor = (*Extractor)(nil)
	_ ocdsindex.Allower   = (*Allower)(nil)
)

// Extractor is a mock implementation of ocdsindex.Extractor.
type Extractor struct {
	ExtractFn func(url string, root *html.Node) ([]ocdsindex.Record, error)
}

func (e *Extractor) Extract(url string, root *html.Node) ([]ocdsindex.Record, error) {
	return e.ExtractFn(url, root)
}

// Allower is a mock implementation of ocdsindex.Allower.
type Allower struct {
	AllowFn func(dir, name string) bool
}

func (a *Allower) Allow(dir, name string) bool {
	return a.AllowFn(dir, name)
}
