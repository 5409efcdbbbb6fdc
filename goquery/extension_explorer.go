package goquery

import (
	"github.com/open-contracting/ocdsindex"
	"golang.org/x/net/html"
)

var _ ocdsindex.Extractor = (*ExtensionExplorerExtractor)(nil)

// ExtensionExplorerURL is the base URL of the Extension Explorer.
const ExtensionExplorerURL = "https://extensions.open-contracting.org"

// ExtensionExplorerExtractor extracts records from pages built by the
// Extension Explorer. The Extension Explorer is not indexed yet, so it
// yields no records.
type ExtensionExplorerExtractor struct{}

// NewExtensionExplorerExtractor creates a new ExtensionExplorerExtractor.
func NewExtensionExplorerExtractor() *ExtensionExplorerExtractor {
	return &ExtensionExplorerExtractor{}
}

// Extract returns no records.
func (e *ExtensionExplorerExtractor) Extract(url string, root *html.Node) ([]ocdsindex.Record, error) {
	return nil, nil
}
