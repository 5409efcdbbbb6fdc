package ocdsindex

import "golang.org/x/net/html"

// Extractor turns one parsed HTML page into the records to index.
type Extractor interface {
	// Extract receives the page's canonical remote URL and the root node of
	// its parsed document. It may modify the tree. An empty result is valid.
	Extract(url string, root *html.Node) ([]Record, error)
}

// ExtractorFunc adapts an ordinary function to the Extractor interface.
type ExtractorFunc func(url string, root *html.Node) ([]Record, error)

// Extract calls f(url, root).
func (f ExtractorFunc) Extract(url string, root *html.Node) ([]Record, error) {
	return f(url, root)
}
