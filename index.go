package ocdsindex

import (
	"context"
	"time"
)

// RetentionPeriod is how long an indexed document lives before Expire
// removes it, unless its base URL is excluded.
const RetentionPeriod = 180 * 24 * time.Hour

// Analyzers maps a language code to the name of the text analyzer used for
// its full-text fields. Languages without an entry use AnalyzerStandard.
var Analyzers = map[string]string{
	"en": "english",
	"es": "spanish",
	"fr": "french",
	"it": "italian",
}

// AnalyzerStandard is the language-neutral analyzer.
const AnalyzerStandard = "standard"

// Analyzer returns the analyzer name for a language code.
func Analyzer(lang string) string {
	if name, ok := Analyzers[lang]; ok {
		return name
	}
	return AnalyzerStandard
}

// IndexService represents a search index holding one index per language.
type IndexService interface {
	// Index ensures an index exists for each language of the batch, removes
	// the documents previously indexed under the batch's base URL and adds
	// the batch's documents keyed by URL.
	Index(ctx context.Context, batch *Batch) error

	// Expire deletes documents created before the given time, except those
	// whose base URL is in exclude. It returns the number of deleted documents.
	Expire(ctx context.Context, before time.Time, exclude []string) (int, error)

	// Copy adds a document with the destination base URL for each document
	// with the source base URL, substituting destination for source in the
	// URL and base URL. It returns the number of copied documents.
	Copy(ctx context.Context, source, destination string) (int, error)

	// Search returns documents in the language's index matching the query,
	// best match first.
	// Returns ENOTFOUND if no index exists for the language.
	Search(ctx context.Context, lang, query string, opts SearchOptions) ([]SearchResult, error)

	// Languages returns the language codes that have an index.
	Languages(ctx context.Context) ([]string, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Restrict results to one base URL.
	BaseURL string `json:"baseUrl,omitempty"`

	// Maximum number of results to return.
	Limit int `json:"limit,omitempty"`
}

// SearchResult represents an indexed document matching a query.
type SearchResult struct {
	Record
	BaseURL   string  `json:"base_url"`
	CreatedAt int64   `json:"created_at"`
	Score     float64 `json:"score"`
}
