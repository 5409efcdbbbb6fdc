package ocdsindex

import (
	"time"
	"unicode/utf8"
)

// Batch is the transport format between a crawl and the index: every record
// of one documentation build, stamped with the build's base URL and the time
// the crawl was made.
type Batch struct {
	BaseURL   string      `json:"base_url"`
	CreatedAt int64       `json:"created_at"`
	Documents CrawlResult `json:"documents"`
}

// NewBatch returns a Batch created at the given time.
func NewBatch(baseURL string, documents CrawlResult, now time.Time) *Batch {
	return &Batch{
		BaseURL:   baseURL,
		CreatedAt: now.Unix(),
		Documents: documents,
	}
}

// Validate returns an error if the batch contains invalid fields.
func (b *Batch) Validate() error {
	if b.BaseURL == "" {
		return Errorf(EINVALID, "batch base URL required")
	}
	for lang := range b.Documents {
		if !IsLanguageCode(lang) {
			return Errorf(EINVALID, "invalid language code %q", lang)
		}
	}
	return nil
}

// IsIndexLanguage reports whether s can name a search index: exactly two
// lowercase ASCII letters. Crawls accept any two-character directory name,
// but only these languages can be indexed.
func IsIndexLanguage(s string) bool {
	return len(s) == 2 && isLowerASCII(s[0]) && isLowerASCII(s[1])
}

func isLowerASCII(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// IsLanguageCode reports whether s looks like an ISO 639-1 code: exactly
// two characters.
func IsLanguageCode(s string) bool {
	return utf8.RuneCountInString(s) == 2
}
