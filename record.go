package ocdsindex

import "sort"

// Record is one indexable unit: usually one section of a documentation page.
type Record struct {
	// URL is the absolute remote URL, which may carry a fragment identifier.
	// It is unique within a crawl of one base URL.
	URL string `json:"url"`

	// Title combines the page title and the section heading.
	Title string `json:"title"`

	// Text is the newline-joined plain text of the section, without the
	// heading or the text of nested sections.
	Text string `json:"text"`
}

// CrawlResult maps a two-letter language code to the records crawled for
// that language, in crawl order.
type CrawlResult map[string][]Record

// Languages returns the language codes in sorted order.
func (r CrawlResult) Languages() []string {
	langs := make([]string, 0, len(r))
	for lang := range r {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Len returns the total number of records across languages.
func (r CrawlResult) Len() int {
	var n int
	for _, records := range r {
		n += len(records)
	}
	return n
}
