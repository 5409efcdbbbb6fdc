// Package bloom detects duplicate URLs in a crawl using Bloom filters.
package bloom

import (
	"sort"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/open-contracting/ocdsindex"
)

// falsePositiveRate is the acceptable false positive rate of the pre-filter.
// False positives only cost an exact recount.
const falsePositiveRate = 0.01

// Filter wraps a Bloom filter for URL deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a URL to the filter.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// TestAndAdd reports whether the URL might already be in the filter, then adds it.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}

// Duplicates returns, in sorted order, the record URLs that occur more than
// once in a crawl result. Records are keyed by URL in the index, so a
// duplicate silently replaces another section.
func Duplicates(result ocdsindex.CrawlResult) []string {
	n := result.Len()
	if n == 0 {
		return nil
	}

	f := NewFilter(uint(n), falsePositiveRate)
	candidates := make(map[string]int)
	for _, lang := range result.Languages() {
		for _, record := range result[lang] {
			if f.TestAndAdd(record.URL) {
				candidates[record.URL] = 0
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	for _, records := range result {
		for _, record := range records {
			if _, ok := candidates[record.URL]; ok {
				candidates[record.URL]++
			}
		}
	}

	var duplicates []string
	for url, count := range candidates {
		if count > 1 {
			duplicates = append(duplicates, url)
		}
	}
	sort.Strings(duplicates)
	return duplicates
}
