// Package goquery extracts indexable records from parsed documentation pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/open-contracting/ocdsindex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _ ocdsindex.Extractor = (*SphinxExtractor)(nil)

// Class tokens of the Sphinx HTML builder.
const (
	// SectionClass marks an element holding one section of a page.
	SectionClass = "section"

	// DefaultCodeBlockClass marks the container of a highlighted JSON code
	// block (code-block, literalinclude, jsoninclude directives).
	DefaultCodeBlockClass = "highlight-json"

	// DefaultSkipClass marks a section whose only content is a generated
	// JSON fragment.
	DefaultSkipClass = "expandjson"
)

// titleSeparator separates the page title from the site-wide suffix in <title>.
const titleSeparator = "—"

// headerLink is the anchor-link decoration Sphinx appends to headings.
const headerLink = "¶"

// SphinxExtractor extracts one record per section of a page built by Sphinx.
type SphinxExtractor struct {
	// CodeBlockClass marks subtrees whose text is never indexed.
	CodeBlockClass string

	// SkipClass marks sections that yield no record.
	SkipClass string
}

// NewSphinxExtractor creates a new SphinxExtractor with the default class markers.
func NewSphinxExtractor() *SphinxExtractor {
	return &SphinxExtractor{
		CodeBlockClass: DefaultCodeBlockClass,
		SkipClass:      DefaultSkipClass,
	}
}

// Extract returns a record for each section of the page in document order.
// The record's URL is the page URL with the section's id as fragment. A
// section without an id, a section without a heading and a page without a
// <title> are defects of the documentation and return EINVALID.
func (e *SphinxExtractor) Extract(url string, root *html.Node) ([]ocdsindex.Record, error) {
	doc := goquery.NewDocumentFromNode(root)

	// Don't index the text content of script and style elements, or of code samples.
	doc.Find("script, style").Remove()
	if e.CodeBlockClass != "" {
		doc.Find("div." + e.CodeBlockClass).Remove()
	}

	sections := doc.Find("." + SectionClass)

	var records []ocdsindex.Record
	var title string
	var titled bool
	for i := range sections.Nodes {
		section := sections.Eq(i)
		if e.SkipClass != "" && section.HasClass(e.SkipClass) {
			continue
		}

		if !titled {
			t, err := pageTitle(doc)
			if err != nil {
				return nil, ocdsindex.Errorf(ocdsindex.EINVALID, "%s: %s", url, ocdsindex.ErrorMessage(err))
			}
			title, titled = t, true
		}

		heading := section.ChildrenFiltered("h1, h2, h3, h4, h5, h6").First()
		if heading.Length() == 0 {
			return nil, ocdsindex.Errorf(ocdsindex.EINVALID, "%s: section %d has no heading", url, i)
		}
		sectionTitle := strings.TrimRight(heading.Text(), headerLink)

		id, ok := section.Attr("id")
		if !ok {
			return nil, ocdsindex.Errorf(ocdsindex.EINVALID, "%s: section %q has no id", url, sectionTitle)
		}

		recordTitle := title
		if sectionTitle != title {
			recordTitle = title + " - " + sectionTitle
		}

		// A heading immediately followed by a subheading has no text, but
		// some phrases occur only in headings, so the record is kept.
		records = append(records, ocdsindex.Record{
			URL:   url + "#" + id,
			Title: recordTitle,
			Text:  sectionText(section),
		})
	}

	return records, nil
}

// pageTitle returns the text of <title> before the site-wide suffix.
func pageTitle(doc *goquery.Document) (string, error) {
	sel := doc.Find("title").First()
	if sel.Length() == 0 {
		return "", ocdsindex.Errorf(ocdsindex.EINVALID, "page has no title")
	}
	title, _, _ := strings.Cut(sel.Text(), titleSeparator)
	return strings.TrimSpace(title), nil
}

// sectionText returns the normalized text of a section's direct children,
// leaving out headings and nested sections, which are indexed separately.
func sectionText(section *goquery.Selection) string {
	var parts []string
	section.Contents().Each(func(_ int, child *goquery.Selection) {
		node := child.Get(0)

		var text string
		switch node.Type {
		case html.TextNode:
			text = node.Data
		case html.ElementNode:
			if isHeading(node) || child.HasClass(SectionClass) {
				return
			}
			text = child.Text()
		default:
			return
		}

		parts = append(parts, text)
	})
	return NormalizeText(strings.Join(parts, "\n"))
}

func isHeading(node *html.Node) bool {
	switch node.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}
