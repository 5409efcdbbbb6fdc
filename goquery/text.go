package goquery

import "strings"

// NormalizeText splits text into lines, collapses runs of whitespace within
// each line to a single space, trims each line, drops empty lines and joins
// the rest with newlines.
//
// Example: "  foo   bar\n\n  baz  " → "foo bar\nbaz"
func NormalizeText(text string) string {
	var lines []string
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// isLineBreak reports whether r ends a line. "\r\n" yields an empty field
// between the two runes, which FieldsFunc drops.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
