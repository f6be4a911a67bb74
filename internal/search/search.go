// Package search implements literal, line-oriented substring search over an
// in-memory text buffer.
//
// Results are substrings of the searched contents, never copies, so they stay
// valid for as long as the caller keeps the contents alive.
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseSensitive returns, in order, every line of contents that contains
// query byte for byte. An empty query matches every line.
func CaseSensitive(query, contents string) []string {
	var matched []string
	for line := range Lines(contents) {
		if strings.Contains(line, query) {
			matched = append(matched, line)
		}
	}
	return matched
}

// CaseInsensitive returns, in order, every line of contents whose lowercase
// form contains the lowercase form of query. The returned lines are the
// original, unmodified lines.
func CaseInsensitive(query, contents string) []string {
	// A Caser carries state, so each call gets its own.
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var matched []string
	for line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			matched = append(matched, line)
		}
	}
	return matched
}

// Search dispatches to CaseSensitive or CaseInsensitive.
func Search(query, contents string, caseSensitive bool) []string {
	if caseSensitive {
		return CaseSensitive(query, contents)
	}
	return CaseInsensitive(query, contents)
}
