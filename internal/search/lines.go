package search

import (
	"iter"
	"strings"
)

// Lines yields the lines of contents in order.
//
// A line ends at '\n', and a '\r' directly before it is dropped. The last
// line may be unterminated. A trailing newline does not start an extra empty
// line, so "a\n" and "a" both yield just "a", and "" yields nothing.
//
// Every yielded string is a substring of contents and shares its memory.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := contents
		for len(rest) > 0 {
			line := rest
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				line, rest = rest[:i], rest[i+1:]
			} else {
				rest = ""
			}
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
		}
	}
}
