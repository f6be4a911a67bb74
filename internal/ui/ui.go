// Package ui renders diagnostics for the terminal.
//
// Only stderr is ever styled. Matched lines on stdout stay byte-for-byte
// identical to the input.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// UseColor reports whether diagnostics written to w should be styled.
func UseColor(w io.Writer) bool {
	return IsTTY(w) && !DetectNoColor()
}
