// Package output writes search results to the console.
package output

import (
	"bufio"
	"io"
)

// Writer prints matched lines verbatim, one per line, with no decoration.
// Output is buffered; call Flush when done.
type Writer struct {
	out     *bufio.Writer
	written int
}

// New creates a new output Writer.
func New(out io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(out)}
}

// Line writes a single line followed by a newline.
func (w *Writer) Line(line string) error {
	if _, err := w.out.WriteString(line); err != nil {
		return err
	}
	if err := w.out.WriteByte('\n'); err != nil {
		return err
	}
	w.written++
	return nil
}

// Lines writes every line in order and flushes.
func (w *Writer) Lines(lines []string) error {
	for _, line := range lines {
		if err := w.Line(line); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.out.Flush()
}

// Count returns how many lines have been written.
func (w *Writer) Count() int {
	return w.written
}
