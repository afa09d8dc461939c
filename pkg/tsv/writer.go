package tsv

import (
	"bufio"
	"io"
)

// Writer writes records as tab-separated lines. Tabs and line breaks
// inside fields are replaced with spaces, so every record stays on one
// line and Reader can read it back.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a new Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes a single record.
func (w *Writer) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			if _, err := w.w.WriteRune('\t'); err != nil {
				return err
			}
		}
		for _, r := range field {
			switch r {
			case '\t', '\n', '\r':
				r = ' '
			}
			if _, err := w.w.WriteRune(r); err != nil {
				return err
			}
		}
	}
	_, err := w.w.WriteRune('\n')
	return err
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
