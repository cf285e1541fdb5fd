package output

import (
	"fmt"
	"io"
)

// LineWriter writes space-separated items, wrapping before a line would
// exceed its maximum length.
type LineWriter struct {
	w             io.Writer
	indent        string
	lineLength    int
	maxLineLength int
	err           error
}

// NewLineWriter creates a line writer. Every line starts with indent.
func NewLineWriter(w io.Writer, maxLineLength int, indent string) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		indent:        indent,
		maxLineLength: maxLineLength,
	}
}

// Write writes s, adding a space separator or a line break if needed.
func (o *LineWriter) Write(s string) {
	if len(s) == 0 {
		return
	}
	switch {
	case o.lineLength == 0:
		o.print(o.indent)
		o.lineLength = len(o.indent)
	case o.lineLength+1+len(s) > o.maxLineLength:
		o.print("\n" + o.indent)
		o.lineLength = len(o.indent)
	default:
		o.print(" ")
		o.lineLength++
	}

	o.print(s)
	o.lineLength += len(s)
}

// NewLine ends the current line, if any.
func (o *LineWriter) NewLine() {
	if o.lineLength == 0 {
		return
	}
	o.print("\n")
	o.lineLength = 0
}

// Err returns the first write error.
func (o *LineWriter) Err() error {
	return o.err
}

func (o *LineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
}
