package term

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

// Writer renders the editor state to a terminal with VT100 sequences. The
// rendering strategy is the simplest one that works for a single line:
// return to column 0, erase the line, write the prompt and content, then
// move the cursor back to where the dot is.
type Writer struct {
	file io.Writer
}

// NewWriter returns a Writer that writes to the given file.
func NewWriter(f io.Writer) *Writer {
	return &Writer{f}
}

// Render draws the prompt and buffer content, placing the terminal cursor at
// the dot. The dot is an index in runes, in [0, number of runes in content].
func (w *Writer) Render(prompt, content string, dot int) error {
	var buf bytes.Buffer
	buf.WriteString("\r\033[K")
	buf.WriteString(prompt)
	buf.WriteString(content)
	if back := utf8.RuneCountInString(content) - dot; back > 0 {
		fmt.Fprintf(&buf, "\033[%dD", back)
	}
	_, err := w.file.Write(buf.Bytes())
	return err
}

// RenderSearch draws the reverse incremental search line, showing the query
// and the current candidate.
func (w *Writer) RenderSearch(query, candidate string) error {
	var buf bytes.Buffer
	buf.WriteString("\r\033[K")
	fmt.Fprintf(&buf, "(reverse-i-search)'%s': %s", query, candidate)
	_, err := w.file.Write(buf.Bytes())
	return err
}

// Newline finishes the current line. In raw mode the terminal does not
// translate NL to CR NL, so both are written.
func (w *Writer) Newline() error {
	_, err := io.WriteString(w.file, "\r\n")
	return err
}
