//go:build unix

package term

import (
	"io"
	"os"
)

// TTY bundles raw mode control, event reading and rendering for one
// terminal. It implements the TTY dependency of the edit package.
type TTY struct {
	*Writer
	in     *os.File
	reader Reader
}

// NewTTY returns a TTY reading from in and rendering to out. In an
// interactive shell in is the terminal and out is typically stderr, leaving
// stdout to the commands being run.
func NewTTY(in *os.File, out io.Writer) *TTY {
	return &TTY{Writer: NewWriter(out), in: in}
}

// Setup puts the terminal in the mode suitable for the line editor, per
// Setup.
func (t *TTY) Setup() (func() error, error) {
	return Setup(t.in)
}

// ReadEvent reads one event, creating the underlying Reader on first use.
func (t *TTY) ReadEvent() (Event, error) {
	if t.reader == nil {
		rd, err := NewReader(t.in)
		if err != nil {
			return nil, err
		}
		t.reader = rd
	}
	return t.reader.ReadEvent()
}

// Close aborts any outstanding read and releases the reader. It does not
// close the underlying file.
func (t *TTY) Close() {
	if t.reader != nil {
		t.reader.Close()
		t.reader = nil
	}
}
