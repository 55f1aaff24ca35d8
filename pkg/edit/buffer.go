package edit

import "errors"

// ErrOutOfRange is returned by Buffer operations when an index or count
// violates the buffer bounds. Such calls indicate a bug in the caller, so the
// buffer reports them instead of silently clamping.
var ErrOutOfRange = errors.New("index out of range")

// Buffer is an editable line: a sequence of runes and a dot (the cursor,
// more precisely the position where insertions and deletions happen). The
// zero value is an empty line with the dot at 0.
//
// The invariant 0 <= dot <= length <= capacity holds after every operation.
type Buffer struct {
	runes []rune
	dot   int
}

// Insert inserts a rune at the dot, moving the dot past it.
func (b *Buffer) Insert(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.dot+1:], b.runes[b.dot:])
	b.runes[b.dot] = r
	b.dot++
}

// DeleteForward removes n runes starting at the dot. The dot does not move.
func (b *Buffer) DeleteForward(n int) error {
	if n < 0 || b.dot+n > len(b.runes) {
		return ErrOutOfRange
	}
	b.runes = append(b.runes[:b.dot], b.runes[b.dot+n:]...)
	return nil
}

// DeleteBackward removes the n runes just before the dot, moving the dot to
// the start of the removed range.
func (b *Buffer) DeleteBackward(n int) error {
	if n < 0 || b.dot-n < 0 {
		return ErrOutOfRange
	}
	b.runes = append(b.runes[:b.dot-n], b.runes[b.dot:]...)
	b.dot -= n
	return nil
}

// MoveTo sets the dot to i, an index in [0, Len()].
func (b *Buffer) MoveTo(i int) error {
	if i < 0 || i > len(b.runes) {
		return ErrOutOfRange
	}
	b.dot = i
	return nil
}

// SetContent replaces the entire content and places the dot at the end.
func (b *Buffer) SetContent(s string) {
	b.runes = append(b.runes[:0], []rune(s)...)
	b.dot = len(b.runes)
}

// String returns the content of the buffer.
func (b *Buffer) String() string {
	return string(b.runes)
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Dot returns the position of the dot.
func (b *Buffer) Dot() int {
	return b.dot
}
