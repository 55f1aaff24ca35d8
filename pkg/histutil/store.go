// Package histutil provides the command history store used by the editor.
package histutil

import "errors"

// ErrOutOfRange is returned by Store.At for an index outside [0, Len()).
var ErrOutOfRange = errors.New("history index out of range")

// Store is a store of command history, ordered oldest first. It is used by
// sequential read sessions of one process and requires no locking; an
// implementation backing several concurrent editors must serialize Add
// itself.
type Store interface {
	// Add appends a line to the history. Empty lines and lines equal to the
	// last entry are discarded; when the store is full, the oldest entry is
	// evicted first.
	Add(text string)
	// At returns the entry at index i, oldest first.
	At(i int) (string, error)
	// Len returns the number of entries.
	Len() int
}

// NewMemStore returns an in-memory Store bounded at max entries, optionally
// seeded with initial entries (subject to the same Add policy). A max below 1
// is treated as 1.
func NewMemStore(max int, texts ...string) Store {
	if max < 1 {
		max = 1
	}
	s := &memStore{max: max}
	for _, text := range texts {
		s.Add(text)
	}
	return s
}

type memStore struct {
	lines []string
	max   int
}

func (s *memStore) Add(text string) {
	if text == "" {
		return
	}
	if n := len(s.lines); n > 0 && s.lines[n-1] == text {
		return
	}
	if len(s.lines) >= s.max {
		s.lines = s.lines[1:]
	}
	s.lines = append(s.lines, text)
}

func (s *memStore) At(i int) (string, error) {
	if i < 0 || i >= len(s.lines) {
		return "", ErrOutOfRange
	}
	return s.lines[i], nil
}

func (s *memStore) Len() int {
	return len(s.lines)
}
