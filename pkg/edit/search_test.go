package edit

import (
	"testing"

	"github.com/zle-sh/zle/pkg/histutil"
)

func checkMatch(t *testing.T, s *search, want string, wantOK bool) {
	t.Helper()
	line, ok := s.current()
	if line != want || ok != wantOK {
		t.Errorf("current() = %q, %v, want %q, %v", line, ok, want, wantOK)
	}
}

func TestSearch_MatchesMostRecent(t *testing.T) {
	store := histutil.NewMemStore(100, "make build", "make test", "git status")
	s := newSearch(store)

	checkMatch(t, s, "", false)
	for _, r := range "mak" {
		s.insert(r)
	}
	checkMatch(t, s, "make test", true)
}

func TestSearch_AgainFindsOlderMatch(t *testing.T) {
	store := histutil.NewMemStore(100, "make build", "make test", "git status")
	s := newSearch(store)

	for _, r := range "mak" {
		s.insert(r)
	}
	s.again()
	checkMatch(t, s, "make build", true)
	// No older match left.
	s.again()
	checkMatch(t, s, "", false)
}

func TestSearch_AgainWithoutMatchIsNoOp(t *testing.T) {
	store := histutil.NewMemStore(100, "ls")
	s := newSearch(store)
	s.insert('z')
	checkMatch(t, s, "", false)
	s.again()
	checkMatch(t, s, "", false)
}

func TestSearch_BackspaceRestartsFromNewest(t *testing.T) {
	store := histutil.NewMemStore(100, "make build", "make test")
	s := newSearch(store)

	for _, r := range "make b" {
		s.insert(r)
	}
	checkMatch(t, s, "make build", true)
	// Shortening the query to "make " matches the newest entry again.
	s.backspace()
	checkMatch(t, s, "make test", true)
	// Backspace on an empty query is a no-op.
	for i := 0; i < 10; i++ {
		s.backspace()
	}
	checkMatch(t, s, "make test", true)
}

func TestSearch_NoMatch(t *testing.T) {
	store := histutil.NewMemStore(100, "ls", "pwd")
	s := newSearch(store)
	for _, r := range "lsx" {
		s.insert(r)
	}
	checkMatch(t, s, "", false)
	// Erasing the unmatched suffix finds the match again.
	s.backspace()
	checkMatch(t, s, "ls", true)
}
