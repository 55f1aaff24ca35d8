package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStore_AddPolicy(t *testing.T) {
	s := mustOpen(t, filepath.Join(t.TempDir(), "db"), 10)
	defer s.Close()

	s.Add("ls")
	s.Add("ls")
	s.Add("")
	s.Add("make")
	if diff := cmp.Diff([]string{"ls", "make"}, allLines(s)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_EvictsOldestWhenFull(t *testing.T) {
	s := mustOpen(t, filepath.Join(t.TempDir(), "db"), 2)
	defer s.Close()

	s.Add("a")
	s.Add("b")
	s.Add("c")
	if diff := cmp.Diff([]string{"b", "c"}, allLines(s)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_MaxBelowOneIsClampedToOne(t *testing.T) {
	s := mustOpen(t, filepath.Join(t.TempDir(), "db"), 0)
	defer s.Close()

	s.Add("ls")
	s.Add("make")
	if diff := cmp.Diff([]string{"make"}, allLines(s)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	s := mustOpen(t, path, 3)
	for _, line := range []string{"a", "b", "c", "d"} {
		s.Add(line)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s = mustOpen(t, path, 3)
	defer s.Close()
	if diff := cmp.Diff([]string{"b", "c", "d"}, allLines(s)); diff != "" {
		t.Errorf("entries after reopen mismatch (-want +got):\n%s", diff)
	}
}

func mustOpen(t *testing.T, path string, max int) *Store {
	t.Helper()
	s, err := Open(path, max)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func allLines(s *Store) []string {
	lines := make([]string, s.Len())
	for i := range lines {
		lines[i], _ = s.At(i)
	}
	return lines
}
