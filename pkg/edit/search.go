package edit

import (
	"strings"

	"github.com/zle-sh/zle/pkg/histutil"
)

// search implements the reverse incremental search sub-mode. The current
// match, if any, is the most recent entry older than scanFrom whose content
// contains the query as a substring.
type search struct {
	store histutil.Store
	query []rune
	// Index of the entry the next backward scan starts just below.
	scanFrom int
	// Index of the current match, or -1.
	match int
}

func newSearch(store histutil.Store) *search {
	return &search{store: store, scanFrom: store.Len(), match: -1}
}

// insert extends the query with a rune and rescans.
func (s *search) insert(r rune) {
	s.query = append(s.query, r)
	s.rescan()
}

// backspace removes the last rune of the query and restarts the scan from
// the newest entry, since the shortened query may match newer entries again.
func (s *search) backspace() {
	if len(s.query) == 0 {
		return
	}
	s.query = s.query[:len(s.query)-1]
	s.scanFrom = s.store.Len()
	s.rescan()
}

// again continues the search through strictly older entries. No-op without a
// current match.
func (s *search) again() {
	if s.match < 0 {
		return
	}
	s.scanFrom = s.match
	s.rescan()
}

// current returns the content of the current match.
func (s *search) current() (string, bool) {
	if s.match < 0 {
		return "", false
	}
	line, err := s.store.At(s.match)
	if err != nil {
		return "", false
	}
	return line, true
}

func (s *search) rescan() {
	s.match = -1
	query := string(s.query)
	for i := s.scanFrom - 1; i >= 0; i-- {
		line, err := s.store.At(i)
		if err != nil {
			return
		}
		if strings.Contains(line, query) {
			s.match = i
			return
		}
	}
}
