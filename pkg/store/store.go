// Package store provides a command history store backed by a bolt database,
// so that history survives process restarts. It satisfies histutil.Store;
// reads are served from an in-memory view loaded at open time and writes go
// through to the database.
package store

import (
	"encoding/binary"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/zle-sh/zle/pkg/histutil"
)

const bucketCmd = "cmd"

// Store is a bounded command history persisted in a bolt database. Unlike
// the in-memory store, it must be closed after use.
type Store struct {
	db  *bolt.DB
	max int
	// In-memory view of the persisted entries, oldest first, parallel slices.
	seqs  []uint64
	lines []string
}

var _ histutil.Store = (*Store)(nil)

// Open opens the database at path, creating it if needed, and loads the most
// recent max entries. A max below 1 is treated as 1.
func Open(path string, max int) (*Store, error) {
	if max < 1 {
		max = 1
	}
	db, err := bolt.Open(path, 0o644, &bolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, max: max}
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		if err != nil {
			return err
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(s.lines) < max; k, v = c.Prev() {
			s.seqs = append(s.seqs, unmarshalSeq(k))
			s.lines = append(s.lines, string(v))
		}
		reverse(s.seqs)
		reverse(s.lines)
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Add appends a line, applying the same policy as the in-memory store: empty
// lines and repetitions of the last entry are discarded, and the oldest entry
// is evicted once max is reached. Database errors leave the in-memory view
// unchanged; history writing is not worth failing the session over.
func (s *Store) Add(text string) {
	if text == "" {
		return
	}
	if n := len(s.lines); n > 0 && s.lines[n-1] == text {
		return
	}
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(marshalSeq(seq), []byte(text)); err != nil {
			return err
		}
		if len(s.lines) >= s.max {
			return b.Delete(marshalSeq(s.seqs[0]))
		}
		return nil
	})
	if err != nil {
		return
	}
	if len(s.lines) >= s.max {
		s.seqs = s.seqs[1:]
		s.lines = s.lines[1:]
	}
	s.seqs = append(s.seqs, seq)
	s.lines = append(s.lines, text)
}

// At returns the entry at index i, oldest first.
func (s *Store) At(i int) (string, error) {
	if i < 0 || i >= len(s.lines) {
		return "", histutil.ErrOutOfRange
	}
	return s.lines[i], nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.lines)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
