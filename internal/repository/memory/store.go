// Package memory is an in-process document store used for dry runs and tests.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Record struct {
	ID        string
	Name      string
	Doc       any
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Store struct {
	mu   sync.RWMutex
	data map[string][]Record
	now  func() time.Time
}

func NewStore() *Store {
	return &Store{
		data: make(map[string][]Record),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Insert appends a document under a fresh id.
func (s *Store) Insert(collection, name string, doc any) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec := Record{
		ID:        uuid.NewString(),
		Name:      name,
		Doc:       doc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.data[collection] = append(s.data[collection], rec)

	return rec.ID
}

// Upsert replaces the first document with the same name, keeping its id and
// creation time, or inserts a new one.
func (s *Store) Upsert(collection, name string, doc any) (id string, inserted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	recs := s.data[collection]
	for i := range recs {
		if recs[i].Name == name {
			recs[i].Doc = doc
			recs[i].UpdatedAt = now
			return recs[i].ID, false
		}
	}

	rec := Record{ID: uuid.NewString(), Name: name, Doc: doc, CreatedAt: now, UpdatedAt: now}
	s.data[collection] = append(recs, rec)

	return rec.ID, true
}

func (s *Store) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data[collection])
}

// Documents returns a copy of the collection in insertion order.
func (s *Store) Documents(collection string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Record(nil), s.data[collection]...)
}
