package sessionstore

import (
	"slices"
	"sync"
)

// Store is an in-memory string store backed by sync.Map. Keys are field
// slugs or meta keys and are independent of each other, so concurrent
// checkouts writing different keys never contend on a global lock.
//
// Store satisfies weave.Session, weave.MetaReader and weave.MetaEraser.
type Store struct {
	values sync.Map // Key: string, Value: string
}

// New creates a new, empty store.
func New() *Store {
	return &Store{}
}

// FromMap creates a store holding a copy of values.
func FromMap(values map[string]string) *Store {
	s := New()
	for k, v := range values {
		s.Set(k, v)
	}
	return s
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) {
	s.values.Store(key, value)
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) {
	s.values.Delete(key)
}

// Snapshot returns a copy of every entry.
func (s *Store) Snapshot() map[string]string {
	out := make(map[string]string)
	s.values.Range(func(k, v any) bool {
		out[k.(string)] = v.(string)
		return true
	})
	return out
}

// Keys returns every key in sorted order.
func (s *Store) Keys() []string {
	var keys []string
	s.values.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	return keys
}
