package ordered

import "iter"

// Pair is one key/value entry of a Map.
type Pair[V any] struct {
	Key   string
	Value V
}

// Map is a string-keyed mapping that remembers insertion order.
// The zero value is not usable; construct with New or FromPairs.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{values: make(map[string]V)}
}

// FromPairs creates a Map holding the given pairs in order. A repeated key
// keeps its first position and its last value.
func FromPairs[V any](pairs ...Pair[V]) *Map[V] {
	m := &Map[V]{
		keys:   make([]string, 0, len(pairs)),
		values: make(map[string]V, len(pairs)),
	}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Len returns the number of entries. A nil Map has length zero.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Set stores v under key. New keys are appended; existing keys keep their position.
func (m *Map[V]) Set(key string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map[V]) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns a copy of the keys in order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in key order.
func (m *Map[V]) Values() []V {
	if m == nil {
		return nil
	}
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// Pairs returns the entries in order.
func (m *Map[V]) Pairs() []Pair[V] {
	if m == nil {
		return nil
	}
	out := make([]Pair[V], 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Pair[V]{Key: k, Value: m.values[k]})
	}
	return out
}

// All iterates over the entries in order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy: keys and order are copied, values are not deep-copied.
func (m *Map[V]) Clone() *Map[V] {
	if m == nil {
		return New[V]()
	}
	return FromPairs(m.Pairs()...)
}

// Reversed returns a copy with the entry order reversed.
func (m *Map[V]) Reversed() *Map[V] {
	out := New[V]()
	for i := m.Len() - 1; i >= 0; i-- {
		k := m.keys[i]
		out.Set(k, m.values[k])
	}
	return out
}
