package placement

import "github.com/specialistvlad/checkoutfields/internal/ordered"

// InsertBefore returns a copy of m with entries spliced in front of the first
// key matching any of the patterns. The splice happens at most once. When no
// key matches, the copy is returned unchanged; entries are not appended.
//
// Entries are written with Set, so a key already present in m keeps its
// first position and takes the value written last.
func InsertBefore[V any](m *ordered.Map[V], patterns []string, entries *ordered.Map[V]) *ordered.Map[V] {
	idx := firstMatch(m, NewMatcher(patterns...))
	if idx < 0 {
		return m.Clone()
	}
	return splice(m, idx, entries)
}

// InsertAfter returns a copy of m with entries spliced behind the LAST key
// matching any of the patterns: m is reversed, spliced with InsertBefore and
// reversed back. Entries keep their own order. When no key matches, the copy
// is returned unchanged.
func InsertAfter[V any](m *ordered.Map[V], patterns []string, entries *ordered.Map[V]) *ordered.Map[V] {
	return InsertBefore(m.Reversed(), patterns, entries.Reversed()).Reversed()
}

// InsertAfterFirst is InsertAfter anchored on the FIRST matching key.
func InsertAfterFirst[V any](m *ordered.Map[V], patterns []string, entries *ordered.Map[V]) *ordered.Map[V] {
	idx := firstMatch(m, NewMatcher(patterns...))
	if idx < 0 {
		return m.Clone()
	}
	return splice(m, idx+1, entries)
}

// Prepend returns a copy of m with entries in front of every existing key.
// An entry whose key is already in m replaces it at the front.
func Prepend[V any](m *ordered.Map[V], entries *ordered.Map[V]) *ordered.Map[V] {
	out := entries.Clone()
	for k, v := range m.All() {
		if !out.Has(k) {
			out.Set(k, v)
		}
	}
	return out
}

// Append returns a copy of m with entries behind every existing key.
func Append[V any](m *ordered.Map[V], entries *ordered.Map[V]) *ordered.Map[V] {
	return splice(m, m.Len(), entries)
}

func firstMatch[V any](m *ordered.Map[V], matcher Matcher) int {
	for i, key := range m.Keys() {
		if matcher.Match(key) {
			return i
		}
	}
	return -1
}

// splice writes m[:at], entries, m[at:] into a new map.
func splice[V any](m *ordered.Map[V], at int, entries *ordered.Map[V]) *ordered.Map[V] {
	pairs := m.Pairs()
	out := ordered.New[V]()
	for _, p := range pairs[:at] {
		out.Set(p.Key, p.Value)
	}
	for k, v := range entries.All() {
		out.Set(k, v)
	}
	for _, p := range pairs[at:] {
		out.Set(p.Key, p.Value)
	}
	return out
}
