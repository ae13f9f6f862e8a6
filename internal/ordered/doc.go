// Package ordered provides an insertion-ordered string-keyed mapping.
//
// Host form structures (checkout field lists, privacy prop lists, address
// format tables) are ordered mappings: iteration order is render order. Go maps
// do not keep insertion order, so every collection the placement engine reads
// or rewrites is a *Map.
//
// Setting an existing key overwrites its value in place and keeps its
// position, which matches how the host framework treats associative arrays.
package ordered
