// Package placement computes where a registered field lands inside a host
// form mapping.
//
// Two mechanisms exist because hosts order their forms in two ways. Forms
// that are sorted by a numeric "priority" get one from ResolvePriority. Forms
// that keep insertion order are spliced with InsertBefore and InsertAfter,
// which match existing keys against case-insensitive, unanchored regular
// expressions.
//
// Every operation is total: unmatched keys fall back to a default placement
// and never produce an error.
package placement
