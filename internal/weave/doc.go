// Package weave merges registered fields into the form mappings, property
// lists and address templates a host shop hands over at each of its hook
// points: checkout and address forms, the admin user and order screens,
// privacy export and erasure, formatted addresses and guest sessions.
//
// Every method is a pure transformation of its input composed from the
// registry and the placement engine. Inputs are never modified; each method
// returns a new mapping.
package weave
