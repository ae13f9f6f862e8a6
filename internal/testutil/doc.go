// Package testutil provides shared helpers for tests: a concurrency-safe log
// buffer, temporary definition trees, and compact builders and assertions for
// ordered form mappings.
package testutil
