// Package sessionstore provides a thread-safe, in-memory key/value store for
// guest checkout values and customer or order meta. It is what the field
// weaver reads from and writes to when no real host storage is attached.
package sessionstore
