// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle: load field
// definitions into a sealed registry, apply one surface merge to an input
// document and print the result. It is decoupled from any specific
// entrypoint like a CLI.
package app
