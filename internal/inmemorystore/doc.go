// Package inmemorystore provides a thread-safe, in-memory implementation
// of the msgstore.Writer interface. It backs --dry-run and the tests, where
// generated documents are inspected instead of written to disk.
package inmemorystore
