// Package memstore implements an in-memory, process-local preference store
// backed by a concurrent map. It is the default backend for tests and for
// callers that need no persistence.
package memstore
