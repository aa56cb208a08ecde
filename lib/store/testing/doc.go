// Package testing provides a reusable conformance test suite for store
// implementations. Every backend runs RunStoreTests against a factory for a
// fresh store, so all implementations are held to the same contract.
package testing
