// Package codec serializes store snapshots for the file-backed store.
//
// A Snapshot is the complete key-value state of a store. Two codecs are
// provided: JSON (kind-tagged entries, human readable) and gob (compact,
// Go only). Both restore values with their exact dynamic type, so a
// snapshot round-trip never widens an int32 into an int64 or similar.
package codec
