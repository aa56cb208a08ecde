// Package store defines the capability interfaces all preference stores
// implement and the dynamically typed Value they exchange.
//
// The package focuses on:
//   - A minimal, error-free capability split (Reader, Writer, Store) so that
//     read-only backends can be injected wherever only reads happen
//   - A closed dynamic value type (Value) covering the supported primitive
//     and collection kinds, with exact-type unboxing via As
//
// Key Components:
//
//   - Reader/Writer/Store: The capability interfaces. A Store is simply a
//     Reader plus a Writer over the same underlying container; there is no
//     separate identity for mutable stores. Implementations live in the
//     memstore, envstore and filestore subpackages.
//
//   - Value: An opaque box holding exactly one of the supported kinds
//     (fixed-width signed/unsigned integers, floats, bool, string, byte
//     slices, string slices, int64 slices). Construction is validating
//     (NewValue/MustValue); unboxing is by exact dynamic type (As), so a
//     read against the wrong type yields "not found" rather than an error.
//
// Thread-safety, persistence and failure handling are entirely the concern
// of the individual store implementations; the interfaces here are
// synchronous, in-process and error-free.
package store
