package store

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Factory is a function type that creates a new store instance.
// This is used to abstract the creation of the store from the code using it,
// e.g. the shared conformance test suite.
type Factory func() Store

// Reader is the read capability of a preference store.
// Any concrete store (in-memory map, environment, snapshot file) implements
// at least this interface; code that only reads should depend on it rather
// than on the full Store.
type Reader interface {
	// Has returns whether a key exists in the store, regardless of the
	// dynamic type of the stored value.
	Has(key string) bool
	// Get returns the value for a key. The boolean return value indicates
	// whether a value for the key was found.
	Get(key string) (value Value, loaded bool)
}

// Writer is the write capability of a preference store.
type Writer interface {
	// Set inserts or updates a key-value pair. If the key already exists,
	// the old value is overwritten no matter its dynamic type.
	Set(key string, value Value)
	// Remove deletes a key-value pair. Removing a missing key is a no-op.
	Remove(key string)
}

// Store is the full capability set of a mutable preference store.
// It is a capability superset of Reader, not a separate identity: every
// Store is usable anywhere a Reader is expected.
type Store interface {
	Reader
	Writer
}
