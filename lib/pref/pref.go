package pref

import "github.com/prefkit/prefkit/lib/store"

// --------------------------------------------------------------------------
// Read-only accessor
// --------------------------------------------------------------------------

// Preference is a read-only typed view of one key in a store. It is a
// lightweight value holding nothing but the binding; create one per access
// site, it caches no data.
//
// The type parameter is never validated against the store until read time:
// a read that finds a value of another dynamic type reports absence, not an
// error.
type Preference[T any] struct {
	reader store.Reader
	key    string
}

// New binds a read-only view of key in the given store.
func New[T any](r store.Reader, key string) Preference[T] {
	return Preference[T]{reader: r, key: key}
}

// Key returns the bound key.
func (p Preference[T]) Key() string {
	return p.key
}

// Value returns the current value and whether one is present. A missing key
// and a type-incompatible value both report absence.
func (p Preference[T]) Value() (T, bool) {
	v, ok := p.reader.Get(p.key)
	if !ok {
		var zero T
		return zero, false
	}
	return store.As[T](v)
}

// Get returns the current value, or the zero value when absent.
func (p Preference[T]) Get() T {
	v, _ := p.Value()
	return v
}

// HasValue reports whether the key exists in the store at all. A key can
// exist with an incompatible dynamic type, in which case HasValue is true
// while Value reports absence.
func (p Preference[T]) HasValue() bool {
	return p.reader.Has(p.key)
}

// --------------------------------------------------------------------------
// Mutable accessor
// --------------------------------------------------------------------------

// MutablePreference is a read/write typed view of one key. It is a
// capability superset of Preference over the same (store, key) binding, not
// a separate identity: the embedded Preference reads through the same
// store the writes go to.
//
// T must be one of the kinds the store supports (see store.NewValue);
// writing an unsupported type panics.
type MutablePreference[T any] struct {
	Preference[T]
	writer store.Store
}

// NewMutable binds a read/write view of key in the given store.
func NewMutable[T any](s store.Store, key string) MutablePreference[T] {
	return MutablePreference[T]{
		Preference: New[T](s, key),
		writer:     s,
	}
}

// Set stores the value under the bound key. A zero value is stored like any
// other: storing 0, false or "" is distinct from removing the key.
func (p MutablePreference[T]) Set(value T) {
	p.writer.Set(p.key, store.MustValue(value))
}

// SetPtr stores the pointed-to value, or removes the key when value is nil.
// Assigning "nothing" is defined as deletion, not as storing a null.
func (p MutablePreference[T]) SetPtr(value *T) {
	if value == nil {
		p.Clear()
		return
	}
	p.Set(*value)
}

// Clear removes the bound key from the store.
func (p MutablePreference[T]) Clear() {
	p.writer.Remove(p.key)
}
