// Package pref provides typed accessors over a preference store and the
// compound read-modify-write operations built on them.
//
// The package focuses on:
//   - Preference / MutablePreference: lightweight (store, key, type)
//     bindings. Reads collapse "missing key" and "value of another kind"
//     into a single absent state; writes go straight to the store.
//   - Compound operations (AddAssign, SetDefault, Inc, OrAssign, ...):
//     generic free functions constrained by capability type sets, each
//     reading the current value (absent counts as zero), combining it with
//     an operand and writing the result back.
//   - Capability constraints (Addable, Substractable, Logical, ...): one
//     operator per constraint, resolved statically at the call site.
//
// Example:
//
//	s := memstore.NewMemStore()
//	launches := pref.NewMutable[int64](s, "stats.launches")
//	pref.Inc(launches)                       // absent counts as 0
//	pref.SetDefault(pref.NewMutable[string](s, "theme"), func() string {
//		return "dark"                        // only evaluated when unset
//	})
//
// The operations perform no locking: a compound operation is a plain read
// followed by a write, and two call sites racing on the same key can lose
// an update. Stores may be internally thread-safe, but read-modify-write
// atomicity is out of scope here.
package pref
