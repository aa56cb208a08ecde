package pref

import "cmp"

// Comparisons between two bindings compare their current values, not their
// keys or stores. Absence follows optional semantics: two absent values are
// equal, and an absent value orders before any present one.

// Equal reports whether the current values of a and b are equal. Two absent
// values compare equal; absent never equals present.
func Equal[T comparable](a, b Preference[T]) bool {
	av, aok := a.Value()
	bv, bok := b.Value()
	if aok != bok {
		return false
	}
	return !aok || av == bv
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b Preference[T]) bool {
	return !Equal(a, b)
}

// Less reports whether the current value of a orders before that of b.
func Less[T cmp.Ordered](a, b Preference[T]) bool {
	av, aok := a.Value()
	bv, bok := b.Value()
	switch {
	case !aok && !bok:
		return false
	case !aok:
		return true
	case !bok:
		return false
	}
	return av < bv
}
