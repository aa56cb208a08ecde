package pref

// Sum left-folds its arguments with "+" starting at the zero value, so an
// empty call returns the identity element (0, "" for strings). It is not
// preference-specific; it operates on plain values.
func Sum[T Addable](values ...T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// SumSlice is Sum over an existing slice.
func SumSlice[T Addable](values []T) T {
	return Sum(values...)
}

// ConcatSlices left-folds slices with concatenation starting at the empty
// slice, the slice counterpart of Sum.
func ConcatSlices[E Element](slices ...[]E) []E {
	var total []E
	for _, s := range slices {
		total = append(total, s...)
	}
	return total
}
