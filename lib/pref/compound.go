package pref

// Read-modify-write operations over a MutablePreference. Every arithmetic,
// logical and bitwise variant treats an absent (or type-incompatible)
// current value as the zero value of T, so the operations work uniformly
// whether or not the key pre-exists. The binding itself is never
// reassigned; only the stored value changes.
//
// These are free functions rather than methods because Go methods cannot
// tighten the receiver's type parameter to a capability like Addable.

// SetDefault assigns the operand's value when the key has none. The operand
// is evaluated at most once, and only when the key is absent. Key existence
// counts, not type compatibility: a key holding a value of another kind is
// left untouched.
func SetDefault[T any](p MutablePreference[T], operand func() T) {
	if !p.HasValue() {
		p.Set(operand())
	}
}

// --------------------------------------------------------------------------
// Arithmetic
// --------------------------------------------------------------------------

// AddAssign stores current + operand; strings concatenate.
func AddAssign[T Addable](p MutablePreference[T], operand T) {
	cur, _ := p.Value()
	p.Set(cur + operand)
}

// SubAssign stores current - operand.
func SubAssign[T Substractable](p MutablePreference[T], operand T) {
	cur, _ := p.Value()
	p.Set(cur - operand)
}

// MulAssign stores current * operand. Note that an absent current value is
// zero, so multiplying a missing key yields zero.
func MulAssign[T Multiplicable](p MutablePreference[T], operand T) {
	cur, _ := p.Value()
	p.Set(cur * operand)
}

// DivAssign stores current / operand. Integer division by zero panics, as
// it does on plain values.
func DivAssign[T Dividable](p MutablePreference[T], operand T) {
	cur, _ := p.Value()
	p.Set(cur / operand)
}

// ModAssign stores current % operand.
func ModAssign[T Modulable](p MutablePreference[T], operand T) {
	cur, _ := p.Value()
	p.Set(cur % operand)
}

// Inc adds one to the current value and returns the binding.
func Inc[T Integer](p MutablePreference[T]) MutablePreference[T] {
	AddAssign(p, 1)
	return p
}

// Dec subtracts one from the current value and returns the binding.
func Dec[T Integer](p MutablePreference[T]) MutablePreference[T] {
	SubAssign(p, 1)
	return p
}

// --------------------------------------------------------------------------
// Logical
// --------------------------------------------------------------------------

// AndAssign stores current && operand. The operand is evaluated at most
// once, and not at all when the current value (absent counts as false)
// already short-circuits the conjunction.
func AndAssign[T Logical](p MutablePreference[T], operand func() T) {
	cur, _ := p.Value()
	p.Set(cur && operand())
}

// OrAssign stores current || operand. The operand is evaluated at most
// once, and not at all when the current value already short-circuits the
// disjunction.
func OrAssign[T Logical](p MutablePreference[T], operand func() T) {
	cur, _ := p.Value()
	p.Set(cur || operand())
}

// NotAssign stores !operand. The current value is discarded, not combined.
func NotAssign[T Logical](p MutablePreference[T], operand func() T) {
	p.Set(!operand())
}

// --------------------------------------------------------------------------
// Bitwise
// --------------------------------------------------------------------------

// BitAndAssign stores current & operand.
func BitAndAssign[T BitwiseOperations](p MutablePreference[T], operand T) {
	cur, _ := p.Value()
	p.Set(cur & operand)
}

// BitOrAssign stores current | operand.
func BitOrAssign[T BitwiseOperations](p MutablePreference[T], operand T) {
	cur, _ := p.Value()
	p.Set(cur | operand)
}

// BitXorAssign stores current ^ operand.
func BitXorAssign[T BitwiseOperations](p MutablePreference[T], operand T) {
	cur, _ := p.Value()
	p.Set(cur ^ operand)
}

// BitNotAssign stores the complement of the operand. The current value is
// discarded, not combined.
func BitNotAssign[T BitwiseOperations](p MutablePreference[T], operand T) {
	p.Set(^operand)
}

// --------------------------------------------------------------------------
// Slices
// --------------------------------------------------------------------------

// AppendAssign stores the concatenation of the current slice (absent counts
// as empty) and the operand. The stored slice is never aliased with the
// operand.
func AppendAssign[E Element](p MutablePreference[[]E], operand []E) {
	cur, _ := p.Value()
	next := make([]E, 0, len(cur)+len(operand))
	next = append(next, cur...)
	next = append(next, operand...)
	p.Set(next)
}
