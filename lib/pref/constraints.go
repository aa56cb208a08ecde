package pref

// Capability constraint sets for the compound operations. Each set admits
// exactly the built-in types a store can hold, so boxing by exact dynamic
// type and constraint resolution agree: there are deliberately no ~T
// approximation elements.

// Integer admits every supported signed and unsigned integer width.
type Integer interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64
}

// Float admits the supported floating-point widths.
type Float interface {
	float32 | float64
}

// Addable admits every type with a "+" combinator: numbers add, strings
// concatenate.
type Addable interface {
	Integer | Float | string
}

// Substractable admits every type with a "-" combinator.
type Substractable interface {
	Integer | Float
}

// Multiplicable admits every type with a "*" combinator.
type Multiplicable interface {
	Integer | Float
}

// Dividable admits every type with a "/" combinator.
type Dividable interface {
	Integer | Float
}

// Modulable admits every type with a "%" combinator.
type Modulable interface {
	Integer
}

// BitwiseOperations admits every type with "&", "|", "^" and "&^".
type BitwiseOperations interface {
	Integer
}

// Logical admits the boolean type for "&&", "||" and "!".
type Logical interface {
	bool
}

// Element admits the element types of supported slice kinds, for the
// concatenation operations.
type Element interface {
	byte | int64 | string
}
