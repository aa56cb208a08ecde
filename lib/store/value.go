package store

import "fmt"

// --------------------------------------------------------------------------
// Kind
// --------------------------------------------------------------------------

// Kind identifies the dynamic type of a boxed Value. The set of kinds is
// closed: stores hold exactly these types and nothing else.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindBytes
	KindStringSlice
	KindInt64Slice
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindStringSlice:
		return "[]string"
	case KindInt64Slice:
		return "[]int64"
	default:
		return "invalid"
	}
}

// --------------------------------------------------------------------------
// Value
// --------------------------------------------------------------------------

// Value boxes one dynamically typed preference value. The zero Value is
// invalid and never stored; constructors guarantee that a valid Value holds
// exactly one of the supported kinds.
type Value struct {
	v any
}

// NewValue boxes v if its dynamic type is one of the supported kinds.
// The boolean return value reports whether v was accepted.
func NewValue(v any) (Value, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		bool, string,
		[]byte, []string, []int64:
		return Value{v: v}, true
	default:
		return Value{}, false
	}
}

// MustValue boxes v and panics if its dynamic type is not a supported kind.
// Use it where the type is statically known to be supported.
func MustValue(v any) Value {
	val, ok := NewValue(v)
	if !ok {
		panic(fmt.Sprintf("store: unsupported value type %T", v))
	}
	return val
}

// Kind returns the kind of the boxed value, or KindInvalid for the zero Value.
func (v Value) Kind() Kind {
	switch v.v.(type) {
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case bool:
		return KindBool
	case string:
		return KindString
	case []byte:
		return KindBytes
	case []string:
		return KindStringSlice
	case []int64:
		return KindInt64Slice
	default:
		return KindInvalid
	}
}

// IsValid reports whether the Value holds a supported kind.
func (v Value) IsValid() bool {
	return v.Kind() != KindInvalid
}

// Any returns the boxed value as an untyped interface, or nil for the zero
// Value. Callers that know the expected type should use As instead.
func (v Value) Any() any {
	return v.v
}

// As unboxes a Value as T. The conversion is by exact dynamic type: a Value
// holding an int64 does not convert to int and vice versa. The boolean
// return value is false on any mismatch, so a type-incompatible read
// collapses to "absent" rather than an error.
func As[T any](v Value) (T, bool) {
	t, ok := v.v.(T)
	return t, ok
}
