package store

import "testing"

func TestNewValueAcceptsSupportedKinds(t *testing.T) {
	supported := []any{
		int(1), int8(2), int16(3), int32(4), int64(5),
		uint(6), uint8(7), uint16(8), uint32(9), uint64(10),
		float32(1.5), float64(2.5),
		true, "hello",
		[]byte("raw"), []string{"a", "b"}, []int64{1, 2},
	}

	for _, v := range supported {
		val, ok := NewValue(v)
		if !ok {
			t.Errorf("Expected NewValue to accept %T", v)
		}
		if !val.IsValid() {
			t.Errorf("Expected value of type %T to be valid", v)
		}
	}
}

func TestNewValueRejectsUnsupportedKinds(t *testing.T) {
	unsupported := []any{
		nil,
		struct{}{},
		map[string]string{},
		[]float64{1.0},
		complex(1, 2),
		&struct{}{},
	}

	for _, v := range unsupported {
		if _, ok := NewValue(v); ok {
			t.Errorf("Expected NewValue to reject %T", v)
		}
	}

	if k := (Value{}).Kind(); k != KindInvalid {
		t.Errorf("Expected zero Value kind to be invalid, got %v", k)
	}
}

func TestMustValuePanicsOnUnsupportedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected MustValue to panic for unsupported type")
		}
	}()
	MustValue(struct{}{})
}

func TestAsConvertsByExactType(t *testing.T) {
	v := MustValue(int64(42))

	got, ok := As[int64](v)
	if !ok || got != 42 {
		t.Errorf("Expected As[int64] to return 42, got %d (ok=%v)", got, ok)
	}

	// Exact-type conversion: int64 is not int.
	if _, ok := As[int](v); ok {
		t.Errorf("Expected As[int] to fail for an int64 value")
	}

	if _, ok := As[string](v); ok {
		t.Errorf("Expected As[string] to fail for an int64 value")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindInt:         "int",
		KindUint64:      "uint64",
		KindFloat32:     "float32",
		KindBool:        "bool",
		KindString:      "string",
		KindBytes:       "bytes",
		KindStringSlice: "[]string",
		KindInt64Slice:  "[]int64",
		KindInvalid:     "invalid",
	}

	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Expected %q for kind %d, got %q", want, kind, got)
		}
	}
}
