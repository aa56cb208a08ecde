package pref

import (
	"reflect"
	"testing"

	"github.com/prefkit/prefkit/lib/store"
	"github.com/prefkit/prefkit/lib/store/memstore"
)

func TestSetDefault(t *testing.T) {
	s := memstore.NewMemStore()
	p := NewMutable[int64](s, "key")

	// Absent: the operand is assigned.
	calls := 0
	SetDefault(p, func() int64 { calls++; return 10 })
	if got := p.Get(); got != 10 {
		t.Errorf("Expected 10 after SetDefault on an absent key, got %d", got)
	}
	if calls != 1 {
		t.Errorf("Expected the operand to be evaluated exactly once, got %d", calls)
	}

	// Present: no-op, operand not evaluated.
	p.Set(5)
	SetDefault(p, func() int64 { calls++; return 99 })
	if got := p.Get(); got != 5 {
		t.Errorf("Expected SetDefault to be a no-op when present, got %d", got)
	}
	if calls != 1 {
		t.Errorf("Expected the operand to stay unevaluated when present, got %d calls", calls)
	}
}

func TestSetDefaultRespectsMismatchedKey(t *testing.T) {
	s := memstore.NewMemStore()
	s.Set("key", store.MustValue("string value"))

	// The key exists (with another kind), so SetDefault must not touch it.
	SetDefault(NewMutable[int64](s, "key"), func() int64 { return 1 })

	v, _ := s.Get("key")
	if got, _ := store.As[string](v); got != "string value" {
		t.Errorf("Expected the mismatched value to survive, got %v", v.Any())
	}
}

func TestAddAssign(t *testing.T) {
	s := memstore.NewMemStore()
	p := NewMutable[int64](s, "count")

	// Absent is treated as zero.
	AddAssign(p, 5)
	if got := p.Get(); got != 5 {
		t.Errorf("Expected 5 after += on an absent key, got %d", got)
	}

	AddAssign(p, 3)
	if got := p.Get(); got != 8 {
		t.Errorf("Expected 8, got %d", got)
	}

	// Strings concatenate.
	sp := NewMutable[string](s, "path")
	AddAssign(sp, "a")
	AddAssign(sp, "/b")
	if got := sp.Get(); got != "a/b" {
		t.Errorf("Expected a/b, got %q", got)
	}
}

func TestArithmeticAssignFamily(t *testing.T) {
	s := memstore.NewMemStore()
	p := NewMutable[int](s, "n")

	p.Set(10)
	SubAssign(p, 4)
	if got := p.Get(); got != 6 {
		t.Errorf("Expected 6 after -=, got %d", got)
	}

	MulAssign(p, 3)
	if got := p.Get(); got != 18 {
		t.Errorf("Expected 18 after *=, got %d", got)
	}

	DivAssign(p, 4)
	if got := p.Get(); got != 4 {
		t.Errorf("Expected 4 after /=, got %d", got)
	}

	ModAssign(p, 3)
	if got := p.Get(); got != 1 {
		t.Errorf("Expected 1 after %%=, got %d", got)
	}

	// Multiplying an absent key keeps it at zero.
	q := NewMutable[int](s, "fresh")
	MulAssign(q, 7)
	if got := q.Get(); got != 0 {
		t.Errorf("Expected 0 after *= on an absent key, got %d", got)
	}

	f := NewMutable[float64](s, "ratio")
	f.Set(1)
	DivAssign(f, 4)
	if got := f.Get(); got != 0.25 {
		t.Errorf("Expected 0.25, got %v", got)
	}
}

func TestIncDec(t *testing.T) {
	s := memstore.NewMemStore()
	p := NewMutable[int64](s, "count")
	p.Set(10)

	if got := Inc(p).Get(); got != 11 {
		t.Errorf("Expected 11 after Inc, got %d", got)
	}

	Dec(p)
	Dec(p)
	if got := p.Get(); got != 9 {
		t.Errorf("Expected 9 after two Dec, got %d", got)
	}

	// Inc on an absent key counts from zero.
	fresh := NewMutable[int64](s, "fresh")
	Inc(fresh)
	if got := fresh.Get(); got != 1 {
		t.Errorf("Expected 1 after Inc on an absent key, got %d", got)
	}
}

func TestLogicalAssign(t *testing.T) {
	s := memstore.NewMemStore()
	p := NewMutable[bool](s, "flag")

	// Absent is treated as false.
	OrAssign(p, func() bool { return true })
	if !p.Get() {
		t.Errorf("Expected true after ||= true on an absent key")
	}

	AndAssign(p, func() bool { return false })
	if p.Get() {
		t.Errorf("Expected false after &&= false")
	}

	NotAssign(p, func() bool { return false })
	if !p.Get() {
		t.Errorf("Expected true after storing !false")
	}
}

func TestLogicalAssignShortCircuits(t *testing.T) {
	s := memstore.NewMemStore()
	p := NewMutable[bool](s, "flag")

	// current false: &&= must not evaluate the operand.
	p.Set(false)
	called := false
	AndAssign(p, func() bool { called = true; return true })
	if called {
		t.Errorf("Expected &&= to skip the operand when current is false")
	}

	// current true: ||= must not evaluate the operand.
	p.Set(true)
	called = false
	OrAssign(p, func() bool { called = true; return false })
	if called {
		t.Errorf("Expected ||= to skip the operand when current is true")
	}
	if !p.Get() {
		t.Errorf("Expected ||= to keep the current true value")
	}
}

func TestBitwiseAssign(t *testing.T) {
	s := memstore.NewMemStore()
	p := NewMutable[uint8](s, "mask")

	p.Set(0b0110)
	BitAndAssign(p, 0b0011)
	if got := p.Get(); got != 0b0010 {
		t.Errorf("Expected 0b0010 after &=, got %#b", got)
	}

	BitOrAssign(p, 0b1000)
	if got := p.Get(); got != 0b1010 {
		t.Errorf("Expected 0b1010 after |=, got %#b", got)
	}

	BitXorAssign(p, 0b0010)
	if got := p.Get(); got != 0b1000 {
		t.Errorf("Expected 0b1000 after ^=, got %#b", got)
	}

	BitNotAssign(p, 0b0000_1111)
	if got := p.Get(); got != 0b1111_0000 {
		t.Errorf("Expected the operand's complement, got %#b", got)
	}

	// Absent is treated as zero.
	q := NewMutable[uint8](s, "fresh")
	BitOrAssign(q, 0b101)
	if got := q.Get(); got != 0b101 {
		t.Errorf("Expected 0b101 after |= on an absent key, got %#b", got)
	}
}

func TestAppendAssign(t *testing.T) {
	s := memstore.NewMemStore()
	p := NewMutable[[]string](s, "tags")

	AppendAssign(p, []string{"a"})
	AppendAssign(p, []string{"b", "c"})
	if got := p.Get(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Expected [a b c], got %v", got)
	}

	ip := NewMutable[[]int64](s, "ids")
	AppendAssign(ip, []int64{1, 2})
	if got := ip.Get(); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Errorf("Expected [1 2], got %v", got)
	}
}

func TestSum(t *testing.T) {
	if got := Sum(1, 2, 3); got != 6 {
		t.Errorf("Expected 6, got %d", got)
	}
	if got := Sum[int64](); got != 0 {
		t.Errorf("Expected the identity element for an empty sum, got %d", got)
	}
	if got := SumSlice([]float64{0.5, 0.25}); got != 0.75 {
		t.Errorf("Expected 0.75, got %v", got)
	}
	if got := Sum("a", "b", "c"); got != "abc" {
		t.Errorf("Expected abc, got %q", got)
	}
	if got := ConcatSlices([]int64{1}, nil, []int64{2, 3}); !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Errorf("Expected [1 2 3], got %v", got)
	}
}
