package testing

import (
	"fmt"
	"sync"
	"testing"

	"github.com/prefkit/prefkit/lib/store"
)

// RunStoreTests runs the conformance test suite for a store implementation.
// The factory must return a fresh, empty store on every call.
func RunStoreTests(t *testing.T, name string, factory store.Factory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("Has", func(t *testing.T) {
			testHas(t, factory())
		})

		t.Run("Remove", func(t *testing.T) {
			testRemove(t, factory())
		})

		t.Run("Overwrite", func(t *testing.T) {
			testOverwrite(t, factory())
		})

		t.Run("KindRoundTrip", func(t *testing.T) {
			testKindRoundTrip(t, factory())
		})

		t.Run("ConcurrentAccess", func(t *testing.T) {
			testConcurrentAccess(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, s store.Store) {
	testKey := "test-key"

	if _, ok := s.Get(testKey); ok {
		t.Errorf("Expected key %s to be absent in a fresh store", testKey)
	}

	s.Set(testKey, store.MustValue("test-value"))

	v, ok := s.Get(testKey)
	if !ok {
		t.Errorf("Expected key %s to exist after Set", testKey)
	}
	if got, _ := store.As[string](v); got != "test-value" {
		t.Errorf("Expected value %q, got %q", "test-value", got)
	}
}

func testHas(t *testing.T, s store.Store) {
	testKey := "test-key"

	if s.Has(testKey) {
		t.Errorf("Expected Has to be false for a missing key")
	}

	s.Set(testKey, store.MustValue(int64(1)))

	if !s.Has(testKey) {
		t.Errorf("Expected Has to be true after Set")
	}

	// Has does not care about the stored kind.
	s.Set(testKey, store.MustValue("now a string"))
	if !s.Has(testKey) {
		t.Errorf("Expected Has to stay true after overwriting with another kind")
	}
}

func testRemove(t *testing.T, s store.Store) {
	testKey := "test-key"

	// Removing a missing key must be a no-op.
	s.Remove(testKey)

	s.Set(testKey, store.MustValue(true))
	s.Remove(testKey)

	if s.Has(testKey) {
		t.Errorf("Expected key %s to be gone after Remove", testKey)
	}
	if _, ok := s.Get(testKey); ok {
		t.Errorf("Expected Get to miss after Remove")
	}
}

func testOverwrite(t *testing.T, s store.Store) {
	testKey := "test-key"

	s.Set(testKey, store.MustValue(int64(1)))
	s.Set(testKey, store.MustValue(int64(2)))

	v, ok := s.Get(testKey)
	if !ok {
		t.Fatalf("Expected key %s to exist", testKey)
	}
	if got, _ := store.As[int64](v); got != 2 {
		t.Errorf("Expected overwritten value 2, got %d", got)
	}
}

func testKindRoundTrip(t *testing.T, s store.Store) {
	values := map[string]any{
		"k-int":     int(-3),
		"k-int64":   int64(1 << 40),
		"k-uint8":   uint8(255),
		"k-uint64":  uint64(1 << 60),
		"k-float64": float64(3.25),
		"k-bool":    true,
		"k-string":  "hello",
		"k-bytes":   []byte{0x00, 0xff},
		"k-strings": []string{"a", "b"},
		"k-ints":    []int64{-1, 0, 1},
	}

	for key, v := range values {
		s.Set(key, store.MustValue(v))
	}

	for key, want := range values {
		v, ok := s.Get(key)
		if !ok {
			t.Errorf("Expected key %s to exist", key)
			continue
		}
		if v.Kind() == store.KindInvalid {
			t.Errorf("Expected key %s to hold a valid kind", key)
		}
		if fmt.Sprintf("%v", v.Any()) != fmt.Sprintf("%v", want) {
			t.Errorf("Expected %s to round-trip %v, got %v", key, want, v.Any())
		}
	}
}

func testConcurrentAccess(t *testing.T, s store.Store) {
	const workers = 8
	const opsPerWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < opsPerWorker; i++ {
				key := fmt.Sprintf("worker-%d-key-%d", w, i)
				s.Set(key, store.MustValue(int64(i)))
				s.Get(key)
				s.Has(key)
				if i%2 == 0 {
					s.Remove(key)
				}
			}
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		for i := 1; i < opsPerWorker; i += 2 {
			key := fmt.Sprintf("worker-%d-key-%d", w, i)
			if !s.Has(key) {
				t.Errorf("Expected key %s to survive concurrent access", key)
			}
		}
	}
}
