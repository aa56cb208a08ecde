package instrument

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/prefkit/prefkit/lib/store"
)

type storeImpl struct {
	next store.Store

	gets    *metrics.Counter
	hits    *metrics.Counter
	misses  *metrics.Counter
	sets    *metrics.Counter
	removes *metrics.Counter
}

// NewInstrumentedStore wraps a store with operation counters. The label
// distinguishes multiple instrumented stores in one process; all counters
// are published on the default metrics set as
// prefkit_store_ops_total{store="<label>",op="..."} plus hit/miss counters
// for reads.
func NewInstrumentedStore(label string, next store.Store) store.Store {
	counter := func(op string) *metrics.Counter {
		return metrics.GetOrCreateCounter(fmt.Sprintf(`prefkit_store_ops_total{store=%q,op=%q}`, label, op))
	}
	return &storeImpl{
		next:    next,
		gets:    counter("get"),
		sets:    counter("set"),
		removes: counter("remove"),
		hits:    metrics.GetOrCreateCounter(fmt.Sprintf(`prefkit_store_reads_total{store=%q,result="hit"}`, label)),
		misses:  metrics.GetOrCreateCounter(fmt.Sprintf(`prefkit_store_reads_total{store=%q,result="miss"}`, label)),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Has(key string) bool {
	return s.next.Has(key)
}

func (s *storeImpl) Get(key string) (store.Value, bool) {
	s.gets.Inc()
	v, ok := s.next.Get(key)
	if ok {
		s.hits.Inc()
	} else {
		s.misses.Inc()
	}
	return v, ok
}

func (s *storeImpl) Set(key string, value store.Value) {
	s.sets.Inc()
	s.next.Set(key, value)
}

func (s *storeImpl) Remove(key string) {
	s.removes.Inc()
	s.next.Remove(key)
}
