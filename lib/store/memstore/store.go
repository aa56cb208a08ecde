package memstore

import (
	"github.com/prefkit/prefkit/lib/store"
	"github.com/puzpuzpuz/xsync/v3"
)

type storeImpl struct {
	data *xsync.MapOf[string, store.Value]
}

// NewMemStore creates a new in-memory store instance. The store holds its
// data in a concurrent map, so all methods are safe for concurrent use.
// Data lives only as long as the process; nothing is persisted.
func NewMemStore() store.Store {
	return &storeImpl{
		data: xsync.NewMapOf[string, store.Value](),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Has(key string) bool {
	_, ok := s.data.Load(key)
	return ok
}

func (s *storeImpl) Get(key string) (store.Value, bool) {
	return s.data.Load(key)
}

func (s *storeImpl) Set(key string, value store.Value) {
	s.data.Store(key, value)
}

func (s *storeImpl) Remove(key string) {
	s.data.Delete(key)
}
