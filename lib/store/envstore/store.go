package envstore

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prefkit/prefkit/lib/store"
)

type storeImpl struct {
	prefix string
	file   map[string]string
}

// NewEnvStore creates a read-only store over the process environment.
// A preference key like "editor.tab-width" maps onto the variable
// PREFIX_EDITOR_TAB_WIDTH. All values are strings since the environment
// is untyped.
func NewEnvStore(prefix string) store.Reader {
	return &storeImpl{prefix: prefix}
}

// NewEnvStoreFromFiles is like NewEnvStore but additionally reads the given
// dotenv files. File entries do not modify the process environment; a
// variable set in the environment wins over the same variable in a file.
func NewEnvStoreFromFiles(prefix string, files ...string) (store.Reader, error) {
	fileVars, err := godotenv.Read(files...)
	if err != nil {
		return nil, err
	}
	return &storeImpl{prefix: prefix, file: fileVars}, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Has(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

func (s *storeImpl) Get(key string) (store.Value, bool) {
	raw, ok := s.lookup(key)
	if !ok {
		return store.Value{}, false
	}
	return store.MustValue(raw), true
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func (s *storeImpl) lookup(key string) (string, bool) {
	name := s.varName(key)
	if raw, ok := os.LookupEnv(name); ok {
		return raw, true
	}
	raw, ok := s.file[name]
	return raw, ok
}

// varName converts a preference key into an environment variable name.
func (s *storeImpl) varName(key string) string {
	name := strings.NewReplacer(".", "_", "-", "_").Replace(key)
	name = strings.ToUpper(name)
	if s.prefix == "" {
		return name
	}
	return strings.ToUpper(s.prefix) + "_" + name
}
