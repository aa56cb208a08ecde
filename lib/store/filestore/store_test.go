package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prefkit/prefkit/lib/codec"
	"github.com/prefkit/prefkit/lib/store"
	storetest "github.com/prefkit/prefkit/lib/store/testing"
)

func TestFileStore(t *testing.T) {
	for _, name := range []string{"json", "gob"} {
		c, err := codec.New(name)
		if err != nil {
			t.Fatalf("codec %q: %v", name, err)
		}

		storetest.RunStoreTests(t, "FileStore/"+name, func() store.Store {
			s, err := Open(filepath.Join(t.TempDir(), "prefs.snapshot"), c)
			if err != nil {
				panic(err)
			}
			return s
		})
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.snapshot")
	c := codec.NewJSONCodec()

	s, err := Open(path, c)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.Set("volume", store.MustValue(int64(11)))
	s.Set("theme", store.MustValue("dark"))
	s.Set("gone", store.MustValue(true))
	s.Remove("gone")

	reopened, err := Open(path, c)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	v, ok := reopened.Get("volume")
	if !ok {
		t.Fatalf("Expected volume to survive reopen")
	}
	if got, _ := store.As[int64](v); got != 11 {
		t.Errorf("Expected volume 11 after reopen, got %d", got)
	}

	v, ok = reopened.Get("theme")
	if !ok {
		t.Fatalf("Expected theme to survive reopen")
	}
	if got, _ := store.As[string](v); got != "dark" {
		t.Errorf("Expected theme dark after reopen, got %q", got)
	}

	if reopened.Has("gone") {
		t.Errorf("Expected removed key to stay gone after reopen")
	}
}

func TestFileStoreRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.snapshot")
	if err := os.WriteFile(path, []byte("definitely not a snapshot"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Open(path, codec.NewJSONCodec()); err == nil {
		t.Errorf("Expected Open to reject a file without the snapshot header")
	}
}

func TestFileStoreRejectsFutureVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.snapshot")
	raw := append([]byte(magicNum), 99)
	if err := os.WriteFile(path, append(raw, []byte("{}")...), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Open(path, codec.NewJSONCodec()); err == nil {
		t.Errorf("Expected Open to reject an unknown snapshot version")
	}
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist-yet.snapshot")

	s, err := Open(path, codec.NewGOBCodec())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Has("anything") {
		t.Errorf("Expected a fresh store to be empty")
	}
}
