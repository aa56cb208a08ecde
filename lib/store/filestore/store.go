package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/prefkit/prefkit/lib/codec"
	"github.com/prefkit/prefkit/lib/store"
	"github.com/sirupsen/logrus"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	magicNum     = "PREFKIT\x00" // File format identifier
	fileVersion  = byte(1)       // Snapshot format version
	snapshotPerm = 0o644
)

// --------------------------------------------------------------------------
// Store implementation
// --------------------------------------------------------------------------

type storeImpl struct {
	mu     sync.RWMutex
	data   map[string]store.Value
	path   string
	codec  codec.Codec
	logger *logrus.Entry
}

// Open creates a file-backed store at the given path using the given
// snapshot codec. If a snapshot already exists it is loaded; a missing file
// starts an empty store. Every mutation is flushed to disk synchronously;
// flush failures are logged and do not fail the mutation, matching the
// error-free store contract.
func Open(path string, c codec.Codec) (store.Store, error) {
	s := &storeImpl{
		data:  make(map[string]store.Value),
		path:  path,
		codec: c,
		logger: logrus.WithFields(logrus.Fields{
			"component": "filestore",
			"path":      path,
		}),
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

func (s *storeImpl) Get(key string) (store.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *storeImpl) Set(key string, value store.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.flushLocked()
}

func (s *storeImpl) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	s.flushLocked()
}

// --------------------------------------------------------------------------
// Persistence
// --------------------------------------------------------------------------

// load reads the snapshot file into memory. A missing file is not an error.
func (s *storeImpl) load() error {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("filestore: read snapshot: %w", err)
	}

	header := []byte(magicNum)
	if len(b) < len(header)+1 || !bytes.Equal(b[:len(header)], header) {
		return fmt.Errorf("filestore: %s is not a prefkit snapshot", s.path)
	}
	if v := b[len(header)]; v != fileVersion {
		return fmt.Errorf("filestore: unsupported snapshot version %d", v)
	}

	snap, err := s.codec.Decode(b[len(header)+1:])
	if err != nil {
		return fmt.Errorf("filestore: decode snapshot: %w", err)
	}

	s.data = make(map[string]store.Value, len(snap))
	for key, v := range snap {
		s.data[key] = v
	}
	return nil
}

// flushLocked writes the current state to disk. The caller must hold the
// write lock. The write goes through a temp file and rename so a crash
// mid-write never corrupts the previous snapshot.
func (s *storeImpl) flushLocked() {
	snap := make(codec.Snapshot, len(s.data))
	for key, v := range s.data {
		snap[key] = v
	}

	payload, err := s.codec.Encode(snap)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode snapshot")
		return
	}

	var buf bytes.Buffer
	buf.WriteString(magicNum)
	buf.WriteByte(fileVersion)
	buf.Write(payload)

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), snapshotPerm); err != nil {
		s.logger.WithError(err).Error("failed to write snapshot")
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.WithError(err).Error("failed to replace snapshot")
		_ = os.Remove(tmp)
	}
}

// DefaultPath returns the conventional snapshot location for an application
// name, below the user config directory.
func DefaultPath(app string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("filestore: locate user config dir: %w", err)
	}
	return filepath.Join(dir, app, "preferences.snapshot"), nil
}
