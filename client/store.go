package client

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
)

// Store is the durable per-session key/value space used for auth tokens,
// cart contents and current-transaction snapshots. Values are JSON and
// best effort: a corrupt entry reads as absent, never as an error the
// caller must handle.
type Store interface {
	Get(key string, out any) bool
	Set(key string, value any) error
	Delete(key string)
}

const (
	KeyAuthToken   = "auth_token"
	KeyCart        = "cart"
	KeyCurrentTxn  = "current_transaction"
	KeyStaffName   = "staff_name"
	KeyStationCode = "station_code"
)

// FileStore keeps one JSON file per key under a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, slug.Make(key)+".json")
}

func (s *FileStore) Get(key string, out any) bool {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Corrupt entries are discarded, not surfaced
		os.Remove(s.path(key))
		return false
	}
	return true
}

func (s *FileStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), raw, 0o644)
}

func (s *FileStore) Delete(key string) {
	os.Remove(s.path(key))
}

// MemoryStore backs tests and throwaway sessions.
type MemoryStore struct {
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string, out any) bool {
	raw, ok := s.values[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		delete(s.values, key)
		return false
	}
	return true
}

func (s *MemoryStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.values[key] = raw
	return nil
}

func (s *MemoryStore) Delete(key string) {
	delete(s.values, key)
}
