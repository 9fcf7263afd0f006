package storage

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Store is the persistence surface the game needs: string values under
// string keys. Writes may silently fail; callers keep their in-memory
// state authoritative either way.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemStore keeps values in a plain map. It backs tests and serves as
// the fallback when no data directory is usable.
type MemStore map[string]string

func (store MemStore) Get(key string) (string, bool) {
	value, ok := store[key]
	return value, ok
}

func (store MemStore) Set(key, value string) {
	store[key] = value
}

// FileStore persists each key as its own file in a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (store *FileStore) path(key string) string {
	return filepath.Join(store.dir, key+".json")
}

func (store *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(store.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes the value, logging and swallowing any failure.
func (store *FileStore) Set(key, value string) {
	if err := os.WriteFile(store.path(key), []byte(value), 0666); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("could not persist data")
	}
}
