package session

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// Storage persists the bearer token across process restarts. It is the
// only shared mutable resource outside the store itself; only the
// session store writes it.
type Storage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStorage keeps the token in a single file, the CLI counterpart of
// a browser's localStorage key.
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (s *FileStorage) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStorage) Save(token string) error {
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileStorage) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage is for tests.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryStorage) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
