package testutil

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
)

// ErrInjected is returned by MemoryStore when a failure is armed
var ErrInjected = errors.New("injected store failure")

// MemoryStore is an in-memory media store with failure injection
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// FailPutAfter makes every Put after the first n successful ones fail (-1 disables).
	FailPutAfter int
	// FailDelete makes Delete fail for keys containing this substring
	FailDelete string

	puts int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}, FailPutAfter: -1}
}

func (s *MemoryStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPutAfter >= 0 && s.puts >= s.FailPutAfter {
		return ErrInjected
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.puts++
	s.blobs[key] = data
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailDelete != "" && strings.Contains(key, s.FailDelete) {
		return ErrInjected
	}
	delete(s.blobs, key)
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[key]
	return ok, nil
}

func (s *MemoryStore) URL(key string) string {
	return "http://media.test/" + key
}

// Keys returns the stored keys in sorted order
func (s *MemoryStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.blobs))
	for k := range s.blobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
