// Package memory provides an in-process preference backend for ephemeral
// sessions and for callers that run without a writable data directory.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/bnema/prefkit/internal/application/port"
)

// Store is a port.KeyValueStore that lives only as long as the process.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

var (
	_ port.KeyValueStore  = (*Store)(nil)
	_ port.KeyValueLister = (*Store)(nil)
)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// All returns a copy of every stored preference.
func (s *Store) All(context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.data), nil
}
