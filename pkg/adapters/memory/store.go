package memory

import (
	"context"
	"sync"

	"github.com/aretw0/logos/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data       map[string]domain.Result
	maxEntries int
	mu         sync.RWMutex
}

// Option configures the Store.
type Option func(*Store)

// WithMaxEntries bounds the number of cached results.
// When full, an arbitrary entry is evicted. Zero means unbounded.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		s.maxEntries = n
	}
}

// NewStore creates a new in-memory store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		data: make(map[string]domain.Result),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put stores the result in memory. Result is a value type, so the stored
// copy is isolated from the caller.
func (s *Store) Put(ctx context.Context, key string, result domain.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; !exists && s.maxEntries > 0 && len(s.data) >= s.maxEntries {
		for k := range s.data {
			delete(s.data, k)
			break
		}
	}
	s.data[key] = result
	return nil
}

// Get retrieves the result from memory.
func (s *Store) Get(ctx context.Context, key string) (domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.data[key]
	if !ok {
		return domain.Result{}, domain.ErrResultNotFound
	}
	return result, nil
}

// Delete removes the result.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len returns the number of cached results.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
