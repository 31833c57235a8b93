// Package cache is an in-process TTL cache used to wrap read repositories.
// Loads for the same key are collapsed through a single flight group.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/qazleague/cup-service/internal/platform/resilience"
)

type record struct {
	value     any
	expiresAt time.Time
}

type Store struct {
	mu      sync.RWMutex
	records map[string]record
	ttl     time.Duration
	flight  resilience.SingleFlight
}

// NewStore builds a store whose entries expire after ttl. A zero ttl
// disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		records: make(map[string]record),
		ttl:     ttl,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := time.Now()
	s.mu.RLock()
	rec, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !rec.expiresAt.After(now) {
		s.mu.Lock()
		delete(s.records, key)
		s.mu.Unlock()
		return nil, false
	}

	return rec.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.records[key] = record{
		value:     value,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key, loading and caching it on a
// miss. Concurrent misses for the same key run loader once.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
