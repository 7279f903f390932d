// Package cache provides the cache repository adapters and the persisted
// generated-recipe store built on top of them. Redis backs production; the
// in-memory repository backs tests and single-process deployments.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alchemorsel/discovery/internal/ports/outbound"
)

// ErrKeyNotFound is returned for missing or expired keys.
var ErrKeyNotFound = errors.New("key not found")

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// MemoryRepository implements outbound.CacheRepository with a mutex-guarded
// map and lazy expiry plus a background sweep.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string]memoryItem
}

// NewMemoryRepository creates an in-memory cache repository.
func NewMemoryRepository() *MemoryRepository {
	r := &MemoryRepository{data: make(map[string]memoryItem)}
	go r.sweep()
	return r
}

// Get retrieves a value from cache
func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	item, ok := r.data[key]
	r.mu.RUnlock()

	if !ok || time.Now().After(item.expiresAt) {
		return nil, ErrKeyNotFound
	}
	return item.value, nil
}

// Set stores a value in cache with TTL; zero TTL defaults to 24 hours.
func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = memoryItem{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Delete removes a key from cache
func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// Exists checks if a key exists in cache
func (r *MemoryRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.data[key]
	if !ok || time.Now().After(item.expiresAt) {
		return false, nil
	}
	return true, nil
}

// sweep removes expired items periodically.
func (r *MemoryRepository) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		r.mu.Lock()
		for key, item := range r.data {
			if now.After(item.expiresAt) {
				delete(r.data, key)
			}
		}
		r.mu.Unlock()
	}
}

var _ outbound.CacheRepository = (*MemoryRepository)(nil)
