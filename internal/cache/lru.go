package cache

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUProvider implements Provider with a bounded in-process LRU. Entries
// carry their own expiry so callers can mix TTLs; expired entries are
// dropped lazily on read. All datasets here are local, so an external cache
// service would buy nothing.
type LRUProvider struct {
	entries *lru.Cache[string, lruEntry]
}

type lruEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewLRUProvider creates a Provider bounded to size entries.
func NewLRUProvider(size int) (*LRUProvider, error) {
	if size <= 0 {
		return nil, errors.New("lru cache size must be positive")
	}
	entries, err := lru.New[string, lruEntry](size)
	if err != nil {
		return nil, err
	}
	return &LRUProvider{entries: entries}, nil
}

// Get returns the cached value or ErrCacheMiss when absent or expired.
func (p *LRUProvider) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := p.entries.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		p.entries.Remove(key)
		return nil, ErrCacheMiss
	}
	return entry.value, nil
}

// Set stores a value; a non-positive ttl means the entry never expires
// (it still ages out of the LRU).
func (p *LRUProvider) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := lruEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	p.entries.Add(key, entry)
	return nil
}

// Del removes a key.
func (p *LRUProvider) Del(_ context.Context, key string) error {
	p.entries.Remove(key)
	return nil
}

// Close purges the cache.
func (p *LRUProvider) Close() error {
	p.entries.Purge()
	return nil
}
