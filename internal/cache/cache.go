package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value      T
	expiration time.Time
}

// Cache is a thread-safe TTL cache for storing values in-memory.
// It is parameterised on value type so it can hold IssuerRecord, raw
// credentials, etc. Expiry is lazy: an entry past its deadline is removed on
// the next Get; no background sweeper runs. The check-expire-delete sequence
// happens under a single critical section so two concurrent readers of an
// expired key cannot race on the delete.
type Cache[T any] struct {
	mu   sync.Mutex
	data map[string]entry[T]
	ttl  time.Duration
}

// New creates a TTL-based in-memory cache.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		data: make(map[string]entry[T]),
		ttl:  ttl,
	}
}

// Get returns the cached value if present and not expired.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.data[key]
	if !ok {
		var zero T
		return zero, false
	}
	if time.Now().After(item.expiration) {
		delete(c.data, key)
		var zero T
		return zero, false
	}
	return item.value, true
}

// Put inserts or overwrites a cache entry with a fresh TTL deadline.
func (c *Cache[T]) Put(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = entry[T]{
		value:      value,
		expiration: time.Now().Add(c.ttl),
	}
}

// Bust deletes a single entry from the cache.
func (c *Cache[T]) Bust(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}
