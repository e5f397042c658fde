package decoder

import "sync"

// Loader produces the value for a cache miss on key.
type Loader[K comparable, V any] func(key K) (V, error)

// ReadOnlyCache is the read-only view of a Cache, handed to callers that
// should only ever observe rows another party resolved (spec §4.6,
// adapted from the teacher's hive/index ReadOnlyIndex/Index split).
type ReadOnlyCache[K comparable, V any] interface {
	Get(key K) (*V, bool)
}

// Cache is an append-only, publish-once map: a get-or-load miss inserts
// exactly once under the write lock, and the returned pointer is stable
// for the cache's lifetime (spec §9 "ownership of cached rows", §5
// "no lock held across registry I/O on hits").
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]*V
}

// NewCache returns an empty Cache.
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{items: make(map[K]*V)}
}

// Get returns the cached value for key, if any, without loading.
func (c *Cache[K, V]) Get(key K) (*V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// GetOrLoad returns the cached value for key, calling load on a miss and
// publishing its result. Concurrent misses for the same key race on the
// write lock, not on the loader; whichever call wins populates the
// cache, and every caller observes the same published value.
func (c *Cache[K, V]) GetOrLoad(key K, load Loader[K, V]) (*V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.items[key]; ok {
		return v, nil
	}
	v, err := load(key)
	if err != nil {
		return nil, err
	}
	c.items[key] = &v
	return &v, nil
}
