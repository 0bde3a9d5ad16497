package upstream

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// memoCache memoizes successful fetches by string key in a size-bounded LRU
// with TTL. Concurrent misses for the same key are collapsed into a single
// outbound call via singleflight; failures are never cached.
type memoCache[V any] struct {
	lru   *expirable.LRU[string, V]
	group singleflight.Group
}

func newMemoCache[V any](size int, ttl time.Duration) *memoCache[V] {
	return &memoCache[V]{
		lru: expirable.NewLRU[string, V](size, nil, ttl),
	}
}

// Do returns the cached value for key, or runs fetch exactly once across
// concurrent callers and caches its result on success.
func (c *memoCache[V]) Do(key string, fetch func() (V, error)) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// a concurrent caller may have populated the entry meanwhile
		if v, ok := c.lru.Get(key); ok {
			return v, nil
		}
		val, err := fetch()
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Len reports the number of cached entries.
func (c *memoCache[V]) Len() int { return c.lru.Len() }
