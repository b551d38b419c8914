// Package query caches remote reads by key and invalidates them by entity
// kind. There is no TTL: an entry stays fresh until a mutation on its kind
// marks it stale, which forces the next read back to the network.
package query

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key joins key parts with "/": Key("orchids", "7") -> "orchids/7". The
// first part is the entity kind; InvalidateKind matches on it.
func Key(parts ...string) string {
	return strings.Join(parts, "/")
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]any
	group   singleflight.Group
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// GetOrFetch returns the cached value for key, or runs fetch and caches its
// result. Concurrent misses on the same key share one fetch.
func GetOrFetch[T any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		if t, ok := v.(T); ok {
			c.mu.Unlock()
			return t, nil
		}
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	t := v.(T)
	c.mu.Lock()
	c.entries[key] = t
	c.mu.Unlock()
	return t, nil
}

// Invalidate drops the given exact keys.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
		c.group.Forget(k)
	}
}

// InvalidateKind drops every entry belonging to the entity kind: the kind
// key itself and all keys beneath it ("orchids", "orchids/available",
// "orchids/7", ...).
func (c *Cache) InvalidateKind(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := kind + "/"
	for k := range c.entries {
		if k == kind || strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			c.group.Forget(k)
		}
	}
}

// Len reports the number of live entries. Used by tests.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
