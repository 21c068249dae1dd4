package datefmt

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// Cache is an LRU cache of compiled templates keyed by their raw string. It
// is safe for concurrent access.
type Cache struct {
	cache *lru.Cache
	sync.Mutex
}

// NewCache creates a new Cache.
// If maxEntries is zero, the cache has no limit.
func NewCache(maxEntries int) *Cache {
	return &Cache{cache: lru.New(maxEntries)}
}

// Compile returns the cached template for raw, compiling it on a miss.
func (c *Cache) Compile(raw string) *Template {
	c.Lock()
	defer c.Unlock()
	if v, ok := c.cache.Get(raw); ok {
		return v.(*Template)
	}

	t := Compile(raw)
	c.cache.Add(raw, t)
	return t
}

// Remove drops raw from the cache.
func (c *Cache) Remove(raw string) {
	c.Lock()
	defer c.Unlock()
	c.cache.Remove(raw)
}

// Len returns the number of cached templates.
func (c *Cache) Len() int {
	c.Lock()
	defer c.Unlock()
	return c.cache.Len()
}

// Clear purges all cached templates.
func (c *Cache) Clear() {
	c.Lock()
	defer c.Unlock()
	c.cache.Clear()
}
