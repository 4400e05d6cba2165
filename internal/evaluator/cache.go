package evaluator

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Cache memoizes closure calls for one evaluation session. Keys are the
// closure's identity plus the structural value of the arguments. Entries
// are never evicted: a long-running program with many distinct argument
// tuples grows the cache for the lifetime of the session.
//
// The evaluator itself is single-threaded; the lock makes the cache safe
// to share between concurrent embedders, and Store keeps the first value
// written for a key so a cached key is never recomputed into a new value.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]cacheEntry
	size    int

	hits   atomic.Uint64
	misses atomic.Uint64
	stores atomic.Uint64
}

type cacheKey struct {
	fn   *Closure
	hash uint64
}

type cacheEntry struct {
	args   []Value
	result Value
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Stores  uint64
	Entries int
}

func (s CacheStats) String() string {
	return fmt.Sprintf("cache: %d entries, %d hits, %d misses, %d stores",
		s.Entries, s.Hits, s.Misses, s.Stores)
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]cacheEntry)}
}

// Cacheable reports whether args can form a cache key.
func Cacheable(args []Value) bool {
	_, ok := HashArgs(args)
	return ok
}

// Lookup returns the stored result for fn applied to args.
func (c *Cache) Lookup(fn *Closure, args []Value) (Value, bool) {
	h, ok := HashArgs(args)
	if !ok {
		return nil, false
	}
	return c.lookupHashed(fn, h, args)
}

func (c *Cache) lookupHashed(fn *Closure, h uint64, args []Value) (Value, bool) {
	c.mu.RLock()
	v, found := c.find(cacheKey{fn: fn, hash: h}, args)
	c.mu.RUnlock()
	if found {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, found
}

// Store records result for fn applied to args and returns the value now
// associated with the key. If another writer got there first, its value
// wins and is returned. Ineligible args are not stored.
func (c *Cache) Store(fn *Closure, args []Value, result Value) Value {
	h, ok := HashArgs(args)
	if !ok {
		return result
	}
	return c.storeHashed(fn, h, args, result)
}

func (c *Cache) storeHashed(fn *Closure, h uint64, args []Value, result Value) Value {
	key := cacheKey{fn: fn, hash: h}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, found := c.find(key, args); found {
		return existing
	}
	owned := make([]Value, len(args))
	copy(owned, args)
	c.entries[key] = append(c.entries[key], cacheEntry{args: owned, result: result})
	c.size++
	c.stores.Add(1)
	return result
}

// find must be called with mu held.
func (c *Cache) find(key cacheKey, args []Value) (Value, bool) {
	for _, e := range c.entries[key] {
		if argsEqual(e.args, args) {
			return e.result, true
		}
	}
	return nil, false
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Stores:  c.stores.Load(),
		Entries: c.Len(),
	}
}

func argsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ValuesEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
