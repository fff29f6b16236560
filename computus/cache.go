package computus

import (
	"sync"
	"sync/atomic"
	"time"
)

type cacheKey struct {
	variant Variant
	year    int
}

type cacheEntry struct {
	date     time.Time
	accessed atomic.Uint64
}

// Cache memoizes Easter dates per (variant, year).
//
// Values are pure functions of their key, so entries never expire. Two
// goroutines that miss on the same key compute the same date and the
// second Set simply overwrites the first.
type Cache struct {
	entries    map[cacheKey]*cacheEntry
	mutex      sync.RWMutex
	maxEntries int

	tick   atomic.Uint64
	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheConfig holds configuration for the Easter cache
type CacheConfig struct {
	// MaxEntries bounds the number of cached years. Zero means unbounded;
	// when set, the least recently used entries are evicted.
	MaxEntries int
}

// CacheStats provides information about cache usage
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// NewCache creates an empty cache with the given configuration
func NewCache(config CacheConfig) *Cache {
	return &Cache{
		entries:    make(map[cacheKey]*cacheEntry),
		maxEntries: config.MaxEntries,
	}
}

// Get returns the cached date for variant and year, if any.
func (c *Cache) Get(variant Variant, year int) (time.Time, bool) {
	c.mutex.RLock()
	entry, ok := c.entries[cacheKey{variant, year}]
	c.mutex.RUnlock()

	if !ok {
		c.misses.Add(1)
		return time.Time{}, false
	}
	entry.accessed.Store(c.tick.Add(1))
	c.hits.Add(1)
	return entry.date, true
}

// Set stores the date for variant and year.
func (c *Cache) Set(variant Variant, year int, date time.Time) {
	entry := &cacheEntry{date: date}
	entry.accessed.Store(c.tick.Add(1))

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[cacheKey{variant, year}] = entry
	if c.maxEntries > 0 {
		for len(c.entries) > c.maxEntries {
			c.evictOldest()
		}
	}
}

// evictOldest removes the least recently accessed entry. Callers hold the
// write lock.
func (c *Cache) evictOldest() {
	var (
		oldest    cacheKey
		oldestAt  uint64
		haveFirst bool
	)
	for key, entry := range c.entries {
		at := entry.accessed.Load()
		if !haveFirst || at < oldestAt {
			oldest, oldestAt, haveFirst = key, at, true
		}
	}
	if haveFirst {
		delete(c.entries, oldest)
	}
}

// Reset drops every entry and zeroes the counters
func (c *Cache) Reset() {
	c.mutex.Lock()
	c.entries = make(map[cacheKey]*cacheEntry)
	c.mutex.Unlock()

	c.hits.Store(0)
	c.misses.Store(0)
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

// Stats returns cache statistics
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
