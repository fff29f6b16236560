package computus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_BasicOperations(t *testing.T) {
	cache := NewCache(CacheConfig{})

	_, found := cache.Get(Western, 2022)
	assert.False(t, found, "expected cache miss")

	cache.Set(Western, 2022, date(2022, time.April, 17))

	got, found := cache.Get(Western, 2022)
	assert.True(t, found, "expected cache hit")
	assert.Equal(t, date(2022, time.April, 17), got)

	_, found = cache.Get(Orthodox, 2022)
	assert.False(t, found, "variants must not share entries")
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCache(CacheConfig{MaxEntries: 2})

	cache.Set(Western, 2020, WesternEaster(2020))
	cache.Set(Western, 2021, WesternEaster(2021))

	// Touch 2020 so that 2021 becomes the oldest entry.
	_, found := cache.Get(Western, 2020)
	assert.True(t, found)

	cache.Set(Western, 2022, WesternEaster(2022))
	assert.Equal(t, 2, cache.Len())

	_, found = cache.Get(Western, 2021)
	assert.False(t, found, "2021 should have been evicted")
	_, found = cache.Get(Western, 2020)
	assert.True(t, found)
	_, found = cache.Get(Western, 2022)
	assert.True(t, found)
}

func TestCache_Unbounded(t *testing.T) {
	cache := NewCache(DefaultConfig.CacheConfig)
	for year := 1900; year <= 2100; year++ {
		cache.Set(Western, year, WesternEaster(year))
	}
	assert.Equal(t, 201, cache.Len())
}

func TestCache_LowMemoryConfigBounded(t *testing.T) {
	engine := NewEngine(LowMemoryConfig)
	for year := 1600; year <= 2100; year++ {
		engine.Western(year)
	}
	assert.Equal(t, LowMemoryConfig.CacheConfig.MaxEntries, engine.Cache().Len())
	assert.Equal(t, date(2100, time.March, 28), engine.Western(2100))
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache(CacheConfig{MaxEntries: 50})

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				year := 1900 + (i*7+w)%150
				if d, ok := cache.Get(Orthodox, year); ok {
					assert.Equal(t, OrthodoxEaster(year), d)
					continue
				}
				cache.Set(Orthodox, year, OrthodoxEaster(year))
			}
		}(w)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 50)
}
