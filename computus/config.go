package computus

import "log/slog"

// Config holds configuration options for the Easter engine
type Config struct {
	CacheEnabled bool
	CacheConfig  CacheConfig

	// Logger receives debug output for computed dates. Nil discards it.
	Logger *slog.Logger
	// Metrics counts lookups by variant and cache result. Nil disables it.
	Metrics *Metrics
}

// DefaultConfig caches every year that is ever requested
var DefaultConfig = Config{
	CacheEnabled: true,
	CacheConfig:  CacheConfig{MaxEntries: 0},
}

// LowMemoryConfig keeps roughly the most recent century per variant
var LowMemoryConfig = Config{
	CacheEnabled: true,
	CacheConfig:  CacheConfig{MaxEntries: 200},
}

// DisabledCacheConfig computes every date from scratch
var DisabledCacheConfig = Config{
	CacheEnabled: false,
}
