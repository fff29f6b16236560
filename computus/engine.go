// Package computus computes the date of Easter Sunday in the Western
// (Gregorian) and Orthodox traditions, and the movable feasts that hang
// off it.
package computus

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Variant selects the church calendar Easter is computed for.
type Variant int

const (
	// Western is the Gregorian computus used by Catholic and Protestant churches
	Western Variant = iota
	// Orthodox is the Julian computus, expressed as a Gregorian date
	Orthodox
)

func (v Variant) String() string {
	switch v {
	case Western:
		return "western"
	case Orthodox:
		return "orthodox"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Years returns the first and last year the variant's formula yields
// correct dates for.
func (v Variant) Years() (first, last int) {
	if v == Orthodox {
		return 1900, 2099
	}
	return 1583, 4099
}

// Engine computes Easter dates and memoizes them.
type Engine struct {
	cache   *Cache
	logger  *slog.Logger
	metrics *Metrics
}

// NewEngine creates an engine with the given configuration
func NewEngine(config Config) *Engine {
	var cache *Cache
	if config.CacheEnabled {
		cache = NewCache(config.CacheConfig)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Engine{
		cache:   cache,
		logger:  logger,
		metrics: config.Metrics,
	}
}

// Default returns the process-wide engine. It is created on first use with
// DefaultConfig and lives until the process exits; its cache grows with the
// number of distinct years ever requested.
var Default = sync.OnceValue(func() *Engine {
	return NewEngine(DefaultConfig)
})

// Cache returns the engine's cache, or nil when caching is disabled.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// Easter returns Easter Sunday of year for variant.
func (e *Engine) Easter(year int, variant Variant) time.Time {
	if e.cache == nil {
		e.metrics.observe(variant, resultUncached)
		return compute(year, variant)
	}

	if date, ok := e.cache.Get(variant, year); ok {
		e.metrics.observe(variant, resultHit)
		return date
	}

	date := compute(year, variant)
	e.cache.Set(variant, year, date)
	e.metrics.observe(variant, resultMiss)
	e.logger.Debug("computed easter",
		"variant", variant.String(),
		"year", year,
		"date", date.Format(time.DateOnly))
	return date
}

// Western returns Gregorian Easter Sunday of year.
func (e *Engine) Western(year int) time.Time {
	return e.Easter(year, Western)
}

// Orthodox returns Orthodox Easter Sunday of year as a Gregorian date.
func (e *Engine) Orthodox(year int) time.Time {
	return e.Easter(year, Orthodox)
}

// Feast returns the date of feast in year for variant.
func (e *Engine) Feast(year int, variant Variant, feast Feast) time.Time {
	return e.Easter(year, variant).AddDate(0, 0, feast.Offset())
}

func compute(year int, variant Variant) time.Time {
	switch variant {
	case Western:
		return WesternEaster(year)
	case Orthodox:
		return OrthodoxEaster(year)
	default:
		panic(fmt.Sprintf("computus: unknown variant %d", int(variant)))
	}
}

// WesternEaster computes Gregorian Easter Sunday with Oudin's algorithm.
// All divisions truncate.
func WesternEaster(year int) time.Time {
	g := year % 19
	c := year / 100
	h := (c - c/4 - (8*c+13)/25 + 19*g + 15) % 30
	i := h - (h/28)*(1-(h/28)*(29/(h+1))*((21-g)/11))
	day := i - (year+year/4+i+2-c+c/4)%7 + 28

	if day > 31 {
		return time.Date(year, time.April, day-31, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, time.March, day, 0, 0, 0, 0, time.UTC)
}

// OrthodoxEaster computes Orthodox Easter Sunday. The Julian date is
// returned already converted to the Gregorian calendar, which holds for
// 1900 through 2099.
func OrthodoxEaster(year int) time.Time {
	a := year % 19
	b := year % 7
	c := year % 4
	d := (19*a + 16) % 30
	e := (2*c + 4*b + 6*d) % 7
	key := d + e + 3

	if key > 30 {
		return time.Date(year, time.May, key-30, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, time.April, key, 0, 0, 0, 0, time.UTC)
}
