// Package provider holds the per-country holiday rule tables.
//
// A provider turns a year into the unsorted list of holidays valid in that
// year. Ordering is left to the calendar assembler.
package provider

import (
	"maps"

	"github.com/cyp0633/libholiday/computus"
	"github.com/cyp0633/libholiday/holiday"
)

// Provider computes the holidays of one country.
type Provider interface {
	// Holidays returns the holidays valid in year, in rule order.
	Holidays(year int) []holiday.Holiday
}

// CountyProvider is a Provider whose country has subdivisions.
type CountyProvider interface {
	Provider
	// Counties maps subdivision codes ("DE-BY") to their names.
	Counties() map[string]string
}

// ChurchProvider is a Provider with movable feasts. Its dates are only
// correct within the years of its Easter variant.
type ChurchProvider interface {
	Provider
	Variant() computus.Variant
}

// collector accumulates the records of one year and drops those whose
// launch year lies after it.
type collector struct {
	year int
	list []holiday.Holiday
}

func newCollector(year, capacity int) *collector {
	return &collector{
		year: year,
		list: make([]holiday.Holiday, 0, capacity),
	}
}

func (c *collector) add(builders ...holiday.Builder) {
	for _, b := range builders {
		h := b.Build()
		if !h.ValidIn(c.year) {
			continue
		}
		c.list = append(c.list, h)
	}
}

func (c *collector) holidays() []holiday.Holiday {
	return c.list
}

func engineOrDefault(engine *computus.Engine) *computus.Engine {
	if engine == nil {
		return computus.Default()
	}
	return engine
}

func cloneCounties(m map[string]string) map[string]string {
	return maps.Clone(m)
}
