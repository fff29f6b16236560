// Package calendar assembles per-country holiday providers into sorted
// yearly calendars.
package calendar

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/cyp0633/libholiday/computus"
	"github.com/cyp0633/libholiday/holiday"
	"github.com/cyp0633/libholiday/provider"
	"github.com/samber/mo"
)

// Assembler routes a country code to its provider and orders the result.
type Assembler struct {
	engine    *computus.Engine
	logger    *slog.Logger
	overrides map[holiday.CountryCode]provider.Provider
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithProvider replaces or adds the provider used for code.
func WithProvider(code holiday.CountryCode, p provider.Provider) Option {
	return func(a *Assembler) {
		a.overrides[code] = p
	}
}

// WithLogger sets the logger. Without it nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithEngine sets the Easter engine shared by the built-in providers.
// Without it computus.Default is used.
func WithEngine(engine *computus.Engine) Option {
	return func(a *Assembler) {
		if engine != nil {
			a.engine = engine
		}
	}
}

// New creates an Assembler.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		overrides: make(map[holiday.CountryCode]provider.Provider),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.engine == nil {
		a.engine = computus.Default()
	}
	return a
}

var defaultAssembler = sync.OnceValue(func() *Assembler {
	return New()
})

// Holidays assembles a calendar with the default Assembler.
func Holidays(year int, code holiday.CountryCode) []holiday.Holiday {
	return defaultAssembler().Holidays(year, code)
}

// Counties lists subdivisions with the default Assembler.
func Counties(code holiday.CountryCode) mo.Option[map[string]string] {
	return defaultAssembler().Counties(code)
}

// Provider returns the provider for code, if there is one.
func (a *Assembler) Provider(code holiday.CountryCode) (provider.Provider, bool) {
	if p, ok := a.overrides[code]; ok {
		return p, true
	}

	switch code {
	case holiday.DE:
		return provider.NewGermany(a.engine), true
	case holiday.GB:
		return provider.NewUnitedKingdom(a.engine), true
	case holiday.GR:
		return provider.NewGreece(a.engine), true
	case holiday.PL:
		return provider.NewPoland(a.engine), true
	case holiday.RU:
		return provider.NewRussia(), true
	case holiday.UA:
		return provider.NewUkraine(a.engine), true
	case holiday.US:
		return provider.NewUnitedStates(a.engine), true
	case holiday.AT, holiday.BE, holiday.CA, holiday.CH, holiday.CZ, holiday.DK, holiday.ES,
		holiday.FI, holiday.FR, holiday.IE, holiday.IT, holiday.NL, holiday.NO, holiday.PT, holiday.SE:
		return nil, false
	default:
		return nil, false
	}
}

// Holidays returns the holidays of code in year sorted by date. Records on
// the same date keep the provider's order. Countries without a provider
// yield an empty, non-nil list.
func (a *Assembler) Holidays(year int, code holiday.CountryCode) []holiday.Holiday {
	p, ok := a.Provider(code)
	if !ok {
		a.logger.Debug("no holiday provider for country",
			"country", code.String(),
			"year", year)
		return []holiday.Holiday{}
	}

	list := slices.Clone(p.Holidays(year))
	if list == nil {
		return []holiday.Holiday{}
	}
	slices.SortStableFunc(list, func(x, y holiday.Holiday) int {
		return x.Date.Compare(y.Date)
	})

	a.logger.Debug("assembled holidays",
		"country", code.String(),
		"year", year,
		"count", len(list))
	return list
}

// Counties returns a copy of the subdivision map of code. It is absent
// when the country has no provider or its provider has no subdivisions.
func (a *Assembler) Counties(code holiday.CountryCode) mo.Option[map[string]string] {
	p, ok := a.Provider(code)
	if !ok {
		return mo.None[map[string]string]()
	}
	cp, ok := p.(provider.CountyProvider)
	if !ok {
		return mo.None[map[string]string]()
	}
	return mo.Some(maps.Clone(cp.Counties()))
}

// YearRange is an inclusive range of years
type YearRange struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// Contains reports whether year lies within r
func (r YearRange) Contains(year int) bool {
	return year >= r.First && year <= r.Last
}

// Years returns the years the calendar of code is correct for, as bounded
// by its Easter variant. It is absent when the country has no movable
// feasts or no provider.
func (a *Assembler) Years(code holiday.CountryCode) mo.Option[YearRange] {
	p, ok := a.Provider(code)
	if !ok {
		return mo.None[YearRange]()
	}
	cp, ok := p.(provider.ChurchProvider)
	if !ok {
		return mo.None[YearRange]()
	}
	first, last := cp.Variant().Years()
	return mo.Some(YearRange{First: first, Last: last})
}

// Supported returns the codes that have a provider, in enumeration order.
func (a *Assembler) Supported() []holiday.CountryCode {
	var codes []holiday.CountryCode
	for _, code := range holiday.CountryCodes() {
		if _, ok := a.Provider(code); ok {
			codes = append(codes, code)
		}
	}
	return codes
}
