// Package holiday defines the holiday record shared by providers, the
// assembler and the exporters.
package holiday

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/cyp0633/libholiday/datesystem"
	"github.com/samber/mo"
)

// Holiday is one occurrence of a holiday in a specific year.
//
// Records are values. They are produced by a Builder and never modified
// after they leave the provider that built them.
type Holiday struct {
	// Date is the calendar date at midnight UTC.
	Date time.Time
	// LocalName is the name in the country's language.
	LocalName string
	// Name is the canonical English name.
	Name        string
	CountryCode CountryCode
	// Fixed is true when the date is a literal month/day repeated every year.
	Fixed bool
	// Counties restricts the holiday to subdivisions. Absent means nationwide.
	Counties mo.Option[[]string]
	Type     Type
	// LaunchYear is the first year the holiday is legally valid.
	// Filtering on it is up to the provider.
	LaunchYear mo.Option[int]
}

// Global reports whether the holiday applies to the whole country.
func (h Holiday) Global() bool {
	return h.Counties.IsAbsent()
}

// AppliesTo reports whether the holiday is observed in county.
func (h Holiday) AppliesTo(county string) bool {
	counties, ok := h.Counties.Get()
	if !ok {
		return true
	}
	return slices.Contains(counties, county)
}

// ValidIn reports whether year is not before the launch year.
func (h Holiday) ValidIn(year int) bool {
	launch, ok := h.LaunchYear.Get()
	return !ok || year >= launch
}

func (h Holiday) String() string {
	return fmt.Sprintf("%s %s", h.Date.UTC().Format(time.RFC3339), h.Name)
}

type holidayJSON struct {
	Date        string              `json:"date"`
	LocalName   string              `json:"localName"`
	Name        string              `json:"name"`
	CountryCode CountryCode         `json:"countryCode"`
	Fixed       bool                `json:"fixed"`
	Counties    mo.Option[[]string] `json:"counties"`
	Type        Type                `json:"type"`
	LaunchYear  mo.Option[int]      `json:"launchYear"`
}

func (h Holiday) MarshalJSON() ([]byte, error) {
	return json.Marshal(holidayJSON{
		Date:        h.Date.UTC().Format(time.DateOnly),
		LocalName:   h.LocalName,
		Name:        h.Name,
		CountryCode: h.CountryCode,
		Fixed:       h.Fixed,
		Counties:    h.Counties,
		Type:        h.Type,
		LaunchYear:  h.LaunchYear,
	})
}

func (h *Holiday) UnmarshalJSON(data []byte) error {
	var raw holidayJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := time.Parse(time.DateOnly, raw.Date)
	if err != nil {
		return fmt.Errorf("parse holiday date: %w", err)
	}
	*h = Holiday{
		Date:        date,
		LocalName:   raw.LocalName,
		Name:        raw.Name,
		CountryCode: raw.CountryCode,
		Fixed:       raw.Fixed,
		Counties:    raw.Counties,
		Type:        raw.Type,
		LaunchYear:  raw.LaunchYear,
	}
	return nil
}

// Builder configures a Holiday before it is handed out. Every method
// returns a new Builder, so a builder that has already been built cannot
// affect the records produced from it.
type Builder struct {
	h Holiday
}

// Fixed starts a holiday on the literal date year-month-day.
// An impossible date is a programming error and panics.
func Fixed(year int, month time.Month, day int, localName, name string, country CountryCode) Builder {
	return Builder{h: Holiday{
		Date:        datesystem.Date(year, month, day),
		LocalName:   localName,
		Name:        name,
		CountryCode: country,
		Fixed:       true,
		Type:        Public,
	}}
}

// Movable starts a holiday on a computed date (movable feast, located
// weekday, one-off exception). The time of day is dropped.
func Movable(date time.Time, localName, name string, country CountryCode) Builder {
	return Builder{h: Holiday{
		Date:        datesystem.Midnight(date),
		LocalName:   localName,
		Name:        name,
		CountryCode: country,
		Type:        Public,
	}}
}

// Counties restricts the holiday to the given subdivision codes.
func (b Builder) Counties(counties ...string) Builder {
	b.h.Counties = mo.Some(slices.Clone(counties))
	return b
}

// LaunchYear sets the first year the holiday is valid.
func (b Builder) LaunchYear(year int) Builder {
	b.h.LaunchYear = mo.Some(year)
	return b
}

// Type sets the classification. Holidays default to Public.
func (b Builder) Type(t Type) Builder {
	b.h.Type = t
	return b
}

// Date returns the date the builder was started with.
func (b Builder) Date() time.Time {
	return b.h.Date
}

// Build returns the configured record.
func (b Builder) Build() Holiday {
	h := b.h
	if counties, ok := h.Counties.Get(); ok {
		h.Counties = mo.Some(slices.Clone(counties))
	}
	return h
}
