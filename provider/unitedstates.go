package provider

import (
	"time"

	"github.com/cyp0633/libholiday/computus"
	"github.com/cyp0633/libholiday/datesystem"
	"github.com/cyp0633/libholiday/holiday"
	"github.com/samber/mo"
)

var americanCounties = map[string]string{
	"US-AL": "Alabama",
	"US-AK": "Alaska",
	"US-AZ": "Arizona",
	"US-AR": "Arkansas",
	"US-CA": "California",
	"US-CO": "Colorado",
	"US-CT": "Connecticut",
	"US-DE": "Delaware",
	"US-DC": "District of Columbia",
	"US-FL": "Florida",
	"US-GA": "Georgia",
	"US-HI": "Hawaii",
	"US-ID": "Idaho",
	"US-IL": "Illinois",
	"US-IN": "Indiana",
	"US-IA": "Iowa",
	"US-KS": "Kansas",
	"US-KY": "Kentucky",
	"US-LA": "Louisiana",
	"US-ME": "Maine",
	"US-MD": "Maryland",
	"US-MA": "Massachusetts",
	"US-MI": "Michigan",
	"US-MN": "Minnesota",
	"US-MS": "Mississippi",
	"US-MO": "Missouri",
	"US-MT": "Montana",
	"US-NE": "Nebraska",
	"US-NV": "Nevada",
	"US-NH": "New Hampshire",
	"US-NJ": "New Jersey",
	"US-NM": "New Mexico",
	"US-NY": "New York",
	"US-NC": "North Carolina",
	"US-ND": "North Dakota",
	"US-OH": "Ohio",
	"US-OK": "Oklahoma",
	"US-OR": "Oregon",
	"US-PA": "Pennsylvania",
	"US-RI": "Rhode Island",
	"US-SC": "South Carolina",
	"US-SD": "South Dakota",
	"US-TN": "Tennessee",
	"US-TX": "Texas",
	"US-UT": "Utah",
	"US-VT": "Vermont",
	"US-VA": "Virginia",
	"US-WA": "Washington",
	"US-WV": "West Virginia",
	"US-WI": "Wisconsin",
	"US-WY": "Wyoming",
}

var columbusDayStates = []string{
	"US-AL", "US-AZ", "US-CO", "US-CT", "US-DC", "US-GA", "US-ID", "US-IL", "US-IN",
	"US-IA", "US-KS", "US-KY", "US-LA", "US-ME", "US-MD", "US-MA", "US-MS", "US-MO",
	"US-MT", "US-NE", "US-NH", "US-NJ", "US-NM", "US-NY", "US-NC", "US-OH", "US-OK",
	"US-PA", "US-RI", "US-SC", "US-TN", "US-UT", "US-VA", "US-WV",
}

// UnitedStates provides the federal holidays of the United States plus the
// state-level observances of Good Friday, Columbus Day and Inauguration Day.
type UnitedStates struct {
	engine *computus.Engine
}

// NewUnitedStates creates the provider. A nil engine uses computus.Default.
func NewUnitedStates(engine *computus.Engine) *UnitedStates {
	return &UnitedStates{engine: engineOrDefault(engine)}
}

// observed moves Saturday holidays to Friday and Sunday holidays to Monday.
func observed(year int, month time.Month, day int) time.Time {
	return datesystem.Shift(datesystem.Date(year, month, day), -1, 1, mo.None[int]())
}

func (p *UnitedStates) Variant() computus.Variant { return computus.Western }

func (p *UnitedStates) Holidays(year int) []holiday.Holiday {
	const us = holiday.US
	ch := catholic(p.engine, year, us)
	c := newCollector(year, 14)

	nth := func(month time.Month, weekday time.Weekday, occurrence datesystem.Occurrence) time.Time {
		return datesystem.FindDay(year, month, weekday, occurrence).MustGet()
	}

	c.add(
		holiday.Movable(observed(year, time.January, 1), "New Year's Day", "New Year's Day", us),
		holiday.Movable(nth(time.January, time.Monday, datesystem.Third), "Martin Luther King, Jr. Day", "Martin Luther King, Jr. Day", us),
		holiday.Movable(nth(time.February, time.Monday, datesystem.Third), "Presidents Day", "Washington's Birthday", us),
		holiday.Movable(datesystem.FindLastDay(year, time.May, time.Monday), "Memorial Day", "Memorial Day", us),
		ch.goodFriday("Good Friday").
			Counties("US-CT", "US-DE", "US-HI", "US-IN", "US-KY", "US-LA", "US-NC", "US-ND", "US-NJ", "US-TN"),
		ch.goodFriday("Good Friday").
			Counties("US-TX").
			Type(holiday.Optional),
	)

	if year >= 2021 {
		c.add(holiday.Movable(observed(year, time.June, 19), "Juneteenth", "Juneteenth", us).LaunchYear(2021))
	}

	c.add(
		holiday.Movable(observed(year, time.July, 4), "Independence Day", "Independence Day", us),
		holiday.Movable(nth(time.September, time.Monday, datesystem.First), "Labor Day", "Labor Day", us),
		holiday.Movable(nth(time.October, time.Monday, datesystem.Second), "Columbus Day", "Columbus Day", us).
			Counties(columbusDayStates...),
		holiday.Movable(observed(year, time.November, 11), "Veterans Day", "Veterans Day", us),
		holiday.Movable(nth(time.November, time.Thursday, datesystem.Fourth), "Thanksgiving Day", "Thanksgiving Day", us).
			LaunchYear(1863),
		holiday.Movable(observed(year, time.December, 25), "Christmas Day", "Christmas Day", us),
	)

	if (year-1)%4 == 0 {
		c.add(p.inaugurationDay(year))
	}

	return c.holidays()
}

// inaugurationDay moved from March 4 to January 20 with the 20th Amendment.
func (p *UnitedStates) inaugurationDay(year int) holiday.Builder {
	month, day := time.January, 20
	if year < 1937 {
		month, day = time.March, 4
	}
	return holiday.Fixed(year, month, day, "Inauguration Day", "Inauguration Day", holiday.US).
		Counties("US-DC", "US-LA", "US-MD", "US-VA")
}

func (p *UnitedStates) Counties() map[string]string {
	return cloneCounties(americanCounties)
}
