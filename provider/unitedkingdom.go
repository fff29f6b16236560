package provider

import (
	"time"

	"github.com/cyp0633/libholiday/computus"
	"github.com/cyp0633/libholiday/datesystem"
	"github.com/cyp0633/libholiday/holiday"
	"github.com/samber/mo"
)

var britishCounties = map[string]string{
	"GB-NIR": "Northern Ireland",
	"GB-SCT": "Scotland",
	"GB-ENG": "England",
	"GB-WLS": "Wales",
}

// UnitedKingdom provides the bank holidays of the United Kingdom and its
// four countries.
type UnitedKingdom struct {
	engine *computus.Engine
}

// NewUnitedKingdom creates the provider. A nil engine uses computus.Default.
func NewUnitedKingdom(engine *computus.Engine) *UnitedKingdom {
	return &UnitedKingdom{engine: engineOrDefault(engine)}
}

func (p *UnitedKingdom) Variant() computus.Variant { return computus.Western }

func (p *UnitedKingdom) Holidays(year int) []holiday.Holiday {
	const gb = holiday.GB
	ch := catholic(p.engine, year, gb)
	c := newCollector(year, 18)

	c.add(p.newYearsDay(year)...)
	c.add(
		holiday.Movable(datesystem.ShiftWeekend(datesystem.Date(year, time.January, 2)),
			"New Year's Day", "New Year's Day", gb).Counties("GB-SCT"),
		holiday.Fixed(year, time.March, 17, "Saint Patrick's Day", "Saint Patrick's Day", gb).Counties("GB-NIR"),
		ch.goodFriday("Good Friday"),
		ch.easterMonday("Easter Monday").Counties("GB-ENG", "GB-WLS", "GB-NIR"),
		holiday.Fixed(year, time.July, 12, "Battle of the Boyne", "Battle of the Boyne", gb).Counties("GB-NIR"),
		holiday.Fixed(year, time.November, 30, "Saint Andrew's Day", "Saint Andrew's Day", gb).Counties("GB-SCT"),
	)

	if firstMonday, ok := datesystem.FindDay(year, time.August, time.Monday, datesystem.First).Get(); ok {
		c.add(holiday.Movable(firstMonday, "Summer Bank Holiday", "Summer Bank Holiday", gb).
			LaunchYear(1971).
			Counties("GB-SCT"))
	}
	c.add(
		holiday.Movable(datesystem.FindLastDay(year, time.August, time.Monday), "Summer Bank Holiday", "Summer Bank Holiday", gb).
			LaunchYear(1971).
			Counties("GB-ENG", "GB-WLS", "GB-NIR"),
		p.earlyMayBankHoliday(year),
		p.springBankHoliday(year),
	)

	switch year {
	case 2022:
		c.add(
			holiday.Fixed(year, time.June, 3, "Queen’s Platinum Jubilee", "Queen’s Platinum Jubilee", gb),
			holiday.Fixed(year, time.September, 19, "Queen’s State Funeral", "Queen’s State Funeral", gb),
		)
	case 2023:
		c.add(holiday.Fixed(year, time.May, 8, "Coronation Bank Holiday", "Coronation Bank Holiday", gb))
	}

	c.add(
		holiday.Movable(datesystem.Shift(datesystem.Date(year, time.December, 25), 2, 2, mo.None[int]()),
			"Christmas Day", "Christmas Day", gb),
		holiday.Movable(datesystem.Shift(datesystem.Date(year, time.December, 26), 2, 2, mo.None[int]()),
			"Boxing Day", "St. Stephen's Day", gb),
	)

	return c.holidays()
}

// newYearsDay splits by country when January 1 falls on a weekend:
// Northern Ireland keeps the date, England and Wales take the first
// Monday and Scotland the first Tuesday.
func (p *UnitedKingdom) newYearsDay(year int) []holiday.Builder {
	const name = "New Year's Day"
	jan1 := datesystem.Date(year, time.January, 1)

	if wd := jan1.Weekday(); wd != time.Saturday && wd != time.Sunday {
		return []holiday.Builder{holiday.Movable(jan1, name, name, holiday.GB)}
	}

	monday := datesystem.FindDay(year, time.January, time.Monday, datesystem.First).MustGet()
	tuesday := datesystem.FindDay(year, time.January, time.Tuesday, datesystem.First).MustGet()
	return []holiday.Builder{
		holiday.Movable(jan1, name, name, holiday.GB).Counties("GB-NIR"),
		holiday.Movable(monday, name, name, holiday.GB).Counties("GB-ENG", "GB-WLS"),
		holiday.Movable(tuesday, name, name, holiday.GB).Counties("GB-SCT"),
	}
}

// earlyMayBankHoliday is the first Monday of May, moved to VE Day in 2020.
func (p *UnitedKingdom) earlyMayBankHoliday(year int) holiday.Builder {
	const name = "Early May Bank Holiday"
	day := datesystem.FindDay(year, time.May, time.Monday, datesystem.First).MustGet()
	if year == 2020 {
		day = datesystem.FindDay(year, time.May, time.Friday, datesystem.Second).MustGet()
	}
	return holiday.Movable(day, name, name, holiday.GB).LaunchYear(1978)
}

// springBankHoliday is the last Monday of May, moved next to the Platinum
// Jubilee in 2022.
func (p *UnitedKingdom) springBankHoliday(year int) holiday.Builder {
	const name = "Spring Bank Holiday"
	if year == 2022 {
		return holiday.Movable(datesystem.Date(year, time.June, 2), name, name, holiday.GB)
	}
	return holiday.Movable(datesystem.FindLastDay(year, time.May, time.Monday), name, name, holiday.GB).LaunchYear(1971)
}

func (p *UnitedKingdom) Counties() map[string]string {
	return cloneCounties(britishCounties)
}
