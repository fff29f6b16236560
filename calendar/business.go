package calendar

import (
	"sync"
	"time"

	"github.com/cyp0633/libholiday/datesystem"
	"github.com/cyp0633/libholiday/holiday"
	"github.com/rickar/cal/v2"
	"github.com/samber/mo"
)

// maxBusinessYears bounds the years a BusinessDays keeps loaded. The
// oldest loaded year is dropped first.
const maxBusinessYears = 16

// BusinessDays answers workday questions for one country, optionally
// narrowed to a county. Public and bank holidays close business; optional,
// school and observance days do not. Years are loaded on first use, each
// into its own business calendar.
type BusinessDays struct {
	assembler *Assembler
	country   holiday.CountryCode
	county    string

	mutex sync.Mutex
	years map[int]*yearCalendar
	order []int
}

// yearCalendar holds the closing holidays dated within one year
type yearCalendar struct {
	calendar *cal.BusinessCalendar
	records  map[*cal.Holiday]holiday.Holiday
}

// NewBusinessDays creates a business calendar for country. An empty county
// only considers nationwide holidays.
func (a *Assembler) NewBusinessDays(country holiday.CountryCode, county string) *BusinessDays {
	return &BusinessDays{
		assembler: a,
		country:   country,
		county:    county,
		years:     make(map[int]*yearCalendar),
	}
}

func observance(t holiday.Type) (cal.ObservanceType, bool) {
	switch t {
	case holiday.Public:
		return cal.ObservancePublic, true
	case holiday.Bank, holiday.Authorities:
		return cal.ObservanceBank, true
	default:
		return cal.ObservanceOther, false
	}
}

// year returns the calendar of the given year, loading it if needed.
// Callers hold the mutex.
func (b *BusinessDays) year(year int) *yearCalendar {
	if yc, ok := b.years[year]; ok {
		return yc
	}

	yc := &yearCalendar{
		calendar: cal.NewBusinessCalendar(),
		records:  make(map[*cal.Holiday]holiday.Holiday),
	}
	// A record belongs to one calendar year even when its date does not
	// (a Saturday New Year observed on December 31), so the neighbours
	// are scanned too.
	for _, source := range []int{year - 1, year, year + 1} {
		for _, h := range FilterCounty(b.assembler.Holidays(source, b.country), b.county) {
			if h.Date.Year() != year {
				continue
			}
			kind, ok := observance(h.Type)
			if !ok {
				continue
			}
			ch := &cal.Holiday{
				Name:      h.Name,
				Type:      kind,
				Month:     h.Date.Month(),
				Day:       h.Date.Day(),
				StartYear: year,
				EndYear:   year,
				Func:      cal.CalcDayOfMonth,
			}
			yc.calendar.AddHoliday(ch)
			yc.records[ch] = h
		}
	}

	if len(b.order) >= maxBusinessYears {
		delete(b.years, b.order[0])
		b.order = b.order[1:]
	}
	b.years[year] = yc
	b.order = append(b.order, year)
	return yc
}

// IsHoliday reports the holiday that closes business on date, if any.
func (b *BusinessDays) IsHoliday(date time.Time) mo.Option[holiday.Holiday] {
	date = datesystem.Midnight(date)

	b.mutex.Lock()
	defer b.mutex.Unlock()

	yc := b.year(date.Year())
	actual, observed, h := yc.calendar.IsHoliday(date)
	if (!actual && !observed) || h == nil {
		return mo.None[holiday.Holiday]()
	}
	if rec, ok := yc.records[h]; ok {
		return mo.Some(rec)
	}
	return mo.None[holiday.Holiday]()
}

// IsWorkday reports whether date is a weekday that is not a holiday.
func (b *BusinessDays) IsWorkday(date time.Time) bool {
	date = datesystem.Midnight(date)

	b.mutex.Lock()
	defer b.mutex.Unlock()

	return b.year(date.Year()).calendar.IsWorkday(date)
}

// WorkdaysInRange counts the workdays between start and end inclusive.
func (b *BusinessDays) WorkdaysInRange(start, end time.Time) int {
	start, end = datesystem.Midnight(start), datesystem.Midnight(end)
	if end.Before(start) {
		return 0
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	n := 0
	for year := start.Year(); year <= end.Year(); year++ {
		from := datesystem.Date(year, time.January, 1)
		if from.Before(start) {
			from = start
		}
		to := datesystem.Date(year, time.December, 31)
		if to.After(end) {
			to = end
		}
		n += b.year(year).calendar.WorkdaysInRange(from, to)
	}
	return n
}
