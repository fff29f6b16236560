// Package datesystem provides the calendar arithmetic holiday rules are
// built from: locating the n-th weekday of a month and shifting dates that
// fall on a weekend.
//
// All dates are naive calendar dates represented at midnight UTC.
package datesystem

import (
	"fmt"
	"time"

	"github.com/samber/mo"
)

// Occurrence selects the n-th matching weekday within a month.
type Occurrence int

const (
	First Occurrence = iota + 1
	Second
	Third
	Fourth
	Fifth
)

func (o Occurrence) String() string {
	switch o {
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	case Fourth:
		return "fourth"
	case Fifth:
		return "fifth"
	default:
		return fmt.Sprintf("Occurrence(%d)", int(o))
	}
}

// Date returns year-month-day at midnight UTC. It panics when the
// triple is not a real calendar date, which is a defect in the caller's
// rule table rather than a recoverable condition.
func Date(year int, month time.Month, day int) time.Time {
	if month < time.January || month > time.December || day < 1 || day > DaysInMonth(year, month) {
		panic(fmt.Sprintf("datesystem: invalid date %04d-%02d-%02d", year, int(month), day))
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Midnight drops the time of day, keeping the calendar date as seen in
// the value's own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays moves date by n calendar days.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FindDay locates the given occurrence of weekday in month. The result is
// absent when the occurrence is outside First..Fifth or when the month
// has no such occurrence (e.g. a fifth Monday in a short month).
func FindDay(year int, month time.Month, weekday time.Weekday, occurrence Occurrence) mo.Option[time.Time] {
	if occurrence < First || occurrence > Fifth {
		return mo.None[time.Time]()
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(weekday) - int(first.Weekday())
	if offset < 0 {
		offset += 7
	}

	day := 1 + offset + 7*(int(occurrence)-1)
	if day > DaysInMonth(year, month) {
		return mo.None[time.Time]()
	}
	return mo.Some(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FindLastDay returns the last weekday of month: the fifth occurrence if it
// exists, otherwise the fourth. Every month has at least four of each
// weekday, so a missing fourth occurrence panics.
func FindLastDay(year int, month time.Month, weekday time.Weekday) time.Time {
	if day, ok := FindDay(year, month, weekday, Fifth).Get(); ok {
		return day
	}
	day, ok := FindDay(year, month, weekday, Fourth).Get()
	if !ok {
		panic(fmt.Sprintf("datesystem: no fourth %s in %04d-%02d", weekday, year, int(month)))
	}
	return day
}

// Shift moves a date that falls on a weekend. A Saturday moves by
// saturdayDays, a Sunday by sundayDays and a Monday by mondayDays when that
// is present. Other days are returned unchanged.
func Shift(date time.Time, saturdayDays, sundayDays int, mondayDays mo.Option[int]) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return AddDays(date, saturdayDays)
	case time.Sunday:
		return AddDays(date, sundayDays)
	case time.Monday:
		if days, ok := mondayDays.Get(); ok {
			return AddDays(date, days)
		}
	}
	return date
}

// ShiftWeekend is the common observed-day rule: Saturday and Sunday both
// move to the following Monday.
func ShiftWeekend(date time.Time) time.Time {
	return Shift(date, 2, 1, mo.None[int]())
}
