package computus

import (
	"fmt"
	"time"
)

// Feast is a movable feast defined by its distance from Easter Sunday.
type Feast int

const (
	CleanMonday Feast = iota
	MaundyThursday
	GoodFriday
	EasterSunday
	EasterMonday
	Ascension
	Pentecost
	WhitMonday
	CorpusChristi
)

var feastOffsets = [...]int{
	CleanMonday:    -48,
	MaundyThursday: -3,
	GoodFriday:     -2,
	EasterSunday:   0,
	EasterMonday:   1,
	Ascension:      39,
	Pentecost:      49,
	WhitMonday:     50,
	CorpusChristi:  60,
}

var feastNames = [...]string{
	CleanMonday:    "Clean Monday",
	MaundyThursday: "Maundy Thursday",
	GoodFriday:     "Good Friday",
	EasterSunday:   "Easter Sunday",
	EasterMonday:   "Easter Monday",
	Ascension:      "Ascension Day",
	Pentecost:      "Pentecost",
	WhitMonday:     "Whit Monday",
	CorpusChristi:  "Corpus Christi",
}

// Offset returns the number of days from Easter Sunday.
func (f Feast) Offset() int {
	if f < CleanMonday || int(f) >= len(feastOffsets) {
		panic(fmt.Sprintf("computus: unknown feast %d", int(f)))
	}
	return feastOffsets[f]
}

// String returns the canonical English name.
func (f Feast) String() string {
	if f < CleanMonday || int(f) >= len(feastNames) {
		return fmt.Sprintf("Feast(%d)", int(f))
	}
	return feastNames[f]
}

// Feasts lists every feast in calendar order.
func Feasts() []Feast {
	return []Feast{
		CleanMonday,
		MaundyThursday,
		GoodFriday,
		EasterSunday,
		EasterMonday,
		Ascension,
		Pentecost,
		WhitMonday,
		CorpusChristi,
	}
}

// AdventSunday returns the first Sunday of Advent: the fourth Sunday
// before December 25.
func AdventSunday(year int) time.Time {
	dec24 := time.Date(year, time.December, 24, 0, 0, 0, 0, time.UTC)
	return dec24.AddDate(0, 0, -(21 + int(dec24.Weekday())))
}
