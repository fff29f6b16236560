package provider

import (
	"time"

	"github.com/cyp0633/libholiday/computus"
	"github.com/cyp0633/libholiday/holiday"
)

// Poland provides the public holidays of Poland.
type Poland struct {
	engine *computus.Engine
}

// NewPoland creates the provider. A nil engine uses computus.Default.
func NewPoland(engine *computus.Engine) *Poland {
	return &Poland{engine: engineOrDefault(engine)}
}

func (p *Poland) Variant() computus.Variant { return computus.Western }

func (p *Poland) Holidays(year int) []holiday.Holiday {
	const pl = holiday.PL
	ch := catholic(p.engine, year, pl)
	c := newCollector(year, 14)

	c.add(
		holiday.Fixed(year, time.January, 1, "Nowy Rok", "New Year's Day", pl),
		holiday.Fixed(year, time.January, 6, "Święto Trzech Króli", "Epiphany", pl),
		ch.easterSunday("Wielkanoc"),
		ch.easterMonday("Drugi Dzień Wielkanocy"),
		holiday.Fixed(year, time.May, 1, "Święto Pracy", "May Day", pl),
		holiday.Fixed(year, time.May, 3, "Święto Narodowe Trzeciego Maja", "Constitution Day", pl),
		ch.pentecost("Zielone Świątki"),
		ch.corpusChristi("Boże Ciało"),
		holiday.Fixed(year, time.August, 15, "Wniebowzięcie Najświętszej Maryi Panny", "Assumption Day", pl),
		holiday.Fixed(year, time.November, 1, "Wszystkich Świętych", "All Saints' Day", pl),
		holiday.Fixed(year, time.November, 11, "Narodowe Święto Niepodległości", "Independence Day", pl),
		holiday.Fixed(year, time.December, 25, "Boże Narodzenie", "Christmas Day", pl),
		holiday.Fixed(year, time.December, 26, "Drugi Dzień Bożego Narodzenia", "St. Stephen's Day", pl),
	)

	// Centenary of independence
	if year == 2018 {
		c.add(holiday.Fixed(year, time.November, 12, "Narodowe Święto Niepodległości", "Independence Day", pl))
	}

	return c.holidays()
}
