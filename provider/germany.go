package provider

import (
	"time"

	"github.com/cyp0633/libholiday/computus"
	"github.com/cyp0633/libholiday/holiday"
)

var germanCounties = map[string]string{
	"DE-BW": "Baden-Württemberg",
	"DE-BY": "Bayern",
	"DE-BE": "Berlin",
	"DE-BB": "Brandenburg",
	"DE-HB": "Bremen",
	"DE-HH": "Hamburg",
	"DE-HE": "Hessen",
	"DE-MV": "Mecklenburg-Vorpommern",
	"DE-NI": "Niedersachsen",
	"DE-NW": "Nordrhein-Westfalen",
	"DE-RP": "Rheinland-Pfalz",
	"DE-SL": "Saarland",
	"DE-SN": "Sachsen",
	"DE-ST": "Sachsen-Anhalt",
	"DE-SH": "Schleswig-Holstein",
	"DE-TH": "Thüringen",
}

// Germany provides the public holidays of Germany and its federal states.
type Germany struct {
	engine *computus.Engine
}

// NewGermany creates the provider. A nil engine uses computus.Default.
func NewGermany(engine *computus.Engine) *Germany {
	return &Germany{engine: engineOrDefault(engine)}
}

func (p *Germany) Variant() computus.Variant { return computus.Western }

func (p *Germany) Holidays(year int) []holiday.Holiday {
	const de = holiday.DE
	ch := catholic(p.engine, year, de)
	c := newCollector(year, 20)

	c.add(
		holiday.Fixed(year, time.January, 1, "Neujahr", "New Year's Day", de).LaunchYear(1967),
		holiday.Fixed(year, time.January, 6, "Heilige Drei Könige", "Epiphany", de).
			LaunchYear(1967).
			Counties("DE-BW", "DE-BY", "DE-ST"),
		holiday.Fixed(year, time.March, 8, "Internationaler Frauentag", "International Women's Day", de).
			LaunchYear(2019).
			Counties("DE-BE"),
		ch.goodFriday("Karfreitag"),
		ch.easterSunday("Ostersonntag").Counties("DE-BB", "DE-HE"),
		ch.easterMonday("Ostermontag").LaunchYear(1642),
		holiday.Fixed(year, time.May, 1, "Tag der Arbeit", "Labour Day", de),
		ch.ascension("Christi Himmelfahrt"),
		ch.pentecost("Pfingstsonntag").Counties("DE-BB", "DE-HE"),
		ch.whitMonday("Pfingstmontag"),
		ch.corpusChristi("Fronleichnam").Counties("DE-BW", "DE-BY", "DE-HE", "DE-NW", "DE-RP", "DE-SL"),
		holiday.Fixed(year, time.August, 15, "Mariä Himmelfahrt", "Assumption Day", de).Counties("DE-SL"),
		holiday.Fixed(year, time.September, 20, "Weltkindertag", "World Children's Day", de).
			LaunchYear(2019).
			Counties("DE-TH"),
		holiday.Fixed(year, time.October, 3, "Tag der Deutschen Einheit", "German Unity Day", de),
		p.reformationDay(year),
		holiday.Fixed(year, time.November, 1, "Allerheiligen", "All Saints' Day", de).
			Counties("DE-BW", "DE-BY", "DE-NW", "DE-RP", "DE-SL"),
		holiday.Fixed(year, time.December, 25, "Erster Weihnachtstag", "Christmas Day", de),
		holiday.Fixed(year, time.December, 26, "Zweiter Weihnachtstag", "St. Stephen's Day", de),
	)

	if prayerDay, ok := p.prayerDay(year); ok {
		c.add(prayerDay)
	}
	if year == 2020 {
		c.add(holiday.Movable(time.Date(2020, time.May, 8, 0, 0, 0, 0, time.UTC), "Tag der Befreiung", "Liberation Day", de).
			Counties("DE-BE"))
	}

	return c.holidays()
}

func (p *Germany) reformationDay(year int) holiday.Builder {
	b := holiday.Fixed(year, time.October, 31, "Reformationstag", "Reformation Day", holiday.DE)
	if year == 2017 {
		return b
	}

	counties := []string{"DE-BB", "DE-MV", "DE-SN", "DE-ST", "DE-TH"}
	if year >= 2018 {
		counties = append(counties, "DE-HB", "DE-HH", "DE-NI", "DE-SH")
	}
	return b.Counties(counties...)
}

// prayerDay is Buß- und Bettag, the Wednesday eleven days before the first
// Sunday of Advent. Its scope changed several times.
func (p *Germany) prayerDay(year int) (holiday.Builder, bool) {
	b := holiday.Movable(computus.AdventSunday(year).AddDate(0, 0, -11),
		"Buß- und Bettag", "Repentance and Prayer Day", holiday.DE)

	western := []string{"DE-BW", "DE-BE", "DE-HB", "DE-HH", "DE-HE", "DE-NI", "DE-NW", "DE-RP", "DE-SL", "DE-SH"}

	switch {
	case year >= 1934 && year <= 1938:
		return b, true
	case year >= 1945 && year <= 1980:
		return b.Counties(western...), true
	case year >= 1981 && year <= 1989:
		return b.Counties(append(western, "DE-BY")...), true
	case year >= 1990 && year <= 1994:
		return b, true
	case year >= 1995:
		return b.Counties("DE-SN"), true
	default:
		return holiday.Builder{}, false
	}
}

func (p *Germany) Counties() map[string]string {
	return cloneCounties(germanCounties)
}
