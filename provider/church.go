package provider

import (
	"github.com/cyp0633/libholiday/computus"
	"github.com/cyp0633/libholiday/holiday"
)

// church builds movable feast records for one year, country and Easter
// tradition. The canonical English name comes from the feast itself.
type church struct {
	engine  *computus.Engine
	variant computus.Variant
	country holiday.CountryCode
	year    int
}

func catholic(engine *computus.Engine, year int, country holiday.CountryCode) church {
	return church{engine: engine, variant: computus.Western, country: country, year: year}
}

func orthodox(engine *computus.Engine, year int, country holiday.CountryCode) church {
	return church{engine: engine, variant: computus.Orthodox, country: country, year: year}
}

func (c church) feast(f computus.Feast, localName string) holiday.Builder {
	return holiday.Movable(c.engine.Feast(c.year, c.variant, f), localName, f.String(), c.country)
}

func (c church) maundyThursday(localName string) holiday.Builder {
	return c.feast(computus.MaundyThursday, localName)
}

func (c church) goodFriday(localName string) holiday.Builder {
	return c.feast(computus.GoodFriday, localName)
}

func (c church) easterSunday(localName string) holiday.Builder {
	return c.feast(computus.EasterSunday, localName)
}

func (c church) easterMonday(localName string) holiday.Builder {
	return c.feast(computus.EasterMonday, localName)
}

func (c church) ascension(localName string) holiday.Builder {
	return c.feast(computus.Ascension, localName)
}

func (c church) pentecost(localName string) holiday.Builder {
	return c.feast(computus.Pentecost, localName)
}

func (c church) whitMonday(localName string) holiday.Builder {
	return c.feast(computus.WhitMonday, localName)
}

func (c church) corpusChristi(localName string) holiday.Builder {
	return c.feast(computus.CorpusChristi, localName)
}

func (c church) cleanMonday(localName string) holiday.Builder {
	return c.feast(computus.CleanMonday, localName)
}
