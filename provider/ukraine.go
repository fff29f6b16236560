package provider

import (
	"time"

	"github.com/cyp0633/libholiday/computus"
	"github.com/cyp0633/libholiday/holiday"
)

// Ukraine provides the public holidays of Ukraine. Easter and Trinity
// follow the Orthodox Easter.
type Ukraine struct {
	engine *computus.Engine
}

// NewUkraine creates the provider. A nil engine uses computus.Default.
func NewUkraine(engine *computus.Engine) *Ukraine {
	return &Ukraine{engine: engineOrDefault(engine)}
}

func (p *Ukraine) Variant() computus.Variant { return computus.Orthodox }

func (p *Ukraine) Holidays(year int) []holiday.Holiday {
	const ua = holiday.UA
	ch := orthodox(p.engine, year, ua)
	c := newCollector(year, 11)

	c.add(
		holiday.Fixed(year, time.January, 1, "Новий Рік", "New Year's Day", ua),
		holiday.Fixed(year, time.January, 7, "Різдво", "(Julian) Christmas", ua),
		holiday.Fixed(year, time.March, 8, "Міжнародний жіночий день", "International Women's Day", ua),
		ch.easterSunday("Великдень"),
		ch.pentecost("Трійця"),
		holiday.Fixed(year, time.May, 1, "День праці", "International Workers' Day", ua),
		holiday.Fixed(year, time.May, 9, "День перемоги над нацизмом у Другій світовій війні", "Victory day over Nazism in World War II", ua),
		holiday.Fixed(year, time.June, 28, "День Конституції", "Constitution Day", ua),
		holiday.Fixed(year, time.August, 24, "День Незалежності", "Independence Day", ua),
		holiday.Fixed(year, time.October, 14, "День захисника України", "Defender of Ukraine Day", ua),
		holiday.Fixed(year, time.December, 25, "Різдво", "(Gregorian and Revised Julian) Christmas", ua),
	)

	return c.holidays()
}
