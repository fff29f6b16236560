package provider

import (
	"time"

	"github.com/cyp0633/libholiday/holiday"
)

// Russia provides the public holidays of Russia. None of them depend on
// Easter.
type Russia struct{}

// NewRussia creates the provider.
func NewRussia() *Russia {
	return &Russia{}
}

func (p *Russia) Holidays(year int) []holiday.Holiday {
	const ru = holiday.RU
	c := newCollector(year, 13)

	c.add(holiday.Fixed(year, time.January, 1, "Новый год", "New Year's Day", ru))
	for day := 2; day <= 6; day++ {
		c.add(holiday.Fixed(year, time.January, day, "Новогодние каникулы", "New Year holiday", ru))
	}
	c.add(
		holiday.Fixed(year, time.January, 7, "Рождество Христово", "Orthodox Christmas Day", ru),
		holiday.Fixed(year, time.February, 23, "День защитника Отечества", "Defender of the Fatherland Day", ru).LaunchYear(1918),
		holiday.Fixed(year, time.March, 8, "Международный женский день", "International Women's Day", ru).LaunchYear(1913),
		holiday.Fixed(year, time.May, 1, "День труда", "Labour Day", ru),
		holiday.Fixed(year, time.May, 9, "День Победы", "Victory Day", ru),
		holiday.Fixed(year, time.June, 12, "День России", "Russia Day", ru).LaunchYear(2002),
		holiday.Fixed(year, time.November, 4, "День народного единства", "Unity Day", ru).LaunchYear(2005),
	)

	return c.holidays()
}
