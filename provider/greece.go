package provider

import (
	"time"

	"github.com/cyp0633/libholiday/computus"
	"github.com/cyp0633/libholiday/holiday"
)

// Greece provides the public holidays of Greece. Movable feasts follow the
// Orthodox Easter.
type Greece struct {
	engine *computus.Engine
}

// NewGreece creates the provider. A nil engine uses computus.Default.
func NewGreece(engine *computus.Engine) *Greece {
	return &Greece{engine: engineOrDefault(engine)}
}

func (p *Greece) Variant() computus.Variant { return computus.Orthodox }

func (p *Greece) Holidays(year int) []holiday.Holiday {
	const gr = holiday.GR
	ch := orthodox(p.engine, year, gr)
	c := newCollector(year, 15)

	c.add(
		holiday.Fixed(year, time.January, 1, "Πρωτοχρονιά", "New Year's Day", gr),
		holiday.Fixed(year, time.January, 6, "Θεοφάνεια", "Epiphany", gr),
		ch.cleanMonday("Καθαρά Δευτέρα"),
		holiday.Fixed(year, time.March, 25, "Ευαγγελισμός της Θεοτόκου", "Annunciation", gr),
		holiday.Fixed(year, time.March, 25, "Εικοστή Πέμπτη Μαρτίου", "Independence Day", gr),
		ch.goodFriday("Μεγάλη Παρασκευή"),
		ch.easterSunday("Κυριακή του Πάσχα"),
		ch.easterMonday("Δευτέρα του Πάσχα"),
		holiday.Fixed(year, time.May, 1, "Εργατική Πρωτομαγιά", "Labour Day", gr),
		ch.pentecost("Πεντηκοστή"),
		ch.whitMonday("Δευτέρα Πεντηκοστής"),
		holiday.Fixed(year, time.August, 15, "Κοίμηση της Θεοτόκου", "Assumption Day", gr),
		holiday.Fixed(year, time.October, 28, "Το Όχι", "Ochi Day", gr),
		holiday.Fixed(year, time.December, 25, "Χριστούγεννα", "Christmas Day", gr),
		holiday.Fixed(year, time.December, 26, "Σύναξις Υπεραγίας Θεοτόκου Μαρίας", "St. Stephen's Day", gr),
	)

	return c.holidays()
}
