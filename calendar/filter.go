package calendar

import "github.com/cyp0633/libholiday/holiday"

// FilterCounty keeps the nationwide holidays and those observed in county.
// An empty county keeps only the nationwide ones.
func FilterCounty(holidays []holiday.Holiday, county string) []holiday.Holiday {
	out := make([]holiday.Holiday, 0, len(holidays))
	for _, h := range holidays {
		if h.Global() || (county != "" && h.AppliesTo(county)) {
			out = append(out, h)
		}
	}
	return out
}

// FilterTypes keeps the holidays whose type is one of types.
func FilterTypes(holidays []holiday.Holiday, types ...holiday.Type) []holiday.Holiday {
	var mask holiday.Type
	for _, t := range types {
		mask |= t
	}
	out := make([]holiday.Holiday, 0, len(holidays))
	for _, h := range holidays {
		if h.Type&mask != 0 {
			out = append(out, h)
		}
	}
	return out
}
