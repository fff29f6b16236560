// Package export encodes assembled holiday calendars for other programs:
// iCalendar feeds, CSV sheets and JSON.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cyp0633/libholiday/holiday"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const defaultProductID = "-//libholiday//Holiday Calendar//EN"

// ICSOptions controls the calendar-level properties of an iCalendar export.
type ICSOptions struct {
	// ProductID is the PRODID. Defaults to the libholiday product id.
	ProductID string
	// Name is published as NAME and X-WR-CALNAME when set.
	Name string
	// Stamp is used as DTSTAMP for every event. When zero, each event uses
	// its own date so that the output only depends on the holidays.
	Stamp time.Time
}

// EventUID returns the stable UID of the event generated for h.
func EventUID(h holiday.Holiday) string {
	key := fmt.Sprintf("libholiday:%s:%s:%s", h.CountryCode, h.Date.Format(time.DateOnly), h.Name)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

// Calendar builds a VCALENDAR with one all-day VEVENT per holiday.
func Calendar(holidays []holiday.Holiday, opts ICSOptions) *ical.Calendar {
	cal := ical.NewCalendar()

	productID := opts.ProductID
	if productID == "" {
		productID = defaultProductID
	}
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	if opts.Name != "" {
		cal.Props.SetText(ical.PropName, opts.Name)
		cal.Props.SetText("X-WR-CALNAME", opts.Name)
	}

	for _, h := range holidays {
		cal.Children = append(cal.Children, event(h, opts.Stamp).Component)
	}
	return cal
}

func event(h holiday.Holiday, stamp time.Time) *ical.Event {
	if stamp.IsZero() {
		stamp = h.Date
	}

	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, EventUID(h))
	ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	ev.Props.SetDate(ical.PropDateTimeStart, h.Date)
	ev.Props.SetDate(ical.PropDateTimeEnd, h.Date.AddDate(0, 0, 1))
	ev.Props.SetText(ical.PropSummary, h.Name)
	ev.Props.SetText(ical.PropDescription, h.LocalName)
	ev.Props.SetText(ical.PropCategories, h.Type.String())
	ev.Props.SetText(ical.PropTransparency, "TRANSPARENT")
	if counties, ok := h.Counties.Get(); ok {
		ev.Props.SetText(ical.PropLocation, strings.Join(counties, ", "))
	}
	return ev
}

// ICS writes holidays as an iCalendar stream.
func ICS(w io.Writer, holidays []holiday.Holiday, opts ICSOptions) error {
	if err := ical.NewEncoder(w).Encode(Calendar(holidays, opts)); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}
