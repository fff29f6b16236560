package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cyp0633/libholiday/holiday"
)

// ErrUnknownFormat is returned for an unsupported output format
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an output encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatICS
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatICS:
		return "ics"
	case FormatCSV:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatICS:
		return "text/calendar; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "application/json"
	}
}

// ParseFormat parses a format name or file extension ("ics", ".csv").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "ics", "ical", "icalendar":
		return FormatICS, nil
	case "csv":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write encodes holidays in format. opts only applies to FormatICS.
func Write(w io.Writer, format Format, holidays []holiday.Holiday, opts ICSOptions) error {
	switch format {
	case FormatJSON:
		return JSON(w, holidays)
	case FormatICS:
		return ICS(w, holidays, opts)
	case FormatCSV:
		return CSV(w, holidays)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
