package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cyp0633/libholiday/holiday"
	"github.com/gocarina/gocsv"
)

// Row is the CSV shape of a holiday. Counties are separated by spaces and
// empty for nationwide holidays.
type Row struct {
	Date       string `csv:"date"`
	LocalName  string `csv:"local_name"`
	Name       string `csv:"name"`
	Country    string `csv:"country"`
	Fixed      bool   `csv:"fixed"`
	Global     bool   `csv:"global"`
	Counties   string `csv:"counties"`
	Type       string `csv:"type"`
	LaunchYear string `csv:"launch_year"`
}

// NewRow converts a holiday to its CSV row.
func NewRow(h holiday.Holiday) Row {
	row := Row{
		Date:      h.Date.Format(time.DateOnly),
		LocalName: h.LocalName,
		Name:      h.Name,
		Country:   h.CountryCode.String(),
		Fixed:     h.Fixed,
		Global:    h.Global(),
		Type:      h.Type.String(),
	}
	if counties, ok := h.Counties.Get(); ok {
		row.Counties = strings.Join(counties, " ")
	}
	if year, ok := h.LaunchYear.Get(); ok {
		row.LaunchYear = strconv.Itoa(year)
	}
	return row
}

// CSV writes a header line followed by one row per holiday.
func CSV(w io.Writer, holidays []holiday.Holiday) error {
	rows := make([]*Row, 0, len(holidays))
	for _, h := range holidays {
		row := NewRow(h)
		rows = append(rows, &row)
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return nil
}

// JSON writes holidays as an indented JSON array.
func JSON(w io.Writer, holidays []holiday.Holiday) error {
	if holidays == nil {
		holidays = []holiday.Holiday{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(holidays); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
