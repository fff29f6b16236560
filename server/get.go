package server

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cyp0633/libholiday/calendar"
	"github.com/cyp0633/libholiday/datesystem"
	"github.com/cyp0633/libholiday/export"
	"github.com/cyp0633/libholiday/holiday"
	"github.com/samber/mo"
)

// countryInfo is the body of GET {prefix}{CC}/
type countryInfo struct {
	Code     holiday.CountryCode `json:"code"`
	Counties bool                `json:"counties"`
	Formats  []string            `json:"formats"`
	Years    calendar.YearRange  `json:"years"`
}

// workdayInfo is the body of GET {prefix}{CC}/workday
type workdayInfo struct {
	Date    string                     `json:"date"`
	Workday bool                       `json:"workday"`
	Holiday mo.Option[holiday.Holiday] `json:"holiday"`
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rp, ok := s.resource(w, r)
	if !ok {
		return
	}

	switch rp.Type {
	case ResourceRoot:
		s.writeJSON(w, s.assembler.Supported())
	case ResourceCountry:
		s.writeJSON(w, countryInfo{
			Code:     rp.Country,
			Counties: s.assembler.Counties(rp.Country).IsPresent(),
			Formats:  []string{export.FormatJSON.String(), export.FormatICS.String(), export.FormatCSV.String()},
			Years:    s.years(rp.Country),
		})
	case ResourceCounties:
		counties, ok := s.assembler.Counties(rp.Country).Get()
		if !ok {
			http.Error(w, fmt.Sprintf("country %s has no counties", rp.Country), http.StatusNotFound)
			return
		}
		s.writeJSON(w, counties)
	case ResourceWorkday:
		s.handleWorkday(w, r, rp)
	case ResourceCollection:
		// Calendar clients subscribe to the collection URL itself
		rp.Format = export.FormatICS
		s.handleYear(w, r, rp)
	case ResourceFile:
		s.handleYear(w, r, rp)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// yearHolidays assembles a year and applies the county and type query
// filters of r.
func (s *Server) yearHolidays(r *http.Request, rp ResourcePath) ([]holiday.Holiday, error) {
	query := r.URL.Query()
	list := s.assembler.Holidays(rp.Year, rp.Country)

	if county := query.Get("county"); county != "" {
		if err := s.checkCounty(rp.Country, county); err != nil {
			return nil, err
		}
		list = calendar.FilterCounty(list, county)
	}

	if raw := query.Get("type"); raw != "" {
		var types []holiday.Type
		for _, name := range strings.Split(raw, ",") {
			t, err := holiday.ParseType(strings.TrimSpace(name))
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		list = calendar.FilterTypes(list, types...)
	}
	return list, nil
}

func (s *Server) handleYear(w http.ResponseWriter, r *http.Request, rp ResourcePath) {
	list, err := s.yearHolidays(r, rp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := fmt.Sprintf("Holidays %s %d", rp.Country, rp.Year)
	if county := r.URL.Query().Get("county"); county != "" {
		name += " (" + county + ")"
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, rp.Format, list, export.ICSOptions{Name: name}); err != nil {
		s.logger.Error("failed to encode holidays",
			"country", rp.Country.String(),
			"year", rp.Year,
			"format", rp.Format.String(),
			"error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	etag := entityTag(buf.Bytes())
	if noneMatch(r.Header.Get(headerIfNoneMatch), etag) {
		w.Header().Set(headerETag, etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set(headerContentType, rp.Format.ContentType())
	w.Header().Set(headerETag, etag)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) handleWorkday(w http.ResponseWriter, r *http.Request, rp ResourcePath) {
	query := r.URL.Query()
	date, err := time.Parse(time.DateOnly, query.Get("date"))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", query.Get("date")), http.StatusBadRequest)
		return
	}
	if err := s.checkYear(rp.Country, date.Year()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	county := query.Get("county")
	if err := s.checkCounty(rp.Country, county); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bd := s.businessDays(rp.Country, county)
	date = datesystem.Midnight(date)
	s.writeJSON(w, workdayInfo{
		Date:    date.Format(time.DateOnly),
		Workday: bd.IsWorkday(date),
		Holiday: bd.IsHoliday(date),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to encode response", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set(headerContentType, export.FormatJSON.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// noneMatch reports whether an If-None-Match header value matches etag.
// The comparison is weak: a W/ prefix on either side is ignored.
func noneMatch(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	etag = strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == etag {
			return true
		}
	}
	return false
}

// entityTag returns a strong ETag for body
func entityTag(body []byte) string {
	return fmt.Sprintf(`"%x"`, sha1.Sum(body))
}
