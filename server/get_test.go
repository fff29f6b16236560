package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/cyp0633/libholiday/export"
	"github.com/cyp0633/libholiday/holiday"
	"github.com/emersion/go-ical"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_GetYearFormats(t *testing.T) {
	srv := setupTestServer(t, Options{})

	tests := []struct {
		name        string
		target      string
		contentType string
		count       int
	}{
		{"json", "/holidays/DE/2022.json", "application/json", 19},
		{"json lowercase country", "/holidays/de/2022.json", "application/json", 19},
		{"county filter", "/holidays/DE/2022.json?county=DE-BY", "application/json", 12},
		{"type filter", "/holidays/DE/2022.json?type=public", "application/json", 19},
		{"no school holidays", "/holidays/DE/2022.json?type=School", "application/json", 0},
		{"united states", "/holidays/US/2022.json", "application/json", 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(srv, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.contentType, w.Header().Get(headerContentType))
			assert.NotEmpty(t, w.Header().Get(headerETag))

			var list []holiday.Holiday
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
			assert.Len(t, list, tt.count)
		})
	}
}

func TestServer_GetICS(t *testing.T) {
	srv := setupTestServer(t, Options{})

	w := serve(srv, http.MethodGet, "/holidays/DE/2022.ics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.FormatICS.ContentType(), w.Header().Get(headerContentType))

	cal, err := ical.NewDecoder(strings.NewReader(w.Body.String())).Decode()
	require.NoError(t, err)
	assert.Len(t, cal.Events(), 19)

	name, err := cal.Props.Text("X-WR-CALNAME")
	require.NoError(t, err)
	assert.Equal(t, "Holidays DE 2022", name)

	// The collection URL serves the same calendar
	coll := serve(srv, http.MethodGet, "/holidays/DE/2022/", nil)
	require.Equal(t, http.StatusOK, coll.Code)
	assert.Equal(t, w.Body.String(), coll.Body.String())
	assert.Equal(t, w.Header().Get(headerETag), coll.Header().Get(headerETag))
}

func TestServer_GetICS_IfNoneMatch(t *testing.T) {
	srv := setupTestServer(t, Options{})

	first := serve(srv, http.MethodGet, "/holidays/GB/2022.ics", nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get(headerETag)
	require.True(t, strings.HasPrefix(etag, `"`) && strings.HasSuffix(etag, `"`), etag)

	again := serve(srv, http.MethodGet, "/holidays/GB/2022.ics", nil, headerIfNoneMatch, etag)
	assert.Equal(t, http.StatusNotModified, again.Code)
	assert.Empty(t, again.Body.String())
	assert.Equal(t, etag, again.Header().Get(headerETag))

	stale := serve(srv, http.MethodGet, "/holidays/GB/2022.ics", nil, headerIfNoneMatch, `"stale"`)
	assert.Equal(t, http.StatusOK, stale.Code)

	other := serve(srv, http.MethodGet, "/holidays/GB/2023.ics", nil)
	assert.NotEqual(t, etag, other.Header().Get(headerETag))
}

func TestServer_GetCSV(t *testing.T) {
	srv := setupTestServer(t, Options{})

	w := serve(srv, http.MethodGet, "/holidays/PL/2022.csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.FormatCSV.ContentType(), w.Header().Get(headerContentType))

	var rows []export.Row
	require.NoError(t, gocsv.UnmarshalString(w.Body.String(), &rows))
	require.Len(t, rows, 13)
	assert.Equal(t, "2022-01-01", rows[0].Date)
	assert.Equal(t, "PL", rows[0].Country)
}

func TestServer_GetBadFilters(t *testing.T) {
	srv := setupTestServer(t, Options{})

	for _, target := range []string{
		"/holidays/DE/2022.json?county=DE-XX",
		"/holidays/DE/2022.json?county=US-TX",
		"/holidays/PL/2022.json?county=PL-MZ",
		"/holidays/DE/2022.json?type=holiday",
	} {
		w := serve(srv, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestServer_GetCountry(t *testing.T) {
	srv := setupTestServer(t, Options{})

	tests := []struct {
		target   string
		code     string
		counties bool
	}{
		{"/holidays/DE/", "DE", true},
		{"/holidays/ru", "RU", false},
	}
	for _, tt := range tests {
		w := serve(srv, http.MethodGet, tt.target, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var info countryInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.Equal(t, tt.code, info.Code.String())
		assert.Equal(t, tt.counties, info.Counties)
		assert.Equal(t, []string{"json", "ics", "csv"}, info.Formats)
	}
}

func TestServer_GetCounties(t *testing.T) {
	srv := setupTestServer(t, Options{})

	w := serve(srv, http.MethodGet, "/holidays/DE/counties", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var counties map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counties))
	assert.Len(t, counties, 16)
	assert.Equal(t, "Bayern", counties["DE-BY"])
}

func TestServer_GetWorkday(t *testing.T) {
	srv := setupTestServer(t, Options{})

	tests := []struct {
		name    string
		date    string
		county  string
		workday bool
		holiday string
	}{
		{"unity day", "2022-10-03", "", false, "German Unity Day"},
		{"ordinary tuesday", "2022-10-04", "", true, ""},
		{"weekend", "2022-10-08", "", false, ""},
		{"regional holiday without county", "2022-01-06", "", true, ""},
		{"regional holiday in county", "2022-01-06", "DE-BY", false, "Epiphany"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/holidays/DE/workday?date=" + tt.date
			if tt.county != "" {
				target += "&county=" + tt.county
			}
			w := serve(srv, http.MethodGet, target, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var body struct {
				Date    string           `json:"date"`
				Workday bool             `json:"workday"`
				Holiday *holiday.Holiday `json:"holiday"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.workday, body.Workday)
			assert.Equal(t, tt.date, body.Date)
			if tt.holiday == "" {
				assert.Nil(t, body.Holiday)
			} else {
				require.NotNil(t, body.Holiday)
				assert.Equal(t, tt.holiday, body.Holiday.Name)
			}
		})
	}
}

func TestServer_GetWorkday_BadRequest(t *testing.T) {
	srv := setupTestServer(t, Options{})

	for _, target := range []string{
		"/holidays/DE/workday",
		"/holidays/DE/workday?date=03.10.2022",
		"/holidays/DE/workday?date=1000-01-01",
		"/holidays/DE/workday?date=2022-10-03&county=DE-XX",
	} {
		w := serve(srv, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestServer_Head(t *testing.T) {
	srv := setupTestServer(t, Options{})

	w := serve(srv, http.MethodHead, "/holidays/DE/2022.ics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(headerETag))
}

func TestEntityTag(t *testing.T) {
	assert.Equal(t, `"a9993e364706816aba3e25717850c26c9cd0d89d"`, entityTag([]byte("abc")))
}

func TestServer_YearBoundsFollowEasterVariant(t *testing.T) {
	srv := setupTestServer(t, Options{})

	tests := []struct {
		target string
		status int
	}{
		{"/holidays/GR/2100.json", http.StatusBadRequest},
		{"/holidays/GR/1899.json", http.StatusBadRequest},
		{"/holidays/UA/3000.ics", http.StatusBadRequest},
		{"/holidays/GR/2100/", http.StatusBadRequest},
		{"/holidays/GR/workday?date=2100-01-04", http.StatusBadRequest},
		{"/holidays/GR/2099.json", http.StatusOK},
		{"/holidays/GR/1900.csv", http.StatusOK},
		{"/holidays/UA/workday?date=2099-12-31", http.StatusOK},
		{"/holidays/DE/2100.json", http.StatusOK},
		{"/holidays/RU/3000.json", http.StatusOK},
	}
	for _, tt := range tests {
		w := serve(srv, http.MethodGet, tt.target, nil)
		assert.Equal(t, tt.status, w.Code, tt.target)
	}

	w := serve(srv, http.MethodGet, "/holidays/GR/2100.json", nil)
	assert.Contains(t, w.Body.String(), "outside 1900-2099")

	w = serve(srv, "PROPFIND", "/holidays/UA/2100/", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_GetCountryYears(t *testing.T) {
	srv := setupTestServer(t, Options{})

	tests := []struct {
		target      string
		first, last int
	}{
		{"/holidays/GR/", 1900, 2099},
		{"/holidays/DE/", 1583, 4099},
		{"/holidays/RU/", 1583, 4099},
	}
	for _, tt := range tests {
		w := serve(srv, http.MethodGet, tt.target, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var info countryInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.Equal(t, tt.first, info.Years.First, tt.target)
		assert.Equal(t, tt.last, info.Years.Last, tt.target)
	}
}

func TestServer_GetDistrictOfColumbia(t *testing.T) {
	srv := setupTestServer(t, Options{})

	w := serve(srv, http.MethodGet, "/holidays/US/2021.json?county=US-DC", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var list []holiday.Holiday
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 12)
	var names []string
	for _, h := range list {
		names = append(names, h.Name)
	}
	assert.Contains(t, names, "Columbus Day")
	assert.Contains(t, names, "Inauguration Day")

	w = serve(srv, http.MethodGet, "/holidays/US/workday?date=2021-01-20&county=US-DC", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body workdayInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Workday)
	h, ok := body.Holiday.Get()
	require.True(t, ok)
	assert.Equal(t, "Inauguration Day", h.Name)

	w = serve(srv, http.MethodGet, "/holidays/US/workday?date=2021-01-20", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Workday)
}

func TestServer_IfNoneMatchForms(t *testing.T) {
	srv := setupTestServer(t, Options{})

	first := serve(srv, http.MethodGet, "/holidays/DE/2022.json", nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get(headerETag)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"weak", "W/" + etag, http.StatusNotModified},
		{"wildcard", "*", http.StatusNotModified},
		{"list", `"x", ` + etag, http.StatusNotModified},
		{"list without spaces", `"x",` + etag + `,"y"`, http.StatusNotModified},
		{"list without match", `"x", "y"`, http.StatusOK},
		{"unquoted", strings.Trim(etag, `"`), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(srv, http.MethodGet, "/holidays/DE/2022.json", nil, headerIfNoneMatch, tt.header)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, etag, w.Header().Get(headerETag))
		})
	}
}

func TestNoneMatch(t *testing.T) {
	tests := []struct {
		header string
		etag   string
		want   bool
	}{
		{"", `"a"`, false},
		{"  ", `"a"`, false},
		{`"a"`, `"a"`, true},
		{`W/"a"`, `"a"`, true},
		{`"a"`, `W/"a"`, true},
		{` * `, `"a"`, true},
		{`"b" , W/"a"`, `"a"`, true},
		{`"b"`, `"a"`, false},
		{`"ab"`, `"a"`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, noneMatch(tt.header, tt.etag), "%q vs %q", tt.header, tt.etag)
	}
}
