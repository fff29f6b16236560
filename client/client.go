// Package client reads holiday calendars from a feed published by the
// server package.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cyp0633/libholiday/holiday"
	"github.com/cyp0633/libholiday/internal/httpclient"
	"github.com/cyp0633/libholiday/internal/xml"
	"github.com/emersion/go-ical"
	"github.com/samber/mo"
)

// ErrNotModified is returned by Calendar when the feed still has the
// version identified by the given ETag.
var ErrNotModified = errors.New("calendar not modified")

// StatusError is returned for responses with an unexpected status
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed returned %d: %s", e.Code, e.Message)
}

// Option configures a Client
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
	username   string
	password   string
}

// WithHTTPClient sets the underlying http.Client. Its transport is wrapped
// for logging.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithLogger sets the logger for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBasicAuth sends credentials with every request
func WithBasicAuth(username, password string) Option {
	return func(o *options) {
		o.username = username
		o.password = password
	}
}

// Client reads a holiday feed
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// New creates a client for the feed mounted at baseURL, e.g.
// "https://example.com/holidays/".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid URL %q", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	hc := http.Client{}
	if o.httpClient != nil {
		hc = *o.httpClient
	}
	transport := httpclient.NewLoggingTransport(hc.Transport, o.logger)
	transport.Username, transport.Password = o.username, o.password
	hc.Transport = transport

	return &Client{
		http:   httpclient.New(&hc, *u, o.logger),
		logger: o.logger,
	}, nil
}

// get fetches path and decodes a JSON body into v
func (c *Client) get(ctx context.Context, path string, v any) error {
	resp, err := c.http.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(b))}
}

func yearPath(code holiday.CountryCode, year int, ext, county string) string {
	p := fmt.Sprintf("%s/%d%s", code, year, ext)
	if county != "" {
		p += "?county=" + url.QueryEscape(county)
	}
	return p
}

// Countries lists the country codes the feed serves
func (c *Client) Countries(ctx context.Context) ([]holiday.CountryCode, error) {
	var codes []holiday.CountryCode
	if err := c.get(ctx, "", &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// Counties returns the subdivisions of code. It is absent when the country
// has none.
func (c *Client) Counties(ctx context.Context, code holiday.CountryCode) (mo.Option[map[string]string], error) {
	var counties map[string]string
	err := c.get(ctx, code.String()+"/counties", &counties)
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return mo.None[map[string]string](), nil
	}
	if err != nil {
		return mo.None[map[string]string](), err
	}
	return mo.Some(counties), nil
}

// Holidays fetches one year. A non-empty county keeps the nationwide
// holidays and those of the county.
func (c *Client) Holidays(ctx context.Context, code holiday.CountryCode, year int, county string) ([]holiday.Holiday, error) {
	var list []holiday.Holiday
	if err := c.get(ctx, yearPath(code, year, ".json", county), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Workday is the feed's answer for one date
type Workday struct {
	Date    string                     `json:"date"`
	Workday bool                       `json:"workday"`
	Holiday mo.Option[holiday.Holiday] `json:"holiday"`
}

// Workday asks whether date is a workday in code, optionally in county
func (c *Client) Workday(ctx context.Context, code holiday.CountryCode, date time.Time, county string) (Workday, error) {
	query := url.Values{}
	query.Set("date", date.Format(time.DateOnly))
	if county != "" {
		query.Set("county", county)
	}

	var w Workday
	if err := c.get(ctx, code.String()+"/workday?"+query.Encode(), &w); err != nil {
		return Workday{}, err
	}
	return w, nil
}

// Calendar fetches one year as iCalendar with its ETag. When etag is set
// and still current, ErrNotModified is returned.
func (c *Client) Calendar(ctx context.Context, code holiday.CountryCode, year int, county, etag string) (*ical.Calendar, string, error) {
	header := http.Header{}
	if etag != "" {
		header.Set("If-None-Match", etag)
	}

	resp, err := c.http.Do(ctx, http.MethodGet, yearPath(code, year, ".ics", county), header, nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotModified:
		return nil, etag, ErrNotModified
	default:
		return nil, "", statusError(resp)
	}

	cal, err := ical.NewDecoder(resp.Body).Decode()
	if err != nil {
		return nil, "", fmt.Errorf("decode calendar: %w", err)
	}
	return cal, resp.Header.Get("ETag"), nil
}

// CTag returns the collection tag of a year. It changes whenever the
// calendar served for the year does.
func (c *Client) CTag(ctx context.Context, code holiday.CountryCode, year int) (string, error) {
	name := xml.Name{Space: xml.CalendarServer, Local: xml.TagGetctag}
	ms, err := c.http.DoPROPFIND(ctx, fmt.Sprintf("%s/%d/", code, year), 0, name)
	if err != nil {
		return "", err
	}
	for _, resp := range ms.Responses {
		if p, ok := resp.Find(name); ok {
			return p.Text, nil
		}
	}
	return "", fmt.Errorf("no getctag for %s %d", code, year)
}
