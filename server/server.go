package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/cyp0633/libholiday/calendar"
	"github.com/cyp0633/libholiday/holiday"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// HTTP headers
	headerContentType = "Content-Type"
	headerETag        = "ETag"
	headerDAV         = "DAV"
	headerAllow       = "Allow"
	headerDepth       = "Depth"
	headerIfNoneMatch = "If-None-Match"

	mimeTypeXML = "application/xml; charset=utf-8"

	davCapabilities = "1, calendar-access"
	allowedMethods  = "OPTIONS, GET, HEAD, PROPFIND"
)

// Options carries the collaborators of a Server. Zero values fall back to
// the default assembler, a discarding logger and no metrics.
type Options struct {
	Assembler  *calendar.Assembler
	Logger     *slog.Logger
	Registerer prometheus.Registerer
}

type businessKey struct {
	country holiday.CountryCode
	county  string
}

// Server is a read-only holiday feed speaking plain HTTP and enough WebDAV
// for calendar clients to subscribe.
type Server struct {
	config    Config
	assembler *calendar.Assembler
	logger    *slog.Logger
	metrics   *Metrics
	handlers  map[string]http.HandlerFunc

	businessMu sync.Mutex
	business   map[businessKey]*calendar.BusinessDays
}

// New creates a feed server. The config is validated and its URL prefix
// normalised to start and end with a slash.
func New(config Config, opts Options) (*Server, error) {
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(config.URLPrefix, "/") {
		config.URLPrefix = "/" + config.URLPrefix
	}
	if !strings.HasSuffix(config.URLPrefix, "/") {
		config.URLPrefix = config.URLPrefix + "/"
	}

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Assembler == nil {
		opts.Assembler = calendar.New(calendar.WithLogger(opts.Logger))
	}

	s := &Server{
		config:    config,
		assembler: opts.Assembler,
		logger:    opts.Logger,
		handlers:  make(map[string]http.HandlerFunc),
		business:  make(map[businessKey]*calendar.BusinessDays),
	}
	if opts.Registerer != nil {
		s.metrics = NewMetrics(opts.Registerer)
	}

	s.handlers[http.MethodOptions] = s.handleOptions
	s.handlers[http.MethodGet] = s.handleGet
	s.handlers[http.MethodHead] = s.handleGet
	s.handlers["PROPFIND"] = s.handlePropfind

	return s, nil
}

// Prefix returns the normalised URL prefix the server is mounted under
func (s *Server) Prefix() string {
	return s.config.URLPrefix
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("received request",
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr)

	rec := &statusRecorder{ResponseWriter: w}
	defer func() {
		s.metrics.observe(r.Method, rec.code())
	}()

	handler, ok := s.handlers[r.Method]
	if !ok {
		s.logger.Warn("method not allowed",
			"method", r.Method,
			"path", r.URL.Path)
		rec.Header().Set(headerAllow, allowedMethods)
		http.Error(rec, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	handler(rec, r)
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(headerDAV, davCapabilities)
	w.Header().Set(headerAllow, allowedMethods)
	w.WriteHeader(http.StatusOK)
}

// resource resolves the request path. It writes the error response and
// returns false when the path is not served.
func (s *Server) resource(w http.ResponseWriter, r *http.Request) (ResourcePath, bool) {
	var rel string
	switch {
	case r.URL.Path+"/" == s.config.URLPrefix:
	case strings.HasPrefix(r.URL.Path, s.config.URLPrefix):
		rel = strings.TrimPrefix(r.URL.Path, s.config.URLPrefix)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
		return ResourcePath{}, false
	}

	rp, err := ParseResourcePath(rel)
	if err != nil {
		s.logger.Debug("unresolved path",
			"path", r.URL.Path,
			"error", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return ResourcePath{}, false
	}

	if rp.Type == ResourceCollection || rp.Type == ResourceFile {
		if err := s.checkYear(rp.Country, rp.Year); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return ResourcePath{}, false
		}
	}
	if rp.Type != ResourceRoot {
		if _, ok := s.assembler.Provider(rp.Country); !ok {
			http.Error(w, fmt.Sprintf("no holidays for country %s", rp.Country), http.StatusNotFound)
			return ResourcePath{}, false
		}
	}
	return rp, true
}

// years returns the years served for country: the configured bounds,
// narrowed to those its Easter variant is correct for.
func (s *Server) years(country holiday.CountryCode) calendar.YearRange {
	r := calendar.YearRange{First: s.config.MinYear, Last: s.config.MaxYear}
	if v, ok := s.assembler.Years(country).Get(); ok {
		r.First = max(r.First, v.First)
		r.Last = min(r.Last, v.Last)
	}
	return r
}

func (s *Server) checkYear(country holiday.CountryCode, year int) error {
	r := s.years(country)
	if !r.Contains(year) {
		return fmt.Errorf("year %d outside %d-%d", year, r.First, r.Last)
	}
	return nil
}

// checkCounty validates a county query parameter against the country's
// subdivisions. An empty county is always valid.
func (s *Server) checkCounty(country holiday.CountryCode, county string) error {
	if county == "" {
		return nil
	}
	counties, ok := s.assembler.Counties(country).Get()
	if !ok {
		return fmt.Errorf("country %s has no counties", country)
	}
	if _, ok := counties[county]; !ok {
		return fmt.Errorf("unknown county %q", county)
	}
	return nil
}

// businessDays returns the shared business calendar of a country and county
func (s *Server) businessDays(country holiday.CountryCode, county string) *calendar.BusinessDays {
	key := businessKey{country: country, county: county}

	s.businessMu.Lock()
	defer s.businessMu.Unlock()

	bd, ok := s.business[key]
	if !ok {
		bd = s.assembler.NewBusinessDays(country, county)
		s.business[key] = bd
	}
	return bd
}
