/*
Package server provides a read-only holiday feed that can be mounted in any
net/http mux.

# Basic Usage

	srv, err := server.New(server.DefaultConfig(), server.Options{})
	if err != nil {
		log.Fatal(err)
	}
	http.Handle(srv.Prefix(), srv)
	http.ListenAndServe(":8080", nil)

# URL Scheme

Paths are relative to the configured URL prefix:
  - / - JSON list of supported country codes
  - /<CC>/ - JSON description of a country
  - /<CC>/counties - JSON map of subdivision codes to names
  - /<CC>/workday?date=YYYY-MM-DD[&county=] - JSON workday answer
  - /<CC>/<year>/ - iCalendar collection, also answers PROPFIND
  - /<CC>/<year>.json|.ics|.csv - one year in the given format

Year documents accept county=<code> and type=<Public,Bank,...> filters.
Every year document carries a strong ETag and honours If-None-Match.

# Configuration

The serve command reads a YAML file:

	listen: ":8080"
	url_prefix: /holidays/
	read_timeout: 10s
	metrics_path: /metrics
	log_level: info
	min_year: 1900
	max_year: 2200
	cache:
	  max_entries: 500
*/
package server
