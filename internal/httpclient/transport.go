package httpclient

import (
	"io"
	"log/slog"
	"net/http"
)

// LoggingTransport implements http.RoundTripper. It logs every exchange at
// debug level and adds Basic Auth credentials when a username is set, for
// feeds published behind an authenticating proxy.
type LoggingTransport struct {
	Username  string
	Password  string
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// NewLoggingTransport creates a LoggingTransport. If transport is nil,
// http.DefaultTransport will be used.
func NewLoggingTransport(transport http.RoundTripper, logger *slog.Logger) *LoggingTransport {
	if transport == nil {
		transport = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &LoggingTransport{
		Transport: transport,
		Logger:    logger,
	}
}

// RoundTrip implements the http.RoundTripper interface
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.Logger.Debug("outgoing request",
		"method", req.Method,
		"url", req.URL.String(),
		"headers", req.Header)

	if t.Username != "" {
		// RoundTrippers must not modify the caller's request
		req = req.Clone(req.Context())
		req.SetBasicAuth(t.Username, t.Password)
	}

	resp, err := t.Transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	t.Logger.Debug("incoming response",
		"status", resp.Status,
		"headers", resp.Header,
		"content_length", resp.ContentLength)
	return resp, nil
}
