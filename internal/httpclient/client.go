// Package httpclient wraps http.Client with the requests a holiday feed
// client needs: plain GETs with conditional headers and PROPFIND.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// Client sends requests relative to a base URL
type Client struct {
	client  *http.Client
	baseURL url.URL
	logger  *slog.Logger
}

// New creates a client for baseURL. A nil http.Client uses
// http.DefaultClient and a nil logger discards output.
func New(client *http.Client, baseURL url.URL, logger *slog.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{client: client, baseURL: baseURL, logger: logger}
}

// resolveURL resolves a URL string against the base URL
func (c *Client) resolveURL(urlStr string) (*url.URL, error) {
	ref, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL %q: %w", urlStr, err)
	}
	return c.baseURL.ResolveReference(ref), nil
}

// Do sends a request for urlStr, resolved against the base URL. The caller
// closes the response body.
func (c *Client) Do(ctx context.Context, method, urlStr string, header http.Header, body io.Reader) (*http.Response, error) {
	resolved, err := c.resolveURL(urlStr)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, resolved.String(), body)
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			"method", method,
			"url", resolved.String(),
			"error", err)
		return nil, err
	}
	return resp, nil
}
