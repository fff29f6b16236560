package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cyp0633/libholiday/internal/xml"
)

// DoPROPFIND performs a PROPFIND request for the given properties. No
// properties means allprop.
func (c *Client) DoPROPFIND(ctx context.Context, urlStr string, depth int, props ...xml.Name) (xml.Multistatus, error) {
	c.logger.Debug("starting PROPFIND request",
		"url", urlStr,
		"depth", depth,
		"properties", len(props))

	body, err := xml.PropfindRequest{Props: props}.ToXML().WriteToBytes()
	if err != nil {
		return xml.Multistatus{}, fmt.Errorf("failed to build PROPFIND body: %w", err)
	}

	header := http.Header{}
	header.Set("Depth", strconv.Itoa(depth))
	header.Set("Content-Type", "application/xml; charset=utf-8")

	resp, err := c.Do(ctx, "PROPFIND", urlStr, header, bytes.NewReader(body))
	if err != nil {
		return xml.Multistatus{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMultiStatus {
		c.logger.Debug("unexpected response status",
			"status_code", resp.StatusCode,
			"status", resp.Status)
		return xml.Multistatus{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	ms, err := xml.ParseMultistatus(resp.Body)
	if err != nil {
		c.logger.Debug("failed to parse XML response", "error", err)
		return xml.Multistatus{}, fmt.Errorf("failed to parse XML response: %w", err)
	}

	c.logger.Debug("PROPFIND request complete",
		"response_count", len(ms.Responses))
	return ms, nil
}
