package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/cyp0633/libholiday/internal/xml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// propstats maps each status line of the single response in body to the
// local names of its properties.
func propstats(t *testing.T, body string) (string, map[string][]string) {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(body))

	root := doc.Root()
	require.NotNil(t, root)
	require.Equal(t, xml.TagMultistatus, root.Tag)

	responses := root.SelectElements(xml.TagResponse)
	require.Len(t, responses, 1)

	href := responses[0].SelectElement(xml.TagHref).Text()
	out := make(map[string][]string)
	for _, ps := range responses[0].SelectElements(xml.TagPropstat) {
		status := ps.SelectElement(xml.TagStatus).Text()
		for _, p := range ps.SelectElement(xml.TagProp).ChildElements() {
			out[status] = append(out[status], p.Tag)
		}
	}
	return href, out
}

// propText returns the text of the first element named tag in body
func propText(t *testing.T, body, tag string) string {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(body))
	elem := doc.FindElement("//" + tag)
	require.NotNil(t, elem, tag)
	return elem.Text()
}

func TestServer_PropfindCollection(t *testing.T) {
	srv := setupTestServer(t, Options{})

	body := `<?xml version="1.0" encoding="utf-8"?>
<d:propfind xmlns:d="DAV:" xmlns:cs="http://calendarserver.org/ns/">
  <d:prop>
    <d:displayname/>
    <d:resourcetype/>
    <cs:getctag/>
    <d:getetag/>
  </d:prop>
</d:propfind>`

	w := serve(srv, "PROPFIND", "/holidays/DE/2022/", strings.NewReader(body), headerDepth, "0")
	require.Equal(t, http.StatusMultiStatus, w.Code)
	assert.Equal(t, mimeTypeXML, w.Header().Get(headerContentType))

	href, stats := propstats(t, w.Body.String())
	assert.Equal(t, "/holidays/DE/2022/", href)
	assert.Equal(t, []string{xml.TagDisplayname, xml.TagResourcetype, xml.TagGetctag}, stats["HTTP/1.1 200 OK"])
	assert.Equal(t, []string{xml.TagGetetag}, stats["HTTP/1.1 404 Not Found"])

	out := w.Body.String()
	assert.Contains(t, out, "<D:displayname>Holidays DE 2022</D:displayname>")
	assert.Contains(t, out, "<C:calendar/>")
	assert.Contains(t, out, "<D:collection/>")

	// The ctag changes exactly when the subscribed calendar does
	get := serve(srv, http.MethodGet, "/holidays/DE/2022/", nil)
	assert.Equal(t, get.Header().Get(headerETag), propText(t, out, xml.TagGetctag))
}

func TestServer_PropfindAllprop(t *testing.T) {
	srv := setupTestServer(t, Options{})

	tests := []struct {
		name   string
		target string
		props  []string
	}{
		{"root", "/holidays/", []string{xml.TagDisplayname, xml.TagResourcetype}},
		{"country", "/holidays/GB/", []string{xml.TagDisplayname, xml.TagResourcetype}},
		{"counties", "/holidays/US/counties", []string{xml.TagDisplayname, xml.TagResourcetype, xml.TagContentType}},
		{"file", "/holidays/US/2022.csv", []string{xml.TagDisplayname, xml.TagResourcetype, xml.TagContentType, xml.TagGetetag}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An empty body asks for every property
			w := serve(srv, "PROPFIND", tt.target, nil)
			require.Equal(t, http.StatusMultiStatus, w.Code)

			href, stats := propstats(t, w.Body.String())
			assert.Equal(t, tt.target, href)
			assert.Equal(t, tt.props, stats["HTTP/1.1 200 OK"])
			assert.NotContains(t, stats, "HTTP/1.1 404 Not Found")
		})
	}
}

func TestServer_PropfindFileETagMatchesGet(t *testing.T) {
	srv := setupTestServer(t, Options{})

	get := serve(srv, http.MethodGet, "/holidays/UA/2023.json", nil)
	require.Equal(t, http.StatusOK, get.Code)

	w := serve(srv, "PROPFIND", "/holidays/UA/2023.json", nil)
	require.Equal(t, http.StatusMultiStatus, w.Code)
	assert.Equal(t, get.Header().Get(headerETag), propText(t, w.Body.String(), xml.TagGetetag))
	assert.Equal(t, "application/json", propText(t, w.Body.String(), xml.TagContentType))
}

func TestServer_PropfindPropname(t *testing.T) {
	srv := setupTestServer(t, Options{})

	body := `<propfind xmlns="DAV:"><propname/></propfind>`
	w := serve(srv, "PROPFIND", "/holidays/DE/2022/", strings.NewReader(body))
	require.Equal(t, http.StatusMultiStatus, w.Code)

	_, stats := propstats(t, w.Body.String())
	assert.Equal(t, []string{xml.TagDisplayname, xml.TagResourcetype, xml.TagGetctag}, stats["HTTP/1.1 200 OK"])
	assert.NotContains(t, w.Body.String(), "Holidays DE 2022")
	assert.NotContains(t, w.Body.String(), "<D:collection/>")
}

func TestServer_PropfindDepthOne(t *testing.T) {
	srv := setupTestServer(t, Options{})

	w := serve(srv, "PROPFIND", "/holidays/", nil, headerDepth, "1")
	require.Equal(t, http.StatusMultiStatus, w.Code)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(w.Body.String()))

	var hrefs []string
	for _, resp := range doc.Root().SelectElements(xml.TagResponse) {
		hrefs = append(hrefs, resp.SelectElement(xml.TagHref).Text())
	}
	assert.Equal(t, []string{
		"/holidays/",
		"/holidays/DE/", "/holidays/GB/", "/holidays/GR/", "/holidays/PL/",
		"/holidays/RU/", "/holidays/UA/", "/holidays/US/",
	}, hrefs)
}

func TestServer_PropfindErrors(t *testing.T) {
	srv := setupTestServer(t, Options{})

	tests := []struct {
		name   string
		target string
		body   string
		code   int
	}{
		{"malformed body", "/holidays/DE/2022/", `<d:propfind xmlns:d="DAV:"><d:prop>`, http.StatusBadRequest},
		{"wrong root", "/holidays/DE/2022/", `<d:report xmlns:d="DAV:"/>`, http.StatusBadRequest},
		{"unknown country", "/holidays/ZZ/2022/", "", http.StatusNotFound},
		{"year out of range", "/holidays/DE/99/", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(srv, "PROPFIND", tt.target, strings.NewReader(tt.body))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
