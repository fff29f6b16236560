package xml

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMultistatus(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<d:multistatus xmlns:d="DAV:" xmlns:cal="urn:ietf:params:xml:ns:caldav" xmlns:cs="http://calendarserver.org/ns/">
  <d:response>
    <d:href>/holidays/DE/2022/</d:href>
    <d:propstat>
      <d:prop>
        <d:displayname>Holidays DE 2022</d:displayname>
        <d:resourcetype><d:collection/><cal:calendar/></d:resourcetype>
        <cs:getctag>"abc"</cs:getctag>
      </d:prop>
      <d:status>HTTP/1.1 200 OK</d:status>
    </d:propstat>
    <d:propstat>
      <d:prop><d:getetag/></d:prop>
      <d:status>HTTP/1.1 404 Not Found</d:status>
    </d:propstat>
  </d:response>
</d:multistatus>`

	ms, err := ParseMultistatus(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, ms.Responses, 1)

	resp := ms.Responses[0]
	assert.Equal(t, "/holidays/DE/2022/", resp.Href)
	require.Len(t, resp.PropStats, 2)
	assert.Equal(t, 200, resp.PropStats[0].Status)
	assert.Equal(t, 404, resp.PropStats[1].Status)

	ctag, ok := resp.Find(Name{CalendarServer, TagGetctag})
	require.True(t, ok)
	assert.Equal(t, `"abc"`, ctag.Text)

	rt, ok := resp.Find(Name{DAV, TagResourcetype})
	require.True(t, ok)
	assert.Equal(t, []Property{
		{Name: Name{DAV, TagCollection}},
		{Name: Name{CalDAV, TagCalendar}},
	}, rt.Children)

	_, ok = resp.Find(Name{DAV, TagGetetag})
	assert.False(t, ok, "404 properties are not found")
}

func TestParseMultistatus_RoundTrip(t *testing.T) {
	want := Multistatus{Responses: []Response{
		{
			Href: "/a/",
			PropStats: []PropStat{{
				Props:  []Property{{Name: Name{DAV, TagDisplayname}, Text: "A"}},
				Status: 200,
			}},
		},
		{
			Href: "/b/",
			PropStats: []PropStat{{
				Props:  []Property{{Name: Name{CalendarServer, TagGetctag}}},
				Status: 404,
			}},
		},
	}}

	var buf bytes.Buffer
	_, err := want.WriteTo(&buf)
	require.NoError(t, err)

	got, err := ParseMultistatus(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseMultistatus_Invalid(t *testing.T) {
	for _, body := range []string{
		``,
		`<d:propfind xmlns:d="DAV:"/>`,
		`<multistatus/>`,
		`<d:multistatus xmlns:d="DAV:"><d:response>`,
		`<d:multistatus xmlns:d="DAV:"><d:response><d:propstat><d:status>teapot</d:status></d:propstat></d:response></d:multistatus>`,
	} {
		_, err := ParseMultistatus(strings.NewReader(body))
		assert.True(t, errors.Is(err, ErrInvalidMultistatus), body)
	}
}

func TestPropfindRequest_ToXML(t *testing.T) {
	tests := []struct {
		name string
		req  PropfindRequest
	}{
		{"allprop", PropfindRequest{AllProp: true}},
		{"propname", PropfindRequest{PropName: true}},
		{"props", PropfindRequest{Props: []Name{{DAV, TagDisplayname}, {CalendarServer, TagGetctag}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.req.ToXML().WriteToString()
			require.NoError(t, err)

			got, err := ParsePropfind(strings.NewReader(s))
			require.NoError(t, err)
			assert.Equal(t, tt.req, got)
		})
	}

	s, err := PropfindRequest{Props: []Name{{DAV, TagDisplayname}}}.ToXML().WriteToString()
	require.NoError(t, err)
	assert.Equal(t,
		`<D:propfind xmlns:D="DAV:" xmlns:C="urn:ietf:params:xml:ns:caldav" xmlns:CS="http://calendarserver.org/ns/"><D:prop><D:displayname/></D:prop></D:propfind>`,
		normalizeXML(s))
}
