// Package xml builds and reads the WebDAV documents used by the holiday
// feed: PROPFIND requests and multistatus responses.
package xml

import "github.com/beevik/etree"

// Namespace definitions for WebDAV and its calendar extensions
const (
	// DAV is the WebDAV namespace
	DAV = "DAV:"
	// CalDAV is the CalDAV namespace
	CalDAV = "urn:ietf:params:xml:ns:caldav"
	// CalendarServer is the Calendar Server namespace (getctag lives here)
	CalendarServer = "http://calendarserver.org/ns/"
)

var prefixes = map[string]string{
	DAV:            "D",
	CalDAV:         "C",
	CalendarServer: "CS",
}

// Prefix returns the document prefix bound to namespace, or "" when the
// namespace is not one of the standard ones.
func Prefix(namespace string) string {
	return prefixes[namespace]
}

// AddNamespaces binds the standard prefixes on the document root
func AddNamespaces(doc *etree.Document) {
	root := doc.Root()
	if root == nil {
		return
	}
	root.CreateAttr("xmlns:D", DAV)
	root.CreateAttr("xmlns:C", CalDAV)
	root.CreateAttr("xmlns:CS", CalendarServer)
}
