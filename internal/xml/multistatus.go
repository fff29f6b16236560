package xml

import (
	"fmt"
	"io"
	"net/http"

	"github.com/beevik/etree"
)

// Common XML tag names
const (
	TagPropfind     = "propfind"
	TagProp         = "prop"
	TagPropname     = "propname"
	TagAllprop      = "allprop"
	TagMultistatus  = "multistatus"
	TagResponse     = "response"
	TagHref         = "href"
	TagPropstat     = "propstat"
	TagStatus       = "status"
	TagResourcetype = "resourcetype"
	TagCollection   = "collection"
	TagCalendar     = "calendar"
	TagDisplayname  = "displayname"
	TagGetctag      = "getctag"
	TagGetetag      = "getetag"
	TagContentType  = "getcontenttype"
)

// Name is a namespace-qualified element name.
type Name struct {
	Space string
	Local string
}

func (n Name) String() string {
	return "{" + n.Space + "}" + n.Local
}

// Property is one WebDAV property value.
type Property struct {
	Name     Name
	Text     string
	Children []Property
}

// ToElement converts the property to an element, using the standard
// prefixes for known namespaces.
func (p Property) ToElement() *etree.Element {
	elem := etree.NewElement(p.Name.Local)
	if prefix := Prefix(p.Name.Space); prefix != "" {
		elem.Space = prefix
	} else if p.Name.Space != "" {
		elem.CreateAttr("xmlns", p.Name.Space)
	}
	if p.Text != "" {
		elem.SetText(p.Text)
	}
	for _, child := range p.Children {
		elem.AddChild(child.ToElement())
	}
	return elem
}

// PropStat groups properties sharing one HTTP status.
type PropStat struct {
	Props  []Property
	Status int
}

// Response is the multistatus entry of one resource.
type Response struct {
	Href      string
	PropStats []PropStat
}

// Multistatus is a 207 response body.
type Multistatus struct {
	Responses []Response
}

// StatusLine formats an HTTP status for a status element
func StatusLine(code int) string {
	return fmt.Sprintf("HTTP/1.1 %d %s", code, http.StatusText(code))
}

// ToXML converts the multistatus to an XML document
func (m *Multistatus) ToXML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(TagMultistatus)
	root.Space = "D"
	AddNamespaces(doc)

	for _, resp := range m.Responses {
		response := root.CreateElement("D:" + TagResponse)
		response.CreateElement("D:" + TagHref).SetText(resp.Href)

		for _, propstat := range resp.PropStats {
			ps := response.CreateElement("D:" + TagPropstat)
			prop := ps.CreateElement("D:" + TagProp)
			for _, p := range propstat.Props {
				prop.AddChild(p.ToElement())
			}
			ps.CreateElement("D:" + TagStatus).SetText(StatusLine(propstat.Status))
		}
	}

	return doc
}

// WriteTo writes the indented document to w
func (m *Multistatus) WriteTo(w io.Writer) (int64, error) {
	doc := m.ToXML()
	doc.Indent(2)
	return doc.WriteTo(w)
}
