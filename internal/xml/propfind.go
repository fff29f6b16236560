package xml

import (
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// ErrInvalidPropfind is returned for a body that is not a DAV:propfind
var ErrInvalidPropfind = errors.New("invalid propfind request")

// PropfindRequest represents a PROPFIND request
type PropfindRequest struct {
	Props    []Name
	PropName bool
	AllProp  bool
}

// Wants reports whether the request asks for name. allprop requests want
// every property.
func (r PropfindRequest) Wants(name Name) bool {
	if r.AllProp || r.PropName {
		return true
	}
	for _, p := range r.Props {
		if p == name {
			return true
		}
	}
	return false
}

// ParsePropfind reads a PROPFIND body. An empty body is treated as
// allprop, as RFC 4918 requires.
func ParsePropfind(r io.Reader) (PropfindRequest, error) {
	doc := etree.NewDocument()
	n, err := doc.ReadFrom(r)
	if err != nil {
		if n == 0 && errors.Is(err, io.EOF) {
			return PropfindRequest{AllProp: true}, nil
		}
		return PropfindRequest{}, fmt.Errorf("%w: %w", ErrInvalidPropfind, err)
	}

	root := doc.Root()
	if root == nil {
		return PropfindRequest{AllProp: true}, nil
	}
	if root.Tag != TagPropfind || root.NamespaceURI() != DAV {
		return PropfindRequest{}, fmt.Errorf("%w: root element %s", ErrInvalidPropfind, root.FullTag())
	}

	var req PropfindRequest
	for _, child := range root.ChildElements() {
		if child.NamespaceURI() != DAV {
			continue
		}
		switch child.Tag {
		case TagAllprop:
			req.AllProp = true
		case TagPropname:
			req.PropName = true
		case TagProp:
			for _, p := range child.ChildElements() {
				req.Props = append(req.Props, Name{Space: p.NamespaceURI(), Local: p.Tag})
			}
		}
	}

	if !req.AllProp && !req.PropName && len(req.Props) == 0 {
		return PropfindRequest{AllProp: true}, nil
	}
	return req, nil
}

// ToXML builds the request body for r
func (r PropfindRequest) ToXML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(TagPropfind)
	root.Space = "D"
	AddNamespaces(doc)

	switch {
	case r.PropName:
		root.CreateElement("D:" + TagPropname)
	case r.AllProp || len(r.Props) == 0:
		root.CreateElement("D:" + TagAllprop)
	default:
		prop := root.CreateElement("D:" + TagProp)
		for _, name := range r.Props {
			prop.AddChild(Property{Name: name}.ToElement())
		}
	}
	return doc
}
