package xml

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// ErrInvalidMultistatus is returned for a body that is not a DAV:multistatus
var ErrInvalidMultistatus = errors.New("invalid multistatus response")

// ParseMultistatus reads a 207 response body
func ParseMultistatus(r io.Reader) (Multistatus, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return Multistatus{}, fmt.Errorf("%w: %w", ErrInvalidMultistatus, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != TagMultistatus || root.NamespaceURI() != DAV {
		return Multistatus{}, fmt.Errorf("%w: missing multistatus root", ErrInvalidMultistatus)
	}

	var ms Multistatus
	for _, elem := range root.ChildElements() {
		if elem.Tag != TagResponse || elem.NamespaceURI() != DAV {
			continue
		}
		resp := Response{}
		if href := elem.SelectElement(TagHref); href != nil {
			resp.Href = strings.TrimSpace(href.Text())
		}
		for _, ps := range elem.SelectElements(TagPropstat) {
			propstat, err := parsePropStat(ps)
			if err != nil {
				return Multistatus{}, err
			}
			resp.PropStats = append(resp.PropStats, propstat)
		}
		ms.Responses = append(ms.Responses, resp)
	}
	return ms, nil
}

func parsePropStat(elem *etree.Element) (PropStat, error) {
	var ps PropStat
	if status := elem.SelectElement(TagStatus); status != nil {
		code, err := parseStatusLine(status.Text())
		if err != nil {
			return PropStat{}, err
		}
		ps.Status = code
	}
	if prop := elem.SelectElement(TagProp); prop != nil {
		for _, child := range prop.ChildElements() {
			ps.Props = append(ps.Props, parseProperty(child))
		}
	}
	return ps, nil
}

func parseProperty(elem *etree.Element) Property {
	p := Property{
		Name: Name{Space: elem.NamespaceURI(), Local: elem.Tag},
		Text: strings.TrimSpace(elem.Text()),
	}
	for _, child := range elem.ChildElements() {
		p.Children = append(p.Children, parseProperty(child))
	}
	return p
}

// parseStatusLine extracts the code from "HTTP/1.1 200 OK"
func parseStatusLine(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: status %q", ErrInvalidMultistatus, line)
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: status %q", ErrInvalidMultistatus, line)
	}
	return code, nil
}

// Find returns the property called name from a propstat with status 200
func (r Response) Find(name Name) (Property, bool) {
	for _, ps := range r.PropStats {
		if ps.Status != http.StatusOK {
			continue
		}
		for _, p := range ps.Props {
			if p.Name == name {
				return p, true
			}
		}
	}
	return Property{}, false
}
