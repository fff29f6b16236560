package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/cyp0633/libholiday/export"
	"github.com/cyp0633/libholiday/internal/xml"
)

func (s *Server) handlePropfind(w http.ResponseWriter, r *http.Request) {
	rp, ok := s.resource(w, r)
	if !ok {
		return
	}

	req, err := xml.ParsePropfind(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	targets := []ResourcePath{rp}
	// Only the root has enumerable members; years are unbounded.
	if rp.Type == ResourceRoot && r.Header.Get(headerDepth) == "1" {
		for _, code := range s.assembler.Supported() {
			targets = append(targets, ResourcePath{Type: ResourceCountry, Country: code})
		}
	}

	ms := xml.Multistatus{}
	for _, target := range targets {
		resp, err := s.propResponse(target, req)
		if err != nil {
			s.logger.Error("failed to resolve properties",
				"path", target.String(),
				"error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		ms.Responses = append(ms.Responses, resp)
	}

	w.Header().Set(headerContentType, mimeTypeXML)
	w.WriteHeader(http.StatusMultiStatus)
	if _, err := ms.WriteTo(w); err != nil {
		s.logger.Error("failed to write multistatus", "error", err)
	}
}

// propResponse splits the requested properties of rp into found and
// missing propstats.
func (s *Server) propResponse(rp ResourcePath, req xml.PropfindRequest) (xml.Response, error) {
	available, err := s.properties(rp)
	if err != nil {
		return xml.Response{}, err
	}

	var found, missing []xml.Property
	switch {
	case req.PropName:
		for _, p := range available {
			found = append(found, xml.Property{Name: p.Name})
		}
	case req.AllProp:
		found = available
	default:
		for _, name := range req.Props {
			if p, ok := findProperty(available, name); ok {
				found = append(found, p)
			} else {
				missing = append(missing, xml.Property{Name: name})
			}
		}
	}

	resp := xml.Response{Href: s.config.URLPrefix + rp.String()}
	if len(found) > 0 {
		resp.PropStats = append(resp.PropStats, xml.PropStat{Props: found, Status: http.StatusOK})
	}
	if len(missing) > 0 {
		resp.PropStats = append(resp.PropStats, xml.PropStat{Props: missing, Status: http.StatusNotFound})
	}
	return resp, nil
}

func findProperty(props []xml.Property, name xml.Name) (xml.Property, bool) {
	for _, p := range props {
		if p.Name == name {
			return p, true
		}
	}
	return xml.Property{}, false
}

// properties lists every property rp has, with values
func (s *Server) properties(rp ResourcePath) ([]xml.Property, error) {
	display := func(text string) xml.Property {
		return xml.Property{Name: xml.Name{Space: xml.DAV, Local: xml.TagDisplayname}, Text: text}
	}
	resourcetype := func(children ...xml.Property) xml.Property {
		return xml.Property{Name: xml.Name{Space: xml.DAV, Local: xml.TagResourcetype}, Children: children}
	}
	contentType := func(f export.Format) xml.Property {
		return xml.Property{Name: xml.Name{Space: xml.DAV, Local: xml.TagContentType}, Text: f.ContentType()}
	}
	collection := xml.Property{Name: xml.Name{Space: xml.DAV, Local: xml.TagCollection}}

	switch rp.Type {
	case ResourceRoot:
		return []xml.Property{display("Holidays"), resourcetype(collection)}, nil
	case ResourceCountry:
		return []xml.Property{display("Holidays " + rp.Country.String()), resourcetype(collection)}, nil
	case ResourceCounties:
		return []xml.Property{
			display("Counties " + rp.Country.String()),
			resourcetype(),
			contentType(export.FormatJSON),
		}, nil
	case ResourceWorkday:
		return []xml.Property{
			display("Workdays " + rp.Country.String()),
			resourcetype(),
			contentType(export.FormatJSON),
		}, nil
	case ResourceCollection:
		tag, err := s.yearTag(rp, export.FormatICS)
		if err != nil {
			return nil, err
		}
		return []xml.Property{
			display(fmt.Sprintf("Holidays %s %d", rp.Country, rp.Year)),
			resourcetype(collection, xml.Property{Name: xml.Name{Space: xml.CalDAV, Local: xml.TagCalendar}}),
			{Name: xml.Name{Space: xml.CalendarServer, Local: xml.TagGetctag}, Text: tag},
		}, nil
	case ResourceFile:
		tag, err := s.yearTag(rp, rp.Format)
		if err != nil {
			return nil, err
		}
		return []xml.Property{
			display(fmt.Sprintf("Holidays %s %d", rp.Country, rp.Year)),
			resourcetype(),
			contentType(rp.Format),
			{Name: xml.Name{Space: xml.DAV, Local: xml.TagGetetag}, Text: tag},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, rp.Type)
	}
}

// yearTag returns the entity tag of the unfiltered year document, the
// same value GET serves as ETag.
func (s *Server) yearTag(rp ResourcePath, format export.Format) (string, error) {
	name := fmt.Sprintf("Holidays %s %d", rp.Country, rp.Year)
	var buf bytes.Buffer
	err := export.Write(&buf, format, s.assembler.Holidays(rp.Year, rp.Country), export.ICSOptions{Name: name})
	if err != nil {
		return "", err
	}
	return entityTag(buf.Bytes()), nil
}
