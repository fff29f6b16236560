package server

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/cyp0633/libholiday/export"
	"github.com/cyp0633/libholiday/holiday"
)

// ErrNotFound is returned for paths outside the feed's URL scheme
var ErrNotFound = errors.New("resource not found")

// ResourceType represents the kind of a feed resource
type ResourceType int

const (
	ResourceRoot       ResourceType = iota // {prefix}
	ResourceCountry                        // {prefix}{CC}/
	ResourceCounties                       // {prefix}{CC}/counties
	ResourceWorkday                        // {prefix}{CC}/workday
	ResourceCollection                     // {prefix}{CC}/{year}/
	ResourceFile                           // {prefix}{CC}/{year}.{ext}
)

// String returns the string representation of the ResourceType
func (rt ResourceType) String() string {
	switch rt {
	case ResourceRoot:
		return "root"
	case ResourceCountry:
		return "country"
	case ResourceCounties:
		return "counties"
	case ResourceWorkday:
		return "workday"
	case ResourceCollection:
		return "collection"
	case ResourceFile:
		return "file"
	default:
		return "unknown"
	}
}

// ResourcePath is a parsed feed path relative to the URL prefix
type ResourcePath struct {
	Type    ResourceType
	Country holiday.CountryCode
	Year    int
	Format  export.Format
}

// String returns the canonical relative path, without the prefix
func (rp ResourcePath) String() string {
	switch rp.Type {
	case ResourceRoot:
		return ""
	case ResourceCountry:
		return rp.Country.String() + "/"
	case ResourceCounties:
		return rp.Country.String() + "/counties"
	case ResourceWorkday:
		return rp.Country.String() + "/workday"
	case ResourceCollection:
		return fmt.Sprintf("%s/%d/", rp.Country, rp.Year)
	case ResourceFile:
		return fmt.Sprintf("%s/%d.%s", rp.Country, rp.Year, rp.Format)
	default:
		return ""
	}
}

// ParseResourcePath parses a path with the URL prefix already removed
func ParseResourcePath(p string) (ResourcePath, error) {
	p = strings.Trim(p, "/")
	if p == "" {
		return ResourcePath{Type: ResourceRoot}, nil
	}

	parts := strings.Split(p, "/")
	if len(parts) > 2 {
		return ResourcePath{}, fmt.Errorf("%w: %q", ErrNotFound, p)
	}

	country, err := holiday.ParseCountryCode(parts[0])
	if err != nil {
		return ResourcePath{}, err
	}
	rp := ResourcePath{Type: ResourceCountry, Country: country}
	if len(parts) == 1 {
		return rp, nil
	}

	switch leaf := parts[1]; leaf {
	case "counties":
		rp.Type = ResourceCounties
	case "workday":
		rp.Type = ResourceWorkday
	default:
		ext := path.Ext(leaf)
		rp.Type = ResourceCollection
		if ext != "" {
			rp.Type = ResourceFile
			if rp.Format, err = export.ParseFormat(ext); err != nil {
				return ResourcePath{}, err
			}
		}
		if rp.Year, err = strconv.Atoi(strings.TrimSuffix(leaf, ext)); err != nil {
			return ResourcePath{}, fmt.Errorf("%w: invalid year %q", ErrNotFound, leaf)
		}
	}
	return rp, nil
}
