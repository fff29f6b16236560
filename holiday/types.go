package holiday

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCountry is returned when a country code is not part of the enumeration
	ErrUnknownCountry = errors.New("unknown country code")
	// ErrUnknownType is returned when a holiday type name cannot be parsed
	ErrUnknownType = errors.New("unknown holiday type")
)

// Type classifies a holiday. The values are bit flags, but a Holiday carries
// exactly one of them.
type Type int

const (
	// Public holiday
	Public Type = 1 << iota
	// Bank holiday, banks and offices are closed
	Bank
	// School holiday, schools are closed
	School
	// Authorities are closed
	Authorities
	// Majority of people take a day off
	Optional
	// Optional festivity, no paid day off
	Observance
)

var typeNames = map[Type]string{
	Public:      "Public",
	Bank:        "Bank",
	School:      "School",
	Authorities: "Authorities",
	Optional:    "Optional",
	Observance:  "Observance",
}

// String provides a human-readable representation of the Type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType parses a type name case-insensitively.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

func (t Type) MarshalText() ([]byte, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CountryCode is the closed set of jurisdictions known to the module.
// Not every code has a holiday provider; see calendar.Supported.
type CountryCode int

const (
	CountryUnknown CountryCode = iota
	AT
	BE
	CA
	CH
	CZ
	DE
	DK
	ES
	FI
	FR
	GB
	GR
	IE
	IT
	NL
	NO
	PL
	PT
	RU
	SE
	UA
	US
)

var countryNames = [...]string{
	CountryUnknown: "",
	AT:             "AT",
	BE:             "BE",
	CA:             "CA",
	CH:             "CH",
	CZ:             "CZ",
	DE:             "DE",
	DK:             "DK",
	ES:             "ES",
	FI:             "FI",
	FR:             "FR",
	GB:             "GB",
	GR:             "GR",
	IE:             "IE",
	IT:             "IT",
	NL:             "NL",
	NO:             "NO",
	PL:             "PL",
	PT:             "PT",
	RU:             "RU",
	SE:             "SE",
	UA:             "UA",
	US:             "US",
}

// String returns the ISO 3166-1 alpha-2 code.
func (c CountryCode) String() string {
	if c <= CountryUnknown || int(c) >= len(countryNames) {
		return "Unknown"
	}
	return countryNames[c]
}

// Valid reports whether c is a member of the enumeration.
func (c CountryCode) Valid() bool {
	return c > CountryUnknown && int(c) < len(countryNames)
}

// CountryCodes returns every member of the enumeration in declaration order.
func CountryCodes() []CountryCode {
	codes := make([]CountryCode, 0, len(countryNames)-1)
	for c := CountryUnknown + 1; int(c) < len(countryNames); c++ {
		codes = append(codes, c)
	}
	return codes
}

// ParseCountryCode parses an alpha-2 code case-insensitively.
func ParseCountryCode(s string) (CountryCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range countryNames {
		if i > 0 && name == s {
			return CountryCode(i), nil
		}
	}
	return CountryUnknown, fmt.Errorf("%w: %q", ErrUnknownCountry, s)
}

func (c CountryCode) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCountry, int(c))
	}
	return []byte(c.String()), nil
}

func (c *CountryCode) UnmarshalText(text []byte) error {
	parsed, err := ParseCountryCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
