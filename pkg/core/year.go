package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Year is a proleptic calendar year. Zero and negative values are years
// before 1 AD: 0 is 1 BC, -1 is 2 BC. It is stored in JSON as a bare integer.
type Year int64

// MarshalJSON encodes the year as a bare integer.
func (y Year) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(y), 10), nil
}

// UnmarshalJSON accepts any JSON integer. Fractions, exponents and strings
// are rejected.
func (y *Year) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s is not an integer year", ErrInvalidYear, s)
	}
	*y = Year(v)
	return nil
}

// BeforeCommonEra reports whether the year falls before 1 AD.
func (y Year) BeforeCommonEra() bool {
	return y < 1
}

// ParseYear reads a year as typed by a person: "2009", "-1", "44 BC" or
// "2009 AD". "N BC" maps to 1-N so that "1 BC" is year 0.
func ParseYear(text string) (Year, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	bc := false
	switch {
	case strings.HasSuffix(s, "BC"):
		bc = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "BC"))
	case strings.HasSuffix(s, "AD"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "AD"))
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, text)
	}
	if bc {
		if v < 1 {
			return 0, fmt.Errorf("%w: %q: BC years start at 1", ErrInvalidYear, text)
		}
		return Year(1 - v), nil
	}
	return Year(v), nil
}
