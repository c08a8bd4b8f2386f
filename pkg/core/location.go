package core

import (
	"net/url"
)

// Location points at a document's source or notes: a file path, a file://
// URL or a web address. The text is kept exactly as entered so that an index
// re-saves byte for byte.
type Location string

// ParseLocation checks that s is a URI reference and returns it unchanged.
func ParseLocation(s string) (Location, error) {
	if _, err := url.Parse(s); err != nil {
		return "", err
	}
	return Location(s), nil
}

// URL parses the location.
func (l Location) URL() (*url.URL, error) {
	return url.Parse(string(l))
}

func (l Location) String() string {
	return string(l)
}
