package core

import "strings"

// Author is a person credited on a document. Names are trimmed on
// construction; an author without a last name can be built but fails
// validation.
type Author struct {
	firstName *string
	lastName  *string
}

// NewAuthor builds an author from optional names. nil means the name is
// absent, which is not the same as an empty name.
func NewAuthor(firstName, lastName *string) Author {
	return Author{
		firstName: trimmed(firstName),
		lastName:  trimmed(lastName),
	}
}

// NewAuthorName builds an author whose names are both present.
func NewAuthorName(firstName, lastName string) Author {
	return NewAuthor(&firstName, &lastName)
}

// FirstName returns the first name and whether it is present.
func (a Author) FirstName() (string, bool) {
	return deref(a.firstName)
}

// LastName returns the last name and whether it is present.
func (a Author) LastName() (string, bool) {
	return deref(a.lastName)
}

// Equal reports whether both authors carry the same names.
func (a Author) Equal(b Author) bool {
	return equalOptional(a.firstName, b.firstName) && equalOptional(a.lastName, b.lastName)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
