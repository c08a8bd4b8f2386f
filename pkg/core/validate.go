package core

import "fmt"

// Validatable is implemented by every entity the validation engine checks.
// An empty result means the entity is valid. Message order is stable and
// part of the contract.
type Validatable interface {
	Validate() []string
}

var (
	_ Validatable = Author{}
	_ Validatable = (*Document)(nil)
	_ Validatable = (*Index)(nil)
)

// Validate checks that the last name is present and not empty.
func (a Author) Validate() []string {
	switch {
	case a.lastName == nil:
		return []string{"Lastname must not be 'null'."}
	case *a.lastName == "":
		return []string{"Lastname must not be empty."}
	}
	return nil
}

// Validate checks, in this order: every author, that there is at least one
// author, the title, the page count, the document type and the reading status.
func (d *Document) Validate() []string {
	var msgs []string

	for i, a := range d.authors {
		msgs = append(msgs, prefixed(fmt.Sprintf("Invalid author at index #%d: ", i), a.Validate())...)
	}

	if len(d.authors) == 0 {
		msgs = append(msgs, "List of authors must not be empty.")
	}

	if d.title == nil || *d.title == "" {
		msgs = append(msgs, "Title must not be empty or null.")
	}

	if d.pageCount <= 0 {
		msgs = append(msgs, "Page count must be greater than zero.")
	}

	if d.documentType == DocumentTypeNone {
		msgs = append(msgs, "Document type must not be null.")
	}

	if d.readingStatus == ReadingStatusNone {
		msgs = append(msgs, "Reading status must not be null.")
	}

	return msgs
}

// Validate checks every document in order.
func (x *Index) Validate() []string {
	var msgs []string
	for i, doc := range x.documents {
		msgs = append(msgs, ValidateDocumentAt(i, doc)...)
	}
	return msgs
}

// ValidateDocumentAt validates doc as if it sat at position i of an index.
func ValidateDocumentAt(i int, doc *Document) []string {
	return prefixed(fmt.Sprintf("Invalid document at index #%d: ", i), doc.Validate())
}

func prefixed(prefix string, msgs []string) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = prefix + m
	}
	return out
}
