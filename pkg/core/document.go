// Package core holds the document catalog domain: entities, the validation
// engine and the ports that storage adapters implement.
package core

import (
	"slices"
	"strings"
)

// Document is the central entity of the domain. It describes one reference
// work and where its source and notes live.
//
// Setters normalize their input and never fail; a Document may be in an
// invalid state until Validate says otherwise. Slice getters return copies
// and slice setters copy their argument, so a Document never shares a
// backing array with its caller.
type Document struct {
	authors          []Author
	title            *string
	publicationYear  *Year
	publicationVenue *string
	pageCount        int
	documentType     DocumentType
	sourceLocation   *Location
	notesLocation    *Location
	readingStatus    ReadingStatus
	tags             []string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Authors returns the authors in display order.
func (d *Document) Authors() []Author {
	return slices.Clone(d.authors)
}

// SetAuthors replaces the authors. Duplicates are kept.
func (d *Document) SetAuthors(authors []Author) {
	d.authors = slices.Clone(authors)
}

// AddAuthor appends an author.
func (d *Document) AddAuthor(a Author) {
	d.authors = append(d.authors, a)
}

// Title returns the title and whether it is present.
func (d *Document) Title() (string, bool) {
	return deref(d.title)
}

// SetTitle sets the title with surrounding whitespace removed.
func (d *Document) SetTitle(title string) {
	d.title = trimmed(&title)
}

// PublicationYear returns the year of publication and whether it is known.
func (d *Document) PublicationYear() (Year, bool) {
	if d.publicationYear == nil {
		return 0, false
	}
	return *d.publicationYear, true
}

func (d *Document) SetPublicationYear(y Year) {
	d.publicationYear = &y
}

func (d *Document) ClearPublicationYear() {
	d.publicationYear = nil
}

// PublicationVenue returns the publisher, conference or journal and whether
// it is present.
func (d *Document) PublicationVenue() (string, bool) {
	return deref(d.publicationVenue)
}

// SetPublicationVenue sets the venue with surrounding whitespace removed.
func (d *Document) SetPublicationVenue(venue string) {
	d.publicationVenue = trimmed(&venue)
}

func (d *Document) ClearPublicationVenue() {
	d.publicationVenue = nil
}

func (d *Document) PageCount() int {
	return d.pageCount
}

func (d *Document) SetPageCount(n int) {
	d.pageCount = n
}

func (d *Document) DocumentType() DocumentType {
	return d.documentType
}

// SetDocumentType sets the type; DocumentTypeNone unsets it.
func (d *Document) SetDocumentType(t DocumentType) {
	d.documentType = t
}

// SourceLocation returns where the document itself can be opened.
func (d *Document) SourceLocation() (Location, bool) {
	return derefLocation(d.sourceLocation)
}

func (d *Document) SetSourceLocation(l Location) {
	d.sourceLocation = &l
}

func (d *Document) ClearSourceLocation() {
	d.sourceLocation = nil
}

// NotesLocation returns where the reader's notes on the document live.
func (d *Document) NotesLocation() (Location, bool) {
	return derefLocation(d.notesLocation)
}

func (d *Document) SetNotesLocation(l Location) {
	d.notesLocation = &l
}

func (d *Document) ClearNotesLocation() {
	d.notesLocation = nil
}

func (d *Document) ReadingStatus() ReadingStatus {
	return d.readingStatus
}

// MergeReadingStatus records a reading status. ReadingStatusNone is ignored:
// once a status is set it can change but never go back to unset.
func (d *Document) MergeReadingStatus(s ReadingStatus) {
	if s == ReadingStatusNone {
		return
	}
	d.readingStatus = s
}

// Tags returns the tags in input order.
func (d *Document) Tags() []string {
	return slices.Clone(d.tags)
}

// SetTags replaces the tags. Each tag is trimmed and empty tags are dropped;
// order and duplicates are kept.
func (d *Document) SetTags(tags []string) {
	d.tags = normalizeTags(tags)
}

// AddTags appends tags using the same rules as SetTags.
func (d *Document) AddTags(tags ...string) {
	d.tags = append(d.tags, normalizeTags(tags)...)
}

// Equal reports whether two documents hold the same values field by field.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if !slices.EqualFunc(d.authors, o.authors, Author.Equal) {
		return false
	}
	if !equalOptional(d.title, o.title) || !equalOptional(d.publicationVenue, o.publicationVenue) {
		return false
	}
	if (d.publicationYear == nil) != (o.publicationYear == nil) ||
		(d.publicationYear != nil && *d.publicationYear != *o.publicationYear) {
		return false
	}
	if !equalLocation(d.sourceLocation, o.sourceLocation) || !equalLocation(d.notesLocation, o.notesLocation) {
		return false
	}
	return d.pageCount == o.pageCount &&
		d.documentType == o.documentType &&
		d.readingStatus == o.readingStatus &&
		slices.Equal(d.tags, o.tags)
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func derefLocation(l *Location) (Location, bool) {
	if l == nil {
		return "", false
	}
	return *l, true
}

func equalLocation(a, b *Location) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
