// Package view formats documents for display. It only reads from the
// domain model and never changes it.
package view

import (
	"strconv"
	"strings"

	"github.com/aretw0/docindex/pkg/core"
)

// NotAvailable is shown for an absent publication year.
const NotAvailable = "N/A"

// DocumentView provides display strings for the fields of a document.
type DocumentView struct {
	doc *core.Document
}

// NewDocumentView wraps doc for display.
func NewDocumentView(doc *core.Document) DocumentView {
	return DocumentView{doc: doc}
}

// Views wraps every document of docs.
func Views(docs []*core.Document) []DocumentView {
	views := make([]DocumentView, len(docs))
	for i, d := range docs {
		views[i] = NewDocumentView(d)
	}
	return views
}

// Authors joins the author names with "; ".
func (v DocumentView) Authors() string {
	authors := v.doc.Authors()
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = AuthorName(a)
	}
	return strings.Join(names, "; ")
}

// AuthorName renders "First Last", or just the last name when the first
// name is absent or empty.
func AuthorName(a core.Author) string {
	last, _ := a.LastName()
	if first, ok := a.FirstName(); ok && first != "" {
		return first + " " + last
	}
	return last
}

func (v DocumentView) Title() string {
	title, _ := v.doc.Title()
	return title
}

// PublicationYear renders the year, with years before 1 AD as "N BC".
func (v DocumentView) PublicationYear() string {
	y, ok := v.doc.PublicationYear()
	if !ok {
		return NotAvailable
	}
	return YearLabel(y)
}

// YearLabel renders y as a plain number for 1 AD onwards and "N BC" before,
// so 0 is "1 BC" and -1 is "2 BC".
func YearLabel(y core.Year) string {
	if y.BeforeCommonEra() {
		return strconv.FormatInt(1-int64(y), 10) + " BC"
	}
	return strconv.FormatInt(int64(y), 10)
}

func (v DocumentView) PublicationVenue() string {
	venue, _ := v.doc.PublicationVenue()
	return venue
}

func (v DocumentView) PageCount() string {
	return strconv.Itoa(v.doc.PageCount())
}

func (v DocumentView) DocumentType() string {
	return DocumentTypeLabel(v.doc.DocumentType())
}

func (v DocumentView) ReadingStatus() string {
	return ReadingStatusLabel(v.doc.ReadingStatus())
}

// SourceLocation returns the location of the document contents.
func (v DocumentView) SourceLocation() (core.Location, bool) {
	return v.doc.SourceLocation()
}

// NotesLocation returns the location of the notes about the document.
func (v DocumentView) NotesLocation() (core.Location, bool) {
	return v.doc.NotesLocation()
}

// Tags joins the tags with ", ".
func (v DocumentView) Tags() string {
	return strings.Join(v.doc.Tags(), ", ")
}

// DocumentTypeLabel returns the human label of t. Unset renders empty.
func DocumentTypeLabel(t core.DocumentType) string {
	switch t {
	case core.DocumentTypeBook:
		return "Book"
	case core.DocumentTypePaper:
		return "Paper"
	case core.DocumentTypePresentation:
		return "Presentation"
	case core.DocumentTypeCourseText:
		return "Course text"
	case core.DocumentTypePoster:
		return "Poster"
	case core.DocumentTypeOther:
		return "Other"
	case core.DocumentTypeNone:
		return ""
	}
	return ""
}

// ReadingStatusLabel returns the human label of s. Unset renders empty.
func ReadingStatusLabel(s core.ReadingStatus) string {
	switch s {
	case core.ReadingStatusNotStarted:
		return "Not yet started"
	case core.ReadingStatusInProgress:
		return "In progress"
	case core.ReadingStatusFinished:
		return "Finished"
	case core.ReadingStatusOnHold:
		return "On hold"
	case core.ReadingStatusNone:
		return ""
	}
	return ""
}
