package fs

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/aretw0/docindex/pkg/core"
)

// indexFile mirrors the on-disk layout. Field order is the canonical
// output order and no field is omitted, so absent values are written
// as null.
type indexFile struct {
	Documents []*documentRecord `json:"documents" yaml:"documents"`
}

type documentRecord struct {
	Authors          []*authorRecord     `json:"authors" yaml:"authors"`
	Title            *string             `json:"title" yaml:"title"`
	PublicationYear  *core.Year          `json:"publicationYear" yaml:"publicationYear"`
	PublicationVenue *string             `json:"publicationVenue" yaml:"publicationVenue"`
	PageCount        int                 `json:"pageCount" yaml:"pageCount"`
	DocumentType     *core.DocumentType  `json:"documentType" yaml:"documentType"`
	SourceLocation   *string             `json:"sourceLocation" yaml:"sourceLocation"`
	NotesLocation    *string             `json:"notesLocation" yaml:"notesLocation"`
	ReadingStatus    *core.ReadingStatus `json:"readingStatus" yaml:"readingStatus"`
	Tags             []*string           `json:"tags" yaml:"tags"`
}

type authorRecord struct {
	FirstName *string `json:"firstName" yaml:"firstName"`
	LastName  *string `json:"lastName" yaml:"lastName"`
}

// Decode parses index file contents into a validated index.
//
// Errors wrap core.ErrParse for malformed JSON, core.ErrSchema for content
// that does not fit the index format and core.ErrValidation when the
// resulting index breaks a domain rule.
func Decode(data []byte) (*core.Index, error) {
	idx, err := decodeIndex(data)
	if err != nil {
		return nil, err
	}
	if msgs := idx.Validate(); len(msgs) > 0 {
		return nil, core.NewValidationError(msgs)
	}
	return idx, nil
}

func decodeIndex(data []byte) (*core.Index, error) {
	tree, err := parseTree(data)
	if err != nil {
		return nil, err
	}
	if err := checkSchema(tree); err != nil {
		return nil, err
	}

	var file indexFile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, &core.SchemaError{Reason: err.Error()}
	}
	return file.index(), nil
}

// Encode renders idx in canonical form: two-space indentation, fixed
// field order, explicit nulls and a trailing newline. The index is not
// validated.
func Encode(idx *core.Index) ([]byte, error) {
	data, err := json.MarshalIndent(newIndexFile(idx), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	return append(data, '\n'), nil
}

func (f indexFile) index() *core.Index {
	docs := make([]*core.Document, 0, len(f.Documents))
	for _, rec := range f.Documents {
		if rec == nil {
			continue
		}
		docs = append(docs, rec.document())
	}
	return core.NewIndex(docs...)
}

func (rec *documentRecord) document() *core.Document {
	doc := core.NewDocument()

	authors := make([]core.Author, 0, len(rec.Authors))
	for _, a := range rec.Authors {
		if a == nil {
			continue
		}
		authors = append(authors, core.NewAuthor(a.FirstName, a.LastName))
	}
	doc.SetAuthors(authors)

	if rec.Title != nil {
		doc.SetTitle(*rec.Title)
	}
	if rec.PublicationYear != nil {
		doc.SetPublicationYear(*rec.PublicationYear)
	}
	if rec.PublicationVenue != nil {
		doc.SetPublicationVenue(*rec.PublicationVenue)
	}
	doc.SetPageCount(rec.PageCount)
	if rec.DocumentType != nil {
		doc.SetDocumentType(*rec.DocumentType)
	}
	if rec.SourceLocation != nil {
		doc.SetSourceLocation(core.Location(*rec.SourceLocation))
	}
	if rec.NotesLocation != nil {
		doc.SetNotesLocation(core.Location(*rec.NotesLocation))
	}
	if rec.ReadingStatus != nil {
		doc.MergeReadingStatus(*rec.ReadingStatus)
	}

	tags := make([]string, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		if t != nil {
			tags = append(tags, *t)
		}
	}
	doc.SetTags(tags)
	return doc
}

func newIndexFile(idx *core.Index) indexFile {
	docs := idx.Documents()
	f := indexFile{Documents: make([]*documentRecord, 0, len(docs))}
	for _, doc := range docs {
		f.Documents = append(f.Documents, newDocumentRecord(doc))
	}
	return f
}

func newDocumentRecord(doc *core.Document) *documentRecord {
	rec := &documentRecord{
		Authors:   make([]*authorRecord, 0),
		PageCount: doc.PageCount(),
		Tags:      make([]*string, 0),
	}

	for _, a := range doc.Authors() {
		rec.Authors = append(rec.Authors, &authorRecord{
			FirstName: optional(a.FirstName()),
			LastName:  optional(a.LastName()),
		})
	}

	rec.Title = optional(doc.Title())
	rec.PublicationVenue = optional(doc.PublicationVenue())
	if y, ok := doc.PublicationYear(); ok {
		rec.PublicationYear = &y
	}
	if t := doc.DocumentType(); t != core.DocumentTypeNone {
		rec.DocumentType = &t
	}
	if s := doc.ReadingStatus(); s != core.ReadingStatusNone {
		rec.ReadingStatus = &s
	}
	if l, ok := doc.SourceLocation(); ok {
		rec.SourceLocation = optional(l.String(), true)
	}
	if l, ok := doc.NotesLocation(); ok {
		rec.NotesLocation = optional(l.String(), true)
	}

	for _, t := range doc.Tags() {
		rec.Tags = append(rec.Tags, &t)
	}
	return rec
}

func optional(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}
