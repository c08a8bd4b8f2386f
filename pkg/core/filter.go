package core

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter selects documents for display. Zero fields match everything.
type Filter struct {
	// Tags are glob patterns (doublestar syntax, "ml/**"). A document matches
	// when any of its tags matches any pattern.
	Tags   []string
	Status ReadingStatus
	Type   DocumentType
}

// Validate rejects malformed tag patterns.
func (f Filter) Validate() error {
	for _, p := range f.Tags {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid tag pattern %q", p)
		}
	}
	return nil
}

// Match reports whether doc passes the filter.
func (f Filter) Match(doc *Document) bool {
	if f.Status != ReadingStatusNone && doc.ReadingStatus() != f.Status {
		return false
	}
	if f.Type != DocumentTypeNone && doc.DocumentType() != f.Type {
		return false
	}
	if len(f.Tags) == 0 {
		return true
	}
	for _, tag := range doc.tags {
		for _, p := range f.Tags {
			if ok, _ := doublestar.Match(p, tag); ok {
				return true
			}
		}
	}
	return false
}

// Selection is a filtered view of an index that remembers each document's
// position in the full index.
type Selection struct {
	Positions []int
	Documents []*Document
}

// Apply returns the documents of idx that pass the filter, in index order.
func (f Filter) Apply(idx *Index) (Selection, error) {
	if err := f.Validate(); err != nil {
		return Selection{}, err
	}
	var sel Selection
	for i, doc := range idx.documents {
		if f.Match(doc) {
			sel.Positions = append(sel.Positions, i)
			sel.Documents = append(sel.Documents, doc)
		}
	}
	return sel, nil
}
