package core

import (
	"fmt"
	"slices"
)

// Index is the persisted aggregate: the ordered list of all documents. It is
// always loaded and saved as a whole.
//
// The index owns its documents. Documents returns a new slice on each call,
// but the *Document values in it are the index's own, so edits through them
// are edits to the index. Membership changes only through Add, Remove and
// SetDocuments. An index never holds a nil document: nil entries are
// dropped on the way in.
type Index struct {
	documents []*Document
}

// NewIndex returns an index holding docs in order.
func NewIndex(docs ...*Document) *Index {
	return &Index{documents: withoutNil(docs)}
}

func (x *Index) Documents() []*Document {
	return slices.Clone(x.documents)
}

func (x *Index) SetDocuments(docs []*Document) {
	x.documents = withoutNil(docs)
}

func (x *Index) Len() int {
	return len(x.documents)
}

// Document returns the document at position i.
func (x *Index) Document(i int) (*Document, error) {
	if i < 0 || i >= len(x.documents) {
		return nil, fmt.Errorf("%w: index #%d (have %d)", ErrDocumentNotFound, i, len(x.documents))
	}
	return x.documents[i], nil
}

// Add appends doc and returns its position. A nil doc is ignored and -1
// returned.
func (x *Index) Add(doc *Document) int {
	if doc == nil {
		return -1
	}
	x.documents = append(x.documents, doc)
	return len(x.documents) - 1
}

// Remove deletes the document at position i, shifting later documents down.
func (x *Index) Remove(i int) (*Document, error) {
	doc, err := x.Document(i)
	if err != nil {
		return nil, err
	}
	x.documents = slices.Delete(x.documents, i, i+1)
	return doc, nil
}

// Equal reports whether both indexes hold equal documents in the same order.
func (x *Index) Equal(o *Index) bool {
	if x == nil || o == nil {
		return x == o
	}
	return slices.EqualFunc(x.documents, o.documents, (*Document).Equal)
}

func withoutNil(docs []*Document) []*Document {
	out := make([]*Document, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}
