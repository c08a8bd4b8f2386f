package core

import (
	"fmt"
	"strings"
)

// DocumentType classifies a document. The zero value DocumentTypeNone stands
// for an unset type and fails validation.
type DocumentType string

const (
	DocumentTypeNone         DocumentType = ""
	DocumentTypeBook         DocumentType = "BOOK"
	DocumentTypePaper        DocumentType = "PAPER"
	DocumentTypePresentation DocumentType = "PRESENTATION"
	DocumentTypeCourseText   DocumentType = "COURSE_TEXT"
	DocumentTypePoster       DocumentType = "POSTER"
	DocumentTypeOther        DocumentType = "OTHER"
)

// DocumentTypes lists every set document type in declaration order.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeBook,
		DocumentTypePaper,
		DocumentTypePresentation,
		DocumentTypeCourseText,
		DocumentTypePoster,
		DocumentTypeOther,
	}
}

// Known reports whether t is one of DocumentTypes.
func (t DocumentType) Known() bool {
	switch t {
	case DocumentTypeBook, DocumentTypePaper, DocumentTypePresentation,
		DocumentTypeCourseText, DocumentTypePoster, DocumentTypeOther:
		return true
	}
	return false
}

// ParseDocumentType maps a member name (case-insensitive, "-" accepted for
// "_") to a DocumentType.
func ParseDocumentType(s string) (DocumentType, error) {
	t := DocumentType(normalizeEnumName(s))
	if !t.Known() {
		return DocumentTypeNone, fmt.Errorf("%w: %q", ErrUnknownDocumentType, s)
	}
	return t, nil
}

// ReadingStatus tracks how far the reader got. The zero value
// ReadingStatusNone stands for an unset status and fails validation.
type ReadingStatus string

const (
	ReadingStatusNone       ReadingStatus = ""
	ReadingStatusNotStarted ReadingStatus = "NOT_STARTED"
	ReadingStatusInProgress ReadingStatus = "IN_PROGRESS"
	ReadingStatusFinished   ReadingStatus = "FINISHED"
	ReadingStatusOnHold     ReadingStatus = "ON_HOLD"
)

// ReadingStatuses lists every set reading status in declaration order.
func ReadingStatuses() []ReadingStatus {
	return []ReadingStatus{
		ReadingStatusNotStarted,
		ReadingStatusInProgress,
		ReadingStatusFinished,
		ReadingStatusOnHold,
	}
}

// Known reports whether s is one of ReadingStatuses.
func (s ReadingStatus) Known() bool {
	switch s {
	case ReadingStatusNotStarted, ReadingStatusInProgress, ReadingStatusFinished, ReadingStatusOnHold:
		return true
	}
	return false
}

// ParseReadingStatus maps a member name (case-insensitive, "-" accepted for
// "_") to a ReadingStatus.
func ParseReadingStatus(s string) (ReadingStatus, error) {
	st := ReadingStatus(normalizeEnumName(s))
	if !st.Known() {
		return ReadingStatusNone, fmt.Errorf("%w: %q", ErrUnknownReadingStatus, s)
	}
	return st, nil
}

func normalizeEnumName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "-", "_")
}
