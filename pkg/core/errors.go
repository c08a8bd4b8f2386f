package core

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes returned by index loads and saves. Callers use errors.Is to
// tell them apart; the concrete errors wrap the underlying cause.
var (
	// ErrIO reports a file that is missing, unreadable or unwritable.
	ErrIO = errors.New("index i/o failed")
	// ErrParse reports malformed JSON syntax.
	ErrParse = errors.New("index is not valid json")
	// ErrSchema reports well-formed JSON that does not match the index schema
	// (unknown field, wrong type, unknown enum name).
	ErrSchema = errors.New("index does not match schema")
	// ErrValidation reports a schema-conformant index that violates domain rules.
	ErrValidation = errors.New("index is invalid")
)

// Common errors.
var (
	ErrIndexExists          = errors.New("index file already exists")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrNilDocument          = errors.New("document must not be nil")
	ErrUnknownDocumentType  = errors.New("unknown document type")
	ErrUnknownReadingStatus = errors.New("unknown reading status")
	ErrInvalidYear          = errors.New("invalid year")
)

// ValidationError carries every message produced by the validation engine,
// in order.
type ValidationError struct {
	Messages []string
}

// NewValidationError returns a ValidationError holding a copy of msgs.
func NewValidationError(msgs []string) *ValidationError {
	return &ValidationError{Messages: append([]string(nil), msgs...)}
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 1 {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Messages[0])
	}
	return fmt.Sprintf("%s: %d problems: %s", ErrValidation, len(e.Messages), strings.Join(e.Messages, "; "))
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SchemaError locates a schema violation by its JSON path, e.g.
// documents[1].authors[0].middleName.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrSchema, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrSchema, e.Path, e.Reason)
}

// Unwrap lets errors.Is match ErrSchema.
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// ValidationMessages returns the messages of a ValidationError anywhere in
// err's chain, or nil.
func ValidationMessages(err error) []string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Messages
	}
	return nil
}
