package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strconv"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/aretw0/docindex/pkg/core"
)

// Recognized field names per object kind, in canonical order.
var (
	indexFields    = []string{"documents"}
	authorFields   = []string{"firstName", "lastName"}
	documentFields = []string{
		"authors",
		"title",
		"publicationYear",
		"publicationVenue",
		"pageCount",
		"documentType",
		"sourceLocation",
		"notesLocation",
		"readingStatus",
		"tags",
	}
)

// parseTree checks encoding and JSON syntax and returns the generic value
// tree. Numbers are kept as json.Number so integers are never rounded
// through float64.
func parseTree(data []byte) (any, error) {
	// The decoder would replace invalid bytes with U+FFFD and a later save
	// would persist the replacement.
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: index is not valid UTF-8", core.ErrParse)
	}
	if !json.Valid(data) {
		var probe any
		cause := json.Unmarshal(data, &probe)
		if cause == nil {
			cause = errors.New("malformed json")
		}
		return nil, fmt.Errorf("%w: %w", core.ErrParse, cause)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrParse, err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", core.ErrParse)
	}
	return root, nil
}

// checkSchema walks the tree and fails on the first field, type or enum
// name the index format does not define.
func checkSchema(root any) error {
	obj, err := object(root, "")
	if err != nil {
		return err
	}
	if err := knownKeys(obj, indexFields, ""); err != nil {
		return err
	}

	docs, err := array(obj["documents"], "documents")
	if err != nil {
		return err
	}
	for i, d := range docs {
		if err := checkDocument(d, fmt.Sprintf("documents[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func checkDocument(v any, path string) error {
	obj, err := object(v, path)
	if err != nil {
		return err
	}
	if err := knownKeys(obj, documentFields, path); err != nil {
		return err
	}

	authors, err := array(obj["authors"], join(path, "authors"))
	if err != nil {
		return err
	}
	for i, a := range authors {
		if err := checkAuthor(a, fmt.Sprintf("%s.authors[%d]", path, i)); err != nil {
			return err
		}
	}

	for _, field := range []string{"title", "publicationVenue"} {
		if _, err := optionalString(obj[field], join(path, field)); err != nil {
			return err
		}
	}

	if err := integer(obj["publicationYear"], join(path, "publicationYear"), 64); err != nil {
		return err
	}
	if err := integer(obj["pageCount"], join(path, "pageCount"), strconv.IntSize); err != nil {
		return err
	}

	if s, err := optionalString(obj["documentType"], join(path, "documentType")); err != nil {
		return err
	} else if s != nil && !core.DocumentType(*s).Known() {
		return schemaErr(join(path, "documentType"), "unknown document type %q", *s)
	}

	if s, err := optionalString(obj["readingStatus"], join(path, "readingStatus")); err != nil {
		return err
	} else if s != nil && !core.ReadingStatus(*s).Known() {
		return schemaErr(join(path, "readingStatus"), "unknown reading status %q", *s)
	}

	for _, field := range []string{"sourceLocation", "notesLocation"} {
		s, err := optionalString(obj[field], join(path, field))
		if err != nil {
			return err
		}
		if s != nil {
			if _, err := url.Parse(*s); err != nil {
				return schemaErr(join(path, field), "not a valid URI: %v", err)
			}
		}
	}

	tags, err := array(obj["tags"], join(path, "tags"))
	if err != nil {
		return err
	}
	for i, t := range tags {
		// null tags are allowed and dropped during construction.
		if _, err := optionalString(t, fmt.Sprintf("%s.tags[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func checkAuthor(v any, path string) error {
	obj, err := object(v, path)
	if err != nil {
		return err
	}
	if err := knownKeys(obj, authorFields, path); err != nil {
		return err
	}
	for _, field := range authorFields {
		if _, err := optionalString(obj[field], join(path, field)); err != nil {
			return err
		}
	}
	return nil
}

// knownKeys rejects any key outside allowed. With several unknown keys the
// alphabetically first one is reported so errors are stable.
func knownKeys(obj map[string]any, allowed []string, path string) error {
	var unknown []string
	for k := range obj {
		if !slices.Contains(allowed, k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	slices.Sort(unknown)
	return schemaErr(join(path, unknown[0]), "unknown field")
}

func object(v any, path string) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, schemaErr(path, "expected object, got %s", kind(v))
	}
	return obj, nil
}

// array accepts a JSON array; an absent or null value is an empty array.
func array(v any, path string) ([]any, error) {
	if v == nil {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, schemaErr(path, "expected array, got %s", kind(v))
	}
	return arr, nil
}

func optionalString(v any, path string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, schemaErr(path, "expected string, got %s", kind(v))
	}
	return &s, nil
}

// integer accepts null or a JSON integer that fits in bits.
func integer(v any, path string, bits int) error {
	if v == nil {
		return nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return schemaErr(path, "expected integer, got %s", kind(v))
	}
	if _, err := strconv.ParseInt(n.String(), 10, bits); err != nil {
		return schemaErr(path, "expected integer, got %s", n.String())
	}
	return nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func schemaErr(path, format string, args ...any) error {
	return &core.SchemaError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
