package fs

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/docindex/pkg/core"
)

// Exporter renders an index in some interchange format. Exports are
// one-way; only the JSON index format can be read back.
type Exporter interface {
	Export(idx *core.Index) ([]byte, error)
}

// DefaultExporters returns the standard set of exporters keyed by format
// name.
func DefaultExporters() map[string]Exporter {
	return map[string]Exporter{
		"json": JSONExporter{},
		"yaml": YAMLExporter{},
		"csv":  CSVExporter{},
	}
}

// ExportFormats lists the keys of DefaultExporters in sorted order.
func ExportFormats() []string {
	formats := make([]string, 0, 3)
	for name := range DefaultExporters() {
		formats = append(formats, name)
	}
	slices.Sort(formats)
	return formats
}

// --- JSON ---

// JSONExporter writes the canonical index format.
type JSONExporter struct{}

func (JSONExporter) Export(idx *core.Index) ([]byte, error) {
	return Encode(idx)
}

// --- YAML ---

// YAMLExporter writes the index with the same field names and order as the
// JSON format.
type YAMLExporter struct{}

func (YAMLExporter) Export(idx *core.Index) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(newIndexFile(idx)); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- CSV ---

// CSVHeader is the header row written by CSVExporter.
var CSVHeader = []string{
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

// CSVExporter writes one row per document. Authors and tags are joined
// with "; ", absent values are empty cells.
type CSVExporter struct{}

func (CSVExporter) Export(idx *core.Index) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	for _, doc := range idx.Documents() {
		if err := w.Write(csvRow(doc)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRow(doc *core.Document) []string {
	authors := make([]string, 0, len(doc.Authors()))
	for _, a := range doc.Authors() {
		first, _ := a.FirstName()
		last, _ := a.LastName()
		if name := strings.TrimSpace(first + " " + last); name != "" {
			authors = append(authors, name)
		}
	}

	title, _ := doc.Title()
	venue, _ := doc.PublicationVenue()
	year := ""
	if y, ok := doc.PublicationYear(); ok {
		year = strconv.FormatInt(int64(y), 10)
	}
	source, _ := doc.SourceLocation()
	notes, _ := doc.NotesLocation()

	return []string{
		strings.Join(authors, "; "),
		title,
		year,
		venue,
		strconv.Itoa(doc.PageCount()),
		string(doc.DocumentType()),
		source.String(),
		notes.String(),
		string(doc.ReadingStatus()),
		strings.Join(doc.Tags(), "; "),
	}
}
