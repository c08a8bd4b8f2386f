package view

import (
	"fmt"

	"github.com/aretw0/docindex/pkg/core"
)

// Column describes one table column. Width is a display hint; 0 means
// the column takes whatever room is left.
type Column struct {
	Name  string
	Width int
	Value func(DocumentView) any
}

// location reports an absent location as nil so callers can tell it apart
// from an empty one.
func location(l core.Location, ok bool) any {
	if !ok {
		return nil
	}
	return l
}

var columns = []Column{
	{"Authors", 0, func(v DocumentView) any { return v.Authors() }},
	{"Year", 60, func(v DocumentView) any { return v.PublicationYear() }},
	{"Title", 0, func(v DocumentView) any { return v.Title() }},
	{"Publication Venue", 0, func(v DocumentView) any { return v.PublicationVenue() }},
	{"Page count", 100, func(v DocumentView) any { return v.PageCount() }},
	{"Document type", 130, func(v DocumentView) any { return v.DocumentType() }},
	{"Reading status", 120, func(v DocumentView) any { return v.ReadingStatus() }},
	{"Source", 80, func(v DocumentView) any { return location(v.SourceLocation()) }},
	{"Notes", 80, func(v DocumentView) any { return location(v.NotesLocation()) }},
}

// TableModel exposes a list of documents as read-only rows and the fixed
// set of columns above.
type TableModel struct {
	views []DocumentView
}

// NewTableModel creates a model with one row per view.
func NewTableModel(views []DocumentView) *TableModel {
	return &TableModel{views: append([]DocumentView(nil), views...)}
}

// NewIndexTableModel creates a model showing every document of idx.
func NewIndexTableModel(idx *core.Index) *TableModel {
	return &TableModel{views: Views(idx.Documents())}
}

func (m *TableModel) RowCount() int {
	return len(m.views)
}

func (m *TableModel) ColumnCount() int {
	return len(columns)
}

func (m *TableModel) ColumnName(col int) (string, error) {
	if err := checkRange("Column", col, m.ColumnCount()); err != nil {
		return "", err
	}
	return columns[col].Name, nil
}

func (m *TableModel) ColumnWidth(col int) (int, error) {
	if err := checkRange("Column", col, m.ColumnCount()); err != nil {
		return 0, err
	}
	return columns[col].Width, nil
}

// ValueAt returns the cell value: a string, or for Source and Notes a
// core.Location or nil when absent.
func (m *TableModel) ValueAt(row, col int) (any, error) {
	if err := checkRange("Row", row, m.RowCount()); err != nil {
		return nil, err
	}
	if err := checkRange("Column", col, m.ColumnCount()); err != nil {
		return nil, err
	}
	return columns[col].Value(m.views[row]), nil
}

// Cell returns the cell rendered as text. Absent locations are empty.
func (m *TableModel) Cell(row, col int) (string, error) {
	v, err := m.ValueAt(row, col)
	if err != nil {
		return "", err
	}
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case core.Location:
		return v.String(), nil
	}
	return fmt.Sprint(v), nil
}

// Headers returns every column name in order.
func (m *TableModel) Headers() []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}

// Rows returns every row rendered as text.
func (m *TableModel) Rows() [][]string {
	rows := make([][]string, m.RowCount())
	for r := range rows {
		rows[r] = make([]string, m.ColumnCount())
		for c := range rows[r] {
			rows[r][c], _ = m.Cell(r, c)
		}
	}
	return rows
}

func checkRange(kind string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%s index needs to be between 0 and %d, actual value: %d", kind, n-1, i)
	}
	return nil
}
