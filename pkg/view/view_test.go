package view_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/docindex/pkg/core"
	"github.com/aretw0/docindex/pkg/view"
)

type docSpec struct {
	authors []core.Author
	title   string
	year    *core.Year
	venue   string
	pages   int
	dtype   core.DocumentType
	status  core.ReadingStatus
	source  core.Location
	notes   core.Location
}

func year(y core.Year) *core.Year { return &y }

func build(s docSpec) *core.Document {
	d := core.NewDocument()
	d.SetAuthors(s.authors)
	d.SetTitle(s.title)
	if s.year != nil {
		d.SetPublicationYear(*s.year)
	}
	d.SetPublicationVenue(s.venue)
	d.SetPageCount(s.pages)
	d.SetDocumentType(s.dtype)
	d.MergeReadingStatus(s.status)
	if s.source != "" {
		d.SetSourceLocation(s.source)
	}
	if s.notes != "" {
		d.SetNotesLocation(s.notes)
	}
	return d
}

func sampleDocuments() []*core.Document {
	lastOnly := "2nd Name"
	return []*core.Document{
		build(docSpec{
			authors: []core.Author{core.NewAuthorName("Peter", "Selie"), core.NewAuthorName("John", "Doe")},
			title:   "Some title", year: year(2009), venue: "Important conference", pages: 50,
			dtype: core.DocumentTypeBook, status: core.ReadingStatusFinished,
		}),
		build(docSpec{
			authors: []core.Author{core.NewAuthorName("The", "Name")},
			title:   "Another title", year: year(1), venue: "International conference on nonsense", pages: 1,
			dtype: core.DocumentTypePaper, status: core.ReadingStatusFinished, source: "ABCDEF",
		}),
		build(docSpec{
			authors: []core.Author{core.NewAuthorName("Jane", "Doe")},
			title:   "Third title", year: year(0), venue: "prestigious journal", pages: 35,
			dtype: core.DocumentTypePresentation, status: core.ReadingStatusNotStarted, notes: "UVWXYZ",
		}),
		build(docSpec{
			authors: []core.Author{core.NewAuthorName("Jonas", "Johnson")},
			title:   "Title number Four", year: year(-1), venue: "Journal on Computer Science", pages: 33,
			dtype: core.DocumentTypeCourseText, status: core.ReadingStatusInProgress, source: "LMN123", notes: "IJK654",
		}),
		build(docSpec{
			authors: []core.Author{core.NewAuthor(nil, &lastOnly)},
			title:   "Final Title", venue: "Journal on Medicine", pages: 99999,
			dtype: core.DocumentTypePoster, status: core.ReadingStatusOnHold,
		}),
		build(docSpec{
			authors: []core.Author{core.NewAuthorName("Some", "Author")},
			title:   "Last title", venue: "Journal X", pages: 36,
			dtype: core.DocumentTypeOther, status: core.ReadingStatusFinished,
		}),
	}
}

func TestTableModel(t *testing.T) {
	model := view.NewTableModel(view.Views(sampleDocuments()))

	assert.Equal(t, 9, model.ColumnCount())
	assert.Equal(t, 6, model.RowCount())
	assert.Equal(t, []string{
		"Authors", "Year", "Title", "Publication Venue", "Page count",
		"Document type", "Reading status", "Source", "Notes",
	}, model.Headers())

	widths := []int{0, 60, 0, 0, 100, 130, 120, 80, 80}
	for col, want := range widths {
		got, err := model.ColumnWidth(col)
		require.NoError(t, err)
		assert.Equal(t, want, got, "width of column %d", col)
	}

	expected := [][]any{
		{"Peter Selie; John Doe", "2009", "Some title", "Important conference", "50", "Book", "Finished", nil, nil},
		{"The Name", "1", "Another title", "International conference on nonsense", "1", "Paper", "Finished", core.Location("ABCDEF"), nil},
		{"Jane Doe", "1 BC", "Third title", "prestigious journal", "35", "Presentation", "Not yet started", nil, core.Location("UVWXYZ")},
		{"Jonas Johnson", "2 BC", "Title number Four", "Journal on Computer Science", "33", "Course text", "In progress", core.Location("LMN123"), core.Location("IJK654")},
		{"2nd Name", "N/A", "Final Title", "Journal on Medicine", "99999", "Poster", "On hold", nil, nil},
		{"Some Author", "N/A", "Last title", "Journal X", "36", "Other", "Finished", nil, nil},
	}
	for row := range expected {
		for col := range expected[row] {
			got, err := model.ValueAt(row, col)
			require.NoError(t, err)
			assert.Equal(t, expected[row][col], got, "rows[%d].columns[%d]", row, col)
		}
	}
}

func TestTableModel_OutOfRange(t *testing.T) {
	model := view.NewTableModel(view.Views(sampleDocuments()))

	_, err := model.ValueAt(6, 0)
	assert.EqualError(t, err, "Row index needs to be between 0 and 5, actual value: 6")

	_, err = model.ValueAt(0, 9)
	assert.EqualError(t, err, "Column index needs to be between 0 and 8, actual value: 9")

	_, err = model.ColumnName(-1)
	assert.EqualError(t, err, "Column index needs to be between 0 and 8, actual value: -1")

	_, err = model.ColumnWidth(12)
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "44 BC", view.YearLabel(-43))
	assert.Equal(t, "9999999999", view.YearLabel(9999999999))
	assert.Equal(t, "", view.DocumentTypeLabel(core.DocumentTypeNone))
	assert.Equal(t, "", view.ReadingStatusLabel(core.ReadingStatusNone))

	empty := ""
	assert.Equal(t, "Doe", view.AuthorName(core.NewAuthor(&empty, str("Doe"))), "empty first name is dropped")
}

func str(s string) *string { return &s }

func TestRender(t *testing.T) {
	out := view.Render(view.NewTableModel(view.Views(sampleDocuments())), view.DefaultStyles())
	for _, want := range []string{"Publication Venue", "Peter Selie; John Doe", "2 BC", "LMN123", "On hold"} {
		assert.Contains(t, out, want)
	}
	assert.Greater(t, strings.Count(out, "\n"), 6)

	indexed := view.Render(view.NewTableModel(view.Views(sampleDocuments()[:2])), view.DefaultStyles(), 4, 7)
	assert.Contains(t, indexed, "#")
	assert.Contains(t, indexed, "7")

	empty := view.Render(view.NewIndexTableModel(core.NewIndex()), view.DefaultStyles())
	assert.Contains(t, empty, "no documents")
}
