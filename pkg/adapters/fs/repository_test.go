package fs_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/docindex/pkg/adapters/fs"
	"github.com/aretw0/docindex/pkg/core"
)

// setupRepo creates a repository on a fresh index path. When contents is
// non-empty it is written to the file first.
func setupRepo(t *testing.T, contents string) (*fs.Repository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "index.json")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
	}
	return fs.NewRepository(fs.Config{Path: path}), path
}

func fixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

// jsonTree decodes data into a generic tree for structural comparison.
func jsonTree(t *testing.T, data []byte) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestLoad_CorrectFile(t *testing.T) {
	repo := fs.NewRepository(fs.Config{Path: filepath.Join("testdata", "correctFile.json")})

	idx, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 6, idx.Len())
	docs := idx.Documents()

	t.Run("document 0", func(t *testing.T) {
		d := docs[0]
		authors := d.Authors()
		require.Len(t, authors, 2)
		first, _ := authors[1].FirstName()
		last, _ := authors[1].LastName()
		assert.Equal(t, "John", first)
		assert.Equal(t, "Doe", last)

		title, _ := d.Title()
		assert.Equal(t, "Some title", title)
		year, ok := d.PublicationYear()
		assert.True(t, ok)
		assert.Equal(t, core.Year(2009), year)
		assert.Equal(t, 50, d.PageCount())
		assert.Equal(t, core.DocumentTypeBook, d.DocumentType())
		_, ok = d.SourceLocation()
		assert.False(t, ok)
		assert.Equal(t, core.ReadingStatusFinished, d.ReadingStatus())
		assert.Equal(t, []string{"tag1", "tag2", "third tag"}, d.Tags())
	})

	t.Run("document 1", func(t *testing.T) {
		d := docs[1]
		src, ok := d.SourceLocation()
		assert.True(t, ok)
		assert.Equal(t, core.Location("ABCDEF"), src)
		u, err := src.URL()
		require.NoError(t, err)
		assert.Equal(t, "ABCDEF", u.Path)
		assert.Empty(t, d.Tags())
	})

	t.Run("years around the era boundary", func(t *testing.T) {
		y2, _ := docs[2].PublicationYear()
		y3, _ := docs[3].PublicationYear()
		assert.Equal(t, core.Year(0), y2)
		assert.Equal(t, core.Year(-1), y3)
		assert.Equal(t, core.DocumentTypeCourseText, docs[3].DocumentType())
		notes, _ := docs[3].NotesLocation()
		assert.Equal(t, core.Location("IJK654"), notes)
	})

	t.Run("document 4", func(t *testing.T) {
		d := docs[4]
		_, ok := d.Authors()[0].FirstName()
		assert.False(t, ok, "null first name stays absent")
		_, ok = d.PublicationYear()
		assert.False(t, ok)
		assert.Equal(t, 99999, d.PageCount())
		assert.Equal(t, core.DocumentTypePoster, d.DocumentType())
		assert.Equal(t, core.ReadingStatusOnHold, d.ReadingStatus())
	})

	t.Run("document 5", func(t *testing.T) {
		assert.Equal(t, core.DocumentTypeOther, docs[5].DocumentType())
		assert.Equal(t, []string{"A", "B", "C", "D"}, docs[5].Tags())
	})
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Field", func(t *testing.T) {
		repo, _ := setupRepo(t, fixture(t, "redundantField.json"))
		idx, err := repo.Load(ctx)
		assert.Nil(t, idx)
		require.ErrorIs(t, err, core.ErrSchema)

		var serr *core.SchemaError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, "documents[1].authors[0].middleName", serr.Path)
	})

	t.Run("Syntax Error", func(t *testing.T) {
		repo, _ := setupRepo(t, fixture(t, "incorrectSyntax.json"))
		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, core.ErrParse)
		assert.NotErrorIs(t, err, core.ErrSchema)
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		document := func(title string) string {
			return `{"documents": [{"authors": [{"lastName": "Doe"}], "title": "` + title +
				`", "pageCount": 1, "documentType": "BOOK", "readingStatus": "FINISHED"}]}`
		}

		repo, _ := setupRepo(t, document("a\xffb"))
		idx, err := repo.Load(ctx)
		assert.Nil(t, idx)
		assert.ErrorIs(t, err, core.ErrParse)

		repo, _ = setupRepo(t, document("ab"))
		_, err = repo.Load(ctx)
		assert.NoError(t, err)
	})

	t.Run("Missing File", func(t *testing.T) {
		repo := fs.NewRepository(fs.Config{Path: "./file_that_does_definitely_not_exist.json"})
		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, core.ErrIO)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Invalid Contents", func(t *testing.T) {
		repo, _ := setupRepo(t, `{"documents": [{"title": "", "pageCount": 0}]}`)
		_, err := repo.Load(ctx)
		require.ErrorIs(t, err, core.ErrValidation)
		assert.Equal(t, []string{
			"Invalid document at index #0: List of authors must not be empty.",
			"Invalid document at index #0: Title must not be empty or null.",
			"Invalid document at index #0: Page count must be greater than zero.",
			"Invalid document at index #0: Document type must not be null.",
			"Invalid document at index #0: Reading status must not be null.",
		}, core.ValidationMessages(err))
	})

	t.Run("Canceled Context", func(t *testing.T) {
		repo, _ := setupRepo(t, fixture(t, "emptyIndex.json"))
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.Load(canceled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
	}{
		{"root is array", `[]`, ""},
		{"unknown root field", `{"documents": [], "version": 2}`, "version"},
		{"documents not array", `{"documents": {}}`, "documents"},
		{"null document", `{"documents": [null]}`, "documents[0]"},
		{"title is number", `{"documents": [{"title": 5}]}`, "documents[0].title"},
		{"fractional page count", `{"documents": [{"pageCount": 1.5}]}`, "documents[0].pageCount"},
		{"quoted year", `{"documents": [{"publicationYear": "2009"}]}`, "documents[0].publicationYear"},
		{"year beyond int64", `{"documents": [{"publicationYear": 9223372036854775808}]}`, "documents[0].publicationYear"},
		{"unknown document type", `{"documents": [{"documentType": "MAGAZINE"}]}`, "documents[0].documentType"},
		{"lowercase status", `{"documents": [{"readingStatus": "finished"}]}`, "documents[0].readingStatus"},
		{"null author", `{"documents": [{"authors": [null]}]}`, "documents[0].authors[0]"},
		{"numeric tag", `{"documents": [{"tags": ["a", 1]}]}`, "documents[0].tags[1]"},
		{"bad uri", `{"documents": [{"sourceLocation": "http://[::1"}]}`, "documents[0].sourceLocation"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo, _ := setupRepo(t, tc.content)
			_, err := repo.Load(context.Background())
			require.ErrorIs(t, err, core.ErrSchema)

			var serr *core.SchemaError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, tc.path, serr.Path)
		})
	}
}

func TestLoad_TrailingData(t *testing.T) {
	repo, _ := setupRepo(t, `{"documents": []} {"documents": []}`)
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, core.ErrParse)
}

func TestLoad_AbsentEqualsNull(t *testing.T) {
	const doc = `{"authors": [{"lastName": " Solo "}], "title": "T", "pageCount": 3,
		"documentType": "BOOK", "readingStatus": "FINISHED", "tags": [null, " tag1 ", "", "tag2", "  "]}`
	repo, path := setupRepo(t, `{"documents": [`+doc+`]}`)
	ctx := context.Background()

	idx, err := repo.Load(ctx)
	require.NoError(t, err)
	d := idx.Documents()[0]
	assert.Equal(t, []string{"tag1", "tag2"}, d.Tags())
	last, _ := d.Authors()[0].LastName()
	assert.Equal(t, "Solo", last)

	require.NoError(t, repo.Save(ctx, idx))
	written, err := os.ReadFile(path)
	require.NoError(t, err)

	want := map[string]any{"documents": []any{map[string]any{
		"authors":          []any{map[string]any{"firstName": nil, "lastName": "Solo"}},
		"title":            "T",
		"publicationYear":  nil,
		"publicationVenue": nil,
		"pageCount":        float64(3),
		"documentType":     "BOOK",
		"sourceLocation":   nil,
		"notesLocation":    nil,
		"readingStatus":    "FINISHED",
		"tags":             []any{"tag1", "tag2"},
	}}}
	if diff := cmp.Diff(want, jsonTree(t, written)); diff != "" {
		t.Errorf("written index mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_NullCollections(t *testing.T) {
	repo, _ := setupRepo(t, `{"documents": null}`)
	idx, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())

	repo, _ = setupRepo(t, `{}`)
	idx, err = repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
}

func TestLoad_ExtremeYears(t *testing.T) {
	const tmpl = `{"documents": [{"authors": [{"lastName": "X"}], "title": "T", "pageCount": 1,
		"documentType": "OTHER", "readingStatus": "ON_HOLD", "publicationYear": %s}]}`
	for _, year := range []string{"9999999999", "-9999999999"} {
		repo, path := setupRepo(t, fmt.Sprintf(tmpl, year))
		ctx := context.Background()

		idx, err := repo.Load(ctx)
		require.NoError(t, err, year)
		require.NoError(t, repo.Save(ctx, idx))

		written, _ := os.ReadFile(path)
		assert.Contains(t, string(written), `"publicationYear": `+year)
	}
}

func TestSave_CanonicalOutput(t *testing.T) {
	ctx := context.Background()

	t.Run("Index With Contents", func(t *testing.T) {
		src := fs.NewRepository(fs.Config{Path: filepath.Join("testdata", "correctFile.json")})
		idx, err := src.Load(ctx)
		require.NoError(t, err)

		repo, path := setupRepo(t, "")
		require.NoError(t, repo.Save(ctx, idx))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, fixture(t, "correctFile.json"), string(got))
	})

	t.Run("Empty Index", func(t *testing.T) {
		repo, path := setupRepo(t, "")
		require.NoError(t, repo.Save(ctx, core.NewIndex()))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, fixture(t, "emptyIndex.json"), string(got))
	})

	t.Run("Idempotent", func(t *testing.T) {
		repo, path := setupRepo(t, fixture(t, "correctFile.json"))
		for i := 0; i < 2; i++ {
			idx, err := repo.Load(ctx)
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, idx))
		}
		got, _ := os.ReadFile(path)
		assert.Equal(t, fixture(t, "correctFile.json"), string(got))
	})
}

func TestSave_RoundTrip(t *testing.T) {
	ctx := context.Background()
	babbage := "Babbage"
	doc := core.NewDocument()
	doc.SetAuthors([]core.Author{core.NewAuthorName("Ada", "Lovelace"), core.NewAuthor(nil, &babbage)})
	doc.SetTitle("Notes on the Analytical Engine")
	doc.SetPublicationYear(-43)
	doc.SetPageCount(66)
	doc.SetDocumentType(core.DocumentTypePaper)
	doc.SetNotesLocation("file:///home/ada/notes.md")
	doc.MergeReadingStatus(core.ReadingStatusInProgress)
	doc.SetTags([]string{"history", "computing"})
	want := core.NewIndex(doc)

	repo, _ := setupRepo(t, "")
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestEncode_SkipsNilDocuments(t *testing.T) {
	data, err := fs.Encode(core.NewIndex(nil))
	require.NoError(t, err)
	assert.Equal(t, fixture(t, "emptyIndex.json"), string(data))
}

func TestSave_DoesNotValidate(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepo(t, "")

	require.NoError(t, repo.Save(ctx, core.NewIndex(core.NewDocument())))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestSave_Errors(t *testing.T) {
	repo := fs.NewRepository(fs.Config{Path: filepath.Join(t.TempDir(), "missing", "index.json")})
	err := repo.Save(context.Background(), core.NewIndex())
	assert.ErrorIs(t, err, core.ErrIO)
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepo(t, "")

	ok, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Save(ctx, core.NewIndex()))
	ok, err = repo.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = fs.NewRepository(fs.Config{Path: t.TempDir()}).Exists(ctx)
	assert.ErrorIs(t, err, core.ErrIO)
}

func TestWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, path := setupRepo(t, fixture(t, "emptyIndex.json"))
	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.json"), []byte("{}"), 0644))
	require.NoError(t, repo.Save(ctx, core.NewIndex()))

	select {
	case e := <-events:
		assert.Equal(t, path, e.Location)
		assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond, "events channel closes after cancel")
}

func TestState(t *testing.T) {
	repo, path := setupRepo(t, fixture(t, "correctFile.json"))
	_, err := repo.Load(context.Background())
	require.NoError(t, err)

	state, ok := repo.State().(fs.RepositoryState)
	require.True(t, ok)
	assert.Equal(t, path, state.Path)
	assert.True(t, state.Exists)
	assert.Positive(t, state.Size)
	assert.Equal(t, 6, state.LastDocuments)
	assert.NotNil(t, state.LastLoad)
	assert.Empty(t, state.LastError)
	assert.Equal(t, "repository", repo.ComponentType())
}
