package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/docindex/pkg/core"
)

var (
	addAuthors []string
	addTitle   string
	addYear    string
	addVenue   string
	addPages   int
	addType    string
	addStatus  string
	addSource  string
	addNotes   string
	addTags    []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a document to the index",
	Long: `Add a document to the index. The document must be complete: at least
one author, a title, a page count, a type and a reading status.

Authors are given as "First Last", "Last, First" or just "Last".
Years accept "2009", "-1" or "44 BC".`,
	Example: `  docindex add --author "Peter Selie" --author "Doe, John" \
    --title "Some title" --year 2009 --pages 50 --type book --status finished \
    --tag tag1 --tag "third tag"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := buildDocument()
		if err != nil {
			return err
		}

		service, err := openService(true)
		if err != nil {
			return err
		}
		pos, err := service.AddDocument(cmd.Context(), doc)
		if err != nil {
			return err
		}

		title, _ := doc.Title()
		fmt.Fprintf(cmd.OutOrStdout(), "Added #%d: %s\n", pos, title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringArrayVarP(&addAuthors, "author", "a", nil, "Author name (repeatable)")
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Title")
	addCmd.Flags().StringVar(&addYear, "year", "", "Publication year")
	addCmd.Flags().StringVar(&addVenue, "venue", "", "Publication venue")
	addCmd.Flags().IntVar(&addPages, "pages", 0, "Page count")
	addCmd.Flags().StringVar(&addType, "type", "", "Document type: book, paper, presentation, course_text, poster, other")
	addCmd.Flags().StringVar(&addStatus, "status", "", "Reading status: not_started, in_progress, finished, on_hold")
	addCmd.Flags().StringVar(&addSource, "source", "", "Location of the document (URI or path)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Location of your notes (URI or path)")
	addCmd.Flags().StringArrayVar(&addTags, "tag", nil, "Tag (repeatable)")
}

func buildDocument() (*core.Document, error) {
	doc := core.NewDocument()

	authors := make([]core.Author, 0, len(addAuthors))
	for _, name := range addAuthors {
		authors = append(authors, parseAuthor(name))
	}
	doc.SetAuthors(authors)
	doc.SetTitle(addTitle)
	doc.SetPageCount(addPages)
	doc.AddTags(addTags...)

	if addYear != "" {
		y, err := core.ParseYear(addYear)
		if err != nil {
			return nil, err
		}
		doc.SetPublicationYear(y)
	}
	if addVenue != "" {
		doc.SetPublicationVenue(addVenue)
	}
	if addType != "" {
		t, err := core.ParseDocumentType(addType)
		if err != nil {
			return nil, err
		}
		doc.SetDocumentType(t)
	}
	if addStatus != "" {
		s, err := core.ParseReadingStatus(addStatus)
		if err != nil {
			return nil, err
		}
		doc.MergeReadingStatus(s)
	}
	if addSource != "" {
		l, err := core.ParseLocation(addSource)
		if err != nil {
			return nil, fmt.Errorf("--source: %w", err)
		}
		doc.SetSourceLocation(l)
	}
	if addNotes != "" {
		l, err := core.ParseLocation(addNotes)
		if err != nil {
			return nil, fmt.Errorf("--notes: %w", err)
		}
		doc.SetNotesLocation(l)
	}
	return doc, nil
}

// parseAuthor reads "Last, First", "First Last" or a single last name.
// For "First Last" everything before the final word is the first name.
func parseAuthor(name string) core.Author {
	name = strings.TrimSpace(name)
	if last, first, ok := strings.Cut(name, ","); ok {
		return core.NewAuthorName(first, last)
	}
	i := strings.LastIndexAny(name, " \t")
	if i < 0 {
		return core.NewAuthor(nil, &name)
	}
	return core.NewAuthorName(name[:i], name[i+1:])
}
