package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/docindex/pkg/adapters/fs"
	"github.com/aretw0/docindex/pkg/core"
	"github.com/aretw0/docindex/pkg/view"
)

var (
	listTags   []string
	listStatus string
	listType   string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"open"},
	Short:   "Show the documents in the index",
	Long: `Load the index and show its documents as a table, or in the format
chosen with --output. --tag takes glob patterns (e.g. 'ml/**') and a
document matches when any of its tags matches any pattern.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildFilter(listTags, listStatus, listType)
		if err != nil {
			return err
		}

		service, err := openService(true)
		if err != nil {
			return err
		}
		sel, err := service.Find(cmd.Context(), filter)
		if err != nil {
			return err
		}

		return writeSelection(cmd.OutOrStdout(), cfg.Output, sel)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringArrayVar(&listTags, "tag", nil, "Only documents with a tag matching this glob (repeatable)")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Only documents with this reading status")
	listCmd.Flags().StringVar(&listType, "type", "", "Only documents of this type")
}

func buildFilter(tags []string, status, docType string) (core.Filter, error) {
	f := core.Filter{Tags: tags}
	if status != "" {
		s, err := core.ParseReadingStatus(status)
		if err != nil {
			return f, err
		}
		f.Status = s
	}
	if docType != "" {
		t, err := core.ParseDocumentType(docType)
		if err != nil {
			return f, err
		}
		f.Type = t
	}
	return f, f.Validate()
}

// writeSelection renders sel in format. The table shows index positions so
// they can be passed to status, tag and remove.
func writeSelection(w io.Writer, format string, sel core.Selection) error {
	if format == "table" {
		model := view.NewTableModel(view.Views(sel.Documents))
		_, err := fmt.Fprintln(w, view.Render(model, view.DefaultStyles(), sel.Positions...))
		return err
	}

	exporter, ok := fs.DefaultExporters()[format]
	if !ok {
		return fmt.Errorf("unknown output format %q", format)
	}
	data, err := exporter.Export(core.NewIndex(sel.Documents...))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
