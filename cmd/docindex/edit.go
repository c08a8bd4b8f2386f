package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/docindex/pkg/core"
	"github.com/aretw0/docindex/pkg/view"
)

var statusCmd = &cobra.Command{
	Use:   "status <n> <status>",
	Short: "Set the reading status of document n",
	Long: `Set the reading status of the document at position n (as shown by list).
Accepted values: not_started, in_progress, finished, on_hold.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(args[0])
		if err != nil {
			return err
		}
		status, err := core.ParseReadingStatus(args[1])
		if err != nil {
			return err
		}

		service, err := openService(true)
		if err != nil {
			return err
		}
		if err := service.MergeStatus(cmd.Context(), pos, status); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "#%d is now %s\n", pos, view.ReadingStatusLabel(status))
		return nil
	},
}

var tagCmd = &cobra.Command{
	Use:   "tag <n> <tag>...",
	Short: "Add tags to document n",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(args[0])
		if err != nil {
			return err
		}

		service, err := openService(true)
		if err != nil {
			return err
		}
		if err := service.AddTags(cmd.Context(), pos, args[1:]...); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Tagged #%d\n", pos)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <n>",
	Aliases: []string{"rm"},
	Short:   "Remove document n from the index",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := parsePosition(args[0])
		if err != nil {
			return err
		}

		service, err := openService(true)
		if err != nil {
			return err
		}
		doc, err := service.RemoveDocument(cmd.Context(), pos)
		if err != nil {
			return err
		}

		title, _ := doc.Title()
		fmt.Fprintf(cmd.OutOrStdout(), "Removed #%d: %s\n", pos, title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(removeCmd)
}

func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("document position must be a non-negative integer, got %q", arg)
	}
	return n, nil
}
