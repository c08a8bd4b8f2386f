package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var newForce bool

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [path]",
	Short: "Create an empty index",
	Long: `Create an empty index file. An existing index is left untouched
unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			cfg.IndexAbs = abs
		}

		service, err := openService(false)
		if err != nil {
			return err
		}
		if err := service.Create(cmd.Context(), newForce); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created empty index", cfg.IndexAbs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Overwrite an existing index")
}
