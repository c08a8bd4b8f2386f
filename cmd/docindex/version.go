package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/docindex"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of docindex",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docindex version %s\n", strings.TrimSpace(docindex.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
