package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the index and report every problem",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openService(false)
		if err != nil {
			return err
		}

		idx, err := service.Load(cmd.Context())
		if err != nil {
			printError(cmd.OutOrStdout(), err)
			return errSilent
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ok (%d documents)\n", idx.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
