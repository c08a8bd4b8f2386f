package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	lcadapter "github.com/aretw0/docindex/pkg/adapters/lifecycle"
	"github.com/aretw0/docindex/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the index and refresh it whenever the file changes",
	Long: `Show the index like list and reload it on every change to the file.
When a change leaves the index invalid the problems are printed and the
last good table stays on screen until the file is fixed. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		service, err := openService(true)
		if err != nil {
			return err
		}
		events, err := service.Watch(ctx)
		if err != nil {
			return err
		}
		src := lcadapter.NewSource(events, service)
		if err := src.Start(ctx); err != nil {
			return err
		}

		if idx, err := service.Load(ctx); err != nil {
			printError(out, err)
		} else {
			render(out, idx)
		}
		for e := range src.Events() {
			logger.Debug("index changed", "change", e.String())
			change, ok := e.(lcadapter.Change)
			if !ok {
				continue
			}
			switch {
			case change.Removed():
				fmt.Fprintln(out, "index file removed; waiting for it to come back")
			case change.Err != nil:
				printError(out, change.Err)
			default:
				render(out, change.Index)
			}
		}
		return nil
	},
}

func render(out io.Writer, idx *core.Index) {
	sel, err := core.Filter{}.Apply(idx)
	if err == nil {
		err = writeSelection(out, cfg.Output, sel)
	}
	if err != nil {
		printError(out, err)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
