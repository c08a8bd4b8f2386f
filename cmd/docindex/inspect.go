package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/aretw0/docindex/pkg/adapters/fs"
	"github.com/aretw0/docindex/pkg/core"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the internal state of the service and repository as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := openService(false)
		if err != nil {
			return err
		}

		// A load fills in the repository's last-load fields. Its error is
		// reported there, not here.
		idx, loadErr := service.Load(cmd.Context())

		report := map[string]any{
			"service": service.State(),
			"config": map[string]any{
				"index":   cfg.IndexAbs,
				"output":  cfg.Output,
				"global":  cfg.Sources.Global,
				"project": cfg.Sources.Project,
			},
		}
		if repo, ok := service.Repository().(*fs.Repository); ok {
			report["repository"] = repo.State()
		}
		if loadErr == nil {
			report["valid"] = true
			report["documents"] = idx.Len()
		} else {
			report["valid"] = false
			report["problems"] = problems(loadErr)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func problems(err error) []string {
	if msgs := core.ValidationMessages(err); len(msgs) > 0 {
		return msgs
	}
	return []string{err.Error()}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
