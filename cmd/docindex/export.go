package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/aretw0/docindex/pkg/adapters/fs"
)

var (
	exportFormat string
	exportFile   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the whole index in another format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, ok := fs.DefaultExporters()[exportFormat]
		if !ok {
			return fmt.Errorf("unknown export format %q (want one of %s)",
				exportFormat, strings.Join(fs.ExportFormats(), ", "))
		}

		service, err := openService(true)
		if err != nil {
			return err
		}
		idx, err := service.Load(cmd.Context())
		if err != nil {
			return err
		}
		data, err := exporter.Export(idx)
		if err != nil {
			return err
		}

		if exportFile == "" || exportFile == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := atomic.WriteFile(exportFile, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportFile, err)
		}
		logger.Info("index exported", "format", exportFormat, "file", exportFile, "documents", idx.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "yaml", "Export format: "+strings.Join(fs.ExportFormats(), ", "))
	exportCmd.Flags().StringVar(&exportFile, "to", "", "Destination file (default: stdout)")
}
