package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/docindex"
	"github.com/aretw0/docindex/internal/platform"
	"github.com/aretw0/docindex/pkg/core"
)

var (
	verbose    bool
	configPath string
	indexPath  string
	outputFlag string

	// cfg and logger are set up by the root command before any subcommand runs.
	cfg    platform.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docindex",
	Short: "A catalog of the documents you read, kept in one JSON file",
	Long: `docindex keeps track of books, papers, slides and other documents:
who wrote them, where they were published, where the file and your notes
live, and how far you got reading them.

The index is a single JSON file. It is checked strictly on every load and
always written back in the same canonical layout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := platform.LoadConfig(platform.LoadConfigInput{
			ConfigPath:     configPath,
			IndexOverride:  indexPath,
			OutputOverride: outputFlag,
			Env:            environ(),
		})
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}
		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)

		logger.Debug("configuration loaded",
			"index", cfg.IndexAbs,
			"global", cfg.Sources.Global,
			"project", cfg.Sources.Project,
		)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errSilent) {
			printError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: nearest "+platform.ConfigFileName+")")
	rootCmd.PersistentFlags().StringVarP(&indexPath, "index", "i", "", "Index file (default: index.json)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "",
		"Output format: "+strings.Join(platform.OutputFormats, ", "))
}

// openService wires a service for the configured index.
func openService(mustExist bool) (*core.Service, error) {
	return docindex.New(cfg.IndexAbs,
		docindex.WithLogger(logger),
		docindex.WithMustExist(mustExist),
	)
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
