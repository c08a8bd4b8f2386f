package docindex

import (
	"log/slog"
	"os"

	"github.com/aretw0/docindex/internal/platform"
	"github.com/aretw0/docindex/pkg/core"
)

// Version of the library and CLI. Release builds set it with
// -ldflags "-X github.com/aretw0/docindex.Version=v1.2.3".
var Version = "dev"

// --- Configuration ---

// Option defines a functional option for configuring docindex.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithFileMode sets the permissions of written index files.
func WithFileMode(mode os.FileMode) Option {
	return platform.WithFileMode(mode)
}

// WithMustExist makes New fail when the index file is missing.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// --- Factory ---

// New creates a service for the index file at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init resolves the repository for the index file at path.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}
