package platform

import (
	"log/slog"
	"os"

	"github.com/aretw0/docindex/pkg/core"
)

// options holds the internal configuration for the docindex service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	fileMode   os.FileMode
	mustExist  bool
}

// Option defines a functional option for configuring docindex.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service and the storage adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithFileMode sets the permissions of index files written by the
// filesystem adapter. Defaults to 0644.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithMustExist makes opening fail when the index file is missing.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}
