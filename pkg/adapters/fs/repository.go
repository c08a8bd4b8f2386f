package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aretw0/docindex/pkg/core"
)

// Repository implements core.Repository on a single JSON index file.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      *time.Time
	lastDocuments int
	lastErr       error
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path     string
	Logger   *slog.Logger
	FileMode os.FileMode // Mode of written index files. Zero means DefaultFileMode.
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.FileMode == 0 {
		config.FileMode = DefaultFileMode
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Location returns the index file path.
func (r *Repository) Location() string {
	return r.Path
}

// Exists reports whether the index file is present.
func (r *Repository) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := os.Stat(r.Path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", core.ErrIO, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%w: index path is a directory: %s", core.ErrIO, r.Path)
	}
	return true, nil
}

// Load reads the index file, checks it against the index format and
// validates the result.
func (r *Repository) Load(ctx context.Context) (*core.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.read()
	if err != nil {
		r.recordLoad(nil, err)
		return nil, err
	}

	idx, err := Decode(data)
	r.recordLoad(idx, err)
	if err != nil {
		r.config.Logger.Debug("index rejected", "path", r.Path, "error", err)
		return nil, err
	}

	r.config.Logger.Debug("index loaded", "path", r.Path, "documents", idx.Len(), "bytes", len(data))
	return idx, nil
}

// Save writes idx in canonical form, replacing the file atomically.
// The index is written as is; callers validate beforehand when needed.
func (r *Repository) Save(ctx context.Context, idx *core.Index) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(idx)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrIO, err)
	}
	if err := writeFileAtomic(r.Path, data, r.config.FileMode); err != nil {
		return fmt.Errorf("%w: %w", core.ErrIO, err)
	}

	r.config.Logger.Debug("index saved", "path", r.Path, "documents", idx.Len(), "bytes", len(data))
	return nil
}

func (r *Repository) read() ([]byte, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrIO, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", core.ErrIO, r.Path, err)
	}
	return data, nil
}

func (r *Repository) recordLoad(idx *core.Index, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastLoad = &now
	r.lastErr = err
	if idx != nil {
		r.lastDocuments = idx.Len()
	}
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
