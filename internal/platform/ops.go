package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/docindex/pkg/adapters/fs"
	"github.com/aretw0/docindex/pkg/core"
)

// Init resolves the repository for the index at path. An injected
// repository wins over the filesystem adapter.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		if path == "" {
			return nil, fmt.Errorf("index path must not be empty")
		}
		repo = fs.NewRepository(fs.Config{
			Path:     path,
			Logger:   o.logger,
			FileMode: o.fileMode,
		})
	}

	if o.mustExist {
		exists, err := repo.Exists(context.Background())
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: index file does not exist: %s", core.ErrIO, repo.Location())
		}
	}

	return repo, nil
}
