package platform

import (
	"github.com/aretw0/docindex/pkg/core"
)

// New wires a service for the index file at path.
//
//	svc, err := docindex.New("./index.json", docindex.WithMustExist(true))
func New(path string, opts ...Option) (*core.Service, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo, o.logger), nil
}
