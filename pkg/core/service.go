package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Service handles the business logic for a document index. Every mutation
// loads the whole index, applies one change, validates the result and saves
// the whole index back.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new Service. A nil logger discards output.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger}
}

// Repository returns the underlying storage adapter.
func (s *Service) Repository() Repository {
	return s.repo
}

// Load reads and validates the index.
func (s *Service) Load(ctx context.Context) (*Index, error) {
	return s.repo.Load(ctx)
}

// Create stores an empty index. An existing index is only replaced when
// force is set.
func (s *Service) Create(ctx context.Context, force bool) error {
	exists, err := s.repo.Exists(ctx)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%w: %s", ErrIndexExists, s.repo.Location())
	}
	s.logger.Debug("creating empty index", "location", s.repo.Location(), "overwrite", exists)
	return s.repo.Save(ctx, NewIndex())
}

// Save writes idx as is. Callers that need a valid file validate first.
func (s *Service) Save(ctx context.Context, idx *Index) error {
	return s.repo.Save(ctx, idx)
}

// AddDocument appends doc and returns its position. An invalid document is
// rejected with the messages it would produce at that position.
func (s *Service) AddDocument(ctx context.Context, doc *Document) (int, error) {
	if doc == nil {
		return 0, ErrNilDocument
	}
	var pos int
	err := s.update(ctx, func(idx *Index) error {
		pos = idx.Add(doc)
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Debug("document added", "position", pos)
	return pos, nil
}

// MergeStatus applies Document.MergeReadingStatus to the document at
// position i.
func (s *Service) MergeStatus(ctx context.Context, i int, status ReadingStatus) error {
	return s.update(ctx, func(idx *Index) error {
		doc, err := idx.Document(i)
		if err != nil {
			return err
		}
		doc.MergeReadingStatus(status)
		return nil
	})
}

// AddTags appends tags to the document at position i.
func (s *Service) AddTags(ctx context.Context, i int, tags ...string) error {
	return s.update(ctx, func(idx *Index) error {
		doc, err := idx.Document(i)
		if err != nil {
			return err
		}
		doc.AddTags(tags...)
		return nil
	})
}

// RemoveDocument deletes the document at position i and returns it.
func (s *Service) RemoveDocument(ctx context.Context, i int) (*Document, error) {
	var removed *Document
	err := s.update(ctx, func(idx *Index) error {
		doc, err := idx.Remove(i)
		removed = doc
		return err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// Find loads the index and returns the documents that pass f.
func (s *Service) Find(ctx context.Context, f Filter) (Selection, error) {
	idx, err := s.repo.Load(ctx)
	if err != nil {
		return Selection{}, err
	}
	return f.Apply(idx)
}

// Watch observes changes to the stored index if the repository supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}

func (s *Service) update(ctx context.Context, fn func(idx *Index) error) error {
	idx, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(idx); err != nil {
		return err
	}
	if msgs := idx.Validate(); len(msgs) > 0 {
		return NewValidationError(msgs)
	}
	return s.repo.Save(ctx, idx)
}
