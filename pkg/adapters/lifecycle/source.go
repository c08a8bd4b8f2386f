package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/docindex/pkg/core"
)

// Loader reloads the index after a change.
type Loader interface {
	Load(ctx context.Context) (*core.Index, error)
}

// Change is emitted once per index event together with the result of
// reloading the index. Deletions are not reloaded: Index and Err are nil.
type Change struct {
	core.Event
	Index *core.Index
	Err   error
}

// Removed reports whether the index file went away.
func (c Change) Removed() bool {
	return c.Type == core.EventDelete
}

func (c Change) String() string {
	switch {
	case c.Removed():
		return c.Event.String()
	case c.Err != nil:
		return c.Event.String() + " (invalid)"
	}
	return c.Event.String() + " (ok)"
}

type indexSource struct {
	events <-chan core.Event
	loader Loader
	out    chan lifecycle.Event
}

// NewSource turns repository events into a lifecycle.Source of Change
// values, reloading the index through loader for each one.
func NewSource(events <-chan core.Event, loader Loader) lifecycle.Source {
	return &indexSource{
		events: events,
		loader: loader,
		out:    make(chan lifecycle.Event),
	}
}

func (s *indexSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start reloads and forwards until ctx is done or the input closes, then
// closes the output channel.
func (s *indexSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				change := Change{Event: e}
				if !change.Removed() {
					change.Index, change.Err = s.loader.Load(ctx)
				}
				select {
				case s.out <- change:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
