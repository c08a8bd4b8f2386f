package core

import (
	"context"
	"time"
)

// Repository defines the contract for storing and retrieving an index.
// The index is always read and written whole.
type Repository interface {
	// Load reads, schema-checks and validates the stored index. On any
	// failure it returns a nil index and an error matching one of ErrIO,
	// ErrParse, ErrSchema or ErrValidation.
	Load(ctx context.Context) (*Index, error)

	// Save writes idx, replacing what is stored. It does not validate.
	Save(ctx context.Context, idx *Index) error

	// Exists reports whether an index is currently stored.
	Exists(ctx context.Context) (bool, error)

	// Location names where the index lives (a file path for the fs adapter).
	Location() string
}

// EventType represents the type of change to a stored index.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to the stored index.
type Event struct {
	Type      EventType
	Location  string
	Timestamp time.Time
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Location
}

// Watchable is implemented by repositories that can report changes made by
// other processes.
type Watchable interface {
	// Watch emits an event for every change until ctx is done, then closes
	// the channel.
	Watch(ctx context.Context) (<-chan Event, error)
}
