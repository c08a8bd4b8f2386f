package fs

import (
	"os"
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string     `json:"path"`
	Exists        bool       `json:"exists"`
	Size          int64      `json:"size"`
	ModTime       *time.Time `json:"mod_time,omitempty"`
	FileMode      string     `json:"file_mode"`
	WatcherActive bool       `json:"watcher_active"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
	LastDocuments int        `json:"last_documents"`
	LastError     string     `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state := RepositoryState{
		Path:          r.Path,
		FileMode:      r.config.FileMode.String(),
		WatcherActive: r.watcherActive,
		LastLoad:      r.lastLoad,
		LastDocuments: r.lastDocuments,
	}
	if r.lastErr != nil {
		state.LastError = r.lastErr.Error()
	}
	if info, err := os.Stat(r.Path); err == nil && !info.IsDir() {
		mod := info.ModTime()
		state.Exists = true
		state.Size = info.Size()
		state.ModTime = &mod
	}
	return state
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
