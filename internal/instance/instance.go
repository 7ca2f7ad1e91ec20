// Package instance manages the registry of agent sessions running in
// terminal panes. The registry is a JSON array shared by every maestro
// process; each operation is a whole-file load-mutate-save cycle.
package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/fikriauliya/maestro-ai/internal/filelock"
	"github.com/fikriauliya/maestro-ai/internal/storage"
)

// DefaultPath is the registry location shared by all sessions.
const DefaultPath = "/tmp/maestro-ai/instances.json"

// Instance is one registered session.
type Instance struct {
	PaneID uint32 `json:"pane_id"`
	Folder string `json:"folder"`
	Status Status `json:"status"`
}

// Store reads and writes the registry file.
//
// Without WithLock, concurrent cycles are not coordinated and the last
// writer wins.
type Store struct {
	path string
	lock bool
}

// Option configures a Store.
type Option func(*Store)

// WithLock serializes each load-mutate-save cycle with an flock on
// "<path>.lock".
func WithLock(enabled bool) Option {
	return func(s *Store) {
		s.lock = enabled
	}
}

// NewStore returns a store for the registry at path. An empty path uses
// DefaultPath.
func NewStore(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the registry file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the registered instances in file order. A missing or
// unparsable file reads as empty.
func (s *Store) Load() []Instance {
	var instances []Instance
	if err := storage.LoadJSON(s.path, &instances); err != nil {
		return []Instance{}
	}
	if instances == nil {
		return []Instance{}
	}
	return instances
}

// Save overwrites the registry with instances.
func (s *Store) Save(instances []Instance) error {
	if instances == nil {
		instances = []Instance{}
	}
	if err := storage.SaveJSON(s.path, instances); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	return nil
}

// Register records a running instance for paneID, replacing any previous
// record for the same pane.
func (s *Store) Register(paneID uint32, folder string) error {
	return s.mutate(func(instances []Instance) []Instance {
		instances = removePane(instances, paneID)
		return append(instances, Instance{PaneID: paneID, Folder: folder, Status: Running})
	})
}

// UpdateStatus sets the status of the first record for paneID. Unknown
// panes are ignored.
func (s *Store) UpdateStatus(paneID uint32, status Status) error {
	return s.mutate(func(instances []Instance) []Instance {
		if i := slices.IndexFunc(instances, func(in Instance) bool { return in.PaneID == paneID }); i >= 0 {
			instances[i].Status = status
		}
		return instances
	})
}

// Unregister removes every record for paneID.
func (s *Store) Unregister(paneID uint32) error {
	return s.mutate(func(instances []Instance) []Instance {
		return removePane(instances, paneID)
	})
}

func (s *Store) mutate(fn func([]Instance) []Instance) error {
	cycle := func() error {
		return s.Save(fn(s.Load()))
	}
	if !s.lock {
		return cycle()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}
	return filelock.With(s.path+".lock", cycle)
}

func removePane(instances []Instance, paneID uint32) []Instance {
	return slices.DeleteFunc(instances, func(in Instance) bool { return in.PaneID == paneID })
}
