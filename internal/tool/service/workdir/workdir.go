// Package workdir holds the single mutable working directory all relative
// file operations resolve against.
package workdir

import (
	"sync"

	"github.com/Cyclone1070/toolshed/internal/tool/service/path"
)

// State is the process-wide working directory cell. It is the one piece of
// shared mutable state in the tool layer: Set replaces the value atomically
// and Get returns a consistent snapshot, but a Set racing an in-flight
// operation on another call can still change which root that operation's
// already-resolved path landed under. Callers therefore capture the root
// exactly once per operation; the cross-call race is accepted for the
// intended single-user usage rather than serializing every call.
type State struct {
	mu  sync.RWMutex
	dir string
}

// New creates a State rooted at the given directory. The root is
// canonicalised (absolute, symlinks resolved) and must exist as a directory.
func New(root string) (*State, error) {
	canonical, err := path.CanonicaliseRoot(root)
	if err != nil {
		return nil, err
	}
	return &State{dir: canonical}, nil
}

// Get returns the current working directory. Never fails.
func (s *State) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// Set validates the candidate and atomically replaces the working directory,
// returning the canonical path stored. The candidate is resolved against the
// process, not the previous working directory, and is deliberately exempt
// from the containment check: this is how the sandbox root itself is moved.
// Fails with errutil.ErrNotFound if the path does not exist and
// errutil.ErrNotADirectory if it exists but is not a directory; on failure
// the previous value is untouched.
func (s *State) Set(dir string) (string, error) {
	canonical, err := path.CanonicaliseRoot(dir)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.dir = canonical
	s.mu.Unlock()
	return canonical, nil
}
