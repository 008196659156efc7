package classpath

import (
	"os"
	"path/filepath"
)

// Loader is a class-loading context: an ordered set of byte-code locations
// chained to a parent context. The generator consumes it opaquely.
//
// A Loader belongs to a single generation run. Close it when the run
// completes; a closed loader reports no locations.
type Loader struct {
	parent    *Loader
	locations []string
	closed    bool
}

// NewLoader creates a loader over every entry of path, with parent consulted first.
func NewLoader(parent *Loader, path *Path) *Loader {
	l := &Loader{parent: parent}
	if path != nil {
		l.locations = path.List()
	}
	return l
}

// SystemLoader returns the loading context of the running process, which
// holds the directory containing the executable.
func SystemLoader() *Loader {
	exe, err := os.Executable()
	if err != nil {
		return &Loader{}
	}
	return &Loader{locations: []string{filepath.Dir(exe)}}
}

// Parent returns the parent loader, or nil for a root loader.
func (l *Loader) Parent() *Loader {
	return l.parent
}

// Own returns the locations held by this loader, excluding its parents.
func (l *Loader) Own() []string {
	if l.closed {
		return nil
	}
	return append([]string(nil), l.locations...)
}

// Locations returns the full search order: parent locations first, then
// this loader's own.
func (l *Loader) Locations() []string {
	if l.closed {
		return nil
	}
	var locs []string
	if l.parent != nil {
		locs = l.parent.Locations()
	}
	return append(locs, l.locations...)
}

// Closed reports whether Close has been called.
func (l *Loader) Closed() bool {
	return l.closed
}

// Close releases the loader's locations and detaches it from its parent.
// The parent itself is left open. Close is idempotent.
func (l *Loader) Close() error {
	l.closed = true
	l.locations = nil
	l.parent = nil
	return nil
}
