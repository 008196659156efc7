package classpath

import (
	"path/filepath"
	"strings"
)

// Path is an ordered classpath. Entries are absolute and appear once, in the
// order they were first added.
type Path struct {
	base    string
	entries []string
	seen    map[string]bool
}

// NewPath creates an empty classpath whose relative entries resolve against base.
// An empty base resolves relative entries against the working directory.
func NewPath(base string) *Path {
	return &Path{base: base, seen: make(map[string]bool)}
}

// Add appends entries to the classpath. Each entry may itself be a list
// joined by the OS path-list separator; empty elements are ignored.
func (p *Path) Add(entries ...string) {
	for _, entry := range entries {
		for _, elem := range filepath.SplitList(entry) {
			elem = strings.TrimSpace(elem)
			if elem == "" {
				continue
			}
			p.appendOne(p.absolute(elem))
		}
	}
}

// AddPath appends all entries of other, preserving their order.
func (p *Path) AddPath(other *Path) {
	if other == nil {
		return
	}
	for _, entry := range other.entries {
		p.appendOne(entry)
	}
}

// List returns a copy of the classpath entries.
func (p *Path) List() []string {
	return append([]string(nil), p.entries...)
}

// Len returns the number of entries.
func (p *Path) Len() int {
	return len(p.entries)
}

// String joins the entries with the OS path-list separator.
func (p *Path) String() string {
	return strings.Join(p.entries, string(filepath.ListSeparator))
}

func (p *Path) appendOne(entry string) {
	if p.seen == nil {
		p.seen = make(map[string]bool)
	}
	if p.seen[entry] {
		return
	}
	p.seen[entry] = true
	p.entries = append(p.entries, entry)
}

func (p *Path) absolute(entry string) string {
	if filepath.IsAbs(entry) {
		return filepath.Clean(entry)
	}
	if p.base != "" {
		return filepath.Join(p.base, entry)
	}
	if abs, err := filepath.Abs(entry); err == nil {
		return abs
	}
	return filepath.Clean(entry)
}
