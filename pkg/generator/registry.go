package generator

import (
	"sort"
	"strings"
	"sync"

	"github.com/matzehuels/scrgen/pkg/errors"
)

// Factory creates a Generator.
type Factory func() Generator

// Registry maps backend names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	aliases   map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
	}
}

// Default is the process-wide registry holding the built-in backends.
var Default = func() *Registry {
	r := NewRegistry()
	r.Register(DryRunName, func() Generator { return NewDryRun() })
	r.Alias("dryrun", DryRunName)
	r.Alias("noop", DryRunName)
	return r
}()

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Alias makes alias resolve to name.
func (r *Registry) Alias(alias, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = name
}

// Get creates the generator registered under name or one of its aliases.
func (r *Registry) Get(name string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	f, ok := r.factories[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownGenerator, "unknown generator %q (available: %s)", name, strings.Join(r.namesLocked(), ", "))
	}
	return f(), nil
}

// Names returns the registered backend names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
