package check

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds all registered checkers.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Checker
	byName map[string]Checker
}

// NewRegistry creates an empty checker registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Checker),
		byName: make(map[string]Checker),
	}
}

// Register adds a checker to the registry.
// If a checker with the same ID already exists, it is replaced.
func (r *Registry) Register(c Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[c.ID()] = c
	r.byName[c.Name()] = c
}

// Get retrieves a checker by ID or name. It tries ID first, then name.
func (r *Registry) Get(key string) (Checker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.byID[key]; ok {
		return c, true
	}
	if c, ok := r.byName[key]; ok {
		return c, true
	}
	return nil, false
}

// Checkers returns all registered checkers sorted by ID. The engine runs
// checkers in this order, which keeps phase order fixed across runs.
func (r *Registry) Checkers() []Checker {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Checker, 0, len(r.byID))
	for _, c := range r.byID {
		result = append(result, c)
	}

	slices.SortFunc(result, func(a, b Checker) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// IDs returns all registered checker IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in checkers.
// Checkers register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for checker registration
var DefaultRegistry = NewRegistry()
