// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"slices"
	"sync"
)

// Factory creates a surface from options.
type Factory func(opts Options) (Surface, error)

// Backend is a registered surface implementation.
type Backend struct {
	// Name is the unique identifier, e.g. "image" or "recording".
	Name string

	// Priority orders automatic selection; higher is preferred.
	Priority int

	Factory Factory
}

// Registry maps backend names to factories.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

var globalRegistry = &Registry{}

// Errors.
var (
	// ErrNoBackend is returned when no backend is registered.
	ErrNoBackend = errors.New("surface: no backend registered")

	// ErrInvalidSize is returned for non-positive surface sizes.
	ErrInvalidSize = errors.New("surface: invalid size")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// Register adds or replaces a backend in the global registry.
func Register(name string, priority int, factory Factory) {
	globalRegistry.Register(name, priority, factory)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Backends returns the globally registered backend names, highest priority
// first.
func Backends() []string {
	return globalRegistry.Names()
}

// NewSurface creates a surface with the highest priority backend.
func NewSurface(width, height int) (Surface, error) {
	return globalRegistry.New(Options{Width: width, Height: height})
}

// NewSurfaceByName creates a surface with the named backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return globalRegistry.NewByName(name, Options{Width: width, Height: height})
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds or replaces a backend.
func (r *Registry) Register(name string, priority int, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backends == nil {
		r.backends = make(map[string]Backend)
	}
	r.backends[name] = Backend{Name: name, Priority: priority, Factory: factory}
}

// Unregister removes a backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Names returns backend names by descending priority, then name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	slices.SortFunc(list, func(a, b Backend) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})

	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	return names
}

// New creates a surface with the highest priority backend.
func (r *Registry) New(opts Options) (Surface, error) {
	names := r.Names()
	if len(names) == 0 {
		return nil, ErrNoBackend
	}
	return r.NewByName(names[0], opts)
}

// NewByName creates a surface with the named backend and clears it to
// opts.Background when set.
func (r *Registry) NewByName(name string, opts Options) (Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidSize
	}
	r.mu.RLock()
	b, ok := r.backends[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	s, err := b.Factory(opts)
	if err != nil {
		return nil, err
	}
	if opts.Background != nil {
		s.Clear(opts.Background)
	}
	return s, nil
}

func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	})
}
