// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

type format struct {
	factory    BackendFactory
	extensions []string
}

var (
	registryMu sync.RWMutex
	formats    = make(map[string]format)
)

// Register makes a backend available by name, in the manner of
// database/sql drivers, and associates it with output file extensions such
// as ".png". It panics if factory is nil, the name is taken, or an
// extension is already claimed.
func Register(name string, factory BackendFactory, extensions ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := formats[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	exts := make([]string, len(extensions))
	for i, ext := range extensions {
		ext = strings.ToLower(ext)
		if owner, ok := lookupExtension(ext); ok {
			panic(fmt.Sprintf("recording: extension %s of %s already registered by %s", ext, name, owner))
		}
		exts[i] = ext
	}
	formats[name] = format{factory: factory, extensions: exts}
}

// Unregister removes a backend. It is mainly useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(formats, name)
}

// NewBackend creates a backend by name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	f, ok := formats[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("recording: unknown backend %q (forgotten import?)", name)
	}
	return f.factory(), nil
}

// BackendFor picks the backend registered for the extension of path and
// returns it with its name.
func BackendFor(path string) (Backend, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	registryMu.RLock()
	name, ok := lookupExtension(ext)
	registryMu.RUnlock()
	if !ok {
		return nil, "", fmt.Errorf("recording: no backend for %q files (forgotten import?)", ext)
	}
	b, err := NewBackend(name)
	return b, name, err
}

// lookupExtension must be called with registryMu held.
func lookupExtension(ext string) (string, bool) {
	for name, f := range formats {
		if slices.Contains(f.extensions, ext) {
			return name, true
		}
	}
	return "", false
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether a backend exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := formats[name]
	return ok
}
