// Copyright (c) 2026 Confkit Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package registry provides an explicit symbolic key to value registry.
//
// It replaces "declare a name in config, resolve it by reflection"
// style pluggability: components are registered at startup with
// explicit calls and later looked up by the name found in config.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// AlreadyRegisteredError occurs when registering a name twice.
type AlreadyRegisteredError struct {
	Name string
}

// Error implements the error interface.
func (e AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("name has already been registered: %s", e.Name)
}

// NotRegisteredError occurs when looking up a name which has
// never been registered.
type NotRegisteredError struct {
	Name string
}

// Error implements the error interface.
func (e NotRegisteredError) Error() string {
	return fmt.Sprintf("name has not been registered: %s", e.Name)
}

// Registry maps symbolic names to values of type T, most commonly
// factory funcs. The zero value is not usable; use [New].
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

// New returns an initialized Registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]T),
	}
}

// Register binds v to the given name. Names can only be bound once.
func (r *Registry[T]) Register(name string, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[name]
	if ok {
		return AlreadyRegisteredError{Name: name}
	}
	r.entries[name] = v
	return nil
}

// Lookup returns the value bound to the given name.
func (r *Registry[T]) Lookup(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, NotRegisteredError{Name: name}
	}
	return v, nil
}

// Names returns all registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
