// Copyright (c) 2026 Confkit Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confkit

// Overlay merges overrides on top of defaults and returns the
// effective configuration as a new Map. For every key present in
// overrides the override value wins, whether or not the key exists
// in defaults; keys only present in defaults keep their default
// value. Nested maps are merged key wise rather than replaced
// wholesale. Neither input is mutated and the result shares no
// nested maps with either input.
//
// overrides may be nil.
func Overlay(defaults, overrides Map) (Map, error) {
	store := make(inMemoryStore)
	for _, src := range []Map{defaults, overrides} {
		if src == nil {
			continue
		}
		err := src.Apply(store)
		if err != nil {
			return nil, err
		}
	}
	return Map(store), nil
}

// Snapshot returns a deep copy of the effective configuration.
// Mutating the returned Map has no effect on the Manager.
func (m *Manager) Snapshot() (Map, error) {
	out := make(inMemoryStore)
	err := walkMap(m.store, out, nil)
	if err != nil {
		return nil, err
	}
	return Map(out), nil
}
