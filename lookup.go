// Copyright (c) 2026 Confkit Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confkit

import (
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/confkit/confkit/key"
)

// KeyNotFoundError occurs when looking up a key which is not
// present in the effective configuration.
type KeyNotFoundError struct {
	Key string
}

// Error implements the error interface.
func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("config key not found: %s", e.Key)
}

// Get looks up a single value in the effective configuration.
// Nested values are addressed with dotted keys e.g. "http.port".
// A missing key always returns [KeyNotFoundError]; this is the
// only absent indicator the snapshot defines.
func (m *Manager) Get(k string) (any, error) {
	chain := key.Parse(k)

	var cur any = map[string]any(m.store)
	for _, name := range chain {
		sub, ok := cur.(map[string]any)
		if !ok {
			return nil, KeyNotFoundError{Key: k}
		}
		cur, ok = sub[name.Key()]
		if !ok {
			return nil, KeyNotFoundError{Key: k}
		}
	}
	return cur, nil
}

// GetString looks up k and coerces the value to a string.
func (m *Manager) GetString(k string) (string, error) {
	v, err := m.Get(k)
	if err != nil {
		return "", err
	}
	return cast.ToStringE(v)
}

// GetInt looks up k and coerces the value to an int.
func (m *Manager) GetInt(k string) (int, error) {
	v, err := m.Get(k)
	if err != nil {
		return 0, err
	}
	return cast.ToIntE(v)
}

// GetBool looks up k and coerces the value to a bool.
func (m *Manager) GetBool(k string) (bool, error) {
	v, err := m.Get(k)
	if err != nil {
		return false, err
	}
	return cast.ToBoolE(v)
}

// GetDuration looks up k and coerces the value to a time.Duration.
func (m *Manager) GetDuration(k string) (time.Duration, error) {
	v, err := m.Get(k)
	if err != nil {
		return 0, err
	}
	return cast.ToDurationE(v)
}
