// Copyright (c) 2026 Confkit Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confkit

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
type Env struct {
	environ func() []string
}

// FromEnv returns a Source which will apply its config
// from the environment variables available to the
// current process.
func FromEnv() Env {
	return Env{
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	m := make(Map)
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m.Apply(store)
}

// TypedEnv represents a Source where environment variables are
// parsed into a struct tagged with "env" tags before being applied
// via the struct's "config" tags.
type TypedEnv struct {
	v any
}

// FromTypedEnv returns a Source which parses environment variables
// into v. v must be a pointer to a struct whose fields carry both
// "env" tags (for parsing) and "config" tags (for applying).
func FromTypedEnv(v any) TypedEnv {
	return TypedEnv{v: v}
}

// InvalidEnvError occurs if the environment can not be parsed into
// the target struct.
type InvalidEnvError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidEnvError) Error() string {
	return fmt.Sprintf("invalid env: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidEnvError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface.
func (src TypedEnv) Apply(store Store) error {
	err := env.Parse(src.v)
	if err != nil {
		return InvalidEnvError{cause: err}
	}
	return FromStruct(src.v).Apply(store)
}
