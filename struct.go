// Copyright (c) 2026 Confkit Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confkit

import (
	"github.com/go-viper/mapstructure/v2"
)

// Struct represents a Source whose values come from a struct
// tagged with "config" tags.
type Struct struct {
	v any
}

// FromStruct returns a Source which will apply its config from
// the fields of the given struct. Nested structs become nested
// config values.
func FromStruct(v any) Struct {
	return Struct{v: v}
}

// Apply implements the Source interface.
func (src Struct) Apply(store Store) error {
	m := make(map[string]any)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  &m,
	})
	if err != nil {
		return err
	}
	err = dec.Decode(src.v)
	if err != nil {
		return err
	}
	return Map(m).Apply(store)
}
