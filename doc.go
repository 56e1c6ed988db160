// Copyright (c) 2026 Confkit Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package confkit builds immutable effective configuration snapshots
// by overlaying ordered sources.
//
// A [Source] serializes itself into a key value [Store]. [Read]
// applies sources in order, with subsequent sources overriding
// previous sources, so defaults come first and overrides last:
//
//	m, err := confkit.Read(
//	    confkit.Map{"foo": 42, "enable_x": false},
//	    confkit.Map{"enable_x": true},
//	)
//
// The resulting [Manager] is read only. Values are consumed either
// by decoding the whole snapshot into a struct:
//
//	var cfg struct {
//	    Foo     int  `config:"foo"`
//	    EnableX bool `config:"enable_x"`
//	}
//	err = m.Unmarshal(&cfg)
//
// or by looking up single keys, where a missing key is always
// reported as [KeyNotFoundError]:
//
//	foo, err := m.GetInt("foo")
//
// Besides literal maps, sources exist for the process environment
// ([FromEnv], [FromTypedEnv]), tagged structs ([FromStruct]) and
// JSON, YAML and TOML readers ([FromJson], [FromYaml], [FromToml]).
// [Overlay] is a convenience for the common two layer case of
// defaults plus one override map.
package confkit
