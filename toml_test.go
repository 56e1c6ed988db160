// Copyright (c) 2026 Confkit Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToml_Apply(t *testing.T) {
	t.Run("will apply nested values", func(t *testing.T) {
		t.Run("if the document contains tables", func(t *testing.T) {
			m, err := Read(FromToml(strings.NewReader(`hello = "world"

[http]
port = 8080`)))
			if !assert.Nil(t, err) {
				return
			}

			hello, err := m.GetString("hello")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "world", hello) {
				return
			}

			port, err := m.GetInt("http.port")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, 8080, port) {
				return
			}
		})
	})

	t.Run("will return an InvalidTomlError", func(t *testing.T) {
		t.Run("if the document is malformed", func(t *testing.T) {
			_, err := Read(FromToml(strings.NewReader(`hello = `)))

			var terr InvalidTomlError
			if !assert.ErrorAs(t, err, &terr) {
				return
			}
			if !assert.NotEmpty(t, terr.Error()) {
				return
			}
			if !assert.NotNil(t, terr.Unwrap()) {
				return
			}
		})
	})
}
