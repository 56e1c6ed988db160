// Copyright (c) 2026 Confkit Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package confkit

import (
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestFileReader(t *testing.T) {
	t.Run("will read the file contents", func(t *testing.T) {
		t.Run("if the file exists", func(t *testing.T) {
			fsys := fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte("hello: world"),
				},
			}

			r := NewFileReader(fsys, "config.yaml")
			b, err := io.ReadAll(r)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "hello: world", string(b)) {
				return
			}

			err = r.Close()
			if !assert.Nil(t, err) {
				return
			}
		})

		t.Run("if used as the reader for a config source", func(t *testing.T) {
			fsys := fstest.MapFS{
				"config.yaml": &fstest.MapFile{
					Data: []byte("hello: world"),
				},
			}

			m, err := Read(FromYaml(NewFileReader(fsys, "config.yaml")))
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
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the file does not exist", func(t *testing.T) {
			r := NewFileReader(fstest.MapFS{}, "missing.yaml")

			_, err := io.ReadAll(r)
			if !assert.ErrorIs(t, err, fs.ErrNotExist) {
				return
			}
		})
	})

	t.Run("will be safe to close", func(t *testing.T) {
		t.Run("if the file was never opened", func(t *testing.T) {
			r := NewFileReader(fstest.MapFS{}, "config.yaml")

			err := r.Close()
			if !assert.Nil(t, err) {
				return
			}
		})
	})
}
