// Copyright (c) 2026 Confkit Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// confkit is a small inspector for layered configuration. It overlays
// config files, optionally the process environment and ad hoc --set
// pairs, then prints either the whole effective configuration or a
// single key.
package main

import (
	"os"

	"github.com/confkit/confkit/cmd/confkit/cli"
)

func main() {
	err := cli.New().Execute()
	if err != nil {
		os.Exit(1)
	}
}
