// Package main implements the stackpad CLI and server.
package main

import (
	"os"

	"github.com/nathanellevy/stackpad/cmd/stackpad/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
