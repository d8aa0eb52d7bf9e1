// Command stacktc wires the stacktc core, graphio loaders/formatters,
// the warshall reference checker, and the batch runner behind a single
// cobra command tree.
package main

import (
	"os"

	"github.com/gitrdm/stacktc/cmd/stacktc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
