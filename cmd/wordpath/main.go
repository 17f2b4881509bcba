// Package main provides the wordpath CLI tool.
//
// Usage:
//
//	wordpath [flags] <command> [args]
//
// Commands:
//
//	dijkstra  shortest paths from a source vertex over an edge-list graph file
//	ladder    shortest word ladder between two dictionary words
//	verify    reference ladder checks against a dictionary
//
// Global flags:
//
//	--config   YAML file with defaults ("dictionary", "source")
//	-v         debug logging on stderr
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/wordpath/cmd/wordpath/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
