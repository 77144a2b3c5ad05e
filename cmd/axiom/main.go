// Package main provides the axiom CLI, an intent-first memory layer for
// software decisions. Intents live in a per-repository SQLite database under
// <repo>/.intent/.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
