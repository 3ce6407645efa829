// Package main provides the pgnbook CLI: build Polyglot opening books from
// PGN game collections and probe them for the moves available from a
// position.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
