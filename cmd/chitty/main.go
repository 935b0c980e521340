// Package main provides the entry point for the chitty CLI.
package main

import (
	"os"

	"github.com/chittyos/chitty-cli/cmd/chitty/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
