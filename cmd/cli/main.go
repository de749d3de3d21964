// Package main is the entry point for the saas-economics CLI.
package main

import (
	"os"

	"saas-economics/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
