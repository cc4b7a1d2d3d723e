// Package main is the entry point for the brandwatch CLI.
package main

import (
	"os"

	"github.com/f3rmion/brandwatch/cmd/brandwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
