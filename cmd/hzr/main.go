// Package main is the entry point for the hzr CLI.
package main

import (
	"os"

	"github.com/f3rmion/hzr/cmd/hzr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
