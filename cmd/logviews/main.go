// Package main provides the logviews command.
package main

import (
	"os"

	"github.com/leapstack-labs/logviews/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
