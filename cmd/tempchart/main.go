// Package main provides the tempchart command.
package main

import (
	"os"

	"github.com/leapstack-labs/tempchart/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
