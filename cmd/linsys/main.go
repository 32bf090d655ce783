// SPDX-License-Identifier: MIT

// Command linsys solves dense linear systems described in YAML problem files.
//
//	linsys solve -f problem.yaml --method gauss
//	linsys invert -f problem.yaml
//	linsys det -f problem.yaml
//	linsys sine --v 1 --radius 5 --eps 0.1
package main

import (
	"os"

	"github.com/katalvlaran/linsys/internal/cli"
)

// main runs the root command and exits with status 1 on any error; the
// failure itself has already been logged by the command.
func main() {
	if err := cli.NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
