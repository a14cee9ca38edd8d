// Package main provides the CLI entrypoint for the flpopt command-line
// tool.
//
// optimize.go implements the "optimize" command, which runs the tabu
// search driver against a loaded problem instance.
//
// compare.go implements the "compare" command, which runs the tabu
// search driver and the eaopt-backed genetic-algorithm baseline against
// the same instance and reports both.
//
// render.go renders BestResult values as terminal tables.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "flpopt",
		Usage: "An unequal-area facility layout optimizer",
		Commands: []*cli.Command{
			optimizeCommand,
			compareCommand,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
