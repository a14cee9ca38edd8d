package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// appFlagsMap centralizes CLI flags used across commands, keeping flag
// definitions in one place so commands select only the flags they need.
var appFlagsMap = map[string]cli.Flag{
	"instance": &cli.StringFlag{
		Name:     "instance",
		Aliases:  []string{"i"},
		Usage:    "Path to a YAML problem instance file.",
		Required: true,
	},
	"weights": &cli.StringFlag{
		Name:    "weights",
		Aliases: []string{"w"},
		Usage:   "Objective weight overrides as comma-separated pairs (e.g. \"distance=1,adjacency=2\"). Overrides the instance file's weights.",
	},
	"iterations": &cli.IntFlag{
		Name:    "iterations",
		Aliases: []string{"n"},
		Usage:   "Maximum number of tabu search iterations.",
		Value:   500,
		Action: func(ctx context.Context, c *cli.Command, value int) error {
			if value < 1 {
				return fmt.Errorf("--iterations must be at least 1 (got %d)", value)
			}
			return nil
		},
	},
	"tabu-tenure": &cli.IntFlag{
		Name:  "tabu-tenure",
		Usage: "Number of recent encodings retained in the tabu queue.",
		Value: 20,
	},
	"max-non-improving": &cli.IntFlag{
		Name:  "max-non-improving",
		Usage: "Consecutive non-improving iterations tolerated before a stagnation restart, and before the search stops.",
		Value: 100,
	},
	"seed": &cli.Int64Flag{
		Name:    "seed",
		Aliases: []string{"s"},
		Usage:   "Random seed for reproducible results. Uses the current time if 0.",
		Value:   0,
	},
	"generations": &cli.UintFlag{
		Name:    "generations",
		Aliases: []string{"g"},
		Usage:   "Number of generations for the GA baseline (compare command).",
		Value:   500,
	},
	"accept-policy": &cli.StringFlag{
		Name:  "accept-policy",
		Usage: "Simulated-annealing acceptance policy for the GA baseline: \"always\", \"never\", \"linear\", \"drop-fast\", or \"drop-slow\".",
		Value: "drop-slow",
	},
	"log-file": &cli.StringFlag{
		Name:    "log-file",
		Aliases: []string{"lf"},
		Usage:   "JSONL log file path for detailed search metrics.",
	},
	"output": &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output format: \"table\" or \"json\".",
		Value:   "table",
	},
}

// flagsSlice returns a slice of cli.Flag pointers for the given keys
// from appFlagsMap.
func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		if f, ok := appFlagsMap[k]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}
