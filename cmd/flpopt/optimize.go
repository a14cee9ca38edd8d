package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/flplab/flpopt/internal/flp"
	"github.com/urfave/cli/v3"
)

// optimizeCommand defines the "optimize" CLI command for running the
// tabu search driver on a facility layout problem instance.
var optimizeCommand = &cli.Command{
	Name:      "optimize",
	Aliases:   []string{"o"},
	Usage:     "Optimize a facility layout using tabu search",
	Flags:     flagsSlice("instance", "weights", "iterations", "tabu-tenure", "max-non-improving", "seed", "log-file", "output"),
	ArgsUsage: " ",
	Action:    optimizeAction,
}

func optimizeAction(ctx context.Context, c *cli.Command) error {
	prob, err := loadInstanceFromFlags(c)
	if err != nil {
		return err
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var logFile *os.File
	logPath := c.String("log-file")
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("creating log file %s: %w", logPath, err)
		}
		defer f.Close()
		logFile = f
	}
	logger := flp.NewSearchLogger(os.Stdout, logFile)

	params := flp.DefaultTabuParams(
		c.Int("iterations"),
		c.Int("tabu-tenure"),
		c.Int("max-non-improving"),
		seed,
	)
	ts := flp.NewTabuSearch(prob, params)

	result, err := ts.Run(logger)
	if err != nil {
		return fmt.Errorf("running tabu search: %w", err)
	}

	return renderResult(c.String("output"), "Tabu Search", result)
}

// loadInstanceFromFlags loads the problem instance named by --instance and
// applies any --weights override.
func loadInstanceFromFlags(c *cli.Command) (*flp.Problem, error) {
	prob, err := flp.LoadInstanceFile(c.String("instance"))
	if err != nil {
		return nil, fmt.Errorf("loading instance: %w", err)
	}

	if override := c.String("weights"); override != "" {
		if err := prob.Weights.AddWeightsFromString(override); err != nil {
			return nil, fmt.Errorf("parsing --weights: %w", err)
		}
	}

	return prob, nil
}
