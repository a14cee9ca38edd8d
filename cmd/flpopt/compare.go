package main

import (
	"context"
	"fmt"
	"time"

	"github.com/flplab/flpopt/internal/flp"
	"github.com/urfave/cli/v3"
)

// compareCommand defines the "compare" CLI command for running the tabu
// search driver and the eaopt-backed genetic-algorithm baseline against
// the same instance, so the two optimizers can be judged side by side.
var compareCommand = &cli.Command{
	Name:      "compare",
	Aliases:   []string{"c"},
	Usage:     "Compare tabu search against the GA baseline on the same instance",
	Flags:     flagsSlice("instance", "weights", "iterations", "tabu-tenure", "max-non-improving", "generations", "accept-policy", "seed", "output"),
	ArgsUsage: " ",
	Action:    compareAction,
}

func compareAction(ctx context.Context, c *cli.Command) error {
	prob, err := loadInstanceFromFlags(c)
	if err != nil {
		return err
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	params := flp.DefaultTabuParams(
		c.Int("iterations"),
		c.Int("tabu-tenure"),
		c.Int("max-non-improving"),
		seed,
	)
	ts := flp.NewTabuSearch(prob, params)
	tabuResult, err := ts.Run(nil)
	if err != nil {
		return fmt.Errorf("running tabu search: %w", err)
	}

	gaResult, err := flp.RunGA(prob, uint(c.Uint("generations")), seed, c.String("accept-policy"))
	if err != nil {
		return fmt.Errorf("running genetic algorithm baseline: %w", err)
	}

	output := c.String("output")
	if err := renderResult(output, "Tabu Search", tabuResult); err != nil {
		return err
	}
	if err := renderResult(output, "GA Baseline", gaResult); err != nil {
		return err
	}
	return renderComparison(tabuResult, gaResult)
}
