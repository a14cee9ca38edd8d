package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/flplab/flpopt/internal/flp"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderResult prints a completed search's placements and objective
// breakdown, either as a terminal table or as JSON.
func renderResult(output, title string, result *flp.BestResult) error {
	if output == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(buildSummaryTable(title, result).Render())
	fmt.Println(buildPlacementTable(result).Render())
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return nil
}

// buildSummaryTable renders the objective, its breakdown, and run timing.
func buildSummaryTable(title string, result *flp.BestResult) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRow(table.Row{"Objective", fmt.Sprintf("%.4f", result.BestObjective)})
	tw.AppendRow(table.Row{"Distance", fmt.Sprintf("%.4f", result.Breakdown.Distance)})
	tw.AppendRow(table.Row{"Adjacency", fmt.Sprintf("%.4f", result.Breakdown.Adjacency)})
	tw.AppendRow(table.Row{"Safety", fmt.Sprintf("%.4f", result.Breakdown.Safety)})
	tw.AppendRow(table.Row{"Flexibility", fmt.Sprintf("%.4f", result.Breakdown.Flexibility)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Iterations run", result.IterationsRun})
	tw.AppendRow(table.Row{"Improvements found", result.ImprovementsFound})
	tw.AppendRow(table.Row{"Total time", result.Timing.Total.Round(1)})
	tw.AppendRow(table.Row{"Time to best", result.Timing.TimeToBest.Round(1)})
	if result.Unused.PrecedenceEntries > 0 {
		tw.AppendRow(table.Row{"Unused precedence entries", result.Unused.PrecedenceEntries})
	}
	return tw
}

// buildPlacementTable renders each department's placed coordinates.
func buildPlacementTable(result *flp.BestResult) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Department Placements")
	tw.AppendHeader(table.Row{"Department", "X", "Y", "Orientation"})

	ids := make([]string, 0, len(result.DepartmentPlacements))
	for id := range result.DepartmentPlacements {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		p := result.DepartmentPlacements[id]
		tw.AppendRow(table.Row{id, fmt.Sprintf("%.2f", p.X), fmt.Sprintf("%.2f", p.Y), p.Orientation})
	}
	return tw
}

// renderComparison prints a side-by-side objective comparison between the
// tabu search driver and the GA baseline.
func renderComparison(tabuResult, gaResult *flp.BestResult) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Tabu Search vs GA Baseline")
	tw.AppendHeader(table.Row{"Optimizer", "Objective", "Placed", "Iterations", "Time to best"})
	tw.AppendRow(table.Row{
		"Tabu Search",
		fmt.Sprintf("%.4f", tabuResult.BestObjective),
		len(tabuResult.DepartmentPlacements),
		tabuResult.IterationsRun,
		tabuResult.Timing.TimeToBest.Round(1),
	})
	tw.AppendRow(table.Row{
		"GA Baseline",
		fmt.Sprintf("%.4f", gaResult.BestObjective),
		len(gaResult.DepartmentPlacements),
		gaResult.IterationsRun,
		gaResult.Timing.TimeToBest.Round(1),
	})
	fmt.Println(tw.Render())
	return nil
}
