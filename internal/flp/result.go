package flp

import "time"

// PlacementResult is the egress form of a single department's placement
// (spec §6): orientation is serialized as its string name rather than
// the internal enum value.
type PlacementResult struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Orientation string  `json:"orientation"`
}

// Timing reports wall-clock durations for a completed search.
type Timing struct {
	Total      time.Duration `json:"total"`
	TimeToBest time.Duration `json:"time_to_best"`
}

// UnusedInputs surfaces the problem data the evaluator does not score,
// so a caller is not silently misled into thinking precedence, noise,
// and vibration shaped the layout (see the Open Question decision in
// DESIGN.md: these are accepted and carried, not evaluated).
type UnusedInputs struct {
	PrecedenceEntries int                `json:"precedence_entries"`
	Noise             map[string]float64 `json:"noise,omitempty"`
	Vibration         map[string]float64 `json:"vibration,omitempty"`
}

// BestResult is the egress payload of a completed optimization run
// (spec §6).
type BestResult struct {
	BestObjective        float64                    `json:"best_objective"`
	Breakdown             Breakdown                  `json:"breakdown"`
	DepartmentPlacements  map[string]PlacementResult `json:"department_placements"`
	IterationHistory      []HistoryEntry             `json:"iteration_history"`
	Timing                Timing                     `json:"timing"`
	IterationsRun         int                        `json:"iterations_run"`
	ImprovementsFound     int                        `json:"improvements_found"`
	Warnings              []string                   `json:"warnings,omitempty"`
	Unused                UnusedInputs               `json:"unused_inputs"`
}

func buildBestResult(prob *Problem, layout *Layout, objective float64, breakdown Breakdown,
	history []HistoryEntry, total, timeToBest time.Duration, iterations, improvements int) *BestResult {

	placements := make(map[string]PlacementResult, len(layout.Placements))
	for id, p := range layout.Placements {
		placements[id] = PlacementResult{X: p.X, Y: p.Y, Orientation: p.Orientation.String()}
	}

	precCount := 0
	if prob.Prec != nil {
		for _, row := range prob.Prec.Dense() {
			for _, v := range row {
				if v != 0 {
					precCount++
				}
			}
		}
	}

	return &BestResult{
		BestObjective:       objective,
		Breakdown:           breakdown,
		DepartmentPlacements: placements,
		IterationHistory:    history,
		Timing:              Timing{Total: total, TimeToBest: timeToBest},
		IterationsRun:       iterations,
		ImprovementsFound:   improvements,
		Warnings:            layout.Warnings,
		Unused: UnusedInputs{
			PrecedenceEntries: precCount,
			Noise:             prob.Noise,
			Vibration:         prob.Vibration,
		},
	}
}
