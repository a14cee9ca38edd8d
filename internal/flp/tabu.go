package flp

import (
	"math/rand"
	"time"
)

// TabuParams holds the parameters of a tabu search run (spec §4.5).
type TabuParams struct {
	MaxIterations    int
	TabuTenure       int
	MaxNonImproving  int
	NeighborBatch    int // default 5
	SimilarityThresh float64 // default 0.8
	Seed             int64
}

// DefaultTabuParams fills in the fixed neighbor batch size and
// similarity threshold, leaving the run-scoped knobs to the caller.
func DefaultTabuParams(maxIterations, tabuTenure, maxNonImproving int, seed int64) TabuParams {
	return TabuParams{
		MaxIterations:    maxIterations,
		TabuTenure:       tabuTenure,
		MaxNonImproving:  maxNonImproving,
		NeighborBatch:    5,
		SimilarityThresh: 0.8,
		Seed:             seed,
	}
}

// HistoryEntry records one iteration's current and best objective, for
// BestResult.IterationHistory and for post-hoc diagnostics.
type HistoryEntry struct {
	Iteration    int
	CurrentObj   float64
	BestObj      float64
}

// TabuSearch drives the tabu-search metaheuristic of spec §4.5 over a
// fixed Problem.
type TabuSearch struct {
	prob   *Problem
	params TabuParams
	rng    *rand.Rand

	currentEncoding Encoding
	bestEncoding    Encoding
	bestObjective   float64
	bestBreakdown   Breakdown

	tabuQueue           []Encoding
	nonImprovingCounter int
	iteration           int
	improvementCounter  int
	startTime           time.Time
	timeToBest          time.Duration
	history             []HistoryEntry
}

const maxInitialAttempts = 20

// NewTabuSearch builds a driver for prob with the given parameters. It
// does not run the search; call Run.
func NewTabuSearch(prob *Problem, params TabuParams) *TabuSearch {
	return &TabuSearch{
		prob:   prob,
		params: params,
		rng:    rand.New(rand.NewSource(params.Seed)),
	}
}

// Run executes the full tabu search and returns the best result found.
// logger may be nil to disable progress reporting.
func (ts *TabuSearch) Run(logger *SearchLogger) (*BestResult, error) {
	ts.startTime = time.Now()

	enc, layout, ok := ts.initialEncoding()
	if !ok {
		return nil, &InfeasibleInitialError{Attempts: maxInitialAttempts}
	}
	ts.currentEncoding = enc
	ts.bestEncoding = enc.Clone()
	ts.bestBreakdown, ts.bestObjective = Evaluate(ts.prob, layout)
	ts.timeToBest = time.Since(ts.startTime)

	if logger != nil {
		logger.LogStart(ts.params, ts.bestObjective)
	}

	for ts.iteration = 1; ts.iteration <= ts.params.MaxIterations; ts.iteration++ {
		candidates := ts.generateNeighbors()

		type scored struct {
			enc   Encoding
			layout *Layout
			obj   float64
			brk   Breakdown
		}
		var accepted []scored

		for _, cand := range candidates {
			if ts.iteration == 1 && ts.isTabu(cand) {
				continue
			}
			layout, full := Construct(ts.prob, cand)
			if !full {
				continue
			}
			brk, obj := Evaluate(ts.prob, layout)
			accepted = append(accepted, scored{enc: cand, layout: layout, obj: obj, brk: brk})
		}

		if len(accepted) == 0 {
			ts.nonImprovingCounter++
			if ts.stagnated(logger) {
				if err := ts.restart(); err != nil {
					return nil, err
				}
			}
			continue
		}

		best := accepted[0]
		for _, c := range accepted[1:] {
			if c.obj < best.obj {
				best = c
			}
		}

		ts.currentEncoding = best.enc
		ts.pushTabu(best.enc)

		if best.obj < ts.bestObjective {
			ts.bestEncoding = best.enc.Clone()
			ts.bestObjective = best.obj
			ts.bestBreakdown = best.brk
			ts.timeToBest = time.Since(ts.startTime)
			ts.improvementCounter++
			ts.nonImprovingCounter = 0
			if logger != nil {
				logger.LogImprovement(ts.iteration, best.obj, time.Since(ts.startTime))
			}
		} else {
			ts.nonImprovingCounter++
		}

		ts.recordHistory()

		if ts.nonImprovingCounter >= ts.params.MaxNonImproving {
			break
		}
	}

	// ts.iteration runs one past params.MaxIterations when the loop is
	// exhausted rather than broken out of early; clamp so the reported
	// count never exceeds the number of iterations actually executed.
	iterationsRun := ts.iteration
	if iterationsRun > ts.params.MaxIterations {
		iterationsRun = ts.params.MaxIterations
	}

	finalLayout, _ := Construct(ts.prob, ts.bestEncoding)
	result := buildBestResult(ts.prob, finalLayout, ts.bestObjective, ts.bestBreakdown,
		ts.history, time.Since(ts.startTime), ts.timeToBest, iterationsRun, ts.improvementCounter)

	if logger != nil {
		logger.LogEnd(ts.bestObjective, iterationsRun, time.Since(ts.startTime))
	}

	return result, nil
}

// stagnated reports whether the non-improving counter has reached
// MaxNonImproving, logging a restart when it has; the caller performs
// the restart.
func (ts *TabuSearch) stagnated(logger *SearchLogger) bool {
	triggered := ts.nonImprovingCounter >= ts.params.MaxNonImproving
	if triggered && logger != nil {
		logger.LogRestart(ts.iteration)
	}
	return triggered
}

func (ts *TabuSearch) restart() error {
	enc, _, ok := ts.initialEncoding()
	if !ok {
		return &InfeasibleInitialError{Attempts: maxInitialAttempts}
	}
	ts.currentEncoding = enc
	ts.nonImprovingCounter = 0
	return nil
}

func (ts *TabuSearch) recordHistory() {
	ts.history = append(ts.history, HistoryEntry{
		Iteration:  ts.iteration,
		CurrentObj: ts.currentObjective(),
		BestObj:    ts.bestObjective,
	})
}

func (ts *TabuSearch) currentObjective() float64 {
	layout, _ := Construct(ts.prob, ts.currentEncoding)
	_, obj := Evaluate(ts.prob, layout)
	return obj
}

// initialEncoding builds and constructs a random encoding, retrying up
// to maxInitialAttempts times until the constructor places every
// movable department (spec §4.5's initialization step).
func (ts *TabuSearch) initialEncoding() (Encoding, *Layout, bool) {
	plpLen := len(initialPLPs(ts.prob))
	for attempt := 0; attempt < maxInitialAttempts; attempt++ {
		enc := NewRandomEncoding(ts.prob, plpLen, ts.rng)
		layout, full := Construct(ts.prob, enc)
		if full {
			return enc, layout, true
		}
	}
	return nil, nil, false
}

// generateNeighbors builds NeighborBatch candidate encodings, each
// produced by applying one of the four spec §4.5 operators to an
// independent copy of the current encoding.
func (ts *TabuSearch) generateNeighbors() []Encoding {
	batch := make([]Encoding, 0, ts.params.NeighborBatch)
	plpLen := len(initialPLPs(ts.prob))
	for i := 0; i < ts.params.NeighborBatch; i++ {
		cand := ts.currentEncoding.Clone()
		switch ts.rng.Intn(4) {
		case 0:
			opSwap(cand, ts.rng)
		case 1:
			opChangeLocation(cand, ts.rng, plpLen)
		case 2:
			opChangeDirection(cand, ts.rng, ts.prob)
		case 3:
			opMoveDepartment(cand, ts.rng, plpLen)
		}
		batch = append(batch, cand)
	}
	return batch
}

// opSwap swaps the (dept, anchor) pairs at two distinct positions.
func opSwap(enc Encoding, rng *rand.Rand) {
	if len(enc) < 2 {
		return
	}
	i := rng.Intn(len(enc))
	j := rng.Intn(len(enc))
	for j == i {
		j = rng.Intn(len(enc))
	}
	enc[i], enc[j] = enc[j], enc[i]
}

// opChangeLocation replaces one position's anchor with a fresh random
// index into the current PLP list.
func opChangeLocation(enc Encoding, rng *rand.Rand, plpLen int) {
	if len(enc) == 0 || plpLen == 0 {
		return
	}
	i := rng.Intn(len(enc))
	enc[i].AnchorIndex = rng.Intn(plpLen)
}

// opChangeDirection is a structural no-op: the orientation flip for a
// rotatable department is realized by the constructor's own orientation
// trial order, not by the encoding (spec §4.5, operator 3).
func opChangeDirection(enc Encoding, rng *rand.Rand, prob *Problem) {
	var rotatable []int
	for i, e := range enc {
		if d := prob.Departments[e.DeptID]; d != nil && d.CanRotate {
			rotatable = append(rotatable, i)
		}
	}
	if len(rotatable) == 0 {
		return
	}
	_ = rotatable[rng.Intn(len(rotatable))]
}

// opMoveDepartment has the same structural effect as change-location; it
// is retained as a separate operator to preserve the source's named
// 1/2-1/4-1/4 mass split across anchor perturbation, swap, and no-op
// rotate (spec §4.5, operator 4).
func opMoveDepartment(enc Encoding, rng *rand.Rand, plpLen int) {
	opChangeLocation(enc, rng, plpLen)
}

// isTabu reports whether cand is similar to any encoding currently in
// the tabu queue, per spec §4.5's similarity definition.
func (ts *TabuSearch) isTabu(cand Encoding) bool {
	for _, t := range ts.tabuQueue {
		if similar(cand, t, ts.params.SimilarityThresh) {
			return true
		}
	}
	return false
}

func similar(a, b Encoding, threshold float64) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches)/float64(len(a)) >= threshold
}

func (ts *TabuSearch) pushTabu(enc Encoding) {
	ts.tabuQueue = append(ts.tabuQueue, enc.Clone())
	if len(ts.tabuQueue) > ts.params.TabuTenure {
		ts.tabuQueue = ts.tabuQueue[1:]
	}
}
