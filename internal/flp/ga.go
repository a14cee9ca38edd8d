package flp

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/MaxHalford/eaopt"
)

// flpGenome adapts an Encoding to eaopt.Genome, so the simulated-
// annealing engine eaopt ships can be used as an alternative optimizer
// alongside the tabu search driver (the "compare" command's baseline).
type flpGenome struct {
	prob *Problem
	enc  Encoding
}

// getAcceptFunc returns a simulated-annealing acceptance function for
// the named cooling policy.
func getAcceptFunc(policy string) func(g, ng uint, e0, e1 float64) float64 {
	switch policy {
	case "always":
		return func(g, ng uint, e0, e1 float64) float64 { return 1.0 }
	case "never":
		return func(g, ng uint, e0, e1 float64) float64 { return 0.0 }
	case "linear":
		return func(g, ng uint, e0, e1 float64) float64 {
			return 1.0 - float64(g)/float64(ng)
		}
	case "drop-fast":
		return func(g, ng uint, e0, e1 float64) float64 {
			t := 1.0 - float64(g)/float64(ng)
			return math.Exp(-3.0 * (1 - t))
		}
	default:
		return func(g, ng uint, e0, e1 float64) float64 {
			t := 1.0 - float64(g)/float64(ng)
			return (math.Cos(t*math.Pi) + 1.0) / 2.0
		}
	}
}

// Evaluate constructs the genome's encoding and returns its objective.
// Infeasible encodings (the constructor could not place every
// department) are penalized rather than rejected outright, so the
// search can still climb out of an infeasible neighborhood.
func (g *flpGenome) Evaluate() (float64, error) {
	layout, full := Construct(g.prob, g.enc)
	_, obj := Evaluate(g.prob, layout)
	if !full {
		missing := len(g.prob.MovableOrder) - layout.PlacedCount
		obj += float64(missing) * 1000
	}
	return obj, nil
}

// Mutate applies one of the tabu driver's perturbation operators to the
// genome's encoding, reusing the same neighbor-generation building
// blocks the tabu search uses.
func (g *flpGenome) Mutate(rng *rand.Rand) {
	plpLen := len(initialPLPs(g.prob))
	switch rng.Intn(4) {
	case 0:
		opSwap(g.enc, rng)
	case 1:
		opChangeLocation(g.enc, rng, plpLen)
	case 2:
		opChangeDirection(g.enc, rng, g.prob)
	case 3:
		opMoveDepartment(g.enc, rng, plpLen)
	}
}

// Crossover does nothing: the facility layout encoding has no natural
// recombination operator in this port, so the genome relies on mutation
// and simulated-annealing acceptance alone. Defined only so flpGenome
// implements eaopt.Genome.
func (g *flpGenome) Crossover(_ eaopt.Genome, _ *rand.Rand) {}

// Clone returns a deep copy of the genome.
func (g *flpGenome) Clone() eaopt.Genome {
	return &flpGenome{prob: g.prob, enc: g.enc.Clone()}
}

// RunGA runs eaopt's simulated-annealing model over prob's encoding
// space for the given number of generations, returning a BestResult in
// the same shape as TabuSearch.Run so callers can compare the two
// optimizers directly.
func RunGA(prob *Problem, generations uint, seed int64, acceptPolicy string) (*BestResult, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	plpLen := len(initialPLPs(prob))

	cfg := eaopt.NewDefaultGAConfig()
	cfg.NGenerations = generations
	cfg.Model = eaopt.ModSimulatedAnnealing{Accept: getAcceptFunc(acceptPolicy)}

	var history []HistoryEntry
	bestSoFar := math.MaxFloat64
	improvements := 0
	var timeToBest time.Duration
	cfg.Callback = func(ga *eaopt.GA) {
		fit := ga.HallOfFame[0].Fitness
		if fit < bestSoFar {
			bestSoFar = fit
			improvements++
			timeToBest = time.Since(start)
		}
		history = append(history, HistoryEntry{
			Iteration:  int(ga.Generations),
			CurrentObj: fit,
			BestObj:    bestSoFar,
		})
	}

	ga, err := cfg.NewGA()
	if err != nil {
		return nil, fmt.Errorf("configuring genetic algorithm: %w", err)
	}

	newGenome := func(_ *rand.Rand) eaopt.Genome {
		enc := NewRandomEncoding(prob, plpLen, rng)
		return &flpGenome{prob: prob, enc: enc}
	}

	if err := ga.Minimize(newGenome); err != nil {
		return nil, fmt.Errorf("running genetic algorithm: %w", err)
	}

	best := ga.HallOfFame[0].Genome.(*flpGenome)
	layout, _ := Construct(prob, best.enc)
	breakdown, objective := Evaluate(prob, layout)

	elapsed := time.Since(start)
	return buildBestResult(prob, layout, objective, breakdown, history, elapsed, timeToBest,
		int(ga.Generations), improvements), nil
}
