package flp

import "math"

// Normalization constants from spec §4.4: magic values inherited from
// the original specification (see the DESIGN.md open-question note).
const (
	distNormConst = 1000.0
	adjNormConst  = 100.0
	safNormConst  = 50.0
	flexNormConst = 50.0
	normEpsilon   = 1e-9
)

// Evaluate scores a fully-or-partially-placed layout and records the
// breakdown and objective on it. Only placed departments contribute to
// each sub-score; an unplaced department is simply absent from every
// pairwise and per-department term.
func Evaluate(prob *Problem, layout *Layout) (Breakdown, float64) {
	b := Breakdown{
		Distance:    distanceCost(prob, layout),
		Adjacency:   adjacencyScore(prob, layout),
		Safety:      safetyScore(prob, layout),
		Flexibility: flexibilityScore(prob, layout),
	}

	nD := math.Min(1, b.Distance/(distNormConst+normEpsilon))
	nA := math.Min(1, math.Max(0, b.Adjacency)/(adjNormConst+normEpsilon))
	nS := math.Min(1, math.Max(0, b.Safety)/(safNormConst+normEpsilon))
	nF := math.Min(1, math.Max(0, b.Flexibility)/(flexNormConst+normEpsilon))

	w := prob.Weights
	objective := w.Get(WeightDistance)*nD -
		w.Get(WeightAdjacency)*nA -
		w.Get(WeightSafety)*nS -
		w.Get(WeightFlexibility)*nF

	layout.Breakdown = b
	layout.Objective = objective
	return b, objective
}

func placedCenters(prob *Problem, layout *Layout) map[string]Point {
	centers := make(map[string]Point, len(layout.Placements))
	for id := range layout.Placements {
		r, _ := layout.EffectiveRect(id)
		centers[id] = Center(r)
	}
	return centers
}

// distanceCost sums flow[i,j] * manhattan(center_i, center_j) over all
// ordered pairs of placed departments with flow[i,j] > 0.
func distanceCost(prob *Problem, layout *Layout) float64 {
	if prob.Flow == nil {
		return 0
	}
	centers := placedCenters(prob, layout)
	var total float64
	for i := range centers {
		for j := range centers {
			if i == j {
				continue
			}
			flow := prob.Flow.Get(i, j)
			if flow <= 0 {
				continue
			}
			total += flow * Manhattan(centers[i], centers[j])
		}
	}
	return total
}

// adjacencyScore rewards desired-close relationships realized by
// physical proximity and penalizes undesired ones realized the same way.
func adjacencyScore(prob *Problem, layout *Layout) float64 {
	if prob.Rel == nil {
		return 0
	}
	centers := placedCenters(prob, layout)
	var total float64
	for i := range centers {
		di := prob.Departments[i]
		for j := range centers {
			if i == j {
				continue
			}
			dj := prob.Departments[j]
			d := Manhattan(centers[i], centers[j])
			adjacent := d < maxOf(di.W, di.H, dj.W, dj.H)
			rel := prob.Rel.Get(i, j)
			switch {
			case rel >= 2 && adjacent:
				total += rel
			case rel < 0 && adjacent:
				total -= 5
			}
		}
	}
	return total
}

// safetyScore rewards hazardous departments being near an exit and
// penalizes hazardous department pairs being placed too close together.
func safetyScore(prob *Problem, layout *Layout) float64 {
	centers := placedCenters(prob, layout)
	exitRadius := 0.25 * math.Max(prob.Facility.Width, prob.Facility.Height)

	var total float64
	for id, center := range centers {
		d := prob.Departments[id]
		if d.SafetyLevel < 2 {
			continue
		}
		if nearExit(prob, center, exitRadius) {
			total += 5
		} else {
			total -= 10
		}
	}

	if prob.Hazard != nil {
		for i, ci := range centers {
			for j, cj := range centers {
				if i == j {
					continue
				}
				hazard := prob.Hazard.Get(i, j)
				if hazard <= 0 {
					continue
				}
				minD := 5 * hazard
				d := Manhattan(ci, cj)
				if d < minD {
					total -= 2 * (minD - d)
				}
			}
		}
	}

	return total
}

func nearExit(prob *Problem, center Point, radius float64) bool {
	for _, sl := range prob.SpecialLocations {
		if sl.Kind != Exit && sl.Kind != EmergencyExit {
			continue
		}
		if Manhattan(center, Point{X: sl.X, Y: sl.Y}) < radius {
			return true
		}
	}
	return false
}

// flexibilityScore rewards departments that have room to grow and
// departments that need external access and have it.
func flexibilityScore(prob *Problem, layout *Layout) float64 {
	var total float64
	for id := range layout.Placements {
		d := prob.Departments[id]
		r, _ := layout.EffectiveRect(id)

		if d.GrowthFactor > 0 {
			if canExpand(prob, layout, id, r, d.GrowthFactor) {
				total += 5 * d.GrowthFactor
			} else {
				total -= 2 * d.GrowthFactor
			}
		}

		if d.ExternalAccessNeeded {
			if touchesBoundary(r, prob.Facility.Width, prob.Facility.Height) {
				total += 10
			} else {
				total -= 15
			}
		}
	}
	return total
}

// canExpand tests the four expansion probes (right, left, up, down)
// against every other department and obstacle, and against facility
// bounds, per spec §4.4.
func canExpand(prob *Problem, layout *Layout, deptID string, r Rect, growth float64) bool {
	probes := []Rect{
		{X: r.X + r.W, Y: r.Y, W: math.Max(r.W*growth, 1), H: r.H},                        // right
		{X: r.X - math.Max(r.W*growth, 1), Y: r.Y, W: math.Max(r.W*growth, 1), H: r.H},     // left
		{X: r.X, Y: r.Y + r.H, W: r.W, H: math.Max(r.H*growth, 1)},                         // up
		{X: r.X, Y: r.Y - math.Max(r.H*growth, 1), W: r.W, H: math.Max(r.H*growth, 1)},     // down
	}
	for _, probe := range probes {
		if fits(prob, layout, deptID, probe) {
			return true
		}
	}
	return false
}

func touchesBoundary(r Rect, facilityW, facilityH float64) bool {
	return r.X == 0 || r.Y == 0 || r.X+r.W >= facilityW || r.Y+r.H >= facilityH
}

func maxOf(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
