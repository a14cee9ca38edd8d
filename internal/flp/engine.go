package flp

import "fmt"

// Engine is the facility-layout optimization core's single entry point
// (spec §6): a builder for a Problem plus the operation that runs the
// tabu search driver over it.
type Engine struct {
	prob    *Problem
	dupWarn WarnFunc
}

// New creates an Engine for a facility of the given dimensions.
func New(facilityWidth, facilityHeight float64) *Engine {
	return &Engine{
		prob: &Problem{
			Facility:    Facility{Width: facilityWidth, Height: facilityHeight},
			Departments: make(map[string]*Department),
			Weights:     NewWeights(),
		},
	}
}

// SetWarnFunc installs a sink for non-aborting data-quality warnings,
// in place of the package default (log.Printf).
func (e *Engine) SetWarnFunc(fn WarnFunc) {
	e.dupWarn = fn
	e.prob.Warn = fn
}

func (e *Engine) warn(format string, args ...any) {
	if e.dupWarn != nil {
		e.dupWarn(format, args...)
	} else {
		defaultWarn(format, args...)
	}
}

// AddDepartment registers or replaces a department. Duplicate ids: last
// wins, with a warning (spec §6).
func (e *Engine) AddDepartment(id string, w, h float64, fixed bool, fixedLocation Point,
	canRotate bool, growthFactor float64, externalAccess, naturalLight bool, safetyLevel int) {

	if _, exists := e.prob.Departments[id]; exists {
		e.warn("department %q already exists, overwriting", id)
	} else {
		e.prob.DeptOrder = append(e.prob.DeptOrder, id)
	}

	e.prob.Departments[id] = &Department{
		ID:                   id,
		W:                    w,
		H:                    h,
		Area:                 w * h,
		Fixed:                fixed,
		FixedLocation:        fixedLocation,
		CanRotate:            canRotate,
		GrowthFactor:         growthFactor,
		ExternalAccessNeeded: externalAccess,
		NaturalLightNeeded:   naturalLight,
		SafetyLevel:          safetyLevel,
	}

	e.rebuildMovableOrder()
}

func (e *Engine) rebuildMovableOrder() {
	e.prob.MovableOrder = e.prob.MovableOrder[:0]
	for _, id := range e.prob.DeptOrder {
		if !e.prob.Departments[id].Fixed {
			e.prob.MovableOrder = append(e.prob.MovableOrder, id)
		}
	}
}

// AddObstacle registers a fixed rectangular region departments may not
// overlap.
func (e *Engine) AddObstacle(x, y, w, h float64, kind string) {
	e.prob.Obstacles = append(e.prob.Obstacles, Obstacle{X: x, Y: y, W: w, H: h, Kind: kind})
}

// AddSpecialLocation registers a point-like boundary feature.
func (e *Engine) AddSpecialLocation(id string, x, y float64, kind SpecialLocationKind) {
	e.prob.SpecialLocations = append(e.prob.SpecialLocations, SpecialLocation{ID: id, X: x, Y: y, Kind: kind})
}

func (e *Engine) ids() []string {
	return e.prob.DeptOrder
}

// setMatrix builds a fresh matrix over the current department id set
// from a sparse {(from,to): value} map, warning about any unrecognized
// ids instead of dropping them silently.
func (e *Engine) setMatrix(name string, dense map[[2]string]float64) *IDMatrix {
	fresh := NewIDMatrix(e.ids())
	unknown := fresh.SetSparse(dense)
	for _, pair := range unknown {
		e.warn("%s matrix entry references unknown department id(s): %s -> %s", name, pair[0], pair[1])
	}
	return fresh
}

// SetFlowMatrix sets the flow matrix from a sparse {(from,to): value} map.
func (e *Engine) SetFlowMatrix(entries map[[2]string]float64) {
	e.prob.Flow = e.setMatrix("flow", entries)
}

// SetRelationshipMatrix sets the REL matrix. Values should already be
// resolved to numbers via ParseRelCode if they originated as letter codes.
func (e *Engine) SetRelationshipMatrix(entries map[[2]string]float64) {
	e.prob.Rel = e.setMatrix("rel", entries)
}

// SetPrecedenceMatrix sets the precedence matrix. The evaluator does not
// score precedence (see UnusedInputs); it is accepted and carried for
// downstream reporting only.
func (e *Engine) SetPrecedenceMatrix(entries map[[2]string]float64) {
	e.prob.Prec = e.setMatrix("precedence", entries)
}

// SetHazardMatrix sets the hazard matrix used by the safety sub-score.
func (e *Engine) SetHazardMatrix(entries map[[2]string]float64) {
	e.prob.Hazard = e.setMatrix("hazard", entries)
}

// SetEnvironmentFactors records per-department noise and vibration
// levels. Like precedence, these are carried but not scored by the
// evaluator (spec §6, §9).
func (e *Engine) SetEnvironmentFactors(noise, vibration map[string]float64) {
	e.prob.Noise = noise
	e.prob.Vibration = vibration
}

// SetWeights sets the four objective-component weights.
func (e *Engine) SetWeights(distance, adjacency, safety, flexibility float64) {
	e.prob.Weights.Set(WeightDistance, distance)
	e.prob.Weights.Set(WeightAdjacency, adjacency)
	e.prob.Weights.Set(WeightSafety, safety)
	e.prob.Weights.Set(WeightFlexibility, flexibility)
}

// Validate checks the accumulated problem for structural errors before
// optimization is attempted.
func (e *Engine) Validate() error {
	return e.prob.Validate()
}

// Problem returns the underlying problem instance, for collaborators
// (CLI rendering, the GA baseline) that need read access beyond the
// ingress surface above.
func (e *Engine) Problem() *Problem {
	return e.prob
}

// Optimize runs the tabu search driver to completion and returns the
// best layout found (spec §6). logger may be nil.
func (e *Engine) Optimize(iterations, tabuTenure, maxNonImproving int, seed int64, logger *SearchLogger) (*BestResult, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("optimizing: %w", err)
	}
	params := DefaultTabuParams(iterations, tabuTenure, maxNonImproving, seed)
	ts := NewTabuSearch(e.prob, params)
	return ts.Run(logger)
}
