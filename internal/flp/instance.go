package flp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// instanceDoc is the on-disk YAML shape for a problem instance. It is a
// convenience loader for tests, examples, and the optimize command; it
// is not a general workbook-ingestion format.
type instanceDoc struct {
	Facility struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"facility"`

	Departments []struct {
		ID                   string  `yaml:"id"`
		W                    float64 `yaml:"w"`
		H                    float64 `yaml:"h"`
		Area                 float64 `yaml:"area"`
		Fixed                bool    `yaml:"fixed"`
		X                    float64 `yaml:"x"`
		Y                    float64 `yaml:"y"`
		CanRotate            bool    `yaml:"canRotate"`
		GrowthFactor         float64 `yaml:"growthFactor"`
		ExternalAccessNeeded bool    `yaml:"externalAccessNeeded"`
		NaturalLightNeeded   bool    `yaml:"naturalLightNeeded"`
		SafetyLevel          int     `yaml:"safetyLevel"`
	} `yaml:"departments"`

	Obstacles []struct {
		X    float64 `yaml:"x"`
		Y    float64 `yaml:"y"`
		W    float64 `yaml:"w"`
		H    float64 `yaml:"h"`
		Kind string  `yaml:"kind"`
	} `yaml:"obstacles,omitempty"`

	SpecialLocations []struct {
		ID   string  `yaml:"id"`
		X    float64 `yaml:"x"`
		Y    float64 `yaml:"y"`
		Kind string  `yaml:"kind"`
	} `yaml:"specialLocations,omitempty"`

	Flow      []relEntry        `yaml:"flow,omitempty"`
	Rel       []relEntry        `yaml:"rel,omitempty"`
	Prec      []relEntry        `yaml:"precedence,omitempty"`
	Hazard    []relEntry        `yaml:"hazard,omitempty"`
	Noise     map[string]float64 `yaml:"noise,omitempty"`
	Vibration map[string]float64 `yaml:"vibration,omitempty"`

	Weights map[string]float64 `yaml:"weights"`
}

// relEntry is one (from, to, value) row of a pairwise matrix, the YAML
// analogue of a spreadsheet cell reference (spec §6's "matrix cells").
type relEntry struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Value string `yaml:"value"`
}

// LoadInstanceFile reads a YAML problem instance from disk and builds a
// validated Problem. Rel-family matrices accept either REL letter codes
// ("A", "E", "I", ...) or bare numbers in the value field.
func LoadInstanceFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance file: %w", err)
	}
	return LoadInstanceBytes(data)
}

// LoadInstanceBytes parses a YAML problem instance from raw bytes.
func LoadInstanceBytes(data []byte) (*Problem, error) {
	var doc instanceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing instance YAML: %w", err)
	}

	prob := &Problem{
		Facility:    Facility{Width: doc.Facility.Width, Height: doc.Facility.Height},
		Departments: make(map[string]*Department, len(doc.Departments)),
		Noise:       doc.Noise,
		Vibration:   doc.Vibration,
		Weights:     NewWeights(),
	}

	for _, dd := range doc.Departments {
		d := &Department{
			ID:                   dd.ID,
			W:                    dd.W,
			H:                    dd.H,
			Area:                 dd.Area,
			Fixed:                dd.Fixed,
			FixedLocation:        Point{X: dd.X, Y: dd.Y},
			CanRotate:            dd.CanRotate,
			GrowthFactor:         dd.GrowthFactor,
			ExternalAccessNeeded: dd.ExternalAccessNeeded,
			NaturalLightNeeded:   dd.NaturalLightNeeded,
			SafetyLevel:          dd.SafetyLevel,
		}
		if d.Area == 0 {
			d.Area = d.W * d.H
		}
		prob.Departments[d.ID] = d
		prob.DeptOrder = append(prob.DeptOrder, d.ID)
		if !d.Fixed {
			prob.MovableOrder = append(prob.MovableOrder, d.ID)
		}
	}

	for _, od := range doc.Obstacles {
		prob.Obstacles = append(prob.Obstacles, Obstacle{X: od.X, Y: od.Y, W: od.W, H: od.H, Kind: od.Kind})
	}

	for _, sd := range doc.SpecialLocations {
		prob.SpecialLocations = append(prob.SpecialLocations, SpecialLocation{
			ID: sd.ID, X: sd.X, Y: sd.Y, Kind: SpecialLocationKind(sd.Kind),
		})
	}

	ids := prob.DeptOrder
	prob.Flow = NewIDMatrix(ids)
	prob.Rel = NewIDMatrix(ids)
	prob.Prec = NewIDMatrix(ids)
	prob.Hazard = NewIDMatrix(ids)

	if err := applyRelEntries(prob.Flow, "flow", doc.Flow, prob); err != nil {
		return nil, err
	}
	if err := applyRelEntries(prob.Rel, "rel", doc.Rel, prob); err != nil {
		return nil, err
	}
	if err := applyRelEntries(prob.Prec, "precedence", doc.Prec, prob); err != nil {
		return nil, err
	}
	if err := applyRelEntries(prob.Hazard, "hazard", doc.Hazard, prob); err != nil {
		return nil, err
	}

	for metric, v := range doc.Weights {
		prob.Weights.Set(metric, v)
	}

	if err := prob.Validate(); err != nil {
		return nil, err
	}
	return prob, nil
}

func applyRelEntries(m *IDMatrix, name string, entries []relEntry, prob *Problem) error {
	for _, e := range entries {
		v, ok := ParseRelCode(e.Value)
		if !ok {
			return &InvalidProblemError{Reason: fmt.Sprintf(
				"%s entry %s->%s has unparseable value %q", name, e.From, e.To, e.Value)}
		}
		if !m.Set(e.From, e.To, v) {
			prob.warn("%s entry references unknown department id(s): %s -> %s", name, e.From, e.To)
		}
	}
	return nil
}
