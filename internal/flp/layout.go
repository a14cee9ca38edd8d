package flp

import (
	"fmt"
	"sort"
	"strings"
)

// Placement is a department's position and rotation within a layout.
type Placement struct {
	X, Y        float64
	Orientation Orientation
}

// Breakdown holds the four raw (unweighted, not yet normalized)
// sub-scores that feed the weighted objective (spec §4.4).
type Breakdown struct {
	Distance    float64
	Adjacency   float64
	Safety      float64
	Flexibility float64
}

// Layout is the phenotype produced by Construct: a placement for every
// department the constructor managed to fit, plus the PLP set grown
// during construction and, once scored, the objective breakdown.
type Layout struct {
	Problem     *Problem
	Placements  map[string]*Placement
	PLPs        []PLP
	PlacedCount int
	Objective   float64
	Breakdown   Breakdown
	Warnings    []string
}

// NewLayout creates an empty layout for prob, with every fixed
// department pre-placed at its declared location.
func NewLayout(prob *Problem) *Layout {
	l := &Layout{
		Problem:    prob,
		Placements: make(map[string]*Placement, len(prob.DeptOrder)),
	}
	for _, id := range prob.DeptOrder {
		d := prob.Departments[id]
		if d.Fixed {
			l.Placements[id] = &Placement{X: d.FixedLocation.X, Y: d.FixedLocation.Y, Orientation: Horizontal}
		}
	}
	return l
}

// IsPlaced reports whether deptID currently has a placement.
func (l *Layout) IsPlaced(deptID string) bool {
	_, ok := l.Placements[deptID]
	return ok
}

// EffectiveRect returns the placed rectangle of deptID, or the zero
// Rect and false if it has no placement yet.
func (l *Layout) EffectiveRect(deptID string) (Rect, bool) {
	p, ok := l.Placements[deptID]
	if !ok {
		return Rect{}, false
	}
	d := l.Problem.Departments[deptID]
	w, h := d.EffectiveWH(p.Orientation)
	return Rect{X: p.X, Y: p.Y, W: w, H: h}, true
}

// warn records a non-fatal diagnostic on the layout.
func (l *Layout) warn(format string, args ...any) {
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, args...))
}

// Clone returns a deep copy of the layout, safe to mutate independently
// of the original.
func (l *Layout) Clone() *Layout {
	cp := &Layout{
		Problem:     l.Problem,
		Placements:  make(map[string]*Placement, len(l.Placements)),
		PLPs:        append([]PLP(nil), l.PLPs...),
		PlacedCount: l.PlacedCount,
		Objective:   l.Objective,
		Breakdown:   l.Breakdown,
		Warnings:    append([]string(nil), l.Warnings...),
	}
	for id, p := range l.Placements {
		pc := *p
		cp.Placements[id] = &pc
	}
	return cp
}

// String renders an ASCII top-down sketch of the layout: one row of
// characters per unit of facility height, one department letter (or '.'
// for empty floor space) per unit of width. Intended for quick terminal
// inspection, not for precise geometry.
func (l *Layout) String() string {
	width := int(l.Problem.Facility.Width + 0.5)
	height := int(l.Problem.Facility.Height + 0.5)
	if width <= 0 || height <= 0 {
		return ""
	}

	grid := make([][]byte, height)
	for row := range grid {
		grid[row] = make([]byte, width)
		for col := range grid[row] {
			grid[row][col] = '.'
		}
	}

	ids := make([]string, 0, len(l.Placements))
	for id := range l.Placements {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for i, id := range ids {
		r, ok := l.EffectiveRect(id)
		if !ok {
			continue
		}
		label := byte('A' + (i % 26))
		x0, y0 := int(r.X), int(r.Y)
		x1, y1 := int(r.X+r.W), int(r.Y+r.H)
		for row := y0; row < y1 && row < height; row++ {
			if row < 0 {
				continue
			}
			for col := x0; col < x1 && col < width; col++ {
				if col < 0 {
					continue
				}
				grid[row][col] = label
			}
		}
	}

	var sb strings.Builder
	sb.WriteRune('\n')
	for row := height - 1; row >= 0; row-- {
		sb.Write(grid[row])
		sb.WriteRune('\n')
	}
	return sb.String()
}
