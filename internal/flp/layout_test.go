package flp

import (
	"strings"
	"testing"
)

func TestNewLayoutPrePlacesFixedDepartments(t *testing.T) {
	prob := newTestProblem()
	prob.Departments["B"].Fixed = true
	prob.Departments["B"].FixedLocation = Point{X: 5, Y: 5}

	l := NewLayout(prob)
	if !l.IsPlaced("B") {
		t.Fatalf("expected fixed department B to be pre-placed")
	}
	if l.IsPlaced("A") {
		t.Fatalf("expected movable department A to start unplaced")
	}
}

func TestEffectiveRectSwapsDimensionsWhenVertical(t *testing.T) {
	prob := newTestProblem()
	l := NewLayout(prob)
	l.Placements["A"] = &Placement{X: 1, Y: 2, Orientation: Vertical}

	r, ok := l.EffectiveRect("A")
	if !ok {
		t.Fatalf("expected A to be placed")
	}
	if r.W != 2 || r.H != 4 {
		t.Errorf("expected vertical A to report W=2 H=4, got W=%v H=%v", r.W, r.H)
	}
}

func TestEffectiveRectUnplacedReturnsFalse(t *testing.T) {
	prob := newTestProblem()
	l := NewLayout(prob)
	if _, ok := l.EffectiveRect("A"); ok {
		t.Errorf("expected EffectiveRect to report false for an unplaced department")
	}
}

func TestLayoutCloneIsIndependent(t *testing.T) {
	prob := newTestProblem()
	l := NewLayout(prob)
	l.Placements["A"] = &Placement{X: 0, Y: 0, Orientation: Horizontal}
	l.PLPs = []PLP{{X: 0, Y: 0}}
	l.Warnings = []string{"original"}

	cp := l.Clone()
	cp.Placements["A"].X = 99
	cp.PLPs[0].X = 99
	cp.Warnings[0] = "mutated"

	if l.Placements["A"].X != 0 {
		t.Errorf("mutating the clone's placement must not affect the original")
	}
	if l.PLPs[0].X != 0 {
		t.Errorf("mutating the clone's PLPs must not affect the original")
	}
	if l.Warnings[0] != "original" {
		t.Errorf("mutating the clone's warnings must not affect the original")
	}
}

func TestLayoutStringRendersPlacedDepartments(t *testing.T) {
	prob := newTestProblem()
	l := NewLayout(prob)
	l.Placements["A"] = &Placement{X: 0, Y: 0, Orientation: Horizontal}
	l.Placements["B"] = &Placement{X: 4, Y: 0, Orientation: Horizontal}

	s := l.String()
	if !strings.Contains(s, "A") || !strings.Contains(s, "B") {
		t.Errorf("expected the rendered layout to contain both department labels, got %q", s)
	}
	rows := strings.Count(s, "\n")
	if rows != int(prob.Facility.Height)+1 {
		t.Errorf("expected %d rendered rows, got %d in %q", int(prob.Facility.Height)+1, rows, s)
	}
}

func TestLayoutStringEmptyFacility(t *testing.T) {
	prob := newTestProblem()
	prob.Facility = Facility{Width: 0, Height: 0}
	l := NewLayout(prob)
	if s := l.String(); s != "" {
		t.Errorf("expected empty string for a zero-size facility, got %q", s)
	}
}
