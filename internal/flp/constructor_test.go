package flp

import (
	"math/rand"
	"testing"
)

func TestConstructPlacesAllDepartments(t *testing.T) {
	prob := newTestProblem()
	plpLen := len(initialPLPs(prob))
	rng := rand.New(rand.NewSource(1))
	enc := NewRandomEncoding(prob, plpLen, rng)

	layout, full := Construct(prob, enc)
	if !full {
		t.Fatalf("Construct() did not place all departments: placed %d of %d", layout.PlacedCount, len(prob.MovableOrder))
	}
	for _, id := range prob.MovableOrder {
		if !layout.IsPlaced(id) {
			t.Errorf("department %q was not placed", id)
		}
	}
}

func TestConstructNoOverlap(t *testing.T) {
	prob := newTestProblem()
	plpLen := len(initialPLPs(prob))

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		enc := NewRandomEncoding(prob, plpLen, rng)
		layout, _ := Construct(prob, enc)

		ids := make([]string, 0, len(layout.Placements))
		for id := range layout.Placements {
			ids = append(ids, id)
		}
		for i := range ids {
			ri, _ := layout.EffectiveRect(ids[i])
			if !InBounds(ri, prob.Facility.Width, prob.Facility.Height) {
				t.Errorf("seed %d: department %q out of bounds: %v", seed, ids[i], ri)
			}
			for j := range ids {
				if i == j {
					continue
				}
				rj, _ := layout.EffectiveRect(ids[j])
				if Overlaps(ri, rj) {
					t.Errorf("seed %d: departments %q and %q overlap", seed, ids[i], ids[j])
				}
			}
		}
	}
}

func TestConstructRespectsFixedDepartments(t *testing.T) {
	prob := newTestProblem()
	prob.Departments["B"].Fixed = true
	prob.Departments["B"].FixedLocation = Point{X: 0, Y: 0}
	prob.MovableOrder = []string{"A"}

	rng := rand.New(rand.NewSource(2))
	plpLen := len(initialPLPs(prob))
	enc := NewRandomEncoding(prob, plpLen, rng)

	layout, full := Construct(prob, enc)
	if !full {
		t.Fatalf("Construct() failed to place movable department around a fixed one")
	}
	bRect, ok := layout.EffectiveRect("B")
	if !ok || bRect.X != 0 || bRect.Y != 0 {
		t.Errorf("fixed department B moved: %v", bRect)
	}
	aRect, _ := layout.EffectiveRect("A")
	if Overlaps(aRect, bRect) {
		t.Errorf("movable department A overlaps fixed department B")
	}
}

func TestConstructFallbackScanWhenPreferredAnchorFails(t *testing.T) {
	prob := newTestProblem()
	plpLen := len(initialPLPs(prob))

	enc := Encoding{
		{DeptID: "B", AnchorIndex: 0},
		{DeptID: "A", AnchorIndex: plpLen + 9999}, // far out of original range, wraps via mod
	}
	_, full := Construct(prob, enc)
	if !full {
		t.Fatalf("Construct() should still place both departments via fallback scan")
	}
}

func TestValidateEncodingCoverage(t *testing.T) {
	prob := newTestProblem()

	good := Encoding{{DeptID: "A", AnchorIndex: 0}, {DeptID: "B", AnchorIndex: 1}}
	if err := ValidateEncoding(prob, good); err != nil {
		t.Errorf("ValidateEncoding() on a valid encoding: %v", err)
	}

	missing := Encoding{{DeptID: "A", AnchorIndex: 0}}
	if err := ValidateEncoding(prob, missing); err == nil {
		t.Error("ValidateEncoding() should reject an encoding missing a movable department")
	}

	duplicate := Encoding{{DeptID: "A", AnchorIndex: 0}, {DeptID: "A", AnchorIndex: 1}}
	if err := ValidateEncoding(prob, duplicate); err == nil {
		t.Error("ValidateEncoding() should reject a duplicate department entry")
	}

	unknown := Encoding{{DeptID: "A", AnchorIndex: 0}, {DeptID: "Z", AnchorIndex: 1}}
	if err := ValidateEncoding(prob, unknown); err == nil {
		t.Error("ValidateEncoding() should reject an unknown department id")
	}
}

func TestPLPGrowsMonotonicallyDuringConstruction(t *testing.T) {
	prob := newTestProblem()
	initial := len(initialPLPs(prob))
	rng := rand.New(rand.NewSource(3))
	enc := NewRandomEncoding(prob, initial, rng)

	layout, full := Construct(prob, enc)
	if !full {
		t.Fatalf("Construct() did not place all departments")
	}
	if len(layout.PLPs) <= initial {
		t.Errorf("PLP list should grow past the initial set once departments are placed: got %d, started at %d",
			len(layout.PLPs), initial)
	}
}
