package flp

import "testing"

func TestEngineOptimizeEndToEnd(t *testing.T) {
	eng := New(10, 10)
	eng.AddDepartment("A", 4, 2, false, Point{}, true, 0.3, false, false, 1)
	eng.AddDepartment("B", 3, 3, false, Point{}, false, 0, true, false, 3)
	eng.AddSpecialLocation("exit1", 0, 0, Exit)
	eng.SetFlowMatrix(map[[2]string]float64{{"A", "B"}: 5})
	eng.SetWeights(1, 1, 1, 1)

	result, err := eng.Optimize(10, 5, 10, 123, nil)
	if err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}
	if len(result.DepartmentPlacements) != 2 {
		t.Errorf("expected 2 placed departments, got %d", len(result.DepartmentPlacements))
	}
}

func TestEngineAddDepartmentDuplicateLastWins(t *testing.T) {
	eng := New(10, 10)
	warnings := 0
	eng.SetWarnFunc(func(format string, args ...any) { warnings++ })

	eng.AddDepartment("A", 2, 2, false, Point{}, false, 0, false, false, 0)
	eng.AddDepartment("A", 5, 5, false, Point{}, false, 0, false, false, 0)

	if warnings == 0 {
		t.Error("expected a warning on duplicate department id")
	}
	if got := eng.prob.Departments["A"].W; got != 5 {
		t.Errorf("duplicate add should overwrite: W = %v, want 5", got)
	}
	if len(eng.prob.DeptOrder) != 1 {
		t.Errorf("duplicate add should not grow DeptOrder: got %v", eng.prob.DeptOrder)
	}
}

func TestEngineValidateRejectsMissingDepartments(t *testing.T) {
	eng := New(10, 10)
	if err := eng.Validate(); err == nil {
		t.Error("Validate() should fail with no departments")
	}
}

func TestEngineSetMatrixWarnsOnUnknownID(t *testing.T) {
	eng := New(10, 10)
	eng.AddDepartment("A", 2, 2, false, Point{}, false, 0, false, false, 0)

	warnings := 0
	eng.SetWarnFunc(func(format string, args ...any) { warnings++ })
	eng.SetFlowMatrix(map[[2]string]float64{{"A", "ghost"}: 1})

	if warnings == 0 {
		t.Error("expected a warning for a flow matrix entry referencing an unknown department")
	}
}
