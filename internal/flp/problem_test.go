package flp

import "testing"

// newTestProblem builds a small two-department problem on a 10x10
// facility for use across constructor, evaluator, and search tests.
func newTestProblem() *Problem {
	prob := &Problem{
		Facility:    Facility{Width: 10, Height: 10},
		Departments: make(map[string]*Department),
		Weights:     NewWeights(),
	}
	for _, d := range []*Department{
		{ID: "A", W: 4, H: 2, CanRotate: true},
		{ID: "B", W: 3, H: 3, CanRotate: false},
	} {
		prob.Departments[d.ID] = d
		prob.DeptOrder = append(prob.DeptOrder, d.ID)
		if !d.Fixed {
			prob.MovableOrder = append(prob.MovableOrder, d.ID)
		}
	}
	prob.Flow = NewIDMatrix(prob.DeptOrder)
	prob.Rel = NewIDMatrix(prob.DeptOrder)
	prob.Prec = NewIDMatrix(prob.DeptOrder)
	prob.Hazard = NewIDMatrix(prob.DeptOrder)
	prob.Weights.Set(WeightDistance, 1)
	prob.Weights.Set(WeightAdjacency, 1)
	prob.Weights.Set(WeightSafety, 1)
	prob.Weights.Set(WeightFlexibility, 1)
	return prob
}

func TestProblemValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Problem)
		wantErr bool
	}{
		{"valid", func(p *Problem) {}, false},
		{"zero facility width", func(p *Problem) { p.Facility.Width = 0 }, true},
		{"negative facility height", func(p *Problem) { p.Facility.Height = -1 }, true},
		{"no departments", func(p *Problem) { p.Departments = map[string]*Department{}; p.DeptOrder = nil }, true},
		{"zero department width", func(p *Problem) { p.Departments["A"].W = 0 }, true},
		{"fixed department out of bounds", func(p *Problem) {
			p.Departments["A"].Fixed = true
			p.Departments["A"].FixedLocation = Point{X: 8, Y: 8}
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prob := newTestProblem()
			tt.mutate(prob)
			err := prob.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
