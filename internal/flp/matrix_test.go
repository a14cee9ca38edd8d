package flp

import "testing"

func TestIDMatrixSetGet(t *testing.T) {
	m := NewIDMatrix([]string{"A", "B", "C"})

	if !m.Set("A", "B", 4.5) {
		t.Fatal("Set(A, B) should succeed for known ids")
	}
	if got := m.Get("A", "B"); got != 4.5 {
		t.Errorf("Get(A, B) = %v, want 4.5", got)
	}
	if got := m.Get("B", "A"); got != 0 {
		t.Errorf("Get(B, A) = %v, want 0 (unset)", got)
	}
	if m.Set("A", "Z", 1) {
		t.Error("Set with unknown id should return false")
	}
	if got := m.Get("A", "Z"); got != 0 {
		t.Errorf("Get with unknown id = %v, want 0", got)
	}
}

func TestIDMatrixSetSparse(t *testing.T) {
	m := NewIDMatrix([]string{"A", "B"})
	unknown := m.SetSparse(map[[2]string]float64{
		{"A", "B"}: 1,
		{"A", "Z"}: 2,
	})
	if len(unknown) != 1 || unknown[0] != ([2]string{"A", "Z"}) {
		t.Errorf("SetSparse unknown = %v, want [[A Z]]", unknown)
	}
	if m.Get("A", "B") != 1 {
		t.Errorf("Get(A, B) = %v, want 1", m.Get("A", "B"))
	}
}

func TestIDMatrixDense(t *testing.T) {
	m := NewIDMatrix([]string{"A", "B"})
	m.Set("A", "B", 3)
	d := m.Dense()
	if len(d) != 2 || len(d[0]) != 2 {
		t.Fatalf("Dense() shape = %dx%d, want 2x2", len(d), len(d[0]))
	}
	if d[0][1] != 3 {
		t.Errorf("Dense()[0][1] = %v, want 3", d[0][1])
	}
}

func TestParseRelCode(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantOk  bool
	}{
		{"A", 4, true},
		{"a", 4, true},
		{" e ", 3, true},
		{"I", 2, true},
		{"O", 1, true},
		{"U", 0, true},
		{"X", -1, true},
		{"2.5", 2.5, true},
		{"-1", -1, true},
		{"nonsense", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRelCode(tt.in)
			if ok != tt.wantOk {
				t.Fatalf("ParseRelCode(%q) ok = %v, want %v", tt.in, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("ParseRelCode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
