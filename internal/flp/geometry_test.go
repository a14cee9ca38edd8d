package flp

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"disjoint", Rect{0, 0, 2, 2}, Rect{5, 5, 2, 2}, false},
		{"overlapping", Rect{0, 0, 2, 2}, Rect{1, 1, 2, 2}, true},
		{"edge sharing is not overlap", Rect{0, 0, 2, 2}, Rect{2, 0, 2, 2}, false},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 1, 1}, true},
		{"identical", Rect{0, 0, 2, 2}, Rect{0, 0, 2, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name          string
		r             Rect
		width, height float64
		want          bool
	}{
		{"inside", Rect{1, 1, 2, 2}, 10, 10, true},
		{"flush with edges", Rect{0, 0, 10, 10}, 10, 10, true},
		{"exceeds width", Rect{9, 0, 2, 2}, 10, 10, false},
		{"negative origin", Rect{-1, 0, 2, 2}, 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InBounds(tt.r, tt.width, tt.height); got != tt.want {
				t.Errorf("InBounds(%v, %g, %g) = %v, want %v", tt.r, tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestManhattan(t *testing.T) {
	got := Manhattan(Point{X: 0, Y: 0}, Point{X: 3, Y: -4})
	if got != 7 {
		t.Errorf("Manhattan() = %v, want 7", got)
	}
}

func TestCenter(t *testing.T) {
	got := Center(Rect{X: 2, Y: 4, W: 4, H: 2})
	want := Point{X: 4, Y: 5}
	if got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestCornersOrder(t *testing.T) {
	c := Corners(Rect{X: 1, Y: 1, W: 2, H: 3})
	want := [4]Point{
		{X: 1, Y: 1}, // bottom-left
		{X: 1, Y: 4}, // top-left
		{X: 3, Y: 1}, // bottom-right
		{X: 3, Y: 4}, // top-right
	}
	if c != want {
		t.Errorf("Corners() = %v, want %v", c, want)
	}
}
