package flp

import "math"

// Point is a 2D coordinate with the facility's origin at its lower-left
// corner.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether the open interiors of a and b intersect.
// Edge-sharing (the boundary case of the strict inequalities) is not
// overlap, per spec §4.1.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// InBounds reports whether r lies fully within [0, width] x [0, height].
func InBounds(r Rect, width, height float64) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= width && r.Y+r.H <= height
}

// Manhattan returns the L1 distance between two points.
func Manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Center returns the centroid of r.
func Center(r Rect) Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Corners returns the four corners of r in bottom-left, top-left,
// bottom-right, top-right order, matching the PLP append order of spec §4.2.
func Corners(r Rect) [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X, Y: r.Y + r.H},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
	}
}
