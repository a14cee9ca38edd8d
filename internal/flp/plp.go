package flp

// PLP is a potential location point: an anchor the constructor may try
// to flush a department's lower-left corner against (spec §4.2).
type PLP struct {
	X, Y float64
}

// initialPLPs seeds the potential-location-point set from the facility
// boundary, every fixed department, every obstacle, and every special
// location, in that order. Each rectangle contributes its four corners
// via Corners' bottom-left, top-left, bottom-right, top-right ordering;
// each special location contributes its single point.
func initialPLPs(prob *Problem) []PLP {
	var pts []PLP

	facility := Rect{X: 0, Y: 0, W: prob.Facility.Width, H: prob.Facility.Height}
	for _, c := range Corners(facility) {
		pts = append(pts, PLP{X: c.X, Y: c.Y})
	}

	for _, id := range prob.DeptOrder {
		d := prob.Departments[id]
		if !d.Fixed {
			continue
		}
		r := Rect{X: d.FixedLocation.X, Y: d.FixedLocation.Y, W: d.W, H: d.H}
		for _, c := range Corners(r) {
			pts = append(pts, PLP{X: c.X, Y: c.Y})
		}
	}

	for _, o := range prob.Obstacles {
		for _, c := range Corners(o.Rect()) {
			pts = append(pts, PLP{X: c.X, Y: c.Y})
		}
	}

	for _, sl := range prob.SpecialLocations {
		pts = append(pts, PLP{X: sl.X, Y: sl.Y})
	}

	return pts
}

// appendCorners extends the layout's PLP set with the four corners of a
// newly placed department's effective rectangle, per spec §4.3: every
// successful placement grows the anchor set for subsequent departments.
func appendCorners(plps []PLP, r Rect) []PLP {
	for _, c := range Corners(r) {
		plps = append(plps, PLP{X: c.X, Y: c.Y})
	}
	return plps
}
