package flp

// Construct builds a Layout from enc for prob, per spec §4.3. It returns
// the resulting layout and whether every movable department was placed
// ("full success").
func Construct(prob *Problem, enc Encoding) (*Layout, bool) {
	layout := NewLayout(prob)
	checkFixedDepartments(prob, layout)

	layout.PLPs = initialPLPs(prob)

	allPlaced := true
	for _, entry := range enc {
		d, ok := prob.Departments[entry.DeptID]
		if !ok || d.Fixed {
			allPlaced = false
			continue
		}

		tryOrder := []Orientation{Horizontal}
		if d.CanRotate {
			tryOrder = append(tryOrder, Vertical)
		}

		rect, placed := attemptPreferred(prob, layout, d, entry.AnchorIndex, tryOrder)
		if !placed {
			rect, placed = attemptFallback(prob, layout, d, tryOrder)
		}

		if !placed {
			allPlaced = false
			continue
		}

		layout.Placements[d.ID] = &Placement{X: rect.X, Y: rect.Y, Orientation: effectiveOrientation(d, rect)}
		layout.PlacedCount++
		layout.PLPs = appendCorners(layout.PLPs, rect)
	}

	return layout, allPlaced && layout.PlacedCount == len(prob.MovableOrder)
}

// checkFixedDepartments records warnings (but never fails) when a fixed
// department's declared placement is out of bounds or overlaps another
// fixed department or an obstacle.
func checkFixedDepartments(prob *Problem, layout *Layout) {
	for _, id := range prob.DeptOrder {
		d := prob.Departments[id]
		if !d.Fixed {
			continue
		}
		r := Rect{X: d.FixedLocation.X, Y: d.FixedLocation.Y, W: d.W, H: d.H}
		if !InBounds(r, prob.Facility.Width, prob.Facility.Height) {
			layout.warn("fixed department %q lies outside facility bounds", id)
		}
		for _, otherID := range prob.DeptOrder {
			if otherID == id {
				continue
			}
			other := prob.Departments[otherID]
			if !other.Fixed {
				continue
			}
			otherR := Rect{X: other.FixedLocation.X, Y: other.FixedLocation.Y, W: other.W, H: other.H}
			if Overlaps(r, otherR) {
				layout.warn("fixed department %q overlaps fixed department %q", id, otherID)
			}
		}
		for _, o := range prob.Obstacles {
			if Overlaps(r, o.Rect()) {
				layout.warn("fixed department %q overlaps an obstacle", id)
			}
		}
	}
}

// attemptPreferred tries the anchor named in the encoding entry, in each
// candidate orientation, accepting the first that fits.
func attemptPreferred(prob *Problem, layout *Layout, d *Department, anchorIndex int, tryOrder []Orientation) (Rect, bool) {
	n := len(layout.PLPs)
	if n == 0 {
		return Rect{}, false
	}
	anchor := layout.PLPs[((anchorIndex%n)+n)%n]
	return tryAnchor(prob, layout, d, anchor, tryOrder)
}

// attemptFallback scans every anchor in the current PLP list, in order,
// trying each orientation at each, accepting the first success.
func attemptFallback(prob *Problem, layout *Layout, d *Department, tryOrder []Orientation) (Rect, bool) {
	for _, anchor := range layout.PLPs {
		if rect, ok := tryAnchor(prob, layout, d, anchor, tryOrder); ok {
			return rect, ok
		}
	}
	return Rect{}, false
}

// tryAnchor places d's lower-left corner at anchor under each orientation
// in tryOrder, returning the first in-bounds, non-overlapping rectangle.
func tryAnchor(prob *Problem, layout *Layout, d *Department, anchor PLP, tryOrder []Orientation) (Rect, bool) {
	for _, o := range tryOrder {
		w, h := d.EffectiveWH(o)
		rect := Rect{X: anchor.X, Y: anchor.Y, W: w, H: h}
		if fits(prob, layout, d.ID, rect) {
			return rect, true
		}
	}
	return Rect{}, false
}

// fits reports whether rect is in bounds and overlaps no obstacle and no
// already-placed department other than excludeID.
func fits(prob *Problem, layout *Layout, excludeID string, rect Rect) bool {
	if !InBounds(rect, prob.Facility.Width, prob.Facility.Height) {
		return false
	}
	for _, o := range prob.Obstacles {
		if Overlaps(rect, o.Rect()) {
			return false
		}
	}
	for id, p := range layout.Placements {
		if id == excludeID {
			continue
		}
		other := prob.Departments[id]
		w, h := other.EffectiveWH(p.Orientation)
		if Overlaps(rect, Rect{X: p.X, Y: p.Y, W: w, H: h}) {
			return false
		}
	}
	return true
}

// effectiveOrientation recovers which orientation produced rect, by
// comparing its dimensions against the department's declared ones.
func effectiveOrientation(d *Department, rect Rect) Orientation {
	hw, hh := d.EffectiveWH(Horizontal)
	if rect.W == hw && rect.H == hh {
		return Horizontal
	}
	return Vertical
}
