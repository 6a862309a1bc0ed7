package geom

// ContainsPoint reports whether (x, y) is inside the polygon under the
// even-odd rule: a crossing of any ring, exterior or hole, flips the
// inside/outside state, so points inside a hole are outside the polygon.
func (p Polygon) ContainsPoint(x, y float64) bool {
	inside := false
	for _, ring := range p {
		if len(ring) < 3 {
			continue
		}
		j := len(ring) - 1
		for i := 0; i < len(ring); i++ {
			a, b := ring[i], ring[j]
			if (a.Y > y) != (b.Y > y) {
				xi := a.X + (y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
				if x < xi {
					inside = !inside
				}
			}
			j = i
		}
	}
	return inside
}

// ContainsPoint reports whether (x, y) is inside any member polygon.
func (mp MultiPolygon) ContainsPoint(x, y float64) bool {
	for _, p := range mp {
		if p.ContainsPoint(x, y) {
			return true
		}
	}
	return false
}
