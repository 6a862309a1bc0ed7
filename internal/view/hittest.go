package view

import (
	"geoscope/internal/geom"
	"geoscope/internal/solid"
)

// Hit identifies a picked feature by its layer and feature indices.
type Hit struct {
	Layer   int
	Feature int
}

// HitTester resolves clicks against the layer stack. The default test
// is bounding-box containment, which is cheap and predictable for
// sparse data; Exact switches polygons to even-odd containment so holes
// reject hits.
type HitTester struct {
	Exact bool
}

// Pick returns the topmost visible feature under the world point, or
// ok=false when nothing is hit. Later layers win over earlier ones;
// within a layer features are tried in stored order and the first hit
// wins.
func (ht HitTester) Pick(c *Compositor, wx, wy float64) (Hit, bool) {
	if c == nil {
		return Hit{}, false
	}
	probe := geom.BBox{MinX: wx, MinY: wy, MaxX: wx, MaxY: wy}
	for li := c.Len() - 1; li >= 0; li-- {
		l := c.Layer(li)
		if l == nil || !l.Visible || l.Features == nil {
			continue
		}
		for _, fi := range l.Search(probe) {
			f := l.Features.Features[fi]
			if ht.hits(f.Geometry, wx, wy) {
				return Hit{Layer: li, Feature: fi}, true
			}
		}
	}
	return Hit{}, false
}

func (ht HitTester) hits(g geom.Geometry, wx, wy float64) bool {
	if g == nil {
		return false
	}
	b, ok := g.Bounds()
	if !ok || !b.Contains(wx, wy) {
		return false
	}
	if !ht.Exact {
		return true
	}
	switch v := g.(type) {
	case geom.Polygon:
		return v.ContainsPoint(wx, wy)
	case geom.MultiPolygon:
		return v.ContainsPoint(wx, wy)
	case geom.Collection:
		for _, m := range v {
			if ht.hits(m, wx, wy) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// PickElement returns the ID of the frontmost model element whose
// projected screen box contains the pixel, or ok=false. Ties resolve to
// the element nearest the viewer.
func PickElement(m *solid.Model, proj Transform3D, px, py float64) (string, bool) {
	if m == nil {
		return "", false
	}
	bestID := ""
	bestDepth := 0.0
	found := false
	for _, e := range m.Elements {
		minX, minY := 0.0, 0.0
		maxX, maxY := 0.0, 0.0
		depth := 0.0
		for i, corner := range e.Box.Corners() {
			sx, sy, d := proj.Project(corner.X, corner.Y, corner.Z)
			if i == 0 {
				minX, maxX = sx, sx
				minY, maxY = sy, sy
				depth = d
				continue
			}
			if sx < minX {
				minX = sx
			}
			if sx > maxX {
				maxX = sx
			}
			if sy < minY {
				minY = sy
			}
			if sy > maxY {
				maxY = sy
			}
			if d > depth {
				depth = d
			}
		}
		if px < minX || px > maxX || py < minY || py > maxY {
			continue
		}
		if !found || depth > bestDepth {
			bestID = e.ID
			bestDepth = depth
			found = true
		}
	}
	return bestID, found
}
