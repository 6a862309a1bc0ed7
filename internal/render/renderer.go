package render

import (
	"geoscope/internal/geom"
)

// Projection maps world coordinates to canvas pixels.
type Projection func(x, y float64) (sx, sy float64)

// PointRadius is the screen radius of point markers in canvas pixels.
// It deliberately does not scale with zoom; points stay legible at any
// camera distance.
const PointRadius = 5

// Draw renders one geometry through the canvas with the given style.
// opacity multiplies the style's own fill/stroke opacities (the layer
// opacity). Malformed pieces (nil geometry, rings under 3 vertices,
// paths under 2) are skipped without aborting the rest.
func Draw(c Canvas, g geom.Geometry, st Style, opacity float64, proj Projection) {
	if g == nil {
		return
	}
	switch v := g.(type) {
	case geom.Point:
		drawPoint(c, geom.Position(v), st, opacity, proj)
	case geom.MultiPoint:
		for _, p := range v {
			drawPoint(c, p, st, opacity, proj)
		}
	case geom.LineString:
		drawLine(c, v, st, opacity, proj)
	case geom.MultiLineString:
		for _, ls := range v {
			drawLine(c, ls, st, opacity, proj)
		}
	case geom.Polygon:
		drawPolygon(c, v, st, opacity, proj)
	case geom.MultiPolygon:
		for _, p := range v {
			drawPolygon(c, p, st, opacity, proj)
		}
	case geom.Collection:
		for _, child := range v {
			Draw(c, child, st, opacity, proj)
		}
	}
}

func drawPoint(c Canvas, p geom.Position, st Style, opacity float64, proj Projection) {
	sx, sy := proj(p.X, p.Y)
	if st.Fill != nil {
		c.FillCircle(sx, sy, PointRadius, ResolveColor(st.Fill.Color, st.Fill.Opacity*opacity))
	}
	if st.Stroke != nil {
		c.StrokeCircle(sx, sy, PointRadius, st.Stroke.Width,
			ResolveColor(st.Stroke.Color, st.Stroke.Opacity*opacity))
	}
}

func drawLine(c Canvas, ls geom.LineString, st Style, opacity float64, proj Projection) {
	if len(ls) < 2 || st.Stroke == nil {
		return
	}
	c.StrokePath(projectPath(ls, proj), false, st.Stroke.Width,
		ResolveColor(st.Stroke.Color, st.Stroke.Opacity*opacity))
}

func drawPolygon(c Canvas, poly geom.Polygon, st Style, opacity float64, proj Projection) {
	var rings [][]Pt
	for _, ring := range poly {
		if len(ring) < 3 {
			continue
		}
		rings = append(rings, projectPath(ring, proj))
	}
	if len(rings) == 0 {
		return
	}
	if st.Fill != nil {
		c.FillPolygon(rings, ResolveColor(st.Fill.Color, st.Fill.Opacity*opacity))
	}
	if st.Stroke != nil {
		col := ResolveColor(st.Stroke.Color, st.Stroke.Opacity*opacity)
		for _, r := range rings {
			c.StrokePath(r, true, st.Stroke.Width, col)
		}
	}
}

func projectPath(ps []geom.Position, proj Projection) []Pt {
	out := make([]Pt, len(ps))
	for i, p := range ps {
		x, y := proj(p.X, p.Y)
		out[i] = Pt{X: x, Y: y}
	}
	return out
}
