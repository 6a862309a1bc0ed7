package render

import (
	"image/color"
	"testing"

	"geoscope/internal/geom"
)

// recordCanvas counts draw calls for renderer tests.
type recordCanvas struct {
	w, h          int
	fillPolys     [][][]Pt
	fillColors    []color.RGBA
	strokePaths   [][]Pt
	strokeClosed  []bool
	strokeWidths  []float64
	strokeColors  []color.RGBA
	fillCircles   int
	strokeCircles int
}

func newRecordCanvas(w, h int) *recordCanvas { return &recordCanvas{w: w, h: h} }

func (r *recordCanvas) Size() (int, int)   { return r.w, r.h }
func (r *recordCanvas) Clear(color.RGBA)   {}
func (r *recordCanvas) FillPolygon(rings [][]Pt, c color.RGBA) {
	r.fillPolys = append(r.fillPolys, rings)
	r.fillColors = append(r.fillColors, c)
}
func (r *recordCanvas) StrokePath(pts []Pt, closed bool, width float64, c color.RGBA) {
	r.strokePaths = append(r.strokePaths, pts)
	r.strokeClosed = append(r.strokeClosed, closed)
	r.strokeWidths = append(r.strokeWidths, width)
	r.strokeColors = append(r.strokeColors, c)
}
func (r *recordCanvas) FillCircle(_, _, _ float64, _ color.RGBA)      { r.fillCircles++ }
func (r *recordCanvas) StrokeCircle(_, _, _, _ float64, _ color.RGBA) { r.strokeCircles++ }

func identity(x, y float64) (float64, float64) { return x, y }

func solidStyle() Style {
	return Style{
		Fill:   &FillStyle{Color: "#ff0000", Opacity: 1},
		Stroke: &StrokeStyle{Color: "#00ff00", Width: 1, Opacity: 1},
	}
}

func TestDrawSkipsMalformed(t *testing.T) {
	tests := []struct {
		name string
		g    geom.Geometry
	}{
		{"nil geometry", nil},
		{"short linestring", geom.LineString{{X: 1, Y: 1}}},
		{"polygon with only short rings", geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 1}}}},
		{"empty multipolygon", geom.MultiPolygon{}},
		{"empty collection", geom.Collection{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newRecordCanvas(100, 100)
			Draw(c, tt.g, solidStyle(), 1, identity)
			if len(c.fillPolys)+len(c.strokePaths)+c.fillCircles+c.strokeCircles != 0 {
				t.Error("malformed geometry produced draw calls")
			}
		})
	}
}

func TestDrawPoint(t *testing.T) {
	c := newRecordCanvas(100, 100)
	Draw(c, geom.Point{X: 5, Y: 5}, solidStyle(), 1, identity)
	if c.fillCircles != 1 || c.strokeCircles != 1 {
		t.Errorf("fill=%d stroke=%d, want 1 and 1", c.fillCircles, c.strokeCircles)
	}
}

func TestDrawPolygonWithHole(t *testing.T) {
	poly := geom.Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}},
		{{X: 1, Y: 1}, {X: 2, Y: 2}}, // short ring, skipped
	}
	c := newRecordCanvas(100, 100)
	Draw(c, poly, solidStyle(), 1, identity)
	if len(c.fillPolys) != 1 {
		t.Fatalf("fill calls = %d, want 1", len(c.fillPolys))
	}
	if len(c.fillPolys[0]) != 2 {
		t.Errorf("filled rings = %d, want 2 (short ring dropped)", len(c.fillPolys[0]))
	}
	if len(c.strokePaths) != 2 {
		t.Errorf("stroked rings = %d, want 2", len(c.strokePaths))
	}
	for i, closed := range c.strokeClosed {
		if !closed {
			t.Errorf("ring stroke %d not closed", i)
		}
	}
}

func TestDrawCollectionRecurses(t *testing.T) {
	col := geom.Collection{
		geom.Point{X: 1, Y: 1},
		geom.LineString{{X: 0, Y: 0}, {X: 5, Y: 5}},
		geom.Collection{geom.Point{X: 2, Y: 2}},
	}
	c := newRecordCanvas(100, 100)
	Draw(c, col, solidStyle(), 1, identity)
	if c.fillCircles != 2 {
		t.Errorf("point draws = %d, want 2", c.fillCircles)
	}
	if len(c.strokePaths) != 1 {
		t.Errorf("line draws = %d, want 1", len(c.strokePaths))
	}
}

func TestDrawStyleWithoutFillOrStroke(t *testing.T) {
	c := newRecordCanvas(100, 100)
	poly := geom.Polygon{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}}
	Draw(c, poly, Style{}, 1, identity)
	if len(c.fillPolys)+len(c.strokePaths) != 0 {
		t.Error("empty style should draw nothing")
	}
}

func TestDrawAppliesLayerOpacity(t *testing.T) {
	c := newRecordCanvas(100, 100)
	ls := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 10}}
	Draw(c, ls, solidStyle(), 0.5, identity)
	if len(c.strokeColors) != 1 {
		t.Fatalf("stroke calls = %d, want 1", len(c.strokeColors))
	}
	if a := c.strokeColors[0].A; a < 120 || a > 135 {
		t.Errorf("stroke alpha = %d, want ~128", a)
	}
}
