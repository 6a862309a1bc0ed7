package render

import (
	"testing"

	"geoscope/internal/solid"
)

// flatProj projects model x/y straight to screen and uses z as depth
// toward the viewer.
func flatProj(x, y, z float64) (float64, float64, float64) { return x, y, z }

func twoBoxModel() *solid.Model {
	return &solid.Model{Elements: []solid.Element{
		{ID: "far", Type: "wall", Box: solid.Box{Min: solid.Vec{X: 0, Y: 0, Z: 0}, Max: solid.Vec{X: 10, Y: 10, Z: 1}}},
		{ID: "near", Type: "wall", Box: solid.Box{Min: solid.Vec{X: 0, Y: 0, Z: 10}, Max: solid.Vec{X: 10, Y: 10, Z: 11}}},
	}}
}

func TestDrawModelFaceCount(t *testing.T) {
	c := newRecordCanvas(100, 100)
	st := DefaultModelStyle(DarkTheme())
	DrawModel(c, twoBoxModel(), flatProj, st)
	if len(c.fillPolys) != 12 {
		t.Errorf("filled faces = %d, want 12", len(c.fillPolys))
	}
	if len(c.strokePaths) != 12 {
		t.Errorf("stroked faces = %d, want 12", len(c.strokePaths))
	}
}

func TestDrawModelPainterOrder(t *testing.T) {
	m := &solid.Model{Elements: []solid.Element{
		// near element listed first to prove ordering comes from depth,
		// not element order
		{ID: "near", Type: "slab", Box: solid.Box{Min: solid.Vec{X: 0, Y: 0, Z: 10}, Max: solid.Vec{X: 10, Y: 10, Z: 11}}},
		{ID: "far", Type: "wall", Box: solid.Box{Min: solid.Vec{X: 0, Y: 0, Z: 0}, Max: solid.Vec{X: 10, Y: 10, Z: 1}}},
	}}
	c := newRecordCanvas(100, 100)
	st := DefaultModelStyle(DarkTheme())
	DrawModel(c, m, flatProj, st)
	if len(c.fillPolys) != 12 {
		t.Fatalf("filled faces = %d, want 12", len(c.fillPolys))
	}
	farCol := ResolveColor(DefaultTypeColors["wall"], st.Mode.FillOpacity())
	nearCol := ResolveColor(DefaultTypeColors["slab"], st.Mode.FillOpacity())
	for i := 0; i < 6; i++ {
		if c.fillColors[i] != farCol {
			t.Fatalf("fill %d = %v, want far color %v", i, c.fillColors[i], farCol)
		}
	}
	for i := 6; i < 12; i++ {
		if c.fillColors[i] != nearCol {
			t.Fatalf("fill %d = %v, want near color %v", i, c.fillColors[i], nearCol)
		}
	}
}

func TestDrawModelModes(t *testing.T) {
	tests := []struct {
		mode      Mode
		wantFills int
	}{
		{ModeSolid, 12},
		{ModeXRay, 12},
		{ModeWireframe, 0},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			c := newRecordCanvas(100, 100)
			st := DefaultModelStyle(DarkTheme())
			st.Mode = tt.mode
			DrawModel(c, twoBoxModel(), flatProj, st)
			if len(c.fillPolys) != tt.wantFills {
				t.Errorf("fills = %d, want %d", len(c.fillPolys), tt.wantFills)
			}
			if len(c.strokePaths) != 12 {
				t.Errorf("strokes = %d, want 12 in every mode", len(c.strokePaths))
			}
		})
	}
}

func TestDrawModelSelectionHighlight(t *testing.T) {
	c := newRecordCanvas(100, 100)
	st := DefaultModelStyle(DarkTheme())
	st.SelectedID = "near"
	DrawModel(c, twoBoxModel(), flatProj, st)
	highlight := ResolveColor(st.HighlightColor, 1)
	var wide, normal int
	for i := range c.strokePaths {
		if c.strokeWidths[i] == st.HighlightWidth && c.strokeColors[i] == highlight {
			wide++
		} else if c.strokeWidths[i] == st.StrokeWidth {
			normal++
		}
	}
	if wide != 6 {
		t.Errorf("highlighted face strokes = %d, want 6", wide)
	}
	if normal != 6 {
		t.Errorf("normal face strokes = %d, want 6", normal)
	}
}

func TestModeCycle(t *testing.T) {
	m := ModeSolid
	seen := map[Mode]bool{}
	for i := 0; i < 3; i++ {
		seen[m] = true
		m = m.Next()
	}
	if len(seen) != 3 || m != ModeSolid {
		t.Errorf("Next() does not cycle all modes: %v, back to %v", seen, m)
	}
}

func TestDrawModelNil(t *testing.T) {
	c := newRecordCanvas(10, 10)
	DrawModel(c, nil, flatProj, DefaultModelStyle(DarkTheme()))
	if len(c.fillPolys)+len(c.strokePaths) != 0 {
		t.Error("nil model drew faces")
	}
}

func TestDrawGrid(t *testing.T) {
	c := newRecordCanvas(40, 20)
	DrawGrid(c, 10, DarkTheme())
	// 5 vertical (0,10,20,30,40) + 3 horizontal (0,10,20)
	if len(c.strokePaths) != 8 {
		t.Errorf("grid strokes = %d, want 8", len(c.strokePaths))
	}
	c2 := newRecordCanvas(40, 20)
	DrawGrid(c2, 0, DarkTheme())
	if len(c2.strokePaths) != 0 {
		t.Error("zero spacing drew a grid")
	}
}
