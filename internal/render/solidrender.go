package render

import (
	"sort"

	"geoscope/internal/solid"
)

// Mode selects how solid elements are filled.
type Mode int

const (
	ModeSolid Mode = iota
	ModeWireframe
	ModeXRay
)

func (m Mode) String() string {
	switch m {
	case ModeSolid:
		return "solid"
	case ModeWireframe:
		return "wireframe"
	case ModeXRay:
		return "xray"
	}
	return "unknown"
}

// FillOpacity is the face fill alpha for the mode. Wireframe never
// fills; outlines are stroked in every mode.
func (m Mode) FillOpacity() float64 {
	switch m {
	case ModeWireframe:
		return 0
	case ModeXRay:
		return 0.3
	default:
		return 0.8
	}
}

// Next cycles through the render modes.
func (m Mode) Next() Mode {
	switch m {
	case ModeSolid:
		return ModeWireframe
	case ModeWireframe:
		return ModeXRay
	default:
		return ModeSolid
	}
}

// Projection3 maps model coordinates to canvas pixels plus a view-space
// depth. Depth increases toward the viewer; the painter draws low depth
// first.
type Projection3 func(x, y, z float64) (sx, sy, depth float64)

// DefaultTypeColors maps common element types to display colors.
var DefaultTypeColors = map[string]string{
	"wall":   "#9CA3AF",
	"slab":   "#6B7280",
	"column": "#60A5FA",
	"beam":   "#2DD4BF",
	"roof":   "#F472B6",
	"stair":  "#FACC15",
}

const fallbackTypeColor = "#7C3AED"

// ModelStyle configures a solid-scene draw pass.
type ModelStyle struct {
	Mode           Mode
	SelectedID     string
	TypeColors     map[string]string
	HighlightColor string
	StrokeWidth    float64
	HighlightWidth float64
}

// DefaultModelStyle returns the solid-mode defaults with the theme's
// highlight color.
func DefaultModelStyle(t Theme) ModelStyle {
	return ModelStyle{
		Mode:           ModeSolid,
		TypeColors:     DefaultTypeColors,
		HighlightColor: t.Highlight,
		StrokeWidth:    1,
		HighlightWidth: 2.5,
	}
}

func (st ModelStyle) typeColor(typ string) string {
	if c, ok := st.TypeColors[typ]; ok {
		return c
	}
	return fallbackTypeColor
}

type face struct {
	pts      []Pt
	depth    float64
	color    string
	selected bool
}

// DrawModel draws every element of a solid model as 6 quad faces,
// back-to-front by view-space depth (max of the face's corner depths).
// A selected element strokes in the highlight color with increased
// width, overriding its type color.
func DrawModel(c Canvas, m *solid.Model, proj Projection3, st ModelStyle) {
	if m == nil {
		return
	}
	if st.StrokeWidth <= 0 {
		st.StrokeWidth = 1
	}
	if st.HighlightWidth <= 0 {
		st.HighlightWidth = 2.5
	}
	var faces []face
	for _, e := range m.Elements {
		corners := e.Box.Corners()
		var sx, sy, sd [8]float64
		for i, v := range corners {
			sx[i], sy[i], sd[i] = proj(v.X, v.Y, v.Z)
		}
		col := st.typeColor(e.Type)
		sel := st.SelectedID != "" && e.ID == st.SelectedID
		for _, fi := range solid.FaceIndices {
			pts := make([]Pt, 4)
			depth := sd[fi[0]]
			for k, idx := range fi {
				pts[k] = Pt{X: sx[idx], Y: sy[idx]}
				if sd[idx] > depth {
					depth = sd[idx]
				}
			}
			faces = append(faces, face{pts: pts, depth: depth, color: col, selected: sel})
		}
	}
	// painter's order: farthest faces first
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].depth < faces[j].depth })

	fillAlpha := st.Mode.FillOpacity()
	for _, f := range faces {
		if fillAlpha > 0 {
			c.FillPolygon([][]Pt{f.pts}, ResolveColor(f.color, fillAlpha))
		}
		strokeCol, width := f.color, st.StrokeWidth
		if f.selected {
			strokeCol, width = st.HighlightColor, st.HighlightWidth
		}
		c.StrokePath(f.pts, true, width, ResolveColor(strokeCol, 1))
	}
}

// DrawGrid draws a fixed-orientation reference grid across the canvas.
// The grid intentionally ignores the camera orbit; it marks the screen
// plane, not the model ground plane.
func DrawGrid(c Canvas, spacing float64, theme Theme) {
	if spacing <= 0 {
		return
	}
	w, h := c.Size()
	col := ResolveColor(theme.Grid, 0.6)
	for x := 0.0; x <= float64(w); x += spacing {
		c.StrokePath([]Pt{{X: x, Y: 0}, {X: x, Y: float64(h)}}, false, 1, col)
	}
	for y := 0.0; y <= float64(h); y += spacing {
		c.StrokePath([]Pt{{X: 0, Y: y}, {X: float64(w), Y: y}}, false, 1, col)
	}
}
