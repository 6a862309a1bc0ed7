package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FillStyle paints geometry interiors.
type FillStyle struct {
	Color   string // hex, e.g. "#7C3AED"
	Opacity float64
}

// StrokeStyle paints geometry outlines.
type StrokeStyle struct {
	Color   string
	Width   float64
	Opacity float64
}

// Style describes how one layer draws its features. Nil fill or stroke
// disables that pass; both nil is legal and renders nothing (used for
// x-ray or placeholder layers).
type Style struct {
	Fill   *FillStyle
	Stroke *StrokeStyle
}

// ResolveColor parses a hex color and applies an alpha multiplier,
// returning an alpha-premultiplied RGBA. Unparsable colors fall back to
// mid-gray so a bad style degrades instead of failing the frame.
func ResolveColor(hex string, alpha float64) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(c.R*alpha*255 + 0.5),
		G: uint8(c.G*alpha*255 + 0.5),
		B: uint8(c.B*alpha*255 + 0.5),
		A: uint8(alpha*255 + 0.5),
	}
}

// Lighten blends a hex color toward white in Lab space. Used to derive
// hover/selection accents from a base color.
func Lighten(hex string, t float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t).Hex()
}

// Theme carries the non-layer colors of a scene.
type Theme struct {
	Name       string
	Background string
	Grid       string
	Highlight  string
	// Palette cycles across layers that were added without an explicit
	// style.
	Palette []string
}

// DarkTheme is the default viewport theme.
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: "#0B0F14",
		Grid:       "#243141",
		Highlight:  "#FFA500",
		Palette:    []string{"#7C3AED", "#2DD4BF", "#F472B6", "#FACC15", "#60A5FA"},
	}
}

// LightTheme inverts the surface for bright terminals.
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: "#F8FAFC",
		Grid:       "#CBD5E1",
		Highlight:  "#D97706",
		Palette:    []string{"#6D28D9", "#0D9488", "#DB2777", "#CA8A04", "#2563EB"},
	}
}

// PaletteStyle builds a default layer style from the theme palette.
func (t Theme) PaletteStyle(i int) Style {
	col := "#7C3AED"
	if len(t.Palette) > 0 {
		col = t.Palette[i%len(t.Palette)]
	}
	return Style{
		Fill:   &FillStyle{Color: col, Opacity: 0.45},
		Stroke: &StrokeStyle{Color: col, Width: 1, Opacity: 1},
	}
}

// HighlightStyle is the stroke applied over a selected feature.
func (t Theme) HighlightStyle() Style {
	return Style{
		Stroke: &StrokeStyle{Color: t.Highlight, Width: 2.5, Opacity: 1},
	}
}
