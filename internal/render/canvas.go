package render

import "image/color"

// Pt is a screen-space coordinate in canvas pixels.
type Pt struct {
	X, Y float64
}

// Canvas is a 2-D drawing surface. Implementations: ImageCanvas (RGBA
// raster) and CellCanvas (terminal braille cells). Colors are
// alpha-premultiplied; alpha carries the style opacity.
//
// FillPolygon fills under the even-odd rule: every ring crossing flips
// the inside state, so hole rings subtract from the exterior.
type Canvas interface {
	// Size reports the drawable area in canvas pixels.
	Size() (w, h int)
	Clear(c color.RGBA)
	FillPolygon(rings [][]Pt, c color.RGBA)
	StrokePath(pts []Pt, closed bool, width float64, c color.RGBA)
	FillCircle(x, y, r float64, c color.RGBA)
	StrokeCircle(x, y, r, width float64, c color.RGBA)
}
