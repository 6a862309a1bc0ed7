package view

import (
	"math"

	"geoscope/internal/geom"
	"geoscope/internal/render"
	"geoscope/internal/solid"
)

// Transform2D maps world coordinates inside Bounds onto a screen of
// Width x Height pixels. Screen Y grows downward while world Y grows
// upward, so the vertical axis is inverted.
type Transform2D struct {
	Bounds geom.BBox
	Width  float64
	Height float64
}

// spans returns the world extents with degenerate ranges widened to 1
// so the mapping never divides by zero.
func (t Transform2D) spans() (float64, float64) {
	w := t.Bounds.Width()
	h := t.Bounds.Height()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// ToScreen maps a world position to pixel coordinates.
func (t Transform2D) ToScreen(x, y float64) (float64, float64) {
	w, h := t.spans()
	sx := (x - t.Bounds.MinX) / w * t.Width
	sy := (t.Bounds.MaxY - y) / h * t.Height
	return sx, sy
}

// ToWorld maps pixel coordinates back to a world position. It is the
// exact inverse of ToScreen for non-degenerate bounds.
func (t Transform2D) ToWorld(sx, sy float64) (float64, float64) {
	w, h := t.spans()
	x := t.Bounds.MinX + sx/t.Width*w
	y := t.Bounds.MaxY - sy/t.Height*h
	return x, y
}

// WorldPerPixel returns the world-unit size of one pixel on each axis.
func (t Transform2D) WorldPerPixel() (float64, float64) {
	w, h := t.spans()
	return w / t.Width, h / t.Height
}

// Projection adapts the transform to the renderer's callback shape.
func (t Transform2D) Projection() render.Projection {
	return func(x, y float64) (float64, float64) { return t.ToScreen(x, y) }
}

// Transform3D is an orthographic projection of model space onto the
// screen. The model is rotated around the vertical axis by RotY, then
// tilted around the horizontal axis by RotX, scaled, and centered.
// Returned depth grows toward the viewer.
type Transform3D struct {
	Center solid.Vec
	RotX   float64 // degrees, tilt
	RotY   float64 // degrees, turntable
	Scale  float64 // pixels per model unit at zoom 1
	Zoom   float64
	PanX   float64 // screen-space pan offset, pixels
	PanY   float64
	Width  float64
	Height float64
}

// FitTransform3D builds a projection that frames box inside a screen of
// w x h pixels with a small margin.
func FitTransform3D(box solid.Box, w, h float64) Transform3D {
	size := box.Max.Sub(box.Min)
	ext := math.Max(size.X, math.Max(size.Y, size.Z))
	if ext <= 0 {
		ext = 1
	}
	scale := 0.4 * math.Min(w, h) / ext
	return Transform3D{
		Center: box.Center(),
		RotX:   30,
		RotY:   -45,
		Scale:  scale,
		Zoom:   1,
		Width:  w,
		Height: h,
	}
}

// Project maps a model-space point to screen coordinates and depth.
func (t Transform3D) Project(x, y, z float64) (sx, sy, depth float64) {
	x0 := x - t.Center.X
	y0 := y - t.Center.Y
	z0 := z - t.Center.Z

	ry := t.RotY * math.Pi / 180
	rx := t.RotX * math.Pi / 180
	sinY, cosY := math.Sincos(ry)
	sinX, cosX := math.Sincos(rx)

	// turntable around the vertical axis
	x1 := x0*cosY + z0*sinY
	z1 := -x0*sinY + z0*cosY

	// tilt around the horizontal axis
	y2 := y0*cosX - z1*sinX
	z2 := y0*sinX + z1*cosX

	s := t.Scale * t.Zoom
	sx = t.Width/2 + t.PanX + x1*s
	sy = t.Height/2 + t.PanY - y2*s
	return sx, sy, z2
}

// Projection adapts the transform to the solid renderer's callback
// shape.
func (t Transform3D) Projection() render.Projection3 {
	return func(x, y, z float64) (float64, float64, float64) { return t.Project(x, y, z) }
}
