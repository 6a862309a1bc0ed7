package view

import "geoscope/internal/geom"

// Camera2D holds the visible world bounds of the flat view. All pan and
// zoom operations mutate Bounds; the transform derives from it each
// frame.
type Camera2D struct {
	Bounds geom.BBox
	Width  float64 // screen pixels
	Height float64
}

// Transform returns the world-to-screen mapping for the current bounds.
func (c *Camera2D) Transform() Transform2D {
	return Transform2D{Bounds: c.Bounds, Width: c.Width, Height: c.Height}
}

// Resize updates the screen size without touching the world bounds.
func (c *Camera2D) Resize(w, h float64) {
	if w > 0 {
		c.Width = w
	}
	if h > 0 {
		c.Height = h
	}
}

// PanByPixels shifts the view by a screen-space delta. Dragging right
// moves the world left under the cursor, so bounds move the other way;
// the vertical axis is inverted to match the screen.
func (c *Camera2D) PanByPixels(dx, dy float64) {
	wpx, wpy := c.Transform().WorldPerPixel()
	c.Bounds = c.Bounds.Translate(-dx*wpx, dy*wpy)
}

// ZoomAt scales the bounds by factor around the world point under the
// given pixel, keeping that point fixed on screen. Factor < 1 zooms in.
func (c *Camera2D) ZoomAt(px, py, factor float64) {
	if factor <= 0 {
		return
	}
	t := c.Transform()
	wx, wy := t.ToWorld(px, py)
	spanX, spanY := t.spans()

	ratioX := (wx - c.Bounds.MinX) / spanX
	ratioY := (wy - c.Bounds.MinY) / spanY

	newW := spanX * factor
	newH := spanY * factor
	c.Bounds = geom.BBox{
		MinX: wx - newW*ratioX,
		MinY: wy - newH*ratioY,
		MaxX: wx + newW*(1-ratioX),
		MaxY: wy + newH*(1-ratioY),
	}
}

// Fit frames b with relative padding on every side.
func (c *Camera2D) Fit(b geom.BBox, padding float64) {
	c.Bounds = b.ExpandRel(padding)
}

// Camera3D is an orbit camera around the model center. Angles are in
// degrees; Zoom multiplies the fitted scale.
type Camera3D struct {
	RotX    float64
	RotY    float64
	Zoom    float64
	PanX    float64 // screen-space offset, pixels
	PanY    float64
	MinZoom float64
	MaxZoom float64
}

// orbitGain converts drag pixels to degrees.
const orbitGain = 0.5

// Orbit rotates the camera by a screen-space drag delta. Tilt is clamped
// short of the poles so the turntable never flips.
func (c *Camera3D) Orbit(dx, dy float64) {
	c.RotY += dx * orbitGain
	c.RotX += dy * orbitGain
	if c.RotX > 89 {
		c.RotX = 89
	}
	if c.RotX < -89 {
		c.RotX = -89
	}
}

// Pan shifts the projection by a screen-space delta. Unlike the flat
// camera there is no world conversion; 3-D pan is purely in pixels.
func (c *Camera3D) Pan(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}

// ZoomBy multiplies the zoom, clamped to [MinZoom, MaxZoom].
func (c *Camera3D) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	z := c.Zoom * factor
	if z < c.MinZoom {
		z = c.MinZoom
	}
	if z > c.MaxZoom {
		z = c.MaxZoom
	}
	c.Zoom = z
}
