package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// ImageCanvas is an antialiased RGBA raster backend built on rasterx,
// used for snapshot export and pixel-exact tests.
type ImageCanvas struct {
	img     *image.RGBA
	w, h    int
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// NewImageCanvas allocates a w x h raster canvas.
func NewImageCanvas(w, h int) *ImageCanvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &ImageCanvas{
		img:     img,
		w:       w,
		h:       h,
		filler:  rasterx.NewFiller(w, h, scanner),
		stroker: rasterx.NewStroker(w, h, scanner),
	}
}

func (c *ImageCanvas) Size() (int, int) { return c.w, c.h }

// Image exposes the backing raster.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// WritePNG encodes the current raster as PNG.
func (c *ImageCanvas) WritePNG(w io.Writer) error { return png.Encode(w, c.img) }

func (c *ImageCanvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPolygon fills rings with hole subtraction. The scanner uses
// non-zero winding, so rings are normalized to opposite orientations
// (exterior positive, holes negative); for non-self-intersecting rings
// this matches the even-odd result.
func (c *ImageCanvas) FillPolygon(rings [][]Pt, col color.RGBA) {
	drew := false
	for i, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		area := signedArea(ring)
		if (i == 0 && area < 0) || (i > 0 && area > 0) {
			ring = reversed(ring)
		}
		c.filler.Start(toFixed(ring[0]))
		for _, p := range ring[1:] {
			c.filler.Line(toFixed(p))
		}
		c.filler.Stop(true)
		drew = true
	}
	if !drew {
		return
	}
	c.filler.SetColor(col)
	c.filler.Draw()
	c.filler.Clear()
}

func (c *ImageCanvas) StrokePath(pts []Pt, closed bool, width float64, col color.RGBA) {
	if len(pts) < 2 {
		return
	}
	if width <= 0 {
		width = 1
	}
	c.stroker.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.ArcClip)
	c.stroker.Start(toFixed(pts[0]))
	for _, p := range pts[1:] {
		c.stroker.Line(toFixed(p))
	}
	c.stroker.Stop(closed)
	c.stroker.SetColor(col)
	c.stroker.Draw()
	c.stroker.Clear()
}

func (c *ImageCanvas) FillCircle(x, y, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	rasterx.AddCircle(x, y, r, c.filler)
	c.filler.SetColor(col)
	c.filler.Draw()
	c.filler.Clear()
}

func (c *ImageCanvas) StrokeCircle(x, y, r, width float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	if width <= 0 {
		width = 1
	}
	c.stroker.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.ArcClip)
	rasterx.AddCircle(x, y, r, c.stroker)
	c.stroker.SetColor(col)
	c.stroker.Draw()
	c.stroker.Clear()
}

func toFixed(p Pt) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.X * 64),
		Y: fixed.Int26_6(p.Y * 64),
	}
}

// signedArea is positive for counter-clockwise rings in a y-down screen
// space.
func signedArea(ring []Pt) float64 {
	sum := 0.0
	for i := range ring {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func reversed(ring []Pt) []Pt {
	out := make([]Pt, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}
