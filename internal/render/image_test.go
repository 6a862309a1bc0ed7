package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestImageCanvasFillAndClear(t *testing.T) {
	c := NewImageCanvas(40, 40)
	bg := color.RGBA{R: 10, G: 10, B: 10, A: 255}
	c.Clear(bg)
	if got := c.Image().RGBAAt(20, 20); got != bg {
		t.Fatalf("after Clear, pixel = %v, want %v", got, bg)
	}
	c.FillPolygon([][]Pt{{{5, 5}, {35, 5}, {35, 35}, {5, 35}}}, color.RGBA{R: 255, A: 255})
	if got := c.Image().RGBAAt(20, 20); got.R < 200 {
		t.Errorf("center of filled square = %v, want red", got)
	}
	if got := c.Image().RGBAAt(1, 1); got != bg {
		t.Errorf("outside square = %v, want background", got)
	}
}

func TestImageCanvasHoleSubtraction(t *testing.T) {
	c := NewImageCanvas(40, 40)
	c.Clear(color.RGBA{A: 255})
	// both rings deliberately in the same orientation; the canvas
	// normalizes holes to the opposite winding
	c.FillPolygon([][]Pt{
		{{0, 0}, {40, 0}, {40, 40}, {0, 40}},
		{{12, 12}, {28, 12}, {28, 28}, {12, 28}},
	}, color.RGBA{G: 255, A: 255})
	if got := c.Image().RGBAAt(20, 20); got.G > 50 {
		t.Errorf("hole center = %v, want background", got)
	}
	if got := c.Image().RGBAAt(5, 20); got.G < 200 {
		t.Errorf("between hole and exterior = %v, want green", got)
	}
}

func TestImageCanvasStroke(t *testing.T) {
	c := NewImageCanvas(40, 40)
	c.Clear(color.RGBA{A: 255})
	c.StrokePath([]Pt{{0, 20}, {40, 20}}, false, 3, color.RGBA{B: 255, A: 255})
	if got := c.Image().RGBAAt(20, 20); got.B < 200 {
		t.Errorf("on stroke = %v, want blue", got)
	}
	if got := c.Image().RGBAAt(20, 5); got.B > 50 {
		t.Errorf("off stroke = %v, want background", got)
	}
}

func TestImageCanvasCircle(t *testing.T) {
	c := NewImageCanvas(40, 40)
	c.Clear(color.RGBA{A: 255})
	c.FillCircle(20, 20, 8, color.RGBA{R: 255, A: 255})
	if got := c.Image().RGBAAt(20, 20); got.R < 200 {
		t.Errorf("circle center = %v, want red", got)
	}
	if got := c.Image().RGBAAt(2, 2); got.R > 50 {
		t.Errorf("far corner = %v, want background", got)
	}
}

func TestImageCanvasWritePNG(t *testing.T) {
	c := NewImageCanvas(8, 8)
	c.Clear(color.RGBA{R: 1, G: 2, B: 3, A: 255})
	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty png output")
	}
}

func TestSignedArea(t *testing.T) {
	ccw := []Pt{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if a := signedArea(ccw); a <= 0 {
		t.Errorf("signedArea = %v, want positive", a)
	}
	cw := reversed(ccw)
	if a := signedArea(cw); a >= 0 {
		t.Errorf("reversed signedArea = %v, want negative", a)
	}
}
