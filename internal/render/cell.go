package render

import (
	"image/color"
	"math"
	"sort"
)

// CellCanvas rasterizes onto terminal cells using braille glyphs: each
// cell holds a 2x4 micro-pixel grid, so canvas pixel space is
// (cells*2) x (cells*4). The last color drawn into a cell wins; braille
// cells cannot blend.
type CellCanvas struct {
	cw, ch int // cells
	mask   [][]uint8
	fg     [][]color.RGBA
}

// NewCellCanvas allocates a canvas of cellsW x cellsH terminal cells.
func NewCellCanvas(cellsW, cellsH int) *CellCanvas {
	if cellsW < 1 {
		cellsW = 1
	}
	if cellsH < 1 {
		cellsH = 1
	}
	c := &CellCanvas{cw: cellsW, ch: cellsH}
	c.mask = make([][]uint8, cellsH)
	c.fg = make([][]color.RGBA, cellsH)
	for i := range c.mask {
		c.mask[i] = make([]uint8, cellsW)
		c.fg[i] = make([]color.RGBA, cellsW)
	}
	return c
}

func (c *CellCanvas) Size() (int, int) { return c.cw * 2, c.ch * 4 }

// Cells reports the cell dimensions.
func (c *CellCanvas) Cells() (int, int) { return c.cw, c.ch }

func (c *CellCanvas) Clear(color.RGBA) {
	for y := range c.mask {
		for x := range c.mask[y] {
			c.mask[y][x] = 0
		}
	}
}

// braille dot bit layout per 2x4 cell
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func (c *CellCanvas) setPixel(mx, my int, col color.RGBA) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx >= c.cw || cy >= c.ch {
		return
	}
	c.mask[cy][cx] |= brailleBits[ry][rx]
	c.fg[cy][cx] = col
}

// Set reports whether the micro pixel at (mx, my) is lit.
func (c *CellCanvas) Set(mx, my int) bool {
	if mx < 0 || my < 0 {
		return false
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx >= c.cw || cy >= c.ch {
		return false
	}
	return c.mask[cy][cx]&brailleBits[ry][rx] != 0
}

// FillPolygon fills under the even-odd rule with a per-scanline crossing
// scan over the edges of every ring, holes included.
func (c *CellCanvas) FillPolygon(rings [][]Pt, col color.RGBA) {
	type edge struct{ x0, y0, x1, y1 float64 }
	var edges []edge
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		for i := range ring {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a.Y == b.Y {
				continue
			}
			edges = append(edges, edge{a.X, a.Y, b.X, b.Y})
			yMin = math.Min(yMin, math.Min(a.Y, b.Y))
			yMax = math.Max(yMax, math.Max(a.Y, b.Y))
		}
	}
	if len(edges) == 0 {
		return
	}
	_, h := c.Size()
	y0 := int(math.Max(0, math.Floor(yMin)))
	y1 := int(math.Min(float64(h-1), math.Ceil(yMax)))
	var xs []float64
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			lo, hi := e.y0, e.y1
			if lo > hi {
				lo, hi = hi, lo
			}
			if yc < lo || yc >= hi {
				continue
			}
			t := (yc - e.y0) / (e.y1 - e.y0)
			xs = append(xs, e.x0+t*(e.x1-e.x0))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x := int(math.Ceil(xs[i] - 0.5))
			for ; float64(x)+0.5 < xs[i+1]; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// StrokePath draws Bresenham segments between consecutive points; width
// is ignored, a braille micro pixel is the thinnest and only line this
// surface has.
func (c *CellCanvas) StrokePath(pts []Pt, closed bool, _ float64, col color.RGBA) {
	if len(pts) < 2 {
		return
	}
	n := len(pts)
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		c.line(int(math.Round(a.X)), int(math.Round(a.Y)),
			int(math.Round(b.X)), int(math.Round(b.Y)), col)
	}
}

func (c *CellCanvas) line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *CellCanvas) FillCircle(x, y, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	x0 := int(math.Floor(x - r))
	x1 := int(math.Ceil(x + r))
	y0 := int(math.Floor(y - r))
	y1 := int(math.Ceil(y + r))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - x
			dy := float64(py) + 0.5 - y
			if dx*dx+dy*dy <= r*r {
				c.setPixel(px, py, col)
			}
		}
	}
}

// StrokeCircle draws a midpoint circle outline; width is ignored like
// StrokePath.
func (c *CellCanvas) StrokeCircle(x, y, r, _ float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	cx, cy, ri := int(math.Round(x)), int(math.Round(y)), int(math.Round(r))
	px, py := ri, 0
	err := 1 - ri
	for px >= py {
		c.setPixel(cx+px, cy+py, col)
		c.setPixel(cx+py, cy+px, col)
		c.setPixel(cx-py, cy+px, col)
		c.setPixel(cx-px, cy+py, col)
		c.setPixel(cx-px, cy-py, col)
		c.setPixel(cx-py, cy-px, col)
		c.setPixel(cx+py, cy-px, col)
		c.setPixel(cx+px, cy-py, col)
		py++
		if err < 0 {
			err += 2*py + 1
		} else {
			px--
			err += 2*(py-px) + 1
		}
	}
}

// Rune returns the braille glyph for a cell, or space when empty.
func (c *CellCanvas) Rune(cx, cy int) rune {
	if cx < 0 || cy < 0 || cx >= c.cw || cy >= c.ch {
		return ' '
	}
	m := c.mask[cy][cx]
	if m == 0 {
		return ' '
	}
	return rune(0x2800 + int(m))
}

// CellColor returns the color of a cell's most recent drawing, and
// whether the cell holds anything.
func (c *CellCanvas) CellColor(cx, cy int) (color.RGBA, bool) {
	if cx < 0 || cy < 0 || cx >= c.cw || cy >= c.ch || c.mask[cy][cx] == 0 {
		return color.RGBA{}, false
	}
	return c.fg[cy][cx], true
}

// Lines renders the buffer as uncolored strings, one per cell row.
func (c *CellCanvas) Lines() []string {
	out := make([]string, c.ch)
	row := make([]rune, c.cw)
	for y := 0; y < c.ch; y++ {
		for x := 0; x < c.cw; x++ {
			row[x] = c.Rune(x, y)
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
