package geom

// BBox is an axis-aligned extent in world units with MinX<=MaxX and
// MinY<=MaxY. Zero-area boxes are legal (a single point).
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// WorldBounds is the sentinel extent returned when no geometry exists to
// derive bounds from.
var WorldBounds = BBox{MinX: -180, MinY: -90, MaxX: 180, MaxY: 90}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Extend grows the box to include (x, y).
func (b BBox) Extend(x, y float64) BBox {
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
	return b
}

// Union returns the smallest box containing both boxes.
func (b BBox) Union(o BBox) BBox {
	b = b.Extend(o.MinX, o.MinY)
	return b.Extend(o.MaxX, o.MaxY)
}

// Contains reports whether (x, y) falls inside the box, edges included.
func (b BBox) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Intersects reports whether the boxes share any area or edge.
func (b BBox) Intersects(o BBox) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// ExpandRel pads each dimension by the given fraction of its size, so
// fitted content does not touch the viewport edge. Degenerate dimensions
// are left unchanged; the transform clamps them later.
func (b BBox) ExpandRel(f float64) BBox {
	dx := b.Width() * f
	dy := b.Height() * f
	return BBox{
		MinX: b.MinX - dx,
		MinY: b.MinY - dy,
		MaxX: b.MaxX + dx,
		MaxY: b.MaxY + dy,
	}
}

// Translate shifts the box by (dx, dy) in world units.
func (b BBox) Translate(dx, dy float64) BBox {
	return BBox{
		MinX: b.MinX + dx,
		MinY: b.MinY + dy,
		MaxX: b.MaxX + dx,
		MaxY: b.MaxY + dy,
	}
}
