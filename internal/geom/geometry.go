package geom

// Position is a world coordinate pair (lon/lat for geographic data).
// Values carry no unit; they live in the same space as the camera bounds.
type Position struct {
	X float64
	Y float64
}

// Kind identifies a geometry variant.
type Kind int

const (
	KindPoint Kind = iota
	KindMultiPoint
	KindLineString
	KindMultiLineString
	KindPolygon
	KindMultiPolygon
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindMultiPoint:
		return "MultiPoint"
	case KindLineString:
		return "LineString"
	case KindMultiLineString:
		return "MultiLineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPolygon:
		return "MultiPolygon"
	case KindCollection:
		return "GeometryCollection"
	}
	return "Unknown"
}

// Geometry is a closed union over the supported geometry variants.
// The sealed marker keeps the set of implementations to the types in
// this package, so a type switch over Geometry can be exhaustive.
type Geometry interface {
	Kind() Kind
	// Bounds reports the coordinate-wise extent. ok is false for empty
	// geometries (no positions, or rings too short to render).
	Bounds() (b BBox, ok bool)

	sealed()
}

// Point is a single position.
type Point Position

// MultiPoint is a set of positions.
type MultiPoint []Position

// LineString is an ordered vertex path. Fewer than 2 vertices is empty.
type LineString []Position

// MultiLineString groups line strings.
type MultiLineString []LineString

// Polygon is a list of rings: rings[0] is the exterior, the rest are
// holes. A ring with fewer than 3 positions is treated as empty.
type Polygon [][]Position

// MultiPolygon groups polygons.
type MultiPolygon []Polygon

// Collection nests arbitrary geometries.
type Collection []Geometry

func (Point) Kind() Kind           { return KindPoint }
func (MultiPoint) Kind() Kind      { return KindMultiPoint }
func (LineString) Kind() Kind      { return KindLineString }
func (MultiLineString) Kind() Kind { return KindMultiLineString }
func (Polygon) Kind() Kind         { return KindPolygon }
func (MultiPolygon) Kind() Kind    { return KindMultiPolygon }
func (Collection) Kind() Kind      { return KindCollection }

func (Point) sealed()           {}
func (MultiPoint) sealed()      {}
func (LineString) sealed()      {}
func (MultiLineString) sealed() {}
func (Polygon) sealed()         {}
func (MultiPolygon) sealed()    {}
func (Collection) sealed()      {}

func (p Point) Bounds() (BBox, bool) {
	return BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}, true
}

func (mp MultiPoint) Bounds() (BBox, bool) { return boundsOf(mp) }

func (ls LineString) Bounds() (BBox, bool) {
	if len(ls) < 2 {
		return BBox{}, false
	}
	return boundsOf(ls)
}

func (mls MultiLineString) Bounds() (BBox, bool) {
	var b BBox
	ok := false
	for _, ls := range mls {
		if lb, lok := ls.Bounds(); lok {
			b = unionInto(b, lb, &ok)
		}
	}
	return b, ok
}

func (p Polygon) Bounds() (BBox, bool) {
	var b BBox
	ok := false
	for _, ring := range p {
		if len(ring) < 3 {
			continue
		}
		if rb, rok := boundsOf(ring); rok {
			b = unionInto(b, rb, &ok)
		}
	}
	return b, ok
}

func (mp MultiPolygon) Bounds() (BBox, bool) {
	var b BBox
	ok := false
	for _, p := range mp {
		if pb, pok := p.Bounds(); pok {
			b = unionInto(b, pb, &ok)
		}
	}
	return b, ok
}

func (c Collection) Bounds() (BBox, bool) {
	var b BBox
	ok := false
	for _, g := range c {
		if g == nil {
			continue
		}
		if gb, gok := g.Bounds(); gok {
			b = unionInto(b, gb, &ok)
		}
	}
	return b, ok
}

func boundsOf(ps []Position) (BBox, bool) {
	if len(ps) == 0 {
		return BBox{}, false
	}
	b := BBox{MinX: ps[0].X, MinY: ps[0].Y, MaxX: ps[0].X, MaxY: ps[0].Y}
	for _, p := range ps[1:] {
		b = b.Extend(p.X, p.Y)
	}
	return b, true
}

func unionInto(acc, next BBox, ok *bool) BBox {
	if !*ok {
		*ok = true
		return next
	}
	return acc.Union(next)
}

// Feature pairs a geometry with free-form properties. A nil geometry is
// valid and simply not drawn.
type Feature struct {
	Geometry   Geometry
	Properties map[string]any
}

// FeatureCollection is an ordered sequence of features. The viewport
// reads collections but never mutates them.
type FeatureCollection struct {
	Features []Feature
}

// Bounds reports the union extent of all non-empty feature geometries.
func (fc *FeatureCollection) Bounds() (BBox, bool) {
	var b BBox
	ok := false
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		if fb, fok := f.Geometry.Bounds(); fok {
			b = unionInto(b, fb, &ok)
		}
	}
	return b, ok
}
