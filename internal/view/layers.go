package view

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"geoscope/internal/geom"
	"geoscope/internal/render"
)

// Layer is one stack entry of the compositor: a feature collection plus
// its draw state. Later layers draw over earlier ones.
type Layer struct {
	Name     string
	Features *geom.FeatureCollection
	Style    render.Style
	Visible  bool
	Opacity  float64

	tree *rtreego.Rtree
}

// indexedFeature wraps one feature for R-tree storage.
type indexedFeature struct {
	rect rtreego.Rect
	idx  int
}

func (f *indexedFeature) Bounds() rtreego.Rect { return f.rect }

// rectEpsilon pads zero-extent bounds; the R-tree rejects empty
// dimensions.
const rectEpsilon = 1e-9

func bboxRect(b geom.BBox) (rtreego.Rect, bool) {
	w := b.Width()
	h := b.Height()
	if w < rectEpsilon {
		w = rectEpsilon
	}
	if h < rectEpsilon {
		h = rectEpsilon
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{w, h})
	if err != nil {
		return rtreego.Rect{}, false
	}
	return rect, true
}

func buildIndex(fc *geom.FeatureCollection) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 25, 50)
	if fc == nil {
		return tree
	}
	for i, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		b, ok := f.Geometry.Bounds()
		if !ok {
			continue
		}
		rect, ok := bboxRect(b)
		if !ok {
			continue
		}
		tree.Insert(&indexedFeature{rect: rect, idx: i})
	}
	return tree
}

// Search returns the indices of features whose bounds intersect b, in
// ascending feature order.
func (l *Layer) Search(b geom.BBox) []int {
	if l.tree == nil {
		return nil
	}
	rect, ok := bboxRect(b)
	if !ok {
		return nil
	}
	hits := l.tree.SearchIntersect(rect)
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*indexedFeature).idx)
	}
	sort.Ints(out)
	return out
}

// Compositor holds the ordered layer stack of the flat view.
type Compositor struct {
	layers []*Layer
}

// Add appends a layer on top of the stack and returns its index. The
// layer starts visible at full opacity and is spatially indexed on
// insertion.
func (c *Compositor) Add(name string, fc *geom.FeatureCollection, style render.Style) int {
	l := &Layer{
		Name:     name,
		Features: fc,
		Style:    style,
		Visible:  true,
		Opacity:  1,
		tree:     buildIndex(fc),
	}
	c.layers = append(c.layers, l)
	logger.Debug("layer added", "name", name, "index", len(c.layers)-1)
	return len(c.layers) - 1
}

// Len returns the number of layers.
func (c *Compositor) Len() int { return len(c.layers) }

// Layer returns the i-th layer, nil when out of range.
func (c *Compositor) Layer(i int) *Layer {
	if i < 0 || i >= len(c.layers) {
		return nil
	}
	return c.layers[i]
}

// SetVisible toggles a layer in and out of the composite.
func (c *Compositor) SetVisible(i int, v bool) {
	if l := c.Layer(i); l != nil {
		l.Visible = v
	}
}

// SetStyle replaces a layer's style.
func (c *Compositor) SetStyle(i int, s render.Style) {
	if l := c.Layer(i); l != nil {
		l.Style = s
	}
}

// SetOpacity sets a layer's opacity, clamped to [0, 1].
func (c *Compositor) SetOpacity(i int, o float64) {
	l := c.Layer(i)
	if l == nil {
		return
	}
	if o < 0 {
		o = 0
	}
	if o > 1 {
		o = 1
	}
	l.Opacity = o
}

// UnionBounds returns the union of layer extents, optionally counting
// only visible layers. An empty or all-empty stack falls back to world
// bounds so the camera always has something to frame.
func (c *Compositor) UnionBounds(onlyVisible bool) geom.BBox {
	var u geom.BBox
	found := false
	for _, l := range c.layers {
		if l.Features == nil || (onlyVisible && !l.Visible) {
			continue
		}
		b, ok := l.Features.Bounds()
		if !ok {
			continue
		}
		if !found {
			u = b
			found = true
		} else {
			u = u.Union(b)
		}
	}
	if !found {
		return geom.WorldBounds
	}
	return u
}
