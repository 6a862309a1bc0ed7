// Package solid models 3-D scenes as axis-aligned box elements. Boxes are
// a flat Cartesian approximation: no boundary representation, no curved
// surfaces. That keeps projection and picking cheap while still giving a
// recognizable solid view.
package solid

// Vec is a point in model space.
type Vec struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Box is an axis-aligned solid spanning Min..Max on every axis.
type Box struct {
	Min Vec
	Max Vec
}

// Corners returns the 8 box corners in a fixed order: the bottom face
// (Min.Z) counter-clockwise, then the top face above it.
func (b Box) Corners() [8]Vec {
	return [8]Vec{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
	}
}

// Center returns the box centroid.
func (b Box) Center() Vec {
	return Vec{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// FaceIndices lists the 6 quad faces of a box as corner indices into
// Corners(): bottom, top, front, back, left, right.
var FaceIndices = [6][4]int{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{0, 1, 5, 4},
	{3, 2, 6, 7},
	{0, 3, 7, 4},
	{1, 2, 6, 5},
}

// Element is one solid in a model, identified for selection and colored
// by its type.
type Element struct {
	ID   string
	Type string
	Box  Box
}

// Model is an ordered list of elements handed to the viewport by the
// data-loading collaborator. The viewport reads it, never mutates it.
type Model struct {
	Elements []Element
}

// Bounds returns the union box of all elements; ok is false for an empty
// model.
func (m *Model) Bounds() (Box, bool) {
	if m == nil || len(m.Elements) == 0 {
		return Box{}, false
	}
	b := m.Elements[0].Box
	for _, e := range m.Elements[1:] {
		if e.Box.Min.X < b.Min.X {
			b.Min.X = e.Box.Min.X
		}
		if e.Box.Min.Y < b.Min.Y {
			b.Min.Y = e.Box.Min.Y
		}
		if e.Box.Min.Z < b.Min.Z {
			b.Min.Z = e.Box.Min.Z
		}
		if e.Box.Max.X > b.Max.X {
			b.Max.X = e.Box.Max.X
		}
		if e.Box.Max.Y > b.Max.Y {
			b.Max.Y = e.Box.Max.Y
		}
		if e.Box.Max.Z > b.Max.Z {
			b.Max.Z = e.Box.Max.Z
		}
	}
	return b, true
}

// Find returns the element with the given id.
func (m *Model) Find(id string) (Element, bool) {
	if m == nil {
		return Element{}, false
	}
	for _, e := range m.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}
