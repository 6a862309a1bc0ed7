package view

import (
	"testing"

	"geoscope/internal/geom"
	"geoscope/internal/render"
	"geoscope/internal/solid"
)

func TestPickTopmostWins(t *testing.T) {
	var c Compositor
	c.Add("bottom", fcWithBBox(geom.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}), render.Style{})
	c.Add("top", fcWithBBox(geom.BBox{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}), render.Style{})

	hit, ok := HitTester{}.Pick(&c, 7, 7)
	if !ok {
		t.Fatal("no hit in overlap region")
	}
	if hit.Layer != 1 {
		t.Errorf("hit layer = %d, want topmost layer 1", hit.Layer)
	}
}

func TestPickSkipsInvisibleLayers(t *testing.T) {
	var c Compositor
	c.Add("bottom", fcWithBBox(geom.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}), render.Style{})
	i := c.Add("top", fcWithBBox(geom.BBox{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}), render.Style{})
	c.SetVisible(i, false)

	hit, ok := HitTester{}.Pick(&c, 7, 7)
	if !ok || hit.Layer != 0 {
		t.Errorf("hit = %+v ok=%v, want layer 0", hit, ok)
	}
}

func TestPickFirstStoredFeatureWinsWithinLayer(t *testing.T) {
	fc := &geom.FeatureCollection{Features: []geom.Feature{
		{Geometry: geom.Polygon{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}},
		{Geometry: geom.Polygon{{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}}},
	}}
	var c Compositor
	c.Add("l", fc, render.Style{})
	hit, ok := HitTester{}.Pick(&c, 7, 7)
	if !ok || hit.Feature != 0 {
		t.Errorf("hit = %+v ok=%v, want feature 0 (stored order, first hit wins)", hit, ok)
	}
	// a point only inside the second polygon still reaches it
	hit, ok = HitTester{}.Pick(&c, 12, 12)
	if !ok || hit.Feature != 1 {
		t.Errorf("hit = %+v ok=%v, want feature 1", hit, ok)
	}
}

func TestPickEmptyScene(t *testing.T) {
	var c Compositor
	if _, ok := (HitTester{}).Pick(&c, 5, 5); ok {
		t.Error("empty scene produced a hit")
	}
	if _, ok := (HitTester{}).Pick(nil, 5, 5); ok {
		t.Error("nil compositor produced a hit")
	}
	c.Add("empty", &geom.FeatureCollection{}, render.Style{})
	if _, ok := (HitTester{}).Pick(&c, 5, 5); ok {
		t.Error("empty layer produced a hit")
	}
}

func holeFC() *geom.FeatureCollection {
	poly := geom.Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}},
	}
	return &geom.FeatureCollection{Features: []geom.Feature{{Geometry: poly}}}
}

func TestPickHoleBehavior(t *testing.T) {
	var c Compositor
	c.Add("donut", holeFC(), render.Style{})

	// bbox mode: the hole still hits, intentionally approximate
	if _, ok := (HitTester{}).Pick(&c, 5, 5); !ok {
		t.Error("bbox mode missed the polygon bbox")
	}

	exact := HitTester{Exact: true}
	if _, ok := exact.Pick(&c, 5, 5); ok {
		t.Error("exact mode hit a point inside the hole")
	}
	if _, ok := exact.Pick(&c, 1, 1); !ok {
		t.Error("exact mode missed a point inside the exterior ring")
	}
}

func TestPickExactNonPolygonFallsBackToBBox(t *testing.T) {
	fc := &geom.FeatureCollection{Features: []geom.Feature{
		{Geometry: geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 10}}},
	}}
	var c Compositor
	c.Add("line", fc, render.Style{})
	if _, ok := (HitTester{Exact: true}).Pick(&c, 5, 2); !ok {
		t.Error("line bbox point missed in exact mode")
	}
}

func TestPickElement(t *testing.T) {
	m := &solid.Model{Elements: []solid.Element{
		{ID: "far", Box: solid.Box{Min: solid.Vec{X: -5, Y: -5, Z: -10}, Max: solid.Vec{X: 5, Y: 5, Z: -9}}},
		{ID: "near", Box: solid.Box{Min: solid.Vec{X: -5, Y: -5, Z: 9}, Max: solid.Vec{X: 5, Y: 5, Z: 10}}},
	}}
	proj := Transform3D{Scale: 1, Zoom: 1, Width: 100, Height: 100}

	id, ok := PickElement(m, proj, 50, 50)
	if !ok {
		t.Fatal("no element picked at overlap")
	}
	if id != "near" {
		t.Errorf("picked %q, want the nearer element", id)
	}
	if _, ok := PickElement(m, proj, 5, 5); ok {
		t.Error("pick outside every box returned an element")
	}
	if _, ok := PickElement(nil, proj, 50, 50); ok {
		t.Error("nil model returned an element")
	}
}
