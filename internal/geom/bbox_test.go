package geom

import "testing"

func TestBBoxUnion(t *testing.T) {
	a := BBox{0, 0, 10, 10}
	b := BBox{5, 5, 20, 20}
	want := BBox{0, 0, 20, 20}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if got := b.Union(a); got != want {
		t.Errorf("Union (swapped) = %+v, want %+v", got, want)
	}
}

func TestBBoxContains(t *testing.T) {
	b := BBox{0, 0, 10, 10}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 5, 5, true},
		{"on edge", 0, 5, true},
		{"on corner", 10, 10, true},
		{"outside", 10.1, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBBoxIntersects(t *testing.T) {
	b := BBox{0, 0, 10, 10}
	if !b.Intersects(BBox{5, 5, 15, 15}) {
		t.Error("overlapping boxes: Intersects = false")
	}
	if !b.Intersects(BBox{10, 10, 20, 20}) {
		t.Error("edge-touching boxes: Intersects = false")
	}
	if b.Intersects(BBox{11, 11, 20, 20}) {
		t.Error("disjoint boxes: Intersects = true")
	}
}

func TestBBoxExpandRel(t *testing.T) {
	b := BBox{0, 0, 10, 20}
	got := b.ExpandRel(0.1)
	want := BBox{-1, -2, 11, 22}
	if got != want {
		t.Errorf("ExpandRel(0.1) = %+v, want %+v", got, want)
	}

	// degenerate box stays put rather than producing NaN downstream
	pt := BBox{5, 5, 5, 5}
	if got := pt.ExpandRel(0.1); got != pt {
		t.Errorf("ExpandRel on zero-area box = %+v, want unchanged", got)
	}
}

func TestBBoxTranslateRoundTrip(t *testing.T) {
	b := BBox{1, 2, 3, 4}
	if got := b.Translate(5, -7).Translate(-5, 7); got != b {
		t.Errorf("Translate round trip = %+v, want %+v", got, b)
	}
}
