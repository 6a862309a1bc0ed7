package geom

import "testing"

func TestParseWKT(t *testing.T) {
	tests := []struct {
		name    string
		wkt     string
		kind    Kind
		wantErr bool
	}{
		{"point", "POINT(30 10)", KindPoint, false},
		{"point lowercase", "point(1 2)", KindPoint, false},
		{"multipoint", "MULTIPOINT(10 40, 40 30, 20 20)", KindMultiPoint, false},
		{"linestring", "LINESTRING(30 10, 10 30, 40 40)", KindLineString, false},
		{"polygon", "POLYGON((30 10, 40 40, 20 40, 10 20, 30 10))", KindPolygon, false},
		{"polygon with hole", "POLYGON((0 0, 10 0, 10 10, 0 10), (3 3, 7 3, 7 7, 3 7))", KindPolygon, false},
		{"empty", "", 0, true},
		{"garbage", "CIRCLE(1 2)", 0, true},
		{"unbalanced", "POINT 30 10", 0, true},
		{"no coordinates", "POINT()", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseWKT(tt.wkt)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWKT() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if g.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", g.Kind(), tt.kind)
			}
		})
	}
}

func TestParseWKTPolygonRings(t *testing.T) {
	g, err := ParseWKT("POLYGON((0 0, 10 0, 10 10, 0 10), (3 3, 7 3, 7 7, 3 7))")
	if err != nil {
		t.Fatal(err)
	}
	poly, ok := g.(Polygon)
	if !ok {
		t.Fatalf("got %T, want Polygon", g)
	}
	if len(poly) != 2 {
		t.Fatalf("ring count = %d, want 2", len(poly))
	}
	if len(poly[0]) != 4 || len(poly[1]) != 4 {
		t.Errorf("ring sizes = %d, %d, want 4, 4", len(poly[0]), len(poly[1]))
	}
	if !poly.ContainsPoint(1, 1) || poly.ContainsPoint(5, 5) {
		t.Error("parsed polygon does not respect its hole")
	}
}

func TestParseWKTSkipsBadTuples(t *testing.T) {
	g, err := ParseWKT("MULTIPOINT(1 2, bogus, 3 4)")
	if err != nil {
		t.Fatal(err)
	}
	mp := g.(MultiPoint)
	if len(mp) != 2 {
		t.Errorf("len = %d, want 2", len(mp))
	}
}
