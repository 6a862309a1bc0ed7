package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses a subset of WKT into a Geometry.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// POLYGON((x y, ...), (hole...)). Tuples that fail to parse are skipped.
func ParseWKT(wkt string) (Geometry, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		block, err := innerBlock(s, "(", ")")
		if err != nil {
			return nil, errors.New("wkt multipoint: invalid")
		}
		ps := parseTuples(block)
		if len(ps) == 0 {
			return nil, errors.New("wkt: no coordinates parsed")
		}
		return MultiPoint(ps), nil
	case strings.HasPrefix(up, "POINT"):
		block, err := innerBlock(s, "(", ")")
		if err != nil {
			return nil, errors.New("wkt point: invalid")
		}
		ps := parseTuples(block)
		if len(ps) == 0 {
			return nil, errors.New("wkt: no coordinates parsed")
		}
		return Point(ps[0]), nil
	case strings.HasPrefix(up, "LINESTRING"):
		block, err := innerBlock(s, "(", ")")
		if err != nil {
			return nil, errors.New("wkt linestring: invalid")
		}
		ps := parseTuples(block)
		if len(ps) < 2 {
			return nil, errors.New("wkt: no coordinates parsed")
		}
		return LineString(ps), nil
	case strings.HasPrefix(up, "POLYGON"):
		block, err := innerBlock(s, "((", "))")
		if err != nil {
			return nil, errors.New("wkt polygon: invalid")
		}
		var poly Polygon
		for _, part := range splitRings(block) {
			if ps := parseTuples(part); len(ps) > 0 {
				poly = append(poly, ps)
			}
		}
		if len(poly) == 0 {
			return nil, errors.New("wkt: no coordinates parsed")
		}
		return poly, nil
	}
	return nil, errors.New("unsupported wkt type")
}

func innerBlock(s, open, close string) (string, error) {
	i := strings.Index(s, open)
	j := strings.LastIndex(s, close)
	if i < 0 || j <= i {
		return "", errors.New("unbalanced parens")
	}
	return s[i+len(open) : j], nil
}

// splitRings splits "x y, ...),(x y, ..." on ring separators, tolerating
// spaces around them.
func splitRings(block string) []string {
	norm := strings.ReplaceAll(block, "), (", "),(")
	norm = strings.ReplaceAll(norm, ") , (", "),(")
	return strings.Split(norm, "),(")
}

func parseTuples(block string) []Position {
	var out []Position
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, Position{X: x, Y: y})
	}
	return out
}
