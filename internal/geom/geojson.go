package geom

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// DecodeGeoJSON reads a GeoJSON document and returns a FeatureCollection.
// A bare geometry or single Feature becomes a one-feature collection.
// Malformed coordinates are skipped; an error is returned only when the
// document is not JSON or yields no features at all.
func DecodeGeoJSON(r io.Reader) (*FeatureCollection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	fc := &FeatureCollection{}
	t, _ := raw["type"].(string)
	switch t {
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					fc.Features = append(fc.Features, decodeFeature(fm))
				}
			}
		}
	case "Feature":
		fc.Features = append(fc.Features, decodeFeature(raw))
	default:
		if g := decodeGeometry(raw); g != nil {
			fc.Features = append(fc.Features, Feature{Geometry: g})
		}
	}
	if len(fc.Features) == 0 {
		return nil, errors.New("geojson: no features found")
	}
	return fc, nil
}

// LoadGeoJSON reads a GeoJSON file from disk.
func LoadGeoJSON(path string) (*FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeGeoJSON(f)
}

func decodeFeature(fm map[string]any) Feature {
	var f Feature
	if g, ok := fm["geometry"].(map[string]any); ok {
		f.Geometry = decodeGeometry(g)
	}
	if props, ok := fm["properties"].(map[string]any); ok {
		f.Properties = props
	}
	return f
}

func decodeGeometry(g map[string]any) Geometry {
	t, _ := g["type"].(string)
	switch t {
	case "Point":
		if p, ok := decodePosition(g["coordinates"]); ok {
			return Point(p)
		}
	case "MultiPoint":
		if ps := decodePositions(g["coordinates"]); len(ps) > 0 {
			return MultiPoint(ps)
		}
	case "LineString":
		if ps := decodePositions(g["coordinates"]); len(ps) > 0 {
			return LineString(ps)
		}
	case "MultiLineString":
		arr, ok := g["coordinates"].([]any)
		if !ok {
			return nil
		}
		var mls MultiLineString
		for _, el := range arr {
			if ps := decodePositions(el); len(ps) > 0 {
				mls = append(mls, LineString(ps))
			}
		}
		if len(mls) > 0 {
			return mls
		}
	case "Polygon":
		if p := decodePolygon(g["coordinates"]); len(p) > 0 {
			return p
		}
	case "MultiPolygon":
		arr, ok := g["coordinates"].([]any)
		if !ok {
			return nil
		}
		var mp MultiPolygon
		for _, el := range arr {
			if p := decodePolygon(el); len(p) > 0 {
				mp = append(mp, p)
			}
		}
		if len(mp) > 0 {
			return mp
		}
	case "GeometryCollection":
		arr, ok := g["geometries"].([]any)
		if !ok {
			return nil
		}
		var col Collection
		for _, el := range arr {
			if gm, ok := el.(map[string]any); ok {
				if child := decodeGeometry(gm); child != nil {
					col = append(col, child)
				}
			}
		}
		if len(col) > 0 {
			return col
		}
	}
	return nil
}

func decodePosition(v any) (Position, bool) {
	a, ok := v.([]any)
	if !ok || len(a) < 2 {
		return Position{}, false
	}
	x, xok := a[0].(float64)
	y, yok := a[1].(float64)
	if !xok || !yok {
		return Position{}, false
	}
	return Position{X: x, Y: y}, true
}

func decodePositions(v any) []Position {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var ps []Position
	for _, el := range arr {
		if p, ok := decodePosition(el); ok {
			ps = append(ps, p)
		}
	}
	return ps
}

func decodePolygon(v any) Polygon {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var poly Polygon
	for _, ring := range arr {
		if ps := decodePositions(ring); len(ps) > 0 {
			poly = append(poly, ps)
		}
	}
	return poly
}
