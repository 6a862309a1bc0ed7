package geom

import (
	"encoding/xml"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadKML extracts Point placemarks from a KML file. KML coordinates are
// "lon,lat[,alt]"; altitude is ignored. Placemark names become a "name"
// property.
func LoadKML(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Name  string    `xml:"name"`
		Point *kmlPoint `xml:"Point"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	fc := &FeatureCollection{}
	for _, pm := range doc.Placemarks {
		if pm.Point == nil {
			continue
		}
		// coordinates may contain multiple tuples separated by spaces
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			var props map[string]any
			if pm.Name != "" {
				props = map[string]any{"name": pm.Name}
			}
			fc.Features = append(fc.Features, Feature{
				Geometry:   Point{X: lon, Y: lat},
				Properties: props,
			})
		}
	}
	if len(fc.Features) == 0 {
		return nil, errors.New("kml: no points found")
	}
	return fc, nil
}
