package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"geoscope/internal/geom"
	"geoscope/internal/solid"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".geojson" || ext == ".json" || ext == ".csv" || ext == ".kml" || ext == ".wkt" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// splitFeatures buckets a collection by geometry kind so each bucket
// gets its own layer and visibility toggle.
func splitFeatures(fc *geom.FeatureCollection) (polys, lines, points *geom.FeatureCollection) {
	polys = &geom.FeatureCollection{}
	lines = &geom.FeatureCollection{}
	points = &geom.FeatureCollection{}
	if fc == nil {
		return
	}
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		switch f.Geometry.Kind() {
		case geom.KindPolygon, geom.KindMultiPolygon:
			polys.Features = append(polys.Features, f)
		case geom.KindLineString, geom.KindMultiLineString:
			lines.Features = append(lines.Features, f)
		default:
			points.Features = append(points.Features, f)
		}
	}
	return
}

// setCollection replaces the viewport layers with one collection split
// into polygon/line/point layers, then frames it.
func (m *Model) setCollection(fc *geom.FeatureCollection) (npoly, nline, npt int) {
	m.vp.ClearLayers()
	m.vp.SetModel(nil)
	m.picked = nil
	polys, lines, points := splitFeatures(fc)
	if len(polys.Features) > 0 {
		m.vp.AddLayer("polygons", polys)
	}
	if len(lines.Features) > 0 {
		m.vp.AddLayer("lines", lines)
	}
	if len(points.Features) > 0 {
		m.vp.AddLayer("points", points)
	}
	m.vp.FitToExtent()
	return len(polys.Features), len(lines.Features), len(points.Features)
}

func (m *Model) setCounts(name string, npoly, nline, npt int) {
	m.status = fmt.Sprintf("loaded: %s  counts: poly=%d ls=%d pts=%d", name, npoly, nline, npt)
}

// loadPath loads supported formats into the viewport.
func (m *Model) loadPath(p string) {
	m.selPath = p
	name := filepath.Base(p)
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".json":
		// a JSON file with an elements array is a solid model, anything
		// else is treated as GeoJSON
		if mdl, err := solid.LoadModel(p); err == nil && len(mdl.Elements) > 0 {
			m.vp.ClearLayers()
			m.vp.SetModel(mdl)
			m.picked = nil
			m.status = fmt.Sprintf("loaded model: %s  elements=%d", name, len(mdl.Elements))
			return
		}
		fallthrough
	case ".geojson":
		fc, err := geom.LoadGeoJSON(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		npoly, nline, npt := m.setCollection(fc)
		m.setCounts(name, npoly, nline, npt)
	case ".csv":
		fc, err := geom.LoadCSV(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		npoly, nline, npt := m.setCollection(fc)
		m.setCounts(name, npoly, nline, npt)
	case ".kml":
		fc, err := geom.LoadKML(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		npoly, nline, npt := m.setCollection(fc)
		m.setCounts(name, npoly, nline, npt)
	case ".wkt":
		data, err := os.ReadFile(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		g, err := geom.ParseWKT(string(data))
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return
		}
		fc := &geom.FeatureCollection{Features: []geom.Feature{{Geometry: g}}}
		npoly, nline, npt := m.setCollection(fc)
		m.setCounts(name, npoly, nline, npt)
	default:
		m.status = "unsupported file: " + ext
	}
	if m.showAttrs {
		m.refreshAttrs()
	}
}
