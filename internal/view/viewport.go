package view

import (
	"geoscope/internal/geom"
	"geoscope/internal/render"
	"geoscope/internal/solid"
)

// Scene selects which of the two projections the viewport draws.
type Scene int

const (
	Scene2D Scene = iota
	Scene3D
)

// Options configures a new viewport. Zero values are filled from
// DefaultOptions.
type Options struct {
	Width       int
	Height      int
	Mode        render.Mode // 3-D fill mode
	Tool        Tool
	ShowGrid    bool
	Theme       render.Theme
	GridSpacing float64
	MinZoom     float64 // 3-D zoom clamp
	MaxZoom     float64
	FitPadding  float64 // relative padding for fit-to-extent
}

// DefaultOptions returns the documented defaults: an 800x600 dark
// solid-mode viewport with the pan tool, grid on, 3-D zoom clamped to
// [0.1, 5.0] and 10% fit padding.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Mode:        render.ModeSolid,
		Tool:        ToolPan,
		ShowGrid:    true,
		Theme:       render.DarkTheme(),
		GridSpacing: 40,
		MinZoom:     0.1,
		MaxZoom:     5.0,
		FitPadding:  0.1,
	}
}

// ViewState is the camera snapshot handed to OnViewChange.
type ViewState struct {
	Scene  Scene
	Bounds geom.BBox // 2-D
	RotX   float64   // 3-D
	RotY   float64
	Zoom   float64
	PanX   float64
	PanY   float64
}

// Viewport owns all camera, layer and selection state and is the only
// writer of it. It is single-threaded by design: every mutation marks
// the viewport dirty and the host draws one frame per dirty flag.
type Viewport struct {
	opts Options

	cam2  Camera2D
	cam3  Camera3D
	base3 Transform3D // fitted model projection, cam3 applied per frame

	comp       Compositor
	hit        HitTester
	controller Controller
	model      *solid.Model
	scene      Scene

	selected     *Hit   // 2-D selection
	selectedElem string // 3-D selection

	dirty bool

	// OnFeatureClick fires when the select tool hits a feature.
	OnFeatureClick func(f geom.Feature, layer int)
	// OnViewChange fires after every camera mutation.
	OnViewChange func(ViewState)
	// OnSelectionChange fires when the selection changes, including to
	// empty.
	OnSelectionChange func()
}

// New builds a viewport from opts, filling unset fields from
// DefaultOptions.
func New(opts Options) *Viewport {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Theme.Name == "" {
		opts.Theme = def.Theme
	}
	if opts.GridSpacing <= 0 {
		opts.GridSpacing = def.GridSpacing
	}
	if opts.MinZoom <= 0 {
		opts.MinZoom = def.MinZoom
	}
	if opts.MaxZoom <= opts.MinZoom {
		opts.MaxZoom = def.MaxZoom
	}
	if opts.FitPadding < 0 {
		opts.FitPadding = def.FitPadding
	}
	v := &Viewport{
		opts: opts,
		cam2: Camera2D{
			Bounds: geom.WorldBounds,
			Width:  float64(opts.Width),
			Height: float64(opts.Height),
		},
		cam3: Camera3D{
			RotX:    30,
			RotY:    -45,
			Zoom:    1,
			MinZoom: opts.MinZoom,
			MaxZoom: opts.MaxZoom,
		},
		dirty: true,
	}
	v.controller.Tool = opts.Tool
	v.controller.Pan = v.pan
	v.controller.Orbit = v.orbit
	v.controller.ZoomAt = v.zoomAt
	v.controller.Click = v.click
	return v
}

// Dirty reports whether state changed since the last Render.
func (v *Viewport) Dirty() bool { return v.dirty }

func (v *Viewport) markDirty() { v.dirty = true }

// Theme returns the active theme.
func (v *Viewport) Theme() render.Theme { return v.opts.Theme }

// SetTheme swaps the color theme.
func (v *Viewport) SetTheme(t render.Theme) {
	v.opts.Theme = t
	v.markDirty()
}

// Scene returns the active scene.
func (v *Viewport) Scene() Scene { return v.scene }

// SetScene switches between the flat and solid views. Switching to the
// solid view without a model is a no-op.
func (v *Viewport) SetScene(s Scene) {
	if s == Scene3D && v.model == nil {
		return
	}
	if v.scene != s {
		v.scene = s
		v.markDirty()
		v.emitViewChange()
	}
}

// Tool returns the active tool.
func (v *Viewport) Tool() Tool { return v.controller.Tool }

// SetTool switches the active drag tool.
func (v *Viewport) SetTool(t Tool) {
	v.controller.Tool = t
}

// Mode returns the 3-D fill mode.
func (v *Viewport) Mode() render.Mode { return v.opts.Mode }

// SetMode sets the 3-D fill mode.
func (v *Viewport) SetMode(m render.Mode) {
	v.opts.Mode = m
	v.markDirty()
}

// GridVisible reports the grid toggle.
func (v *Viewport) GridVisible() bool { return v.opts.ShowGrid }

// SetGridVisible toggles the background grid.
func (v *Viewport) SetGridVisible(show bool) {
	v.opts.ShowGrid = show
	v.markDirty()
}

// Resize adapts the viewport to a new pixel size, keeping the world
// bounds and refitting the model projection.
func (v *Viewport) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	v.opts.Width, v.opts.Height = w, h
	v.cam2.Resize(float64(w), float64(h))
	if v.model != nil {
		v.refit3()
	}
	v.markDirty()
}

// Size returns the viewport pixel size.
func (v *Viewport) Size() (int, int) { return v.opts.Width, v.opts.Height }

// AddLayer appends a feature layer styled from the theme palette and
// returns its index.
func (v *Viewport) AddLayer(name string, fc *geom.FeatureCollection) int {
	return v.AddLayerStyled(name, fc, v.opts.Theme.PaletteStyle(v.comp.Len()))
}

// AddLayerStyled appends a feature layer with an explicit style.
func (v *Viewport) AddLayerStyled(name string, fc *geom.FeatureCollection, style render.Style) int {
	i := v.comp.Add(name, fc, style)
	v.markDirty()
	return i
}

// Layers exposes the compositor for layer-panel style hosts.
func (v *Viewport) Layers() *Compositor { return &v.comp }

// SetLayerVisible toggles one layer. The selection is dropped if its
// layer goes invisible.
func (v *Viewport) SetLayerVisible(i int, visible bool) {
	v.comp.SetVisible(i, visible)
	if !visible && v.selected != nil && v.selected.Layer == i {
		v.ClearSelection()
	}
	v.markDirty()
}

// SetLayerStyle replaces one layer's style.
func (v *Viewport) SetLayerStyle(i int, s render.Style) {
	v.comp.SetStyle(i, s)
	v.markDirty()
}

// SetLayerOpacity sets one layer's opacity.
func (v *Viewport) SetLayerOpacity(i int, o float64) {
	v.comp.SetOpacity(i, o)
	v.markDirty()
}

// ClearLayers drops all layers and the 2-D selection.
func (v *Viewport) ClearLayers() {
	v.comp = Compositor{}
	if v.selected != nil {
		v.selected = nil
		v.emitSelectionChange()
	}
	v.markDirty()
}

// SetModel installs (or clears, with nil) the 3-D model and switches
// scenes accordingly.
func (v *Viewport) SetModel(m *solid.Model) {
	v.model = m
	v.selectedElem = ""
	if m == nil {
		v.scene = Scene2D
	} else {
		v.scene = Scene3D
		v.refit3()
	}
	v.markDirty()
	v.emitViewChange()
}

// Model returns the installed 3-D model, nil when absent.
func (v *Viewport) Model() *solid.Model { return v.model }

// SetExactPicking switches the hit tester between bbox and even-odd
// containment.
func (v *Viewport) SetExactPicking(exact bool) { v.hit.Exact = exact }

// SelectedFeature returns the 2-D selection.
func (v *Viewport) SelectedFeature() (Hit, bool) {
	if v.selected == nil {
		return Hit{}, false
	}
	return *v.selected, true
}

// SelectedElement returns the 3-D selection, "" when empty.
func (v *Viewport) SelectedElement() string { return v.selectedElem }

// ClearSelection drops any selection in either scene.
func (v *Viewport) ClearSelection() {
	if v.selected == nil && v.selectedElem == "" {
		return
	}
	v.selected = nil
	v.selectedElem = ""
	v.markDirty()
	v.emitSelectionChange()
}

// FitToExtent frames the data: the visible layers' union bbox with
// relative padding in 2-D, the model bounds in 3-D.
func (v *Viewport) FitToExtent() {
	if v.scene == Scene3D && v.model != nil {
		v.cam3.Zoom = 1
		v.cam3.PanX, v.cam3.PanY = 0, 0
		v.refit3()
	} else {
		v.cam2.Fit(v.comp.UnionBounds(true), v.opts.FitPadding)
	}
	v.markDirty()
	v.emitViewChange()
}

// Bounds returns the 2-D camera bounds.
func (v *Viewport) Bounds() geom.BBox { return v.cam2.Bounds }

// SetBounds sets the 2-D camera bounds directly (initial extent).
func (v *Viewport) SetBounds(b geom.BBox) {
	v.cam2.Bounds = b
	v.markDirty()
	v.emitViewChange()
}

// Transform returns the current 2-D world-to-screen mapping.
func (v *Viewport) Transform() Transform2D { return v.cam2.Transform() }

// Transform3 returns the current 3-D projection.
func (v *Viewport) Transform3() Transform3D {
	t := v.base3
	t.RotX = v.cam3.RotX
	t.RotY = v.cam3.RotY
	t.Zoom = v.cam3.Zoom
	t.PanX = v.cam3.PanX
	t.PanY = v.cam3.PanY
	return t
}

func (v *Viewport) refit3() {
	box, ok := v.model.Bounds()
	if !ok {
		box = solid.Box{Max: solid.Vec{X: 1, Y: 1, Z: 1}}
	}
	v.base3 = FitTransform3D(box, float64(v.opts.Width), float64(v.opts.Height))
}

// Pan shifts the view by a screen-space delta, honoring the scene.
// Keyboard panning uses this directly, bypassing the drag machinery.
func (v *Viewport) Pan(dx, dy float64) { v.pan(dx, dy) }

// Zoom zooms around the viewport center.
func (v *Viewport) Zoom(factor float64) {
	v.zoomAt(float64(v.opts.Width)/2, float64(v.opts.Height)/2, factor)
}

// PointerDown forwards a press to the interaction controller.
func (v *Viewport) PointerDown(px, py float64) { v.controller.PointerDown(px, py) }

// PointerMove forwards pointer motion.
func (v *Viewport) PointerMove(px, py float64) { v.controller.PointerMove(px, py) }

// PointerUp forwards a release.
func (v *Viewport) PointerUp(px, py float64) { v.controller.PointerUp(px, py) }

// PointerLeave aborts any drag when the pointer exits the surface.
func (v *Viewport) PointerLeave() { v.controller.PointerLeave() }

// Wheel zooms at the pointer; positive notches zoom in.
func (v *Viewport) Wheel(px, py float64, notches int) { v.controller.Wheel(px, py, notches) }

func (v *Viewport) pan(dx, dy float64) {
	if v.scene == Scene3D {
		v.cam3.Pan(dx, dy)
	} else {
		v.cam2.PanByPixels(dx, dy)
	}
	v.markDirty()
	v.emitViewChange()
}

func (v *Viewport) orbit(dx, dy float64) {
	if v.scene != Scene3D {
		return
	}
	v.cam3.Orbit(dx, dy)
	v.markDirty()
	v.emitViewChange()
}

func (v *Viewport) zoomAt(px, py, factor float64) {
	if v.scene == Scene3D {
		// orthographic projection is centered; the cursor anchor has no
		// world meaning here, only the factor applies
		v.cam3.ZoomBy(1 / factor)
	} else {
		v.cam2.ZoomAt(px, py, factor)
	}
	v.markDirty()
	v.emitViewChange()
}

func (v *Viewport) click(px, py float64) {
	if v.controller.Tool != ToolSelect {
		return
	}
	if v.scene == Scene3D {
		id, ok := PickElement(v.model, v.Transform3(), px, py)
		if !ok {
			v.ClearSelection()
			return
		}
		if id != v.selectedElem {
			v.selectedElem = id
			v.selected = nil
			v.markDirty()
			v.emitSelectionChange()
		}
		return
	}
	wx, wy := v.Transform().ToWorld(px, py)
	hit, ok := v.hit.Pick(&v.comp, wx, wy)
	if !ok {
		v.ClearSelection()
		return
	}
	if v.selected == nil || *v.selected != hit {
		h := hit
		v.selected = &h
		v.selectedElem = ""
		v.markDirty()
		v.emitSelectionChange()
	}
	if v.OnFeatureClick != nil {
		if l := v.comp.Layer(hit.Layer); l != nil {
			v.OnFeatureClick(l.Features.Features[hit.Feature], hit.Layer)
		}
	}
}

func (v *Viewport) emitViewChange() {
	if v.OnViewChange != nil {
		v.OnViewChange(v.State())
	}
}

func (v *Viewport) emitSelectionChange() {
	if v.OnSelectionChange != nil {
		v.OnSelectionChange()
	}
}

// State snapshots the camera for OnViewChange consumers.
func (v *Viewport) State() ViewState {
	return ViewState{
		Scene:  v.scene,
		Bounds: v.cam2.Bounds,
		RotX:   v.cam3.RotX,
		RotY:   v.cam3.RotY,
		Zoom:   v.cam3.Zoom,
		PanX:   v.cam3.PanX,
		PanY:   v.cam3.PanY,
	}
}

// Render draws one frame of the current state onto c and clears the
// dirty flag. It is a pure function of viewport state.
func (v *Viewport) Render(c render.Canvas) {
	v.dirty = false
	c.Clear(render.ResolveColor(v.opts.Theme.Background, 1))
	if v.scene == Scene3D {
		v.render3(c)
		return
	}
	v.render2(c)
}

func (v *Viewport) render2(c render.Canvas) {
	t := v.Transform()
	proj := t.Projection()
	visible := v.cam2.Bounds
	for i := 0; i < v.comp.Len(); i++ {
		l := v.comp.Layer(i)
		if !l.Visible || l.Features == nil || l.Opacity <= 0 {
			continue
		}
		for _, fi := range l.Search(visible) {
			f := l.Features.Features[fi]
			if f.Geometry == nil {
				continue
			}
			render.Draw(c, f.Geometry, l.Style, l.Opacity, proj)
		}
	}
	if v.selected != nil {
		if l := v.comp.Layer(v.selected.Layer); l != nil && l.Visible {
			f := l.Features.Features[v.selected.Feature]
			render.Draw(c, f.Geometry, v.opts.Theme.HighlightStyle(), 1, proj)
		}
	}
}

func (v *Viewport) render3(c render.Canvas) {
	if v.opts.ShowGrid {
		render.DrawGrid(c, v.opts.GridSpacing, v.opts.Theme)
	}
	st := render.DefaultModelStyle(v.opts.Theme)
	st.Mode = v.opts.Mode
	st.SelectedID = v.selectedElem
	render.DrawModel(c, v.model, v.Transform3().Projection(), st)
}
