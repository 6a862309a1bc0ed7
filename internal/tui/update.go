package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geoscope/internal/geom"
	"geoscope/internal/render"
	"geoscope/internal/view"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncLayout()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				g, err := geom.ParseWKT(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.selPath = ""
				fc := &geom.FeatureCollection{Features: []geom.Feature{{Geometry: g}}}
				npoly, nline, npt := m.setCollection(fc)
				m.status = fmt.Sprintf("rendered WKT  counts: poly=%d ls=%d pts=%d", npoly, nline, npt)
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.vp.SetTool(view.ToolPan)
			m.status = "tool: pan"
		case "2":
			m.vp.SetTool(view.ToolOrbit)
			m.status = "tool: orbit"
		case "3":
			m.vp.SetTool(view.ToolSelect)
			m.status = "tool: select"
		case "m":
			m.vp.SetMode(m.vp.Mode().Next())
			m.status = "mode: " + m.vp.Mode().String()
		case "g":
			m.vp.SetGridVisible(!m.vp.GridVisible())
			m.status = fmt.Sprintf("grid: %v", m.vp.GridVisible())
		case "t":
			if m.vp.Theme().Name == "dark" {
				m.vp.SetTheme(render.LightTheme())
			} else {
				m.vp.SetTheme(render.DarkTheme())
			}
			m.status = "theme: " + m.vp.Theme().Name
		case "v":
			if m.vp.Scene() == view.Scene2D {
				m.vp.SetScene(view.Scene3D)
				if m.vp.Scene() == view.Scene2D {
					m.status = "no model loaded"
				} else {
					m.status = "scene: 3d"
				}
			} else {
				m.vp.SetScene(view.Scene2D)
				m.status = "scene: 2d"
			}
		case "f":
			m.vp.FitToExtent()
			m.status = "fit to extent"
		case "c":
			m.vp.ClearSelection()
			m.picked = nil
			m.status = "selection cleared"
		case "s":
			m.status = m.snapshot()
		case "+", "=":
			m.vp.Zoom(1 / 1.2)
		case "-", "_":
			m.vp.Zoom(1.2)
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
			}
			m.syncLayout()
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.vp.Pan(0, 4)
		case "down":
			m.vp.Pan(0, -4)
		case "left":
			m.vp.Pan(4, 0)
		case "right":
			m.vp.Pan(-4, 0)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// mapOrigin returns the top-left terminal cell of the map area; the
// layout must match View.
func (m Model) mapOrigin() (x, y int) {
	x = 0
	if m.showSidebar {
		x = sidebarWidth + 1
	}
	return x, headerHeight
}

// syncLayout recomputes the map cell size and resizes the viewport to
// the matching micro-pixel grid.
func (m *Model) syncLayout() {
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}
	mapWidth := contentWidth
	if m.showSidebar {
		mapWidth = contentWidth - sidebarWidth - 1
	}
	if mapWidth < 10 {
		mapWidth = 10
	}
	m.mapW = mapWidth
	m.mapH = contentHeight
	// 2x4 micro pixels per terminal cell
	m.vp.Resize(m.mapW*2, m.mapH*4)
	m.canvas = render.NewCellCanvas(m.mapW, m.mapH)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ox, oy := m.mapOrigin()
	inside := msg.X >= ox && msg.X < ox+m.mapW && msg.Y >= oy && msg.Y < oy+m.mapH
	if !inside {
		m.hovering = false
		m.vp.PointerLeave()
		return
	}
	px := float64(msg.X-ox) * 2
	py := float64(msg.Y-oy) * 4

	m.hovering = true
	if m.vp.Scene() == view.Scene2D {
		m.hoverLon, m.hoverLat = m.vp.Transform().ToWorld(px, py)
		m.hoverHasGeo = true
	} else {
		m.hoverHasGeo = false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.vp.PointerDown(px, py)
		case tea.MouseButtonWheelUp:
			m.vp.Wheel(px, py, 1)
		case tea.MouseButtonWheelDown:
			m.vp.Wheel(px, py, -1)
		}
	case tea.MouseActionMotion:
		m.vp.PointerMove(px, py)
	case tea.MouseActionRelease:
		m.vp.PointerUp(px, py)
		m.afterClick()
	}
}

// afterClick refreshes the picked feature from the viewport selection.
func (m *Model) afterClick() {
	if m.vp.Tool() != view.ToolSelect {
		return
	}
	if m.vp.Scene() == view.Scene3D {
		if id := m.vp.SelectedElement(); id != "" {
			m.status = "selected element: " + id
		}
		m.picked = nil
		if m.showAttrs {
			m.refreshAttrs()
		}
		return
	}
	hit, ok := m.vp.SelectedFeature()
	if !ok {
		m.picked = nil
		if m.showAttrs {
			m.refreshAttrs()
		}
		return
	}
	l := m.vp.Layers().Layer(hit.Layer)
	if l == nil {
		return
	}
	f := l.Features.Features[hit.Feature]
	m.picked = &f
	m.pickedLayer = hit.Layer
	m.status = fmt.Sprintf("selected feature %d on %s", hit.Feature, l.Name)
	if m.showAttrs {
		m.refreshAttrs()
	}
}
