package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout sizes
const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" geoscope ─ terminal spatial viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	if m.showAttrs {
		// Render attributes table centered in the map area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(m.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(m.mapH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(m.mapW, m.mapH, lipgloss.Center, lipgloss.Center, attrsBox)
	} else if m.pasteMode {
		m.ta.SetWidth(m.mapW)
		m.ta.SetHeight(min(m.mapH, 12))
		mapView = lipgloss.NewStyle().Width(m.mapW).Height(m.mapH).Render(m.ta.View())
	} else {
		mapView = lipgloss.NewStyle().Width(m.mapW).Height(m.mapH).Render(m.renderMap())
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering && m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lon=%.5f lat=%.5f  ", m.hoverLon, m.hoverLat))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// renderMap draws the viewport into the cell canvas and turns it into
// colored terminal lines. The canvas is reused across frames and only
// redrawn when the viewport is dirty.
func (m Model) renderMap() string {
	if m.canvas == nil {
		return ""
	}
	if m.vp.Dirty() {
		m.vp.Render(m.canvas)
	}
	var b strings.Builder
	for cy := 0; cy < m.mapH; cy++ {
		if cy > 0 {
			b.WriteByte('\n')
		}
		// batch runs of equally-colored cells into one styled segment
		var run strings.Builder
		var runColor string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			s := run.String()
			if runColor != "" {
				s = lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(s)
			}
			b.WriteString(s)
			run.Reset()
		}
		for cx := 0; cx < m.mapW; cx++ {
			hex := ""
			if col, ok := m.canvas.CellColor(cx, cy); ok {
				hex = fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
			}
			if hex != runColor {
				flush()
				runColor = hex
			}
			run.WriteRune(m.canvas.Rune(cx, cy))
		}
		flush()
	}
	return b.String()
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"1/2/3 tool",
		"v scene",
		"m mode",
		"g grid",
		"t theme",
		"f fit",
		"↑↓←→ pan",
		"+/- zoom",
		"Tab files",
		"p paste",
		"a attrs",
		"s snap",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
