package tui

import (
	"fmt"
	"os"
	"time"

	"geoscope/internal/render"
)

// snapshotScale upsamples the terminal micro grid for a legible PNG.
const snapshotScale = 4

// snapshot renders the current view into a raster canvas and writes it
// next to the working directory. Returns a status line.
func (m *Model) snapshot() string {
	w, h := m.vp.Size()
	if w <= 0 || h <= 0 {
		return "snapshot: empty viewport"
	}
	m.vp.Resize(w*snapshotScale, h*snapshotScale)
	img := render.NewImageCanvas(w*snapshotScale, h*snapshotScale)
	m.vp.Render(img)
	m.vp.Resize(w, h)

	name := fmt.Sprintf("geoscope-%s.png", time.Now().Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		return "snapshot error: " + err.Error()
	}
	defer f.Close()
	if err := img.WritePNG(f); err != nil {
		return "snapshot error: " + err.Error()
	}
	return "snapshot saved: " + name
}
