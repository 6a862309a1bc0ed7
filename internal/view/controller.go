package view

import "math"

// Tool selects what a pointer drag does.
type Tool int

const (
	ToolPan Tool = iota
	ToolOrbit
	ToolSelect
)

func (t Tool) String() string {
	switch t {
	case ToolPan:
		return "pan"
	case ToolOrbit:
		return "orbit"
	case ToolSelect:
		return "select"
	default:
		return "unknown"
	}
}

// clickSlop is the maximum total pointer travel, in pixels, for a
// press-release pair to still count as a click.
const clickSlop = 2.0

// wheelStep is the per-notch zoom factor; one notch in divides the view
// span by this.
const wheelStep = 1.2

// Controller turns raw pointer events into pan, orbit, zoom and click
// actions. It is a two-state machine: idle until a press, dragging
// until release or pointer loss.
type Controller struct {
	Tool Tool

	// Actions the owner wires up. Nil actions are skipped.
	Pan    func(dx, dy float64)
	Orbit  func(dx, dy float64)
	ZoomAt func(px, py, factor float64)
	Click  func(px, py float64)

	dragging bool
	lastX    float64
	lastY    float64
	downX    float64
	downY    float64
	travel   float64
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// PointerDown begins a potential drag or click.
func (c *Controller) PointerDown(px, py float64) {
	c.dragging = true
	c.lastX, c.lastY = px, py
	c.downX, c.downY = px, py
	c.travel = 0
}

// PointerMove applies the active tool's drag action. Moves while idle
// are ignored.
func (c *Controller) PointerMove(px, py float64) {
	if !c.dragging {
		return
	}
	dx := px - c.lastX
	dy := py - c.lastY
	c.lastX, c.lastY = px, py
	c.travel += math.Abs(dx) + math.Abs(dy)
	switch c.Tool {
	case ToolPan:
		if c.Pan != nil {
			c.Pan(dx, dy)
		}
	case ToolOrbit:
		if c.Orbit != nil {
			c.Orbit(dx, dy)
		}
	}
}

// PointerUp ends the gesture. A release that barely moved is a click at
// the press position regardless of tool.
func (c *Controller) PointerUp(px, py float64) {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.travel += math.Abs(px-c.lastX) + math.Abs(py-c.lastY)
	if c.travel <= clickSlop && c.Click != nil {
		c.Click(c.downX, c.downY)
	}
}

// PointerLeave aborts any gesture; a drag that exits the surface never
// becomes a click.
func (c *Controller) PointerLeave() {
	c.dragging = false
}

// Wheel zooms around the pointer. Positive notches zoom in.
func (c *Controller) Wheel(px, py float64, notches int) {
	if notches == 0 || c.ZoomAt == nil {
		return
	}
	factor := math.Pow(wheelStep, -float64(notches))
	c.ZoomAt(px, py, factor)
}
