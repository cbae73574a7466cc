// Package interaction decides which input gesture drives the view: the orbit
// camera, the rotation gizmo, or the rotation sliders.
package interaction

import (
	"fmt"

	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/pkg/math"
)

// Mode selects how pointer drags on the viewport are interpreted.
type Mode int

const (
	// OrbitOnly sends every drag to the camera.
	OrbitOnly Mode = iota
	// GizmoRotate shows the rotation gizmo; drags that start on it rotate
	// the model, all others orbit.
	GizmoRotate
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case OrbitOnly:
		return "orbit"
	case GizmoRotate:
		return "gizmo"
	default:
		return "unknown"
	}
}

// Variant is the interaction layout of the viewer.
type Variant string

const (
	// VariantSimple rotates with X/Y/Z sliders next to an always-on orbit.
	VariantSimple Variant = "simple"
	// VariantDual switches between orbit and a rotation gizmo.
	VariantDual Variant = "dual"
)

// ParseVariant validates a variant name.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantSimple, VariantDual:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("unknown viewer variant %q (want %q or %q)", s, VariantSimple, VariantDual)
	}
}

// DefaultMode returns the mode the variant starts in.
func (v Variant) DefaultMode() Mode {
	if v == VariantDual {
		return GizmoRotate
	}
	return OrbitOnly
}

// OrbitEnabled reports whether the camera orbit responds to input.
// Orbit and gizmo rotation never run together.
func OrbitEnabled(mode Mode, dragging bool) bool {
	return mode == OrbitOnly || !dragging
}

// Controller tracks the interaction mode, the gizmo drag, and the display
// rotation of the current model. It is used from the UI thread only.
type Controller struct {
	mode     Mode
	dragging bool
	target   *model.Normalized
	rotation math.Quat
}

// NewController creates a controller in the given mode with no model attached.
func NewController(mode Mode) *Controller {
	return &Controller{
		mode:     mode,
		rotation: math.QuatIdentity(),
	}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SetMode switches modes. Leaving gizmo mode ends any drag so the orbit is
// available immediately.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
	if m == OrbitOnly {
		c.dragging = false
	}
}

// ToggleMode switches between OrbitOnly and GizmoRotate.
func (c *Controller) ToggleMode() {
	if c.mode == OrbitOnly {
		c.SetMode(GizmoRotate)
	} else {
		c.SetMode(OrbitOnly)
	}
}

// BeginDrag records the start of a gizmo drag. It is ignored unless the
// gizmo is shown. Returns whether the drag started.
func (c *Controller) BeginDrag() bool {
	if !c.GizmoVisible() {
		return false
	}
	c.dragging = true
	return true
}

// EndDrag records the end of a gizmo drag.
func (c *Controller) EndDrag() {
	c.dragging = false
}

// Dragging reports whether a gizmo drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// OrbitEnabled reports whether the camera orbit responds to input now.
func (c *Controller) OrbitEnabled() bool {
	return OrbitEnabled(c.mode, c.dragging)
}

// GizmoVisible reports whether the gizmo is shown: gizmo mode with a model.
func (c *Controller) GizmoVisible() bool {
	return c.mode == GizmoRotate && c.target != nil
}

// Target returns the model the gizmo is attached to.
func (c *Controller) Target() *model.Normalized {
	return c.target
}

// Sync attaches the gizmo to the live model. When the model changes the
// display rotation resets and any drag ends. A nil model detaches the gizmo.
// Returns whether the model changed.
func (c *Controller) Sync(live *model.Normalized) bool {
	if live == c.target {
		return false
	}
	c.target = live
	c.rotation = math.QuatIdentity()
	c.dragging = false
	return true
}

// Rotation returns the display rotation applied to the model.
func (c *Controller) Rotation() math.Quat {
	return c.rotation
}

// SetRotation sets the display rotation.
func (c *Controller) SetRotation(q math.Quat) {
	c.rotation = q.Normalize()
}

// ResetRotation clears the display rotation.
func (c *Controller) ResetRotation() {
	c.rotation = math.QuatIdentity()
}
