package main

import (
	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/gizmo"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/interaction"
	"github.com/Faultbox/meshview/pkg/math"
)

// pointer is the mouse state over the viewport image for one frame.
// X and Y are pixels relative to the image's top-left corner.
type pointer struct {
	X, Y    float32
	Down    bool // left button held
	Hovered bool
	Wheel   float32
}

// viewInput routes pointer gestures to the gizmo or the orbit camera.
// A press on the gizmo starts a rotation; any other press over the image
// starts an orbit. The gesture keeps its target until release. Presses that
// start outside the image are ignored until released.
type viewInput struct {
	controller *interaction.Controller
	arcball    *gizmo.Arcball
	camera     *camera.OrbitCamera

	held    bool // button state last frame
	pressed bool // gesture started over the image
	orbit   bool
	last    math.Vec2
}

func newViewInput(c *interaction.Controller, a *gizmo.Arcball, cam *camera.OrbitCamera) *viewInput {
	return &viewInput{controller: c, arcball: a, camera: cam}
}

// layout sizes the arcball to the gizmo rings as drawn in a width x height
// image.
func (in *viewInput) layout(width, height float32) {
	var radius float32
	if target := in.controller.Target(); target != nil {
		radius = in.camera.ProjectedRadius(target.Bounds.Radius()*renderer.RingScale, height)
	}
	in.arcball.Layout(width/2, height/2, radius)
}

// update consumes one frame of pointer state.
func (in *viewInput) update(p pointer) {
	pos := math.Vec2{X: p.X, Y: p.Y}

	// Leaving gizmo mode mid-rotation leaves the rest of the gesture inert.
	if in.arcball.Active() && !in.controller.Dragging() {
		in.arcball.End()
	}

	edge := p.Down && !in.held
	in.held = p.Down

	switch {
	case edge && p.Hovered:
		in.pressed = true
		in.last = pos
		if in.controller.GizmoVisible() && in.arcball.Begin(p.X, p.Y, in.controller.Rotation()) {
			if !in.controller.BeginDrag() {
				in.arcball.End()
			}
		}
		in.orbit = !in.arcball.Active()

	case p.Down && in.pressed:
		if in.arcball.Active() {
			viewToWorld := in.camera.ViewMatrix().Inverse()
			in.controller.SetRotation(in.arcball.Drag(p.X, p.Y, viewToWorld))
		} else if in.orbit && in.controller.OrbitEnabled() {
			d := pos.Sub(in.last)
			if d.X != 0 || d.Y != 0 {
				in.camera.HandleDrag(d.X, d.Y)
			}
		}
		in.last = pos

	case !p.Down && in.pressed:
		in.release()
	}

	if p.Hovered && p.Wheel != 0 && !in.arcball.Active() {
		in.camera.HandleZoom(p.Wheel)
	}
}

func (in *viewInput) release() {
	if in.arcball.Active() {
		in.arcball.End()
		in.controller.EndDrag()
	}
	in.pressed = false
	in.orbit = false
}
