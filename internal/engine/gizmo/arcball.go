// Package gizmo implements the rotation manipulator: an arcball laid over the
// viewport. It is pure math; drawing is done by the renderer.
package gizmo

import (
	gomath "math"

	"github.com/Faultbox/meshview/pkg/math"
)

// HitSlack widens the grab area past the drawn ring, as a fraction of the radius.
const HitSlack = 0.1

// Arcball maps pointer drags in viewport pixels to rotations.
// Pixel coordinates have their origin at the top-left, Y pointing down.
type Arcball struct {
	center math.Vec2
	radius float32

	active   bool
	start    math.Vec3
	startRot math.Quat
	rotation math.Quat
}

// NewArcball returns an arcball with no layout.
func NewArcball() *Arcball {
	return &Arcball{rotation: math.QuatIdentity(), startRot: math.QuatIdentity()}
}

// Layout places the arcball at (cx, cy) with the given radius in pixels.
func (a *Arcball) Layout(cx, cy, radius float32) {
	a.center = math.Vec2{X: cx, Y: cy}
	a.radius = radius
}

// Hit reports whether (x, y) grabs the arcball.
func (a *Arcball) Hit(x, y float32) bool {
	if a.radius <= 0 {
		return false
	}
	return math.Vec2{X: x, Y: y}.Distance(a.center) <= a.radius*(1+HitSlack)
}

// Begin starts a drag at (x, y) from the rotation current. It returns false,
// and stays inactive, when the point misses the arcball.
func (a *Arcball) Begin(x, y float32, current math.Quat) bool {
	if !a.Hit(x, y) {
		return false
	}
	a.active = true
	a.start = a.project(x, y)
	a.startRot = current
	a.rotation = current
	return true
}

// Drag returns the rotation for the pointer at (x, y). viewToWorld maps the
// view-space drag axis into world space, normally the inverse view matrix.
// Outside a drag it returns the last rotation.
func (a *Arcball) Drag(x, y float32, viewToWorld math.Mat4) math.Quat {
	if !a.active {
		return a.rotation
	}

	cur := a.project(x, y)
	axis := a.start.Cross(cur)
	if axis.Length() < 1e-6 {
		a.rotation = a.startRot
		return a.rotation
	}

	dot := max(-1, min(1, a.start.Dot(cur)))
	angle := float32(gomath.Acos(float64(dot)))
	worldAxis := viewToWorld.TransformDirection(axis).Normalize()

	delta := math.QuatFromAxisAngle(worldAxis, angle)
	a.rotation = delta.Mul(a.startRot).Normalize()
	return a.rotation
}

// End finishes the drag.
func (a *Arcball) End() {
	a.active = false
}

// Active reports whether a drag is in progress.
func (a *Arcball) Active() bool {
	return a.active
}

// project maps a pixel onto the unit sphere in view space. Points outside the
// ball land on its rim.
func (a *Arcball) project(x, y float32) math.Vec3 {
	if a.radius <= 0 {
		return math.Vec3{Z: 1}
	}
	px := (x - a.center.X) / a.radius
	py := -(y - a.center.Y) / a.radius

	d2 := px*px + py*py
	if d2 <= 1 {
		return math.Vec3{X: px, Y: py, Z: float32(gomath.Sqrt(float64(1 - d2)))}
	}
	return math.Vec3{X: px, Y: py}.Normalize()
}

// Ring returns points of a unit circle around axis (0 = X, 1 = Y, 2 = Z).
func Ring(axis, segments int) []math.Vec3 {
	if segments < 3 {
		segments = 3
	}
	points := make([]math.Vec3, segments)
	for i := range points {
		t := 2 * gomath.Pi * float64(i) / float64(segments)
		c, s := float32(gomath.Cos(t)), float32(gomath.Sin(t))
		switch axis {
		case 0:
			points[i] = math.Vec3{Y: c, Z: s}
		case 1:
			points[i] = math.Vec3{X: c, Z: s}
		default:
			points[i] = math.Vec3{X: c, Y: s}
		}
	}
	return points
}
