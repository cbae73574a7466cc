// Package camera provides the orbit camera of the model view.
package camera

import (
	gomath "math"

	"github.com/Faultbox/meshview/pkg/math"
)

// DefaultFovY is the vertical field of view in radians.
const DefaultFovY = gomath.Pi / 4

// OrbitCamera orbits around the origin, where normalized models are centered.
type OrbitCamera struct {
	// Spherical coordinates
	Distance  float32 // Distance from origin
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	FovY float32

	// radius of the fitted model, for clip planes
	radius float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            DefaultFovY,
	}
	c.FitToRadius(1)
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	return math.Vec3{
		X: c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY))),
		Y: c.Distance * float32(gomath.Sin(float64(c.RotationX))),
		Z: c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY))),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), math.Vec3{}, up)
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	near, far := c.ClipPlanes()
	return math.Perspective(c.FovY, aspect, near, far)
}

// ClipPlanes returns near and far distances that enclose the fitted model.
func (c *OrbitCamera) ClipPlanes() (near, far float32) {
	r := max(c.radius, 1e-3)
	near = max(c.Distance-r*2, r*0.01)
	far = c.Distance + r*4
	return near, far
}

// ProjectedRadius returns the on-screen radius in pixels of a sphere of the
// given world radius at the origin, for a viewport viewportHeight pixels tall.
func (c *OrbitCamera) ProjectedRadius(worldRadius, viewportHeight float32) float32 {
	if c.Distance <= 0 {
		return 0
	}
	tanHalf := float32(gomath.Tan(float64(c.FovY) / 2))
	return worldRadius / (c.Distance * tanHalf) * viewportHeight / 2
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// FitToRadius frames a model of the given bounding radius and resets the
// orbit angles. Zero or negative radii frame a unit sphere.
func (c *OrbitCamera) FitToRadius(radius float32) {
	if radius <= 0 {
		radius = 1
	}
	c.radius = radius

	halfFov := float64(c.FovY) / 2
	if halfFov <= 0 {
		halfFov = DefaultFovY / 2
	}
	c.Distance = radius / float32(gomath.Sin(halfFov)) * 1.1
	c.MinDistance = radius * 0.1
	c.MaxDistance = c.Distance * 20

	c.RotationX = 0.4 // look down slightly
	c.RotationY = 0.6
}

// Reset restores the framing of the last fitted radius.
func (c *OrbitCamera) Reset() {
	c.FitToRadius(c.radius)
}

// Radius returns the last fitted radius.
func (c *OrbitCamera) Radius() float32 {
	return c.radius
}
