// Package lighting describes the light the model view is shaded with.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/meshview/pkg/math"
)

// Directional is a light at infinity. Direction points towards the light and
// is expressed in view space, so the light follows the camera.
type Directional struct {
	Direction math.Vec3
	Color     [3]float32
	Ambient   float32 // fraction of the base color lit regardless of angle
}

// Studio returns the default key light: above and to the right of the
// camera.
func Studio() Directional {
	return Directional{
		Direction: SunDirection(35, 50),
		Color:     [3]float32{1, 1, 1},
		Ambient:   0.25,
	}
}

// SunDirection converts longitude/latitude angles in degrees to a direction
// vector. Longitude rotates around Y starting at +Z, latitude is elevation
// from the horizon. The result is normalized.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonRad := float64(longitude) * gomath.Pi / 180.0
	latRad := float64(latitude) * gomath.Pi / 180.0

	// Spherical to Cartesian conversion
	return math.Vec3{
		X: float32(gomath.Cos(latRad) * gomath.Sin(lonRad)),
		Y: float32(gomath.Sin(latRad)),
		Z: float32(gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}
