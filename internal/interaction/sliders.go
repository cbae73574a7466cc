package interaction

import (
	"github.com/Faultbox/meshview/pkg/math"
)

// Axis indexes a rotation slider.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Slider range in degrees.
const (
	MinDegrees float32 = -180
	MaxDegrees float32 = 180
)

// Sliders holds per-axis rotation angles in degrees. The zero value is the
// identity rotation.
type Sliders struct {
	Degrees [3]float32
}

// Set assigns an axis angle, clamped to [MinDegrees, MaxDegrees].
func (s *Sliders) Set(axis Axis, deg float32) {
	if axis < AxisX || axis > AxisZ {
		return
	}
	s.Degrees[axis] = clampDegrees(deg)
}

// Get returns an axis angle.
func (s *Sliders) Get(axis Axis) float32 {
	if axis < AxisX || axis > AxisZ {
		return 0
	}
	return s.Degrees[axis]
}

// Reset sets every axis to zero.
func (s *Sliders) Reset() {
	s.Degrees = [3]float32{}
}

// IsZero reports whether all axes are zero.
func (s *Sliders) IsZero() bool {
	return s.Degrees == [3]float32{}
}

// Rotation returns the Euler XYZ rotation of the sliders.
func (s *Sliders) Rotation() math.Quat {
	if s.IsZero() {
		return math.QuatIdentity()
	}
	return math.QuatFromEulerDegrees(s.Degrees[0], s.Degrees[1], s.Degrees[2])
}

func clampDegrees(deg float32) float32 {
	if deg != deg { // NaN
		return 0
	}
	return max(MinDegrees, min(MaxDegrees, deg))
}
