package interaction

import (
	"math"
	"testing"

	mmath "github.com/Faultbox/meshview/pkg/math"
)

func TestSliders_DefaultIdentity(t *testing.T) {
	var s Sliders
	if !s.Rotation().IsIdentity(1e-6) {
		t.Errorf("expected identity, got %+v", s.Rotation())
	}
}

func TestSliders_SetAndReset(t *testing.T) {
	var s Sliders
	s.Set(AxisX, 90)

	v := s.Rotation().Rotate(mmath.Vec3{Y: 1})
	if !v.ApproxEqual(mmath.Vec3{Z: 1}, 1e-5) {
		t.Errorf("expected +Y rotated 90 about X to be +Z, got %v", v)
	}

	s.Reset()
	if !s.IsZero() {
		t.Errorf("expected all zero, got %v", s.Degrees)
	}
	if !s.Rotation().IsIdentity(1e-6) {
		t.Errorf("expected identity after reset, got %+v", s.Rotation())
	}
}

func TestSliders_Clamp(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{-180, -180},
		{180, 180},
		{181, 180},
		{-720, -180},
		{45.5, 45.5},
		{float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		var s Sliders
		s.Set(AxisY, tt.in)
		if got := s.Get(AxisY); got != tt.want {
			t.Errorf("Set(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestSliders_InvalidAxis(t *testing.T) {
	var s Sliders
	s.Set(Axis(7), 30)
	if !s.IsZero() {
		t.Errorf("expected no change, got %v", s.Degrees)
	}
	if s.Get(Axis(-1)) != 0 {
		t.Error("expected zero for invalid axis")
	}
}

func TestAxis_String(t *testing.T) {
	if AxisX.String()+AxisY.String()+AxisZ.String() != "XYZ" {
		t.Error("expected axis letters XYZ")
	}
}
