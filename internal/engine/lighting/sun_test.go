package lighting

import (
	"testing"

	"github.com/Faultbox/meshview/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float32
		want     math.Vec3
	}{
		{"towards viewer", 0, 0, math.Vec3{Z: 1}},
		{"overhead", 0, 90, math.Vec3{Y: 1}},
		{"right", 90, 0, math.Vec3{X: 1}},
		{"behind", 180, 0, math.Vec3{Z: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.lon, tt.lat)
			if !got.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if l := got.Length(); l < 0.9999 || l > 1.0001 {
				t.Errorf("expected unit length, got %f", l)
			}
		})
	}
}

func TestStudio(t *testing.T) {
	l := Studio()
	if l.Direction.Y <= 0 || l.Direction.X <= 0 || l.Direction.Z <= 0 {
		t.Errorf("expected key light above, right and in front, got %+v", l.Direction)
	}
	if l.Ambient <= 0 || l.Ambient >= 1 {
		t.Errorf("expected ambient in (0,1), got %f", l.Ambient)
	}
}
