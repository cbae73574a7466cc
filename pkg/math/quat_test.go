package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
	if !q.IsIdentity(0) {
		t.Error("IsIdentity should be true for the identity quaternion")
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatToMat4(t *testing.T) {
	q := QuatIdentity()
	m := q.ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotate(t *testing.T) {
	tests := []struct {
		name string
		q    Quat
		in   Vec3
		want Vec3
	}{
		{"identity", QuatIdentity(), Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{"90 about Z", QuatFromAxisAngle(Vec3{Z: 1}, math.Pi/2), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"90 about X", QuatFromAxisAngle(Vec3{X: 1}, math.Pi/2), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"180 about Y", QuatFromAxisAngle(Vec3{Y: 1}, math.Pi), Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.q.Rotate(tt.in)
			if !got.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.in, got, tt.want)
			}
			// The matrix form must agree with the quaternion form.
			viaMat := tt.q.ToMat4().TransformVec3(tt.in)
			if !viaMat.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("ToMat4().TransformVec3(%v) = %v, want %v", tt.in, viaMat, tt.want)
			}
		})
	}
}

func TestQuatFromEulerDegrees(t *testing.T) {
	if q := QuatFromEulerDegrees(0, 0, 0); !q.IsIdentity(1e-6) {
		t.Errorf("zero Euler angles should give identity, got %+v", q)
	}

	q := QuatFromEulerDegrees(90, 0, 0)
	got := q.Rotate(Vec3{0, 1, 0})
	if !got.ApproxEqual(Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("X=90 rotates +Y to %v, want +Z", got)
	}

	// XYZ order: Z is applied first, then Y, then X.
	q = QuatFromEulerDegrees(90, 90, 0)
	want := QuatFromAxisAngle(Vec3{X: 1}, math.Pi/2).Rotate(
		QuatFromAxisAngle(Vec3{Y: 1}, math.Pi/2).Rotate(Vec3{1, 0, 0}))
	if got := q.Rotate(Vec3{1, 0, 0}); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("Euler(90,90,0) rotated +X to %v, want %v", got, want)
	}
}

func TestQuatConjugate(t *testing.T) {
	q := QuatFromEulerDegrees(30, 45, 60)
	if r := q.Mul(q.Conjugate()); !r.IsIdentity(1e-5) {
		t.Errorf("q * conj(q) = %+v, want identity", r)
	}
}
