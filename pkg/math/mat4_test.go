package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformVec3(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}

	dir := m.TransformDirection(Vec3{1, 0, 0})
	if dir != (Vec3{1, 0, 0}) {
		t.Errorf("TransformDirection should ignore translation, got %v", dir)
	}
}

func TestCompose(t *testing.T) {
	rot := QuatFromAxisAngle(Vec3{Z: 1}, math.Pi/2)
	m := Compose(Vec3{1, 0, 0}, rot, Vec3{2, 2, 2})

	// scale first, then rotate, then translate
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{1, 2, 0}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("Compose: got %v, want %v", got, want)
	}
}

func TestInverse(t *testing.T) {
	m := Compose(Vec3{3, -2, 7}, QuatFromEulerDegrees(10, 20, 30), Vec3{1, 2, 3})
	p := m.Mul(m.Inverse())

	id := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(p[i]-id[i])) > 1e-4 {
			t.Errorf("M * M^-1 element %d = %v, want %v", i, p[i], id[i])
		}
	}
}

func TestLookAt(t *testing.T) {
	view := LookAt(Vec3{0, 0, 10}, Vec3{}, Vec3{Y: 1})
	got := view.TransformVec3(Vec3{})
	if !got.ApproxEqual(Vec3{0, 0, -10}, 1e-5) {
		t.Errorf("origin in view space = %v, want (0,0,-10)", got)
	}
}
