package math3d

import "testing"

// TestMat4MulFixture is the matrix-multiply fixture from the original
// implementation's test suite, ported directly: A*B must equal C.
func TestMat4MulFixture(t *testing.T) {
	a := Mat4{
		R1: V4(1, 2, 3, 4),
		R2: V4(5, 6, 7, 8),
		R3: V4(9, 10, 11, 12),
		R4: V4(13, 14, 15, 16),
	}
	b := Mat4{
		R1: V4(17, 18, 19, 20),
		R2: V4(21, 22, 23, 24),
		R3: V4(25, 26, 27, 28),
		R4: V4(29, 30, 31, 23),
	}
	want := Mat4{
		R1: V4(250, 260, 270, 244),
		R2: V4(618, 644, 670, 624),
		R3: V4(986, 1028, 1070, 1004),
		R4: V4(1354, 1412, 1470, 1384),
	}

	got := a.Mul(b)
	if got != want {
		t.Errorf("Mul: got %+v, want %+v", got, want)
	}
}

// TestMat4IdentityRoundTrip: matrix(identity)*v = v exactly, and
// mm_multiply(A, identity) = A exactly.
func TestMat4IdentityRoundTrip(t *testing.T) {
	id := Identity()
	v := V3(1, 2, 3)
	if got := id.TransformPoint(v); got != v {
		t.Errorf("Identity.TransformPoint: got %v, want %v", got, v)
	}

	a := Mat4{
		R1: V4(1, 2, 3, 4),
		R2: V4(5, 6, 7, 8),
		R3: V4(9, 10, 11, 12),
		R4: V4(13, 14, 15, 16),
	}
	if got := a.Mul(id); got != a {
		t.Errorf("Mul(identity): got %+v, want %+v", got, a)
	}
}

func TestMat4RotateOriginStaysAtOrigin(t *testing.T) {
	m := Rotate(V3(0, 1, 0), 37)
	got := m.TransformPoint(Zero3())
	if got.Magnitude() > 1e-5 {
		t.Errorf("rotation moved the origin: got %v", got)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(Rotate(V3(0, 0, 1), 45)).Mul(Scale(V3(2, 3, 4)))
	inv := m.Inverse()

	p := V3(5, -1, 2)
	roundTripped := inv.TransformPoint(m.TransformPoint(p))
	if d := roundTripped.Sub(p).Magnitude(); d > 1e-4 {
		t.Errorf("point round trip: got %v, want %v (delta %v)", roundTripped, p, d)
	}

	d := V3(1, 0, 0)
	roundTrippedDir := inv.TransformDirection(m.TransformDirection(d))
	if delta := roundTrippedDir.Sub(d).Magnitude(); delta > 1e-4 {
		t.Errorf("direction round trip: got %v, want %v (delta %v)", roundTrippedDir, d, delta)
	}
}

func TestTransformKindsProjectToMatrix(t *testing.T) {
	tr := NewTranslate(V3(1, 2, 3))
	if got, want := tr.Matrix().TransformPoint(Zero3()), V3(1, 2, 3); got != want {
		t.Errorf("Translate: got %v, want %v", got, want)
	}

	sc := NewScale(V3(2, 2, 2))
	if got, want := sc.Matrix().TransformPoint(V3(1, 1, 1)), V3(2, 2, 2); got != want {
		t.Errorf("Scale: got %v, want %v", got, want)
	}
}
