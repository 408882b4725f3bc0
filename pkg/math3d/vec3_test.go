package math3d

import "testing"

// Fixtures transcribed from the original implementation's math module
// tests (u = (1,2,3), v = (4,5,6)).
func TestVec3Arithmetic(t *testing.T) {
	u := V3(1, 2, 3)
	v := V3(4, 5, 6)

	if got, want := u.Add(v), V3(5, 7, 9); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := u.Sub(v), V3(-3, -3, -3); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := u.Cross(v), V3(-3, 6, -3); got != want {
		t.Errorf("Cross: got %v, want %v", got, want)
	}
	if got, want := u.Mul(v), V3(4, 10, 18); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
	if got, want := u.Dot(v), float32(32.0); got != want {
		t.Errorf("Dot: got %v, want %v", got, want)
	}
	if got, want := u.Scale(3), V3(3, 6, 9); got != want {
		t.Errorf("Scale: got %v, want %v", got, want)
	}
	if got, want := u.MagnitudeSquared(), float32(14.0); got != want {
		t.Errorf("MagnitudeSquared: got %v, want %v", got, want)
	}
	if got, want := u.Magnitude(), float32(3.7416575); absf32(got-want) > 1e-5 {
		t.Errorf("Magnitude: got %v, want %v", got, want)
	}
	n := u.Normalize()
	want := V3(0.26726124, 0.5345225, 0.8017837)
	if absf32(n.X-want.X) > 1e-5 || absf32(n.Y-want.Y) > 1e-5 || absf32(n.Z-want.Z) > 1e-5 {
		t.Errorf("Normalize: got %v, want %v", n, want)
	}
}

func TestVec3Dot0ClampsNegative(t *testing.T) {
	a := V3(1, 0, 0)
	b := V3(-1, 0, 0)
	if got := a.Dot0(b); got != 0 {
		t.Errorf("Dot0: got %v, want 0", got)
	}
}

func TestVec3PartialDeterminantMatchesDeterminant(t *testing.T) {
	a := V3(1, 0, 0)
	b := V3(0, 1, 0)
	c := V3(0, 0, 1)
	// det([a|b|c]) of the identity basis is 1.
	if got := a.PartialDeterminant(b).Dot(c); got != 1 {
		t.Errorf("PartialDeterminant: got %v, want 1", got)
	}
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
