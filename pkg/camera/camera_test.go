package camera

import (
	"testing"

	"github.com/kestrelwing/raylang/pkg/math3d"
)

func TestComputeBasisIsOrthonormalAndRightHanded(t *testing.T) {
	c := Camera{Direction: math3d.V3(0, 0, -1), Up: math3d.V3(0, 1, 0)}
	b := c.ComputeBasis()

	for name, v := range map[string]math3d.Vec3{"z": b.Z, "x": b.X, "y": b.Y} {
		if mag := v.Magnitude(); mag < 0.999 || mag > 1.001 {
			t.Errorf("%s not unit length: %v (mag %v)", name, v, mag)
		}
	}
	if d := b.X.Dot(b.Z); d > 1e-5 || d < -1e-5 {
		t.Errorf("x,z not orthogonal: dot=%v", d)
	}
	if d := b.Y.Dot(b.Z); d > 1e-5 || d < -1e-5 {
		t.Errorf("y,z not orthogonal: dot=%v", d)
	}
	// right-handed: x cross z should equal -y (since y = x cross z by construction,
	// verify the triple product x . (y cross z) is positive.
	triple := b.X.Dot(b.Y.Cross(b.Z))
	if triple <= 0 {
		t.Errorf("basis is not right-handed: triple product %v", triple)
	}
}

func TestPlaneRaySingleRowSingleColumnNoDivideByZero(t *testing.T) {
	c := Camera{
		Location:  math3d.V3(0, 0, 5),
		Direction: math3d.V3(0, 0, -1),
		Up:        math3d.V3(0, 1, 0),
		Distance:  1,
		FOVAngle:  60,
	}
	plane := c.NewPlane(1, 1)
	ray := plane.Ray(0, 0)

	if ray.Direction.MagnitudeSquared() == 0 {
		t.Fatal("1x1 plane produced a degenerate ray direction")
	}
	for _, comp := range []float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z} {
		if comp != comp { // NaN check
			t.Fatalf("ray direction contains NaN: %v", ray.Direction)
		}
	}
}

func TestPlaneRayCentersOnAxis(t *testing.T) {
	c := Camera{
		Location:  math3d.Zero3(),
		Direction: math3d.V3(0, 0, -1),
		Up:        math3d.V3(0, 1, 0),
		Distance:  1,
		FOVAngle:  90,
	}
	plane := c.NewPlane(101, 101)
	ray := plane.Ray(50, 50)

	if d := ray.Direction.Sub(math3d.V3(0, 0, -1)).Magnitude(); d > 1e-4 {
		t.Errorf("center ray direction: got %v, want (0,0,-1)", ray.Direction)
	}
}
