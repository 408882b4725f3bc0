package primitive

import (
	"testing"

	"github.com/kestrelwing/raylang/pkg/geom"
	"github.com/kestrelwing/raylang/pkg/material"
	"github.com/kestrelwing/raylang/pkg/math3d"
)

func TestSphereIntersectThroughCenter(t *testing.T) {
	sphere := NewSphere(1, math3d.Zero3())
	ray := geom.Ray{Origin: math3d.V3(0, 0, 5), Direction: math3d.V3(0, 0, -1)}

	var mat material.Material
	var closest geom.Closest
	sphere.Intersect(ray, &mat, &closest)

	if !closest.Found {
		t.Fatal("expected a hit")
	}
	if got, want := closest.Hit.T, float32(4); got != want {
		t.Errorf("T: got %v, want %v", got, want)
	}
	if d := closest.Hit.Normal.Sub(math3d.V3(0, 0, 1)).Magnitude(); d > 1e-5 {
		t.Errorf("normal: got %v, want (0,0,1)", closest.Hit.Normal)
	}
}

func TestSphereIntersectFromInside(t *testing.T) {
	sphere := NewSphere(1, math3d.Zero3())
	ray := geom.Ray{Origin: math3d.Zero3(), Direction: math3d.V3(1, 0, 0)}

	var mat material.Material
	var closest geom.Closest
	sphere.Intersect(ray, &mat, &closest)

	if !closest.Found || closest.Hit.T != 1 {
		t.Errorf("expected single exit hit at T=1, got %+v", closest)
	}
}

func TestSphereIntersectMiss(t *testing.T) {
	sphere := NewSphere(1, math3d.Zero3())
	ray := geom.Ray{Origin: math3d.V3(5, 5, 5), Direction: math3d.V3(1, 0, 0)}

	var mat material.Material
	var closest geom.Closest
	sphere.Intersect(ray, &mat, &closest)

	if closest.Found {
		t.Errorf("expected no hit, got %+v", closest)
	}
}

func TestSphereIntersectBehindRay(t *testing.T) {
	sphere := NewSphere(1, math3d.Zero3())
	ray := geom.Ray{Origin: math3d.V3(0, 0, -5), Direction: math3d.V3(0, 0, -1)}

	var mat material.Material
	var closest geom.Closest
	sphere.Intersect(ray, &mat, &closest)

	if closest.Found {
		t.Errorf("sphere entirely behind the ray must not hit, got %+v", closest)
	}
}

func TestSphereTransformScalesRadiusIsotropically(t *testing.T) {
	sphere := NewSphere(1, math3d.Zero3())
	m := math3d.Scale(math3d.V3(2, 2, 2))
	transformed := sphere.Transform(m)
	if transformed.Radius != 2 {
		t.Errorf("Radius: got %v, want 2", transformed.Radius)
	}
}
