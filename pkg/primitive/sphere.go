// Package primitive implements the analytic geometry variants of the
// scene tree: currently the sphere.
package primitive

import (
	"math"

	"github.com/kestrelwing/raylang/pkg/geom"
	"github.com/kestrelwing/raylang/pkg/material"
	"github.com/kestrelwing/raylang/pkg/math3d"
)

// Primitive is a tagged union over the analytic shapes a scene tree leaf
// can hold. Sphere is the only variant the format recognizes today.
type Primitive struct {
	Kind   Kind
	Radius float32
	Center math3d.Vec3
}

// Kind discriminates Primitive variants.
type Kind int

// Sphere is the sole Kind.
const Sphere Kind = iota

// NewSphere builds a Sphere primitive.
func NewSphere(radius float32, center math3d.Vec3) Primitive {
	return Primitive{Kind: Sphere, Radius: radius, Center: center}
}

// Transform applies an affine matrix to the primitive. Sphere radius
// scales by m.R1.X: correct for isotropic scale and identity rotation
// only. Anisotropic scale of a sphere is a known limitation inherited
// from the source renderer; see DESIGN.md.
func (p Primitive) Transform(m math3d.Mat4) Primitive {
	switch p.Kind {
	case Sphere:
		return Primitive{
			Kind:   Sphere,
			Radius: p.Radius * m.R1.X,
			Center: m.TransformPoint(p.Center),
		}
	default:
		return p
	}
}

// Intersect tests ray against the primitive, recording the nearest hit
// (if any) into closest under mat.
func (p Primitive) Intersect(ray geom.Ray, mat *material.Material, closest *geom.Closest) {
	switch p.Kind {
	case Sphere:
		intersectSphere(p.Radius, p.Center, ray, mat, closest)
	}
}

func intersectSphere(radius float32, center math3d.Vec3, ray geom.Ray, mat *material.Material, closest *geom.Closest) {
	oc := ray.Origin.Sub(center)
	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.MagnitudeSquared() - radius*radius
	discrim := b*b - 4.0*c
	if discrim < 0 {
		return
	}

	sq := float32(math.Sqrt(float64(discrim)))
	t0 := (-b - sq) / 2.0
	t1 := (-b + sq) / 2.0

	normalAt := func(t float32) math3d.Vec3 {
		return ray.Direction.Scale(t).Add(oc).Scale(1.0 / radius)
	}

	if t0 <= 0 {
		if t1 <= 0 {
			return
		}
		closest.Consider(geom.Hit{T: t1, Normal: normalAt(t1), Material: mat})
		return
	}
	closest.Consider(geom.Hit{T: t0, Normal: normalAt(t0), Material: mat})
	closest.Consider(geom.Hit{T: t1, Normal: normalAt(t1), Material: mat})
}

// BoundingBox returns the AABB enclosing the sphere.
func (p Primitive) BoundingBox() geom.BoundingBox {
	r := math3d.V3(p.Radius, p.Radius, p.Radius)
	return geom.BoundingBox{Min: p.Center.Sub(r), Max: p.Center.Add(r)}
}
