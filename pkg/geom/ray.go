// Package geom holds the low-level geometric types shared by the
// primitive, mesh, and scene-tree packages: rays, axis-aligned bounding
// boxes, and the intersection record produced by a hit test.
package geom

import "github.com/kestrelwing/raylang/pkg/math3d"

// Ray is a parametric line: origin + t*direction. Direction is unit
// length wherever shading depends on it (camera rays); rays transformed
// into a child's local space need not be, since only distance ordering
// and the slab test use it there.
type Ray struct {
	Origin    math3d.Vec3
	Direction math3d.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) math3d.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform applies an affine transform to the ray: transform_point to
// the origin, transform_direction to the direction.
func (r Ray) Transform(m math3d.Mat4) Ray {
	return Ray{
		Origin:    m.TransformPoint(r.Origin),
		Direction: m.TransformDirection(r.Direction),
	}
}
