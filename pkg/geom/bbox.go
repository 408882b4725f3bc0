package geom

import (
	"math"

	"github.com/kestrelwing/raylang/pkg/math3d"
)

// BoundingBox is an axis-aligned box used as the BVH broad-phase test and
// as the explicit bounding_box leaf of the object tree.
type BoundingBox struct {
	Min, Max math3d.Vec3
}

// Intersect reports whether ray hits the box, using the slab method: for
// each axis, compute the entry/exit distance, then take the latest entry
// and earliest exit across axes.
func (b BoundingBox) Intersect(r Ray) bool {
	t1x, t2x := slab(r.Origin.X, r.Direction.X, b.Min.X, b.Max.X)
	t1y, t2y := slab(r.Origin.Y, r.Direction.Y, b.Min.Y, b.Max.Y)
	t1z, t2z := slab(r.Origin.Z, r.Direction.Z, b.Min.Z, b.Max.Z)

	tNear := max3(t1x, t1y, t1z)
	tFar := min3(t2x, t2y, t2z)
	if tNear > tFar || tFar < 0 {
		return false
	}
	return true
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Centroid returns the midpoint of the box, used by the BVH split to
// classify which half a child falls into.
func (b BoundingBox) Centroid() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// FromVertices returns the tightest box enclosing every vertex.
func FromVertices(vertices []math3d.Vec3) BoundingBox {
	const maxF = math.MaxFloat32
	min := math3d.V3(maxF, maxF, maxF)
	max := math3d.V3(-maxF, -maxF, -maxF)
	for _, v := range vertices {
		min = min.Min(v)
		max = max.Max(v)
	}
	return BoundingBox{Min: min, Max: max}
}

// FromBoxes returns the box enclosing a set of child boxes.
func FromBoxes(boxes []BoundingBox) BoundingBox {
	out := boxes[0]
	for _, b := range boxes[1:] {
		out = out.Union(b)
	}
	return out
}

func slab(origin, dir, min, max float32) (float32, float32) {
	t1 := (min - origin) / dir
	t2 := (max - origin) / dir
	if t2 > t1 {
		return t1, t2
	}
	return t2, t1
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
