package geom

import (
	"github.com/kestrelwing/raylang/pkg/material"
	"github.com/kestrelwing/raylang/pkg/math3d"
)

// Hit is one ray-surface intersection: the distance along the ray, the
// surface normal at that point, and the material in effect for the
// subtree the hit came from.
type Hit struct {
	T        float32
	Normal   math3d.Vec3
	Material *material.Material
}

// Closest accumulates the nearest hit seen across a scene-tree traversal
// without allocating a slice per subtree: each leaf reports its hit (if
// any) into Consider, and the tree walk threads one Closest by pointer
// down its recursion. See the intersection-collection design note this
// mirrors in the original renderer.
type Closest struct {
	Found bool
	Hit   Hit
}

// Consider records h if it is nearer than anything seen so far.
func (c *Closest) Consider(h Hit) {
	if !c.Found || h.T < c.Hit.T {
		c.Found = true
		c.Hit = h
	}
}
