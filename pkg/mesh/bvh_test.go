package mesh

import (
	"testing"

	"github.com/kestrelwing/raylang/pkg/geom"
	"github.com/kestrelwing/raylang/pkg/material"
	"github.com/kestrelwing/raylang/pkg/math3d"
)

// stripMesh builds a row of N unit triangles spread along the x axis so
// a split plane has somewhere non-trivial to fall.
func stripMesh(n int) *Mesh {
	var vertices []math3d.Vec3
	var faces []Face
	for i := 0; i < n; i++ {
		base := len(vertices)
		x := float32(i) * 2
		vertices = append(vertices,
			math3d.V3(x, 0, 0),
			math3d.V3(x+1, 0, 0),
			math3d.V3(x, 1, 0),
		)
		faces = append(faces, NewFace(base, base+1, base+2))
	}
	return New(vertices, faces, Flat)
}

func TestDissectWithinLimitStaysLeaf(t *testing.T) {
	m := stripMesh(3)
	node := Dissect(m, 10)
	if node.Leaf == nil {
		t.Fatal("mesh within bboxLimit should remain a single leaf")
	}
	if len(node.Leaf.Faces) != 3 {
		t.Errorf("leaf face count: got %d, want 3", len(node.Leaf.Faces))
	}
}

func TestDissectSplitsOverLimit(t *testing.T) {
	m := stripMesh(8)
	node := Dissect(m, 2)
	if node.Leaf != nil {
		t.Fatal("mesh over bboxLimit should split into children")
	}
	if node.Children[0] == nil || node.Children[1] == nil {
		t.Fatal("expected two children")
	}

	const bboxLimit = 2
	var countFaces func(n *Node) int
	countFaces = func(n *Node) int {
		if n.Leaf != nil {
			if got := len(n.Leaf.Faces); got > bboxLimit {
				t.Errorf("leaf has %d faces, want <= bboxLimit %d", got, bboxLimit)
			}
			return len(n.Leaf.Faces)
		}
		return countFaces(n.Children[0]) + countFaces(n.Children[1])
	}
	if got := countFaces(node); got != 8 {
		t.Errorf("total dissected face count: got %d, want 8", got)
	}
}

// TestDissectIntersectEquivalence checks that intersecting through the
// BVH finds the same nearest hit as a linear scan over the undissected
// mesh, for a ray that must cross into the far half of the split.
func TestDissectIntersectEquivalence(t *testing.T) {
	m := stripMesh(6).Transform(math3d.Identity(), math3d.V3(10.25, 0.25, 5))
	node := Dissect(m, 1)

	ray := geom.Ray{Origin: math3d.V3(10.25, 0.25, 5), Direction: math3d.V3(0, 0, -1)}

	var mat material.Material
	var linear geom.Closest
	m.Intersect(ray, &mat, &linear)

	var viaBVH func(n *Node, closest *geom.Closest)
	viaBVH = func(n *Node, closest *geom.Closest) {
		if !n.Box.Intersect(ray) {
			return
		}
		if n.Leaf != nil {
			n.Leaf.Intersect(ray, &mat, closest)
			return
		}
		viaBVH(n.Children[0], closest)
		viaBVH(n.Children[1], closest)
	}
	var bvhResult geom.Closest
	viaBVH(node, &bvhResult)

	if linear.Found != bvhResult.Found {
		t.Fatalf("Found mismatch: linear=%v bvh=%v", linear.Found, bvhResult.Found)
	}
	if linear.Found && linear.Hit.T != bvhResult.Hit.T {
		t.Errorf("T mismatch: linear=%v bvh=%v", linear.Hit.T, bvhResult.Hit.T)
	}
}
