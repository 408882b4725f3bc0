// Package scene implements the recursive object tree, its two-pass
// preparation (transform baking + BVH construction), and the
// closest-hit intersection dispatch.
package scene

import (
	"fmt"

	"github.com/kestrelwing/raylang/pkg/geom"
	"github.com/kestrelwing/raylang/pkg/material"
	"github.com/kestrelwing/raylang/pkg/math3d"
	"github.com/kestrelwing/raylang/pkg/mesh"
	"github.com/kestrelwing/raylang/pkg/primitive"
)

// Kind discriminates the variants of Tree.
type Kind int

const (
	KindGroup Kind = iota
	KindPrimitive
	KindMesh
	KindLoadMesh
	KindTransform
	KindMaterial
	KindBoundingBox
)

// Tree is a node of the object tree. Each non-leaf node exclusively owns
// its subtree; the tree is acyclic by construction, with no
// back-references. Which fields are meaningful is determined by Kind.
type Tree struct {
	Kind Kind

	Children []*Tree // Group

	Primitive primitive.Primitive // Primitive

	Mesh *mesh.Mesh // Mesh

	LoadMeshFile    string       // LoadMesh
	LoadMeshShading mesh.Shading // LoadMesh

	Child     *Tree             // Transform, Material, BoundingBox
	Transform math3d.Transform  // Transform
	Material  material.Material // Material
	BBox      geom.BoundingBox  // BoundingBox
}

// NewGroup builds a Group node.
func NewGroup(children []*Tree) *Tree {
	return &Tree{Kind: KindGroup, Children: children}
}

// NewPrimitive builds a Primitive leaf.
func NewPrimitive(p primitive.Primitive) *Tree {
	return &Tree{Kind: KindPrimitive, Primitive: p}
}

// NewMesh builds a Mesh leaf.
func NewMesh(m *mesh.Mesh) *Tree {
	return &Tree{Kind: KindMesh, Mesh: m}
}

// NewLoadMesh builds a placeholder node resolved to a Mesh during
// preparation.
func NewLoadMesh(file string, shading mesh.Shading) *Tree {
	return &Tree{Kind: KindLoadMesh, LoadMeshFile: file, LoadMeshShading: shading}
}

// NewTransform wraps child with a transform, applied during
// preparation and then discarded.
func NewTransform(child *Tree, t math3d.Transform) *Tree {
	return &Tree{Kind: KindTransform, Child: child, Transform: t}
}

// NewMaterial wraps child with the material its descendants see until
// overridden by a nested Material node.
func NewMaterial(child *Tree, m material.Material) *Tree {
	return &Tree{Kind: KindMaterial, Child: child, Material: m}
}

// NewBoundingBox wraps child with a broad-phase AABB test.
func NewBoundingBox(child *Tree, box geom.BoundingBox) *Tree {
	return &Tree{Kind: KindBoundingBox, Child: child, BBox: box}
}

// MeshLoader resolves a LoadMesh node's file reference to a Mesh.
// Dispatch by extension: ".smf" for the text format, anything else
// attempted as glTF/GLB.
type MeshLoader func(file string, shading mesh.Shading) (*mesh.Mesh, error)

// Prepare bakes transform M and camera origin O into the tree,
// producing a new, equivalent, world-space tree. Input is untouched.
func (t *Tree) Prepare(m math3d.Mat4, origin math3d.Vec3, load MeshLoader) (*Tree, error) {
	switch t.Kind {
	case KindGroup:
		children := make([]*Tree, len(t.Children))
		for i, c := range t.Children {
			prepared, err := c.Prepare(m, origin, load)
			if err != nil {
				return nil, err
			}
			children[i] = prepared
		}
		return NewGroup(children), nil

	case KindTransform:
		newM := m.Mul(t.Transform.Matrix())
		return t.Child.Prepare(newM, origin, load)

	case KindPrimitive:
		return NewPrimitive(t.Primitive.Transform(m)), nil

	case KindMesh:
		return NewMesh(t.Mesh.Transform(m, origin)), nil

	case KindLoadMesh:
		loaded, err := load(t.LoadMeshFile, t.LoadMeshShading)
		if err != nil {
			return nil, fmt.Errorf("load mesh %q: %w", t.LoadMeshFile, err)
		}
		return NewMesh(loaded).Prepare(m, origin, load)

	case KindMaterial:
		child, err := t.Child.Prepare(m, origin, load)
		if err != nil {
			return nil, err
		}
		return NewMaterial(child, t.Material), nil

	case KindBoundingBox:
		child, err := t.Child.Prepare(m, origin, load)
		if err != nil {
			return nil, err
		}
		return NewBoundingBox(child, t.BBox), nil

	default:
		return nil, fmt.Errorf("prepare: unknown tree node kind %d", t.Kind)
	}
}

// ConstructBVH runs the second preparation pass over an already-prepared
// (world-space) tree: raw Mesh leaves are replaced by their dissected
// BVH subtree, and Primitive leaves are wrapped in a BoundingBox node.
func (t *Tree) ConstructBVH(bboxLimit int) *Tree {
	switch t.Kind {
	case KindGroup:
		children := make([]*Tree, len(t.Children))
		for i, c := range t.Children {
			children[i] = c.ConstructBVH(bboxLimit)
		}
		return NewGroup(children)

	case KindPrimitive:
		return NewBoundingBox(t, t.Primitive.BoundingBox())

	case KindMesh:
		return bvhNodeToTree(mesh.Dissect(t.Mesh, bboxLimit))

	case KindMaterial:
		return NewMaterial(t.Child.ConstructBVH(bboxLimit), t.Material)

	case KindBoundingBox:
		return NewBoundingBox(t.Child.ConstructBVH(bboxLimit), t.BBox)

	default:
		return t
	}
}

func bvhNodeToTree(n *mesh.Node) *Tree {
	if n.Leaf != nil {
		return NewBoundingBox(NewMesh(n.Leaf), n.Box)
	}
	left := bvhNodeToTree(n.Children[0])
	right := bvhNodeToTree(n.Children[1])
	return NewBoundingBox(NewGroup([]*Tree{left, right}), n.Box)
}

// Intersect walks the tree, recording the closest hit under the
// material in lexical scope into closest. Material scoping is lexical,
// not dynamic: the most recently entered Material node supplies the
// material for everything beneath it.
func (t *Tree) Intersect(ray geom.Ray, mat *material.Material, closest *geom.Closest) {
	switch t.Kind {
	case KindGroup:
		for _, c := range t.Children {
			c.Intersect(ray, mat, closest)
		}

	case KindTransform:
		t.Child.Intersect(ray.Transform(t.Transform.Matrix()), mat, closest)

	case KindPrimitive:
		t.Primitive.Intersect(ray, mat, closest)

	case KindMesh:
		t.Mesh.Intersect(ray, mat, closest)

	case KindMaterial:
		t.Child.Intersect(ray, &t.Material, closest)

	case KindBoundingBox:
		if t.BBox.Intersect(ray) {
			t.Child.Intersect(ray, mat, closest)
		}

	case KindLoadMesh:
		// unreachable once a tree has been through Prepare.
	}
}
