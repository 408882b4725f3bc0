// Package mesh implements the triangle-soup scene-tree leaf: loading,
// normal computation, per-face intersection-coefficient preparation, and
// BVH dissection.
package mesh

import (
	"strings"

	"github.com/kestrelwing/raylang/pkg/geom"
	"github.com/kestrelwing/raylang/pkg/material"
	"github.com/kestrelwing/raylang/pkg/math3d"
)

// Shading selects how a mesh's hit normal is computed.
type Shading int

const (
	// Flat uses the face normal at every point on the triangle.
	Flat Shading = iota
	// Smooth interpolates the three precomputed vertex normals.
	Smooth
)

// ParseShading maps a case-insensitive scene-file token to a Shading.
func ParseShading(s string) (Shading, bool) {
	switch strings.ToLower(s) {
	case "flat":
		return Flat, true
	case "smooth":
		return Smooth, true
	default:
		return 0, false
	}
}

// Face holds the three vertex indices of a triangle plus the quantities
// the intersection kernel needs, precomputed once during preparation so
// the per-ray hot path costs three dot products and three divides
// instead of rebuilding the Cramer determinants from scratch.
type Face struct {
	A, B, C int

	abPDetAC math3d.Vec3
	arPDetAC math3d.Vec3
	abPDetAR math3d.Vec3
	detT     float32
}

// NewFace builds a Face from its vertex indices. Precomputed fields are
// populated by Mesh.Transform during preparation.
func NewFace(a, b, c int) Face {
	return Face{A: a, B: b, C: c}
}

// Mesh is the renderer's triangle-soup representation: a vertex list, a
// parallel vertex-normal list, and a face list. A zero-value Mesh is
// empty; loaders collect vertices and faces and build the Mesh with New.
type Mesh struct {
	Vertices      []math3d.Vec3
	VertexNormals []math3d.Vec3
	Faces         []Face
	Shading       Shading

	bbox      geom.BoundingBox
	bboxValid bool
}

// New builds a Mesh from raw vertex and face data with the given
// shading mode. Vertex normals are computed immediately so callers see
// a mesh that already satisfies the unit-normal invariant.
func New(vertices []math3d.Vec3, faces []Face, shading Shading) *Mesh {
	m := &Mesh{Vertices: vertices, Faces: faces, Shading: shading}
	m.computeVertexNormals()
	return m
}

// computeVertexNormals builds vertex_normals from the untransformed
// mesh: accumulate each face's unnormalized cross product (area-weighted
// by construction) into its three vertices, then normalize.
func (m *Mesh) computeVertexNormals() {
	m.VertexNormals = make([]math3d.Vec3, len(m.Vertices))
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f.A], m.Vertices[f.B], m.Vertices[f.C]
		n := a.Sub(b).Cross(a.Sub(c))
		m.VertexNormals[f.A] = m.VertexNormals[f.A].Add(n)
		m.VertexNormals[f.B] = m.VertexNormals[f.B].Add(n)
		m.VertexNormals[f.C] = m.VertexNormals[f.C].Add(n)
	}
	for i, n := range m.VertexNormals {
		if n.MagnitudeSquared() > 0 {
			m.VertexNormals[i] = n.Normalize()
		}
	}
}

// Transform bakes a world-space transform M and camera origin O into the
// mesh: vertices and vertex normals move to world space, and every
// face's Cramer partial determinants are recomputed against the camera
// origin baked in (a_r = a-O). Returns a new Mesh; the receiver is left
// untouched, matching the preparation pass's side-effect-free contract.
func (m *Mesh) Transform(mMat math3d.Mat4, origin math3d.Vec3) *Mesh {
	out := &Mesh{
		Vertices:      make([]math3d.Vec3, len(m.Vertices)),
		VertexNormals: make([]math3d.Vec3, len(m.VertexNormals)),
		Faces:         make([]Face, len(m.Faces)),
		Shading:       m.Shading,
	}
	for i, v := range m.Vertices {
		out.Vertices[i] = mMat.TransformPoint(v)
	}
	for i, n := range m.VertexNormals {
		out.VertexNormals[i] = mMat.TransformDirection(n)
	}
	for i, f := range m.Faces {
		out.Faces[i] = f.prepare(out.Vertices, origin)
	}
	return out
}

// prepare recomputes a face's precomputed Cramer quantities against the
// given world-space vertex list and camera origin.
func (f Face) prepare(vertices []math3d.Vec3, origin math3d.Vec3) Face {
	a, b, c := vertices[f.A], vertices[f.B], vertices[f.C]
	ab := a.Sub(b)
	ac := a.Sub(c)
	ar := a.Sub(origin)

	abPDetAC := ab.PartialDeterminant(ac)
	f.abPDetAC = abPDetAC
	f.arPDetAC = ar.PartialDeterminant(ac)
	f.abPDetAR = ab.PartialDeterminant(ar)
	f.detT = abPDetAC.Dot(ar)
	return f
}

// BoundingBox returns the AABB enclosing every vertex in Vertices,
// computing and caching it on first use. A Dissect sub-mesh shares its
// parent's vertex list, so its box also covers vertices none of its
// faces use.
func (m *Mesh) BoundingBox() geom.BoundingBox {
	if !m.bboxValid {
		m.bbox = geom.FromVertices(m.Vertices)
		m.bboxValid = true
	}
	return m.bbox
}

// Intersect tests ray against every face, recording the nearest hit
// into closest under mat.
func (m *Mesh) Intersect(ray geom.Ray, mat *material.Material, closest *geom.Closest) {
	for _, f := range m.Faces {
		m.intersectFace(f, ray, mat, closest)
	}
}

func (m *Mesh) intersectFace(f Face, ray geom.Ray, mat *material.Material, closest *geom.Closest) {
	detDenom := f.abPDetAC.Dot(ray.Direction)
	if detDenom == 0 {
		return
	}

	beta := f.arPDetAC.Dot(ray.Direction) / detDenom
	if beta < 0 {
		return
	}
	gamma := f.abPDetAR.Dot(ray.Direction) / detDenom
	if gamma < 0 || beta+gamma > 1 {
		return
	}
	t := f.detT / detDenom
	if t < 0 {
		return
	}

	closest.Consider(geom.Hit{T: t, Normal: m.normalAt(f, beta, gamma), Material: mat})
}

// normalAt computes the hit normal for face f at barycentric (beta,
// gamma), per the mesh's shading mode. Smooth normals are not
// renormalized after interpolation, matching the source renderer.
func (m *Mesh) normalAt(f Face, beta, gamma float32) math3d.Vec3 {
	switch m.Shading {
	case Smooth:
		alpha := 1 - beta - gamma
		na, nb, nc := m.VertexNormals[f.A], m.VertexNormals[f.B], m.VertexNormals[f.C]
		return na.Scale(alpha).Add(nb.Scale(beta)).Add(nc.Scale(gamma))
	default:
		a, b, c := m.Vertices[f.A], m.Vertices[f.B], m.Vertices[f.C]
		return a.Sub(b).Cross(a.Sub(c)).Normalize()
	}
}
