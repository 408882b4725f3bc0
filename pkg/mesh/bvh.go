package mesh

import (
	"github.com/kestrelwing/raylang/pkg/geom"
	"github.com/kestrelwing/raylang/pkg/math3d"
)

// Node is one element of a dissected mesh's bounding-volume hierarchy: a
// box paired with either a leaf Mesh (a face subset) or two children.
// The object-tree wrapper (pkg/scene) is what turns this into
// BoundingBox/Mesh ObjectTree nodes; Node itself only knows geometry.
type Node struct {
	Box      geom.BoundingBox
	Leaf     *Mesh
	Children [2]*Node
}

// Dissect partitions m into a BVH with at most bboxLimit faces per leaf.
// A mesh already within the limit returns a single leaf node. The split
// axis is the longest axis of the box enclosing only the faces in play
// at this recursion level (not the original mesh's full vertex list,
// which would never shrink and would peg the split plane to the same
// global midpoint every level). A face's centroid decides which half it
// falls into; a centroid exactly on the split plane goes to the lower
// half. If splitting fails to reduce the face count (all faces land on
// one side), the mesh is returned as a single leaf rather than
// recursing forever.
func Dissect(m *Mesh, bboxLimit int) *Node {
	box := facesBoundingBox(m, m.Faces)
	if len(m.Faces) <= bboxLimit {
		return &Node{Box: box, Leaf: m}
	}

	axis := longestAxis(box)
	plane := box.Min.Component(axis) + (box.Max.Component(axis)-box.Min.Component(axis))/2

	var lowerFaces, upperFaces []Face
	for _, f := range m.Faces {
		if faceCentroid(m, f).Component(axis) <= plane {
			lowerFaces = append(lowerFaces, f)
		} else {
			upperFaces = append(upperFaces, f)
		}
	}

	if len(lowerFaces) == 0 || len(upperFaces) == 0 {
		return &Node{Box: box, Leaf: m}
	}

	lower := &Mesh{Vertices: m.Vertices, VertexNormals: m.VertexNormals, Faces: lowerFaces, Shading: m.Shading}
	upper := &Mesh{Vertices: m.Vertices, VertexNormals: m.VertexNormals, Faces: upperFaces, Shading: m.Shading}

	return &Node{
		Box:      box,
		Children: [2]*Node{Dissect(lower, bboxLimit), Dissect(upper, bboxLimit)},
	}
}

func faceCentroid(m *Mesh, f Face) math3d.Vec3 {
	a, b, cc := m.Vertices[f.A], m.Vertices[f.B], m.Vertices[f.C]
	return a.Add(b).Add(cc).Scale(1.0 / 3.0)
}

// facesBoundingBox returns the tight box enclosing only the vertices
// referenced by faces, so the box shrinks (and the split plane moves)
// as recursion descends into smaller face subsets of the same mesh.
func facesBoundingBox(m *Mesh, faces []Face) geom.BoundingBox {
	points := make([]math3d.Vec3, 0, len(faces)*3)
	for _, f := range faces {
		points = append(points, m.Vertices[f.A], m.Vertices[f.B], m.Vertices[f.C])
	}
	return geom.FromVertices(points)
}

func longestAxis(b geom.BoundingBox) int {
	size := b.Max.Sub(b.Min)
	axis := 0
	longest := size.Component(0)
	if size.Component(1) > longest {
		axis, longest = 1, size.Component(1)
	}
	if size.Component(2) > longest {
		axis = 2
	}
	return axis
}
