package mesh

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/kestrelwing/raylang/pkg/math3d"
)

// LoadGLTF reads a glTF/GLB asset (embedded buffers only) as a
// supplemental mesh format alongside the text-based SMF loader. Every
// mesh primitive in the document is appended into a single flat Mesh;
// vertex normals are taken from the document if present, otherwise
// derived the normal way (computeVertexNormals).
func LoadGLTF(path string, shading Shading) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %q: %w", path, err)
	}

	var vertices []math3d.Vec3
	var normals []math3d.Vec3
	var faces []Face

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("gltf %q: read positions: %w", path, err)
			}

			var primNormals []math3d.Vec3
			if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				primNormals, err = readVec3Accessor(doc, normIdx)
				if err != nil {
					return nil, fmt.Errorf("gltf %q: read normals: %w", path, err)
				}
			}

			base := len(vertices)
			vertices = append(vertices, positions...)
			for i := range positions {
				if i < len(primNormals) {
					normals = append(normals, primNormals[i])
				} else {
					normals = append(normals, math3d.Zero3())
				}
			}

			if prim.Indices != nil {
				indices, err := readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("gltf %q: read indices: %w", path, err)
				}
				for i := 0; i+2 < len(indices); i += 3 {
					faces = append(faces, NewFace(base+indices[i], base+indices[i+1], base+indices[i+2]))
				}
			} else {
				for i := 0; i+2 < len(positions); i += 3 {
					faces = append(faces, NewFace(base+i, base+i+1, base+i+2))
				}
			}
		}
	}

	hasNormals := false
	for _, n := range normals {
		if n.MagnitudeSquared() > 0 {
			hasNormals = true
			break
		}
	}

	out := &Mesh{Vertices: vertices, Faces: faces, Shading: shading}
	if hasNormals {
		out.VertexNormals = normals
	} else {
		out.computeVertexNormals()
	}
	return out, nil
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	raw, err := readAccessorFloats(doc, accessor, 3)
	if err != nil {
		return nil, err
	}
	out := make([]math3d.Vec3, len(raw))
	for i, f := range raw {
		out[i] = math3d.V3(f[0], f[1], f[2])
	}
	return out, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	bv := doc.BufferViews[*accessor.BufferView]
	buf := doc.Buffers[bv.Buffer]
	if buf.Data == nil {
		return nil, fmt.Errorf("external glTF buffers are not supported")
	}

	start := bv.ByteOffset + accessor.ByteOffset
	stride := bv.ByteStride
	count := accessor.Count
	out := make([]int, count)

	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		if stride == 0 {
			stride = 1
		}
		for i := 0; i < count; i++ {
			out[i] = int(buf.Data[start+i*stride])
		}
	case gltf.ComponentUshort:
		if stride == 0 {
			stride = 2
		}
		for i := 0; i < count; i++ {
			o := start + i*stride
			out[i] = int(uint16(buf.Data[o]) | uint16(buf.Data[o+1])<<8)
		}
	case gltf.ComponentUint:
		if stride == 0 {
			stride = 4
		}
		for i := 0; i < count; i++ {
			o := start + i*stride
			out[i] = int(uint32(buf.Data[o]) | uint32(buf.Data[o+1])<<8 |
				uint32(buf.Data[o+2])<<16 | uint32(buf.Data[o+3])<<24)
		}
	default:
		return nil, fmt.Errorf("unsupported index component type %v", accessor.ComponentType)
	}
	return out, nil
}

// readAccessorFloats reads width-wide float32 tuples out of an
// accessor's backing buffer view, honoring a non-default byte stride.
func readAccessorFloats(doc *gltf.Document, accessor *gltf.Accessor, width int) ([][]float32, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bv := doc.BufferViews[*accessor.BufferView]
	buf := doc.Buffers[bv.Buffer]
	if buf.Data == nil {
		return nil, fmt.Errorf("external glTF buffers are not supported")
	}

	start := bv.ByteOffset + accessor.ByteOffset
	stride := bv.ByteStride
	if stride == 0 {
		stride = width * 4
	}

	out := make([][]float32, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		offset := start + i*stride
		row := make([]float32, width)
		for j := 0; j < width; j++ {
			row[j] = readFloat32(buf.Data[offset+j*4:])
		}
		out[i] = row
	}
	return out, nil
}

func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
