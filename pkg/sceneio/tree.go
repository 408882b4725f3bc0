package sceneio

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kestrelwing/raylang/pkg/geom"
	"github.com/kestrelwing/raylang/pkg/math3d"
	"github.com/kestrelwing/raylang/pkg/mesh"
	"github.com/kestrelwing/raylang/pkg/scene"
)

// treeConfig is the raw decode of one objects node. Every field is
// optional; which ones are populated is decided by Tag.
type treeConfig struct {
	Tag string `yaml:"tag"`

	Items []treeConfig `yaml:"items"` // Group

	Primitive primitiveConfig `yaml:"-"`

	Vertices []vectorConfig   `yaml:"vertices"` // Mesh
	Faces    [][3]int         `yaml:"faces"`    // Mesh
	Shading  string           `yaml:"shading"`  // Mesh, LoadMesh

	File string `yaml:"file"` // LoadMesh

	Child *treeConfig `yaml:"child"` // Transform, Material, BoundingBox

	TransformKind string       `yaml:"transform"` // Transform
	Vector        vectorConfig `yaml:"vector"`
	Axis          vectorConfig `yaml:"axis"`
	AngleDeg      float32      `yaml:"angle_deg"`
	Affine        [4][4]float32 `yaml:"matrix"`

	Material materialConfig `yaml:"material"` // Material

	BBoxMin vectorConfig `yaml:"bbox_min"` // BoundingBox
	BBoxMax vectorConfig `yaml:"bbox_max"`
}

// UnmarshalYAML decodes a node by first reading its tag, then decoding
// the rest of the mapping into treeConfig's flat fields. The primitive
// fields are re-decoded from the whole node when tag is "primitive",
// since a Sphere's radius/center live at the top level of that variant
// rather than nested under a "primitive_body" key.
func (t *treeConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain treeConfig
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*t = treeConfig(p)

	if strings.EqualFold(t.Tag, "primitive") {
		var prim primitiveConfig
		if err := node.Decode(&prim); err != nil {
			return fmt.Errorf("decode primitive: %w", err)
		}
		t.Primitive = prim
	}
	return nil
}

func (t treeConfig) toTree() (*scene.Tree, error) {
	switch strings.ToLower(t.Tag) {
	case "group":
		children := make([]*scene.Tree, len(t.Items))
		for i, item := range t.Items {
			child, err := item.toTree()
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return scene.NewGroup(children), nil

	case "primitive":
		p, err := primitiveOf(t.Primitive)
		if err != nil {
			return nil, err
		}
		return scene.NewPrimitive(p), nil

	case "mesh":
		shading, ok := mesh.ParseShading(t.Shading)
		if !ok {
			return nil, fmt.Errorf("unknown shading %q", t.Shading)
		}
		vertices := make([]math3d.Vec3, len(t.Vertices))
		for i, v := range t.Vertices {
			vertices[i] = v.toVec3()
		}
		faces := make([]mesh.Face, len(t.Faces))
		for i, f := range t.Faces {
			faces[i] = mesh.NewFace(f[0], f[1], f[2])
		}
		return scene.NewMesh(mesh.New(vertices, faces, shading)), nil

	case "loadmesh", "load_mesh":
		shading, ok := mesh.ParseShading(t.Shading)
		if !ok {
			return nil, fmt.Errorf("unknown shading %q", t.Shading)
		}
		return scene.NewLoadMesh(t.File, shading), nil

	case "transform":
		if t.Child == nil {
			return nil, fmt.Errorf("transform node missing child")
		}
		child, err := t.Child.toTree()
		if err != nil {
			return nil, err
		}
		xf, err := t.toTransform()
		if err != nil {
			return nil, err
		}
		return scene.NewTransform(child, xf), nil

	case "material":
		if t.Child == nil {
			return nil, fmt.Errorf("material node missing child")
		}
		child, err := t.Child.toTree()
		if err != nil {
			return nil, err
		}
		return scene.NewMaterial(child, t.Material.toMaterial()), nil

	case "boundingbox", "bounding_box":
		if t.Child == nil {
			return nil, fmt.Errorf("bounding_box node missing child")
		}
		child, err := t.Child.toTree()
		if err != nil {
			return nil, err
		}
		box := geom.BoundingBox{Min: t.BBoxMin.toVec3(), Max: t.BBoxMax.toVec3()}
		return scene.NewBoundingBox(child, box), nil

	default:
		return nil, fmt.Errorf("unknown object tree tag %q", t.Tag)
	}
}

func (t treeConfig) toTransform() (math3d.Transform, error) {
	switch strings.ToLower(t.TransformKind) {
	case "translate":
		return math3d.NewTranslate(t.Vector.toVec3()), nil
	case "rotate":
		return math3d.NewRotate(t.Axis.toVec3(), t.AngleDeg), nil
	case "scale":
		return math3d.NewScale(t.Vector.toVec3()), nil
	case "affine":
		m := math3d.Mat4{
			R1: math3d.V4(t.Affine[0][0], t.Affine[0][1], t.Affine[0][2], t.Affine[0][3]),
			R2: math3d.V4(t.Affine[1][0], t.Affine[1][1], t.Affine[1][2], t.Affine[1][3]),
			R3: math3d.V4(t.Affine[2][0], t.Affine[2][1], t.Affine[2][2], t.Affine[2][3]),
			R4: math3d.V4(t.Affine[3][0], t.Affine[3][1], t.Affine[3][2], t.Affine[3][3]),
		}
		return math3d.NewAffine(m), nil
	default:
		return math3d.Transform{}, fmt.Errorf("unknown transform kind %q", t.TransformKind)
	}
}
