// Package sceneio decodes a scene file (YAML) into pkg/scene.Scene. It
// is the format-agnostic loader's concrete format: everything above
// this package only ever sees the scene model of pkg/scene.
package sceneio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kestrelwing/raylang/pkg/camera"
	"github.com/kestrelwing/raylang/pkg/color"
	"github.com/kestrelwing/raylang/pkg/material"
	"github.com/kestrelwing/raylang/pkg/math3d"
	"github.com/kestrelwing/raylang/pkg/mesh"
	"github.com/kestrelwing/raylang/pkg/primitive"
	"github.com/kestrelwing/raylang/pkg/scene"
)

// Load reads and decodes a scene file from path.
func Load(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %q: %w", path, err)
	}

	var cfg sceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene %q: %w", path, err)
	}

	return cfg.toScene()
}

// LoadMesh resolves a LoadMesh node's file reference relative to
// baseDir, dispatching by extension: ".smf" for the text format,
// anything else attempted as glTF/GLB.
func LoadMesh(baseDir string) scene.MeshLoader {
	return func(file string, shading mesh.Shading) (*mesh.Mesh, error) {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, file)
		}
		if strings.EqualFold(filepath.Ext(path), ".smf") {
			return mesh.LoadSMF(path, shading)
		}
		return mesh.LoadGLTF(path, shading)
	}
}

// sceneConfig mirrors the scene-file schema of §6: the document decodes
// into this intermediate form first, then toScene converts it into the
// renderer's own types (color names resolved, transform tags
// discriminated, mesh shading parsed).
type sceneConfig struct {
	Image      string      `yaml:"image"`
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Threads    int         `yaml:"threads"`
	Subsamples int         `yaml:"subsamples"`
	BBoxLimit  int         `yaml:"bbox_limit"`
	Background colorConfig `yaml:"background"`
	Ambient    colorConfig `yaml:"ambient_light"`
	Camera     cameraConfig `yaml:"camera"`
	DefaultMat materialConfig `yaml:"default_material"`
	Lights     []lightConfig `yaml:"lights"`
	Objects    treeConfig    `yaml:"objects"`
}

type cameraConfig struct {
	Distance float32     `yaml:"distance"`
	FOVAngle float32     `yaml:"fov_angle"`
	Location vectorConfig `yaml:"location"`
	Direction vectorConfig `yaml:"direction"`
	Up       vectorConfig `yaml:"up"`
}

type materialConfig struct {
	KDiffuse  float32     `yaml:"k_diffuse"`
	KSpecular float32     `yaml:"k_specular"`
	KAmbient  float32     `yaml:"k_ambient"`
	Shininess float32     `yaml:"n_shininess"`
	Color     colorConfig `yaml:"color"`
}

type lightConfig struct {
	Color     colorConfig  `yaml:"color"`
	Intensity float32      `yaml:"intensity"`
	Position  vectorConfig `yaml:"position"`
}

func (s *sceneConfig) toScene() (*scene.Scene, error) {
	root, err := s.Objects.toTree()
	if err != nil {
		return nil, err
	}

	lights := make([]scene.Light, len(s.Lights))
	for i, l := range s.Lights {
		c := l.Color.toColor()
		if l.Intensity != 0 {
			c = c.Scale(l.Intensity)
		}
		lights[i] = scene.Light{Position: l.Position.toVec3(), Color: c}
	}

	return &scene.Scene{
		Image:      s.Image,
		Width:      s.Width,
		Height:     s.Height,
		Threads:    s.Threads,
		Subsamples: s.Subsamples,
		BBoxLimit:  s.BBoxLimit,
		Background: s.Background.toColor(),
		Camera: camera.Camera{
			Location:  s.Camera.Location.toVec3(),
			Direction: s.Camera.Direction.toVec3(),
			Up:        s.Camera.Up.toVec3(),
			Distance:  s.Camera.Distance,
			FOVAngle:  s.Camera.FOVAngle,
		},
		Objects:      root,
		Lights:       lights,
		DefaultMat:   s.DefaultMat.toMaterial(),
		AmbientLight: s.Ambient.toColor(),
	}, nil
}

func (m materialConfig) toMaterial() material.Material {
	return material.New(m.KDiffuse, m.KSpecular, m.KAmbient, m.Shininess, m.Color.toColor())
}

// vectorConfig decodes either a [x, y, z] sequence or an {x:, y:, z:}
// mapping, since scene files in the wild use both for points/vectors.
type vectorConfig struct {
	X, Y, Z float32
}

func (v *vectorConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var xyz [3]float32
		if err := node.Decode(&xyz); err != nil {
			return err
		}
		v.X, v.Y, v.Z = xyz[0], xyz[1], xyz[2]
		return nil
	}
	var named struct {
		X, Y, Z float32
	}
	if err := node.Decode(&named); err != nil {
		return fmt.Errorf("decode vector: %w", err)
	}
	*v = vectorConfig(named)
	return nil
}

func (v vectorConfig) toVec3() math3d.Vec3 {
	return math3d.V3(v.X, v.Y, v.Z)
}

// colorConfig decodes either a named color ("red", "skyblue") or a
// [r, g, b] tuple of floats in [0,1].
type colorConfig struct {
	c color.Color
}

func (c *colorConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		name, err := namedColorOrError(node.Value)
		if err != nil {
			return err
		}
		c.c = name
		return nil
	}
	var rgb [3]float32
	if err := node.Decode(&rgb); err != nil {
		return fmt.Errorf("decode color: %w", err)
	}
	c.c = color.New(rgb[0], rgb[1], rgb[2])
	return nil
}

func namedColorOrError(name string) (color.Color, error) {
	return color.ParseName(name)
}

func (c colorConfig) toColor() color.Color {
	return c.c
}

func primitiveOf(p primitiveConfig) (primitive.Primitive, error) {
	switch strings.ToLower(p.Kind) {
	case "sphere":
		return primitive.NewSphere(p.Radius, p.Center.toVec3()), nil
	default:
		return primitive.Primitive{}, fmt.Errorf("unknown primitive %q", p.Kind)
	}
}

type primitiveConfig struct {
	Kind   string       `yaml:"primitive"`
	Radius float32      `yaml:"radius"`
	Center vectorConfig `yaml:"center"`
}
