package sceneio

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kestrelwing/raylang/pkg/math3d"
)

func TestVectorConfigSequenceForm(t *testing.T) {
	var v vectorConfig
	if err := yaml.Unmarshal([]byte("[1, 2, 3]"), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got, want := v.toVec3(), math3d.V3(1, 2, 3); got != want {
		t.Errorf("sequence form: got %v, want %v", got, want)
	}
}

func TestVectorConfigMappingForm(t *testing.T) {
	var v vectorConfig
	if err := yaml.Unmarshal([]byte("x: 1\ny: 2\nz: 3\n"), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got, want := v.toVec3(), math3d.V3(1, 2, 3); got != want {
		t.Errorf("mapping form: got %v, want %v", got, want)
	}
}

func TestColorConfigNamedForm(t *testing.T) {
	var c colorConfig
	if err := yaml.Unmarshal([]byte("red"), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got, want := c.toColor().X, float32(1); got != want {
		t.Errorf("named color red.X: got %v, want %v", got, want)
	}
}

func TestColorConfigTupleForm(t *testing.T) {
	var c colorConfig
	if err := yaml.Unmarshal([]byte("[0.1, 0.2, 0.3]"), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got := c.toColor()
	if got.X != 0.1 || got.Y != 0.2 || got.Z != 0.3 {
		t.Errorf("tuple color: got %v", got)
	}
}

func TestColorConfigUnknownNameErrors(t *testing.T) {
	var c colorConfig
	if err := yaml.Unmarshal([]byte("not-a-color"), &c); err == nil {
		t.Error("expected error for unknown color name")
	}
}

const minimalScene = `
image: out.png
width: 4
height: 4
threads: 1
subsamples: 1
bbox_limit: 4
background: black
ambient_light: white
camera:
  distance: 1
  fov_angle: 60
  location: [0, 0, 5]
  direction: [0, 0, -1]
  up: [0, 1, 0]
default_material:
  k_diffuse: 0.8
  k_specular: 0.2
  k_ambient: 0.3
  n_shininess: 20
  color: red
lights:
  - color: white
    intensity: 2
    position: [5, 5, 5]
objects:
  tag: primitive
  primitive: sphere
  radius: 1
  center: [0, 0, 0]
`

func TestLoadMinimalSceneDocument(t *testing.T) {
	var cfg sceneConfig
	if err := yaml.Unmarshal([]byte(minimalScene), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	s, err := cfg.toScene()
	if err != nil {
		t.Fatalf("toScene: %v", err)
	}

	if s.Width != 4 || s.Height != 4 {
		t.Errorf("dimensions: got %dx%d", s.Width, s.Height)
	}
	if len(s.Lights) != 1 {
		t.Fatalf("lights: got %d, want 1", len(s.Lights))
	}
	if got, want := s.Lights[0].Color.X, float32(2); got != want {
		t.Errorf("intensity-folded light color.X: got %v, want %v", got, want)
	}
	if s.Objects == nil {
		t.Fatal("Objects tree should not be nil")
	}
}
