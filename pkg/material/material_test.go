package material

import (
	"testing"

	"github.com/kestrelwing/raylang/pkg/color"
)

func TestNewAssignsFields(t *testing.T) {
	c := color.New(0.1, 0.2, 0.3)
	m := New(0.5, 0.25, 0.1, 20, c)

	want := Material{KDiffuse: 0.5, KSpecular: 0.25, KAmbient: 0.1, Shininess: 20, Color: c}
	if m != want {
		t.Errorf("New: got %+v, want %+v", m, want)
	}
}
