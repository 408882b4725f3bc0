package scene

import (
	"github.com/kestrelwing/raylang/pkg/color"
	"github.com/kestrelwing/raylang/pkg/math3d"
)

// Light is a point light: a position and a color. Intensity is folded
// into Color at load time if the scene file expressed it separately, so
// shading never multiplies by it again.
type Light struct {
	Position math3d.Vec3
	Color    color.Color
}
