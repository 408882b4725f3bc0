// Package color provides the renderer's linear color type: a Vec3 in
// [0,1]^3 plus the named-constant table a scene file may reference, and
// the final clamp-and-round mapping to 8-bit RGB.
package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/kestrelwing/raylang/pkg/math3d"
)

// Color is a linear-space RGB triple. Values outside [0,1] are legal in
// intermediate sums (ambient + Σ contributions) and are only clamped at
// the final byte conversion.
type Color struct {
	math3d.Vec3
}

// New builds a Color from components.
func New(r, g, b float32) Color {
	return Color{math3d.V3(r, g, b)}
}

// FromVec3 wraps a Vec3 as a Color.
func FromVec3(v math3d.Vec3) Color {
	return Color{v}
}

// Add returns the componentwise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{c.Vec3.Add(o.Vec3)}
}

// Mul returns the Hadamard (componentwise) product of two colors.
func (c Color) Mul(o Color) Color {
	return Color{c.Vec3.Mul(o.Vec3)}
}

// Scale returns the color scaled by a scalar.
func (c Color) Scale(s float32) Color {
	return Color{c.Vec3.Scale(s)}
}

// named is the table of recognized color constants a scene file may use
// in place of an [r, g, b] tuple. Transcribed from the commented-out
// Color palette in the original implementation.
var named = map[string]Color{
	"black":          New(0, 0, 0),
	"white":          New(1, 1, 1),
	"red":            New(1, 0, 0),
	"green":          New(0, 1, 0),
	"blue":           New(0, 0, 1),
	"cyan":           New(0, 1, 1),
	"magenta":        New(1, 0, 1),
	"yellow":         New(1, 1, 0),
	"azure":          New(0, 0.5, 1),
	"orange":         New(1, 0.5, 0),
	"gray":           New(0.5, 0.5, 0.5),
	"brightorange":   New(1, 0.8, 0),
	"darkgreen":      New(0, 0.5, 0),
	"skyblue":        New(0.530, 0.808, 0.922),
	"brown":          New(0.596, 0.463, 0.329),
	"darkbrown":      New(0.396, 0.263, 0.129),
	"cornflowerblue": New(0.392, 0.584, 0.929),
}

// Named looks up a color by name, case-insensitively. ok is false for an
// unrecognized name.
func Named(name string) (Color, bool) {
	c, ok := named[strings.ToLower(name)]
	return c, ok
}

// ParseName looks up a color by name and returns an error naming the
// unrecognized value, for use by the scene loader.
func ParseName(name string) (Color, error) {
	c, ok := Named(name)
	if !ok {
		return Color{}, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// RGB is the final 8-bit output of a Color: clamp(round(v*255), 0, 255)
// per channel.
type RGB struct {
	R, G, B uint8
}

// ToRGB converts the color to clamped 8-bit output.
func (c Color) ToRGB() RGB {
	return RGB{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
	}
}

func toByte(v float32) uint8 {
	scaled := math.Round(float64(v) * 255.0)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}
