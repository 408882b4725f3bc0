// Package material holds the surface-shading parameters attached to
// scene geometry: the Phong coefficients and base color.
package material

import "github.com/kestrelwing/raylang/pkg/color"

// Material carries the Phong reflectance coefficients for a surface.
// Negative coefficients are ill-formed but not rejected here; the loader
// is the validation boundary.
type Material struct {
	KDiffuse  float32
	KSpecular float32
	KAmbient  float32
	Shininess float32
	Color     color.Color
}

// New builds a Material from its coefficients.
func New(kDiffuse, kSpecular, kAmbient, shininess float32, c color.Color) Material {
	return Material{
		KDiffuse:  kDiffuse,
		KSpecular: kSpecular,
		KAmbient:  kAmbient,
		Shininess: shininess,
		Color:     c,
	}
}
