package tracer

import (
	"math"

	"github.com/kestrelwing/raylang/pkg/color"
	"github.com/kestrelwing/raylang/pkg/material"
	"github.com/kestrelwing/raylang/pkg/math3d"
	"github.com/kestrelwing/raylang/pkg/scene"
)

// phongContribution computes a single light's diffuse+specular
// contribution at a hit point P with normal N, viewed from V = -ray
// direction. No shadow rays: a light contributes regardless of
// occluders between it and P.
func phongContribution(p, n, v math3d.Vec3, mat *material.Material, light scene.Light) color.Color {
	lDir := light.Position.Sub(p).Normalize()
	nDotL := n.Dot0(lDir)

	r := n.Scale(2 * nDotL).Sub(lDir).Normalize()
	specAngle := r.Dot0(v)

	diffuse := mat.KDiffuse * nDotL
	specular := mat.KSpecular * float32(math.Pow(float64(specAngle), float64(mat.Shininess)))

	return light.Color.Scale(diffuse + specular)
}
