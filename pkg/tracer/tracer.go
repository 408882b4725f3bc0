// Package tracer implements the per-pixel ray tracing loop: primary ray
// generation via the camera, scene-tree intersection, and Phong local
// illumination. It knows nothing about image buffers or concurrency;
// pkg/render drives it.
package tracer

import (
	"github.com/kestrelwing/raylang/pkg/camera"
	"github.com/kestrelwing/raylang/pkg/color"
	"github.com/kestrelwing/raylang/pkg/scene"
)

// RayTracer binds a prepared Scene to an image-plane size, caching the
// camera's per-render constants so trace_subpixel only does per-ray
// work.
type RayTracer struct {
	scene *scene.Scene
	plane camera.Plane
}

// New binds a RayTracer to a prepared scene for a width x height
// render.
func New(s *scene.Scene) *RayTracer {
	return &RayTracer{
		scene: s,
		plane: s.Camera.NewPlane(s.Width, s.Height),
	}
}

// TracePixel returns the averaged color of subsamples^2 sub-pixel rays
// through pixel (x, y). The sub-pixel step is 1/subsamples; sample
// (i, j) shoots a ray through (x + i*step, y + j*step).
func (rt *RayTracer) TracePixel(x, y int) color.Color {
	n := rt.scene.Subsamples
	if n < 1 {
		n = 1
	}
	step := float32(1) / float32(n)

	var sum color.Color
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sx := float32(x) + float32(i)*step
			sy := float32(y) + float32(j)*step
			sum = sum.Add(rt.traceSubpixel(sx, sy))
		}
	}
	return sum.Scale(1.0 / float32(n*n))
}

// traceSubpixel constructs the primary ray through a (possibly
// fractional) pixel coordinate and shades the nearest hit, or returns
// the background color if nothing is hit.
func (rt *RayTracer) traceSubpixel(x, y float32) color.Color {
	ray := rt.plane.Ray(x, y)
	closest := rt.scene.Intersect(ray)
	if !closest.Found {
		return rt.scene.Background
	}

	p := ray.At(closest.Hit.T)
	n := closest.Hit.Normal
	v := ray.Direction.Negate()
	mat := closest.Hit.Material

	ambient := rt.scene.AmbientLight.Scale(mat.KAmbient)
	sum := ambient
	for _, light := range rt.scene.Lights {
		sum = sum.Add(phongContribution(p, n, v, mat, light))
	}
	return mat.Color.Mul(sum)
}
