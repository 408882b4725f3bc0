package scene

import (
	"github.com/kestrelwing/raylang/pkg/camera"
	"github.com/kestrelwing/raylang/pkg/color"
	"github.com/kestrelwing/raylang/pkg/geom"
	"github.com/kestrelwing/raylang/pkg/material"
	"github.com/kestrelwing/raylang/pkg/math3d"
)

// Scene is the full description the loader produces and the render
// driver consumes. Lifecycle: constructed by the loader, transformed by
// Prepare into an equivalent, world-space, BVH-annotated Scene, then
// rendered without further mutation.
type Scene struct {
	Image      string
	Width      int
	Height     int
	Threads    int
	Subsamples int
	BBoxLimit  int

	Background   color.Color
	Camera       camera.Camera
	Objects      *Tree
	Lights       []Light
	DefaultMat   material.Material
	AmbientLight color.Color
}

// Prepare runs both preparation passes (transform-bake + BVH
// construction) and returns a new Scene whose Objects tree is
// world-space. The receiver is left untouched.
func (s *Scene) Prepare(load MeshLoader) (*Scene, error) {
	prepared, err := s.Objects.Prepare(math3d.Identity(), s.Camera.Location, load)
	if err != nil {
		return nil, err
	}
	prepared = prepared.ConstructBVH(s.BBoxLimit)

	out := *s
	out.Objects = prepared
	return &out, nil
}

// Intersect queries the prepared tree for the closest hit along ray,
// threading the scene's default material as the initial lexical
// material (overridden by any Material node the ray passes through).
func (s *Scene) Intersect(ray geom.Ray) geom.Closest {
	var closest geom.Closest
	s.Objects.Intersect(ray, &s.DefaultMat, &closest)
	return closest
}
