// Package camera builds primary rays for a pixel grid from a
// direction/up/fov description of the viewpoint, rather than the
// Euler-angle view-matrix approach: the renderer has no notion of
// camera roll, only a looking direction and an up hint.
package camera

import (
	"math"

	"github.com/kestrelwing/raylang/pkg/geom"
	"github.com/kestrelwing/raylang/pkg/math3d"
)

// Camera is the eye/image-plane description a scene file supplies.
// Direction and up need not be orthogonal, only non-parallel: Basis
// orthogonalizes them via two cross products.
type Camera struct {
	Location  math3d.Vec3
	Direction math3d.Vec3
	Up        math3d.Vec3
	Distance  float32
	FOVAngle  float32 // horizontal, degrees
}

// Basis is the camera's orthonormal frame: z_v points along the view
// direction, x_v is the rightward screen axis, y_v is the upward screen
// axis. For any non-parallel direction/up pair the frame is
// right-handed: x_v = z_v × up, y_v = x_v × z_v.
type Basis struct {
	Z, X, Y math3d.Vec3
}

// ComputeBasis derives the camera's orthonormal frame.
func (c Camera) ComputeBasis() Basis {
	z := c.Direction.Normalize()
	x := z.Cross(c.Up).Normalize()
	y := x.Cross(z).Normalize()
	return Basis{Z: z, X: x, Y: y}
}

// Plane holds the per-render constants of the image plane: its full
// width/height in world units (s_j, s_k) and the top-left pixel center,
// from which every pixel ray is a function of (x, y) alone.
type Plane struct {
	basis       Basis
	worldWidth  float32
	worldHeight float32
	topLeft    math3d.Vec3
	width      int
	height     int
	location   math3d.Vec3
}

// NewPlane derives the image plane for a width x height render.
// s_j = 2*distance*tan(fov/2) is the plane's world-space width; s_k
// scales it by the image aspect ratio so pixels are square.
func (c Camera) NewPlane(width, height int) Plane {
	basis := c.ComputeBasis()
	theta := math3d.ToRadians(c.FOVAngle)
	sj := 2 * c.Distance * float32(math.Tan(float64(theta)/2))
	sk := sj * float32(height) / float32(width)

	topLeft := c.Location.
		Add(basis.Z.Scale(c.Distance)).
		Sub(basis.X.Scale(sj / 2)).
		Add(basis.Y.Scale(sk / 2))

	return Plane{
		basis:       basis,
		worldWidth:  sj,
		worldHeight: sk,
		topLeft:     topLeft,
		width:       width,
		height:      height,
		location:    c.Location,
	}
}

// Ray returns the primary ray through a (possibly fractional) pixel
// coordinate, for use both at integer pixel centers and at the
// sub-pixel offsets the ray tracer's supersampling pass adds. A
// single-row or single-column image has no (w-1)/(h-1) span to divide
// by; on that axis the lone ray runs through the plane's center
// rather than dividing by zero.
func (p Plane) Ray(x, y float32) geom.Ray {
	xFrac := fraction(x, p.width)
	yFrac := fraction(y, p.height)

	point := p.topLeft.
		Add(p.basis.X.Scale(p.worldWidth * xFrac)).
		Sub(p.basis.Y.Scale(p.worldHeight * yFrac))

	direction := point.Sub(p.location).Normalize()
	return geom.Ray{Origin: p.location, Direction: direction}
}

func fraction(coord float32, extent int) float32 {
	if extent <= 1 {
		return 0.5
	}
	return coord / float32(extent-1)
}
