// Package math3d provides the 3D math primitives used by the ray tracer:
// vectors, 4x4 matrices, and the affine transforms built from them.
package math3d

import "math"

// Vec3 represents a 3D vector or point, in single precision as the rest
// of the rendering core.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the Hadamard (component-wise) product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a . b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Dot0 returns the dot product clamped to zero: max(a.b, 0). Used by the
// Phong shading terms, which must not go negative.
func (a Vec3) Dot0(b Vec3) float32 {
	d := a.Dot(b)
	if d < 0 {
		return 0
	}
	return d
}

// Cross returns the cross product a x b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// PartialDeterminant treats a and b as the first two columns of a 3x3
// matrix and returns a vector p such that p.Dot(c) equals det([a|b|c])
// for any third column c. Factoring the cross product out this way lets
// the triangle intersection kernel (pkg/mesh) share one cross product
// across the three Cramer determinants it needs.
func (a Vec3) PartialDeterminant(b Vec3) Vec3 {
	return a.Cross(b)
}

// MagnitudeSquared returns the squared length of the vector.
func (a Vec3) MagnitudeSquared() float32 {
	return a.Dot(a)
}

// Magnitude returns the length of the vector.
func (a Vec3) Magnitude() float32 {
	return float32(math.Sqrt(float64(a.MagnitudeSquared())))
}

// Normalize returns the unit vector in the same direction. Defined only
// for non-zero vectors; callers guard direction vectors themselves.
func (a Vec3) Normalize() Vec3 {
	return a.Scale(1.0 / a.Magnitude())
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{min32(a.X, b.X), min32(a.Y, b.Y), min32(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{max32(a.X, b.X), max32(a.Y, b.Y), max32(a.Z, b.Z)}
}

// Component returns the value on the given axis: 0=X, 1=Y, 2=Z.
func (a Vec3) Component(axis int) float32 {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
