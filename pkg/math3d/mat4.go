package math3d

import "math"

// ToRadians converts degrees to radians. All externally visible angles
// (scene files, Transform.Rotate) are in degrees; everything downstream
// of this boundary is radians.
func ToRadians(deg float32) float32 {
	return deg * math.Pi / 180.0
}

// Mat4 is a 4x4 matrix stored as four row vectors. Row storage (rather
// than a flat column-major array) matches the way the rest of the
// renderer talks about transforms: a matrix is "four dot products",
// which is exactly how MulVec4 and TransformPoint read.
type Mat4 struct {
	R1, R2, R3, R4 Vec4
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		R1: V4(1, 0, 0, 0),
		R2: V4(0, 1, 0, 0),
		R3: V4(0, 0, 1, 0),
		R4: V4(0, 0, 0, 1),
	}
}

// Translate constructs a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4{
		R1: V4(1, 0, 0, v.X),
		R2: V4(0, 1, 0, v.Y),
		R3: V4(0, 0, 1, v.Z),
		R4: V4(0, 0, 0, 1),
	}
}

// Scale constructs a scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		R1: V4(v.X, 0, 0, 0),
		R2: V4(0, v.Y, 0, 0),
		R3: V4(0, 0, v.Z, 0),
		R4: V4(0, 0, 0, 1),
	}
}

// Rotate constructs a rotation matrix around an arbitrary axis using
// Rodrigues' formula. axis is assumed to already be unit length; angle
// is in degrees. Because the rotation carries no translation, a point
// at the origin stays at the origin.
func Rotate(axis Vec3, angleDeg float32) Mat4 {
	rad := ToRadians(angleDeg)
	c := float32(math.Cos(float64(rad)))
	s := float32(math.Sin(float64(rad)))
	x, y, z := axis.X, axis.Y, axis.Z
	x2, y2, z2 := x*x, y*y, z*z

	return Mat4{
		R1: V4(x2+(1-x2)*c, x*y*(1-c)-z*s, x*z*(1-c)+y*s, 0),
		R2: V4(x*y*(1-c)+z*s, y2+(1-y2)*c, y*z*(1-c)-x*s, 0),
		R3: V4(x*z*(1-c)-y*s, y*z*(1-c)+x*s, z2+(1-z2)*c, 0),
		R4: V4(0, 0, 0, 1),
	}
}

// MulVec4 multiplies a column vector by the matrix: each row dotted
// with v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return V4(m.R1.Dot(v), m.R2.Dot(v), m.R3.Dot(v), m.R4.Dot(v))
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		R1: V4(m.R1.X, m.R2.X, m.R3.X, m.R4.X),
		R2: V4(m.R1.Y, m.R2.Y, m.R3.Y, m.R4.Y),
		R3: V4(m.R1.Z, m.R2.Z, m.R3.Z, m.R4.Z),
		R4: V4(m.R1.W, m.R2.W, m.R3.W, m.R4.W),
	}
}

// Mul returns the matrix product a*b. It multiplies by columns (via
// b's transpose, so each "row" built is really a column of the
// product) and transposes the result back, which lets MulVec4 do all
// the actual dot-product work.
func (a Mat4) Mul(b Mat4) Mat4 {
	t := b.Transpose()
	return Mat4{
		R1: a.MulVec4(t.R1),
		R2: a.MulVec4(t.R2),
		R3: a.MulVec4(t.R3),
		R4: a.MulVec4(t.R4),
	}.Transpose()
}

// TransformPoint applies the matrix to a point, performing the
// homogeneous divide by w. w=0 is undefined; callers never construct a
// transform that sends a finite point to w=0.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	r := m.MulVec4(V4FromV3(p, 1))
	return V3(r.X/r.W, r.Y/r.W, r.Z/r.W)
}

// TransformDirection applies only the top-left 3x3 block of the matrix,
// so translation does not affect the result. Used for ray directions
// and surface normals.
func (m Mat4) TransformDirection(v Vec3) Vec3 {
	return V3(m.R1.Dot3(v), m.R2.Dot3(v), m.R3.Dot3(v))
}

// element returns m[row][col], 0-indexed, for use by Determinant/Inverse.
func (m Mat4) element(row, col int) float32 {
	var r Vec4
	switch row {
	case 0:
		r = m.R1
	case 1:
		r = m.R2
	case 2:
		r = m.R3
	default:
		r = m.R4
	}
	switch col {
	case 0:
		return r.X
	case 1:
		return r.Y
	case 2:
		return r.Z
	default:
		return r.W
	}
}

func det3(a, b, c, d, e, f, g, h, i float32) float32 {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Determinant returns the determinant of the matrix via cofactor
// expansion along the first row.
func (m Mat4) Determinant() float32 {
	e := m.element
	minor := func(skipCol int) float32 {
		cols := make([]int, 0, 3)
		for c := 0; c < 4; c++ {
			if c != skipCol {
				cols = append(cols, c)
			}
		}
		return det3(
			e(1, cols[0]), e(1, cols[1]), e(1, cols[2]),
			e(2, cols[0]), e(2, cols[1]), e(2, cols[2]),
			e(3, cols[0]), e(3, cols[1]), e(3, cols[2]),
		)
	}
	return e(0, 0)*minor(0) - e(0, 1)*minor(1) + e(0, 2)*minor(2) - e(0, 3)*minor(3)
}

// Inverse returns the inverse of the matrix via the adjugate method.
// Returns the identity if the matrix is singular (det=0), since a
// render ray's transform is always expected to be invertible and a
// singular fallback is preferable to propagating NaN.
func (m Mat4) Inverse() Mat4 {
	det := m.Determinant()
	if det == 0 {
		return Identity()
	}
	invDet := 1.0 / det
	e := m.element

	cofactor := func(row, col int) float32 {
		rows := make([]int, 0, 3)
		for r := 0; r < 4; r++ {
			if r != row {
				rows = append(rows, r)
			}
		}
		cols := make([]int, 0, 3)
		for c := 0; c < 4; c++ {
			if c != col {
				cols = append(cols, c)
			}
		}
		minor := det3(
			e(rows[0], cols[0]), e(rows[0], cols[1]), e(rows[0], cols[2]),
			e(rows[1], cols[0]), e(rows[1], cols[1]), e(rows[1], cols[2]),
			e(rows[2], cols[0]), e(rows[2], cols[1]), e(rows[2], cols[2]),
		)
		if (row+col)%2 != 0 {
			minor = -minor
		}
		return minor
	}

	// Inverse[row][col] = cofactor(col, row) / det (adjugate is the
	// transpose of the cofactor matrix).
	var out [4][4]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][col] = cofactor(col, row) * invDet
		}
	}
	return Mat4{
		R1: V4(out[0][0], out[0][1], out[0][2], out[0][3]),
		R2: V4(out[1][0], out[1][1], out[1][2], out[1][3]),
		R3: V4(out[2][0], out[2][1], out[2][2], out[2][3]),
		R4: V4(out[3][0], out[3][1], out[3][2], out[3][3]),
	}
}
