package mgl

import "github.com/chewxy/math32"

// Semantic value types consumed by the uniform dispatch. All of them are
// flat float32 aggregates with no padding, which is what FloatsOf relies on.
// Matrices are column-major, matching the device's upload convention.

// Vec2 is a 2-component float vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-component float vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-component float vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Mat3 is a 3x3 column-major matrix.
type Mat3 [9]float32

// Mat4 is a 4x4 column-major matrix.
type Mat4 [16]float32

// Mat3x2, Mat4x2 and Mat4x3 are the non-square column-major matrices the
// device's upload primitives support.
type (
	Mat3x2 [6]float32
	Mat4x2 [8]float32
	Mat4x3 [12]float32
)

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of a and b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Normalize returns a scaled to unit length. The zero vector is returned
// unchanged.
func (a Vec3) Normalize() Vec3 {
	n := math32.Sqrt(a.Dot(a))
	if n == 0 {
		return a
	}
	return Vec3{X: a.X / n, Y: a.Y / n, Z: a.Z / n}
}

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translation returns a translation matrix.
func Mat4Translation(x, y, z float32) Mat4 {
	m := Mat4Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Mat4Scaling returns a scaling matrix.
func Mat4Scaling(x, y, z float32) Mat4 {
	m := Mat4Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// Mat4RotationZ returns a rotation around the Z axis (angle in radians).
func Mat4RotationZ(angle float32) Mat4 {
	sin, cos := math32.Sincos(angle)
	m := Mat4Identity()
	m[0], m[1] = cos, sin
	m[4], m[5] = -sin, cos
	return m
}

// Mat4Ortho returns an orthographic projection matrix.
func Mat4Ortho(left, right, bottom, top, near, far float32) Mat4 {
	m := Mat4{}
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	m[15] = 1
	return m
}

// Mat4Perspective returns a perspective projection matrix. fovy is the
// vertical field of view in radians.
func Mat4Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovy/2)
	m := Mat4{}
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}

// Mul returns the matrix product m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// MulVec4 returns the product m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}
