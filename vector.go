package polyphys

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 is a single precision 2D vector. World space is screen space: x grows
// right, y grows down.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) String() string {
	return fmt.Sprintf("%f,%f", v.X, v.Y)
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Scale(k float32) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vec2) Cross(other Vec2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// CrossScalar returns v × k, treating k as a vector along z.
func (v Vec2) CrossScalar(k float32) Vec2 {
	return Vec2{v.Y * k, -v.X * k}
}

// ScalarCross returns k × v. Used for the tangential velocity k × r of a
// point at offset r on a body spinning at k rad/s.
func ScalarCross(k float32, v Vec2) Vec2 {
	return v.CrossScalar(k).Neg()
}

func (v Vec2) LengthSq() float32 {
	return v.Dot(v)
}

func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSq())
}

// Normalize scales v to unit length in place. A zero vector is left as is.
func (v *Vec2) Normalize() {
	d := v.Length()
	if d == 0 {
		return
	}
	v.X /= d
	v.Y /= d
}

// Mat22 is a 2x2 matrix stored as two columns.
type Mat22 struct {
	Col0, Col1 Vec2
}

// NewMat22 builds a matrix from its entries in row-major order.
func NewMat22(m00, m01, m10, m11 float32) Mat22 {
	return Mat22{Col0: Vec2{m00, m10}, Col1: Vec2{m01, m11}}
}

func Mat22FromCols(col0, col1 Vec2) Mat22 {
	return Mat22{Col0: col0, Col1: col1}
}

// Mat22Radians returns the rotation matrix for angle phi.
func Mat22Radians(phi float32) Mat22 {
	c, s := math32.Cos(phi), math32.Sin(phi)
	return NewMat22(c, -s, s, c)
}

func (m Mat22) M00() float32 { return m.Col0.X }
func (m Mat22) M10() float32 { return m.Col0.Y }
func (m Mat22) M01() float32 { return m.Col1.X }
func (m Mat22) M11() float32 { return m.Col1.Y }

func (m Mat22) Row0() Vec2 { return Vec2{m.Col0.X, m.Col1.X} }
func (m Mat22) Row1() Vec2 { return Vec2{m.Col0.Y, m.Col1.Y} }

// Transpose is the inverse for a rotation matrix.
func (m Mat22) Transpose() Mat22 {
	return Mat22{Col0: m.Row0(), Col1: m.Row1()}
}

func (m Mat22) Mul(u Mat22) Mat22 {
	return Mat22{Col0: m.MulVec(u.Col0), Col1: m.MulVec(u.Col1)}
}

func (m Mat22) MulVec(v Vec2) Vec2 {
	return Vec2{m.Row0().Dot(v), m.Row1().Dot(v)}
}
