// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

const typeVector4 = "Vector4"

// Vector4 is an ordered quadruple (x, y, z, w), also addressable as (r, g, b, a).
//
// w is the homogeneous coordinate: constructors that describe a point
// (PointVector4, Vector4FromVector3, OriginVector4) set w=1, while
// ZeroVector4 and Vector4FromInt describe the zero vector with w=0.
//
// Cross and Magnitude only look at x, y, z. Dot and Normalize use all four
// components.
type Vector4 struct {
	data [4]float32
}

// ---------- Constructors ----------

// OriginVector4 returns the point at the origin, (0, 0, 0, 1).
func OriginVector4() Vector4 {
	trace(typeVector4, "origin")
	return Vector4{data: [4]float32{0, 0, 0, 1}}
}

// ZeroVector4 returns the zero vector (0, 0, 0, 0).
func ZeroVector4() Vector4 {
	trace(typeVector4, "zero")
	return Vector4{}
}

// Vector4FromInt returns (0, 0, 0, 0) for any integer argument. The value is ignored.
func Vector4FromInt[T constraints.Integer](_ T) Vector4 {
	trace(typeVector4, "int")
	return Vector4{}
}

// PointVector4 returns the point (x, y, z, 1).
func PointVector4(x, y, z float32) Vector4 {
	trace(typeVector4, "xyz")
	return Vector4{data: [4]float32{x, y, z, 1}}
}

// NewVector4 returns (x, y, z, w) verbatim.
func NewVector4(x, y, z, w float32) Vector4 {
	trace(typeVector4, "xyzw")
	return Vector4{data: [4]float32{x, y, z, w}}
}

// Vector4FromVector3 lifts v to the point (x, y, z, 1).
func Vector4FromVector3(v Vector3) Vector4 {
	trace(typeVector4, "vector3")
	return Vector4{data: [4]float32{v.data[0], v.data[1], v.data[2], 1}}
}

// Clone returns an independent copy of v.
func (v Vector4) Clone() Vector4 {
	trace(typeVector4, "vector4")
	return Vector4{data: v.data}
}

// ---------- Accessors ----------

// X returns the x component.
func (v Vector4) X() float32 { return v.data[0] }

// Y returns the y component.
func (v Vector4) Y() float32 { return v.data[1] }

// Z returns the z component.
func (v Vector4) Z() float32 { return v.data[2] }

// W returns the homogeneous w component.
func (v Vector4) W() float32 { return v.data[3] }

// R returns the first component read as red.
func (v Vector4) R() float32 { return v.data[0] }

// G returns the second component read as green.
func (v Vector4) G() float32 { return v.data[1] }

// B returns the third component read as blue.
func (v Vector4) B() float32 { return v.data[2] }

// A returns the fourth component read as alpha.
func (v Vector4) A() float32 { return v.data[3] }

// SetX assigns the x component.
func (v *Vector4) SetX(x float32) { v.data[0] = x }

// SetY assigns the y component.
func (v *Vector4) SetY(y float32) { v.data[1] = y }

// SetZ assigns the z component.
func (v *Vector4) SetZ(z float32) { v.data[2] = z }

// SetW assigns the w component.
func (v *Vector4) SetW(w float32) { v.data[3] = w }

// SetR assigns the first component.
func (v *Vector4) SetR(r float32) { v.data[0] = r }

// SetG assigns the second component.
func (v *Vector4) SetG(g float32) { v.data[1] = g }

// SetB assigns the third component.
func (v *Vector4) SetB(b float32) { v.data[2] = b }

// SetA assigns the fourth component.
func (v *Vector4) SetA(a float32) { v.data[3] = a }

// Array returns the components as an array.
func (v Vector4) Array() [4]float32 { return v.data }

// ---------- Arithmetic ----------

// Add returns the component-wise sum v + o.
func (v Vector4) Add(o Vector4) Vector4 {
	var out Vector4
	for i := range v.data {
		out.data[i] = v.data[i] + o.data[i]
	}
	return out
}

// Sub returns the component-wise difference v - o.
func (v Vector4) Sub(o Vector4) Vector4 {
	var out Vector4
	for i := range v.data {
		out.data[i] = v.data[i] - o.data[i]
	}
	return out
}

// Scale returns v with every component multiplied by s.
func (v Vector4) Scale(s float32) Vector4 {
	var out Vector4
	for i := range v.data {
		out.data[i] = v.data[i] * s
	}
	return out
}

// Negate returns -v.
func (v Vector4) Negate() Vector4 { return v.Scale(-1) }

// Dot returns the four-component dot product, w included.
func (v Vector4) Dot(o Vector4) float32 {
	return v.data[0]*o.data[0] + v.data[1]*o.data[1] + v.data[2]*o.data[2] + v.data[3]*o.data[3]
}

// Cross returns the cross product of the x, y, z parts.
// The result carries the left operand's w.
func (v Vector4) Cross(o Vector4) Vector4 {
	x, y, z := cross3(v.data[0], v.data[1], v.data[2], o.data[0], o.data[1], o.data[2])
	return Vector4{data: [4]float32{x, y, z, v.data[3]}}
}

// CrossZero is Cross with w forced to 0, i.e. the result is a direction.
func (v Vector4) CrossZero(o Vector4) Vector4 {
	x, y, z := cross3(v.data[0], v.data[1], v.data[2], o.data[0], o.data[1], o.data[2])
	return Vector4{data: [4]float32{x, y, z, 0}}
}

// Magnitude returns the spatial length sqrt(x² + y² + z²); w is ignored.
func (v Vector4) Magnitude() float32 {
	return magnitude3(v.data[0], v.data[1], v.data[2])
}

// Normalize divides all four components, w included, by Magnitude.
// When Magnitude is zero v is left untouched and ErrZeroMagnitude is returned.
func (v *Vector4) Normalize() error {
	mag := v.Magnitude()
	if mag == 0 {
		return linalgErrorf("Vector4.Normalize", ErrZeroMagnitude)
	}
	for i := range v.data {
		v.data[i] /= mag
	}

	return nil
}

// String implements fmt.Stringer.
func (v Vector4) String() string {
	return fmt.Sprintf("Vector4(%g, %g, %g, %g)", v.data[0], v.data[1], v.data[2], v.data[3])
}
