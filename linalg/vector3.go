// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

const typeVector3 = "Vector3"

// Vector3 is an ordered triple (x, y, z), also addressable as (r, g, b).
// It is a plain value: assignment copies, and only the setters and Normalize
// mutate it.
type Vector3 struct {
	data [3]float32
}

// ---------- Constructors ----------

// ZeroVector3 returns (0, 0, 0).
func ZeroVector3() Vector3 {
	trace(typeVector3, "zero")
	return Vector3{}
}

// Vector3FromInt returns (0, 0, 0) for any integer argument. The value is ignored.
func Vector3FromInt[T constraints.Integer](_ T) Vector3 {
	trace(typeVector3, "int")
	return Vector3{}
}

// NewVector3 returns (x, y, z) verbatim.
func NewVector3(x, y, z float32) Vector3 {
	trace(typeVector3, "xyz")
	return Vector3{data: [3]float32{x, y, z}}
}

// Vector3Of converts three numbers of any integer or float type to a Vector3.
func Vector3Of[T constraints.Integer | constraints.Float](x, y, z T) Vector3 {
	trace(typeVector3, "numeric")
	return Vector3{data: [3]float32{float32(x), float32(y), float32(z)}}
}

// Vector3FromVector4 copies the first three components of v and drops w.
func Vector3FromVector4(v Vector4) Vector3 {
	trace(typeVector3, "vector4")
	return Vector3{data: [3]float32{v.data[0], v.data[1], v.data[2]}}
}

// Clone returns an independent copy of v.
func (v Vector3) Clone() Vector3 {
	trace(typeVector3, "vector3")
	return Vector3{data: v.data}
}

// ---------- Accessors ----------

// X returns the x component.
func (v Vector3) X() float32 { return v.data[0] }

// Y returns the y component.
func (v Vector3) Y() float32 { return v.data[1] }

// Z returns the z component.
func (v Vector3) Z() float32 { return v.data[2] }

// R returns the first component read as red.
func (v Vector3) R() float32 { return v.data[0] }

// G returns the second component read as green.
func (v Vector3) G() float32 { return v.data[1] }

// B returns the third component read as blue.
func (v Vector3) B() float32 { return v.data[2] }

// SetX assigns the x component.
func (v *Vector3) SetX(x float32) { v.data[0] = x }

// SetY assigns the y component.
func (v *Vector3) SetY(y float32) { v.data[1] = y }

// SetZ assigns the z component.
func (v *Vector3) SetZ(z float32) { v.data[2] = z }

// SetR assigns the first component.
func (v *Vector3) SetR(r float32) { v.data[0] = r }

// SetG assigns the second component.
func (v *Vector3) SetG(g float32) { v.data[1] = g }

// SetB assigns the third component.
func (v *Vector3) SetB(b float32) { v.data[2] = b }

// Array returns the components as an array.
func (v Vector3) Array() [3]float32 { return v.data }

// ---------- Arithmetic ----------

// Add returns the component-wise sum v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{data: [3]float32{v.data[0] + o.data[0], v.data[1] + o.data[1], v.data[2] + o.data[2]}}
}

// Sub returns the component-wise difference v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{data: [3]float32{v.data[0] - o.data[0], v.data[1] - o.data[1], v.data[2] - o.data[2]}}
}

// Scale returns v with every component multiplied by s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{data: [3]float32{v.data[0] * s, v.data[1] * s, v.data[2] * s}}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 { return v.Scale(-1) }

// Dot returns x·x' + y·y' + z·z'.
func (v Vector3) Dot(o Vector3) float32 {
	return v.data[0]*o.data[0] + v.data[1]*o.data[1] + v.data[2]*o.data[2]
}

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	x, y, z := cross3(v.data[0], v.data[1], v.data[2], o.data[0], o.data[1], o.data[2])
	return Vector3{data: [3]float32{x, y, z}}
}

// Magnitude returns the Euclidean length sqrt(x² + y² + z²).
func (v Vector3) Magnitude() float32 {
	return magnitude3(v.data[0], v.data[1], v.data[2])
}

// Normalize scales v in place to unit length.
// A zero-length v is left untouched and ErrZeroMagnitude is returned.
func (v *Vector3) Normalize() error {
	mag := v.Magnitude()
	if mag == 0 {
		return linalgErrorf("Vector3.Normalize", ErrZeroMagnitude)
	}
	v.data[0] /= mag
	v.data[1] /= mag
	v.data[2] /= mag

	return nil
}

// String implements fmt.Stringer.
func (v Vector3) String() string {
	return fmt.Sprintf("Vector3(%g, %g, %g)", v.data[0], v.data[1], v.data[2])
}

// cross3 is the right-handed cross product of (ax,ay,az) and (bx,by,bz).
// Shared by Vector3 and Vector4, whose cross products only differ in w.
func cross3(ax, ay, az, bx, by, bz float32) (x, y, z float32) {
	x = ay*bz - az*by
	y = az*bx - ax*bz
	z = ax*by - ay*bx

	return x, y, z
}

// magnitude3 is the spatial length of (x, y, z); Vector4 ignores w on purpose.
func magnitude3(x, y, z float32) float32 {
	return math32.Sqrt(x*x + y*y + z*z)
}
