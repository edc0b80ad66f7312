// SPDX-License-Identifier: MIT

// Package linalg: affine transform builders.
//
// All builders return a Matrix4 acting on column vectors (M·v). Angles are in
// degrees and converted with angle·π/180. Translation lives in column 3 of
// rows 0–2; row 3 stays (0, 0, 0, 1).
package linalg

import "github.com/chewxy/math32"

// degToRad converts degrees to radians.
func degToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Translate returns the identity with column 3 set to (tx, ty, tz, 1).
func Translate(tx, ty, tz float32) Matrix4 {
	trace(typeMatrix4, "translate")
	m := identity4()
	m.data[0][3] = tx
	m.data[1][3] = ty
	m.data[2][3] = tz
	return m
}

// Scale returns diag(sx, sy, sz, 1).
func Scale(sx, sy, sz float32) Matrix4 {
	trace(typeMatrix4, "scale")
	m := identity4()
	m.data[0][0] = sx
	m.data[1][1] = sy
	m.data[2][2] = sz
	return m
}

// RotateX returns a rotation of deg degrees about the x axis.
func RotateX(deg float32) Matrix4 {
	trace(typeMatrix4, "rotate_x")
	rad := degToRad(deg)
	s, c := math32.Sin(rad), math32.Cos(rad)
	m := identity4()
	m.data[1][1] = c
	m.data[1][2] = -s
	m.data[2][1] = s
	m.data[2][2] = c
	return m
}

// RotateY returns a rotation of deg degrees about the y axis.
func RotateY(deg float32) Matrix4 {
	trace(typeMatrix4, "rotate_y")
	rad := degToRad(deg)
	s, c := math32.Sin(rad), math32.Cos(rad)
	m := identity4()
	m.data[0][0] = c
	m.data[0][2] = s
	m.data[2][0] = -s
	m.data[2][2] = c
	return m
}

// RotateZ returns a rotation of deg degrees about the z axis.
func RotateZ(deg float32) Matrix4 {
	trace(typeMatrix4, "rotate_z")
	rad := degToRad(deg)
	s, c := math32.Sin(rad), math32.Cos(rad)
	m := identity4()
	m.data[0][0] = c
	m.data[0][1] = -s
	m.data[1][0] = s
	m.data[1][1] = c
	return m
}

// Rotate returns a rotation of deg degrees about the axis (x, y, z).
// The axis does not need to be unit length; a zero axis yields ErrZeroAxis.
func Rotate(x, y, z, deg float32) (Matrix4, error) {
	trace(typeMatrix4, "rotate_xyz")
	return rotateAxis("Rotate", x, y, z, deg)
}

// RotateAxis is Rotate with the axis taken from a Vector3.
func RotateAxis(axis Vector3, deg float32) (Matrix4, error) {
	trace(typeMatrix4, "rotate_vector3")
	return rotateAxis("RotateAxis", axis.data[0], axis.data[1], axis.data[2], deg)
}

// RotateAxis4 is Rotate with the axis taken from the x, y, z of a Vector4; w is ignored.
func RotateAxis4(axis Vector4, deg float32) (Matrix4, error) {
	trace(typeMatrix4, "rotate_vector4")
	return rotateAxis("RotateAxis4", axis.data[0], axis.data[1], axis.data[2], deg)
}

// rotateAxis builds the Rodrigues rotation
//
//	R = I·c + (a⊗a)·t + [a]ₓ·s,  c = cos θ, s = sin θ, t = 1 − c
//
// for the normalized axis a, embedded in the upper-left block of I₄.
func rotateAxis(tag string, x, y, z, deg float32) (Matrix4, error) {
	mag := magnitude3(x, y, z)
	if mag == 0 {
		return Matrix4{}, linalgErrorf(tag, ErrZeroAxis)
	}
	x, y, z = x/mag, y/mag, z/mag

	rad := degToRad(deg)
	s, c := math32.Sin(rad), math32.Cos(rad)
	t := 1 - c

	tx, ty, tz := t*x, t*y, t*z
	txx, txy, txz := tx*x, tx*y, tx*z
	tyy, tyz := ty*y, ty*z
	tzz := tz * z
	sx, sy, sz := s*x, s*y, s*z

	m := identity4()
	m.data[0][0] = txx + c
	m.data[0][1] = txy - sz
	m.data[0][2] = txz + sy

	m.data[1][0] = txy + sz
	m.data[1][1] = tyy + c
	m.data[1][2] = tyz - sx

	m.data[2][0] = txz - sy
	m.data[2][1] = tyz + sx
	m.data[2][2] = tzz + c

	return m, nil
}
