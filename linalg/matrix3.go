// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

const typeMatrix3 = "Matrix3"

// Matrix3 is a 3×3 grid of float32 stored row-major: data[row][col].
type Matrix3 struct {
	data [3][3]float32
}

// ---------- Constructors ----------

// IdentityMatrix3 returns I₃.
func IdentityMatrix3() Matrix3 {
	trace(typeMatrix3, "identity")
	return Matrix3{data: [3][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// ZeroMatrix3 returns the 3×3 zero matrix.
func ZeroMatrix3() Matrix3 {
	trace(typeMatrix3, "zero")
	return Matrix3{}
}

// Matrix3FromInt returns the zero matrix for any integer argument.
func Matrix3FromInt[T constraints.Integer](_ T) Matrix3 {
	trace(typeMatrix3, "int")
	return Matrix3{}
}

// NewMatrix3 fills the matrix row-major: (a, b, c) is row 0, and so on.
func NewMatrix3(a, b, c, d, e, f, g, h, i float32) Matrix3 {
	trace(typeMatrix3, "9f")
	return Matrix3{data: [3][3]float32{
		{a, b, c},
		{d, e, f},
		{g, h, i},
	}}
}

// Matrix3FromColumns uses c0, c1, c2 as the matrix COLUMNS: data[r][j] is
// component r of the j-th vector. Note that Matrix4FromRows uses rows.
func Matrix3FromColumns(c0, c1, c2 Vector3) Matrix3 {
	trace(typeMatrix3, "3vector3")
	return Matrix3{data: [3][3]float32{
		{c0.data[0], c1.data[0], c2.data[0]},
		{c0.data[1], c1.data[1], c2.data[1]},
		{c0.data[2], c1.data[2], c2.data[2]},
	}}
}

// Clone returns an independent copy of m.
func (m Matrix3) Clone() Matrix3 {
	trace(typeMatrix3, "matrix3")
	return Matrix3{data: m.data}
}

// ---------- Element access ----------

// At returns m[row][col] or ErrOutOfRange.
func (m Matrix3) At(row, col int) (float32, error) {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return 0, fmt.Errorf("Matrix3.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return m.data[row][col], nil
}

// Set assigns m[row][col] = v or returns ErrOutOfRange.
func (m *Matrix3) Set(row, col int, v float32) error {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return fmt.Errorf("Matrix3.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[row][col] = v
	return nil
}

// Row returns row i as a Vector3. Panics if i is outside [0,3).
func (m Matrix3) Row(i int) Vector3 {
	return Vector3{data: m.data[i]}
}

// Column returns column j as a Vector3. Panics if j is outside [0,3).
func (m Matrix3) Column(j int) Vector3 {
	return Vector3{data: [3]float32{m.data[0][j], m.data[1][j], m.data[2][j]}}
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	var t Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.data[j][i] = m.data[i][j]
		}
	}
	return t
}

// Array returns the rows as a nested array.
func (m Matrix3) Array() [3][3]float32 { return m.data }

// Determinant returns det(m) by the rule of Sarrus: the three forward
// diagonal products minus the three backward ones.
func (m Matrix3) Determinant() float32 {
	d := &m.data
	return d[0][0]*d[1][1]*d[2][2] +
		d[0][1]*d[1][2]*d[2][0] +
		d[0][2]*d[2][1]*d[1][0] -
		d[2][0]*d[1][1]*d[0][2] -
		d[1][0]*d[0][1]*d[2][2] -
		d[0][0]*d[1][2]*d[2][1]
}

// String renders one bracketed row per line.
func (m Matrix3) String() string {
	var sb strings.Builder
	for _, row := range m.data {
		fmt.Fprintf(&sb, "[%g, %g, %g]\n", row[0], row[1], row[2])
	}
	return sb.String()
}
