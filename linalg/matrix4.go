// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

const typeMatrix4 = "Matrix4"

// Matrix4 is a 4×4 grid of float32 stored row-major: data[row][col].
// Vectors are treated as columns, so a transform applies as M·v.
type Matrix4 struct {
	data [4][4]float32
}

// ---------- Constructors ----------

// IdentityMatrix4 returns I₄.
func IdentityMatrix4() Matrix4 {
	trace(typeMatrix4, "identity")
	return identity4()
}

// ZeroMatrix4 returns the 4×4 zero matrix.
func ZeroMatrix4() Matrix4 {
	trace(typeMatrix4, "zero")
	return Matrix4{}
}

// Matrix4FromInt returns the zero matrix for any integer argument.
func Matrix4FromInt[T constraints.Integer](_ T) Matrix4 {
	trace(typeMatrix4, "int")
	return Matrix4{}
}

// NewMatrix4 fills the matrix row-major: (a, b, c, d) is row 0, and so on.
func NewMatrix4(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p float32) Matrix4 {
	trace(typeMatrix4, "16f")
	return Matrix4{data: [4][4]float32{
		{a, b, c, d},
		{e, f, g, h},
		{i, j, k, l},
		{m, n, o, p},
	}}
}

// Matrix4FromRows uses r0..r3 as the matrix ROWS. Note that
// Matrix3FromColumns uses columns.
func Matrix4FromRows(r0, r1, r2, r3 Vector4) Matrix4 {
	trace(typeMatrix4, "4vector4")
	return Matrix4{data: [4][4]float32{r0.data, r1.data, r2.data, r3.data}}
}

// Clone returns an independent copy of m.
func (m Matrix4) Clone() Matrix4 {
	trace(typeMatrix4, "matrix4")
	return Matrix4{data: m.data}
}

// matrix4FromValues fills a Matrix4 row-major from a flat array.
func matrix4FromValues(v [16]float32) Matrix4 {
	var m Matrix4
	for i := range v {
		m.data[i/4][i%4] = v[i]
	}
	return m
}

func identity4() Matrix4 {
	return Matrix4{data: [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// ---------- Element access ----------

// At returns m[row][col] or ErrOutOfRange.
func (m Matrix4) At(row, col int) (float32, error) {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		return 0, fmt.Errorf("Matrix4.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return m.data[row][col], nil
}

// Set assigns m[row][col] = v or returns ErrOutOfRange.
func (m *Matrix4) Set(row, col int, v float32) error {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		return fmt.Errorf("Matrix4.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[row][col] = v
	return nil
}

// Row returns row i as a Vector4. Panics if i is outside [0,4).
func (m Matrix4) Row(i int) Vector4 {
	return Vector4{data: m.data[i]}
}

// Column returns column j as a Vector4. Panics if j is outside [0,4).
func (m Matrix4) Column(j int) Vector4 {
	return Vector4{data: [4]float32{m.data[0][j], m.data[1][j], m.data[2][j], m.data[3][j]}}
}

// Transpose returns mᵀ.
func (m Matrix4) Transpose() Matrix4 {
	var t Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t.data[j][i] = m.data[i][j]
		}
	}
	return t
}

// Array returns the rows as a nested array.
func (m Matrix4) Array() [4][4]float32 { return m.data }

// Values returns the 16 entries in row-major order, the layout of the JSON form.
func (m Matrix4) Values() [16]float32 {
	var v [16]float32
	for i := range v {
		v[i] = m.data[i/4][i%4]
	}
	return v
}

// ---------- Algebra ----------

// Determinant returns det(m) by cofactor expansion along row 0:
//
//	det(m) = Σ_c (−1)^c · m[0][c] · det(M_c)
//
// where M_c is the 3×3 minor left after deleting row 0 and column c.
// Complexity: four Matrix3 determinants.
func (m Matrix4) Determinant() float32 {
	var det float32
	sign := float32(1)
	for c := 0; c < 4; c++ {
		det += sign * m.data[0][c] * m.minor(c).Determinant()
		sign = -sign
	}
	return det
}

// minor returns the 3×3 matrix left after deleting row 0 and column skip.
func (m *Matrix4) minor(skip int) Matrix3 {
	var out Matrix3
	for r := 1; r < 4; r++ {
		k := 0
		for c := 0; c < 4; c++ {
			if c == skip {
				continue
			}
			out.data[r-1][k] = m.data[r][c]
			k++
		}
	}
	return out
}

// MulVector4 returns m·v, with resultᵢ = Σⱼ m[i][j]·v[j].
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	var out Vector4
	for i := 0; i < 4; i++ {
		row := &m.data[i]
		out.data[i] = row[0]*v.data[0] + row[1]*v.data[1] + row[2]*v.data[2] + row[3]*v.data[3]
	}
	return out
}

// Mul returns the product m·b in a new matrix; neither operand is modified.
// The i-k-j loop order keeps the inner loop on contiguous rows.
func (m Matrix4) Mul(b Matrix4) Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			aik := m.data[i][k]
			for j := 0; j < 4; j++ {
				out.data[i][j] += aik * b.data[k][j]
			}
		}
	}
	return out
}

// Compose multiplies ms left to right: Compose(a, b, c) = a·b·c.
// With no arguments it returns the identity.
func Compose(ms ...Matrix4) Matrix4 {
	out := identity4()
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}

// String renders one bracketed row per line.
func (m Matrix4) String() string {
	var sb strings.Builder
	for _, row := range m.data {
		fmt.Fprintf(&sb, "[%g, %g, %g, %g]\n", row[0], row[1], row[2], row[3])
	}
	return sb.String()
}
