// SPDX-License-Identifier: MIT
// Package linalg_test provides benchmarks for the hot kernel operations.
package linalg_test

import (
	"testing"

	"github.com/He-Is-HaZaRdOuS/raytrace/linalg"
)

// sinks to defeat dead-code elimination
var (
	sinkM linalg.Matrix4
	sinkV linalg.Vector4
	sinkF float32
)

func BenchmarkMatrix4_Mul(b *testing.B) {
	b.ReportAllocs()
	a, c := sample4(), linalg.RotateY(30)
	for i := 0; i < b.N; i++ {
		sinkM = a.Mul(c)
	}
}

func BenchmarkMatrix4_MulVector4(b *testing.B) {
	b.ReportAllocs()
	m, v := sample4(), linalg.PointVector4(1, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkV = m.MulVector4(v)
	}
}

func BenchmarkMatrix4_Determinant(b *testing.B) {
	b.ReportAllocs()
	m := sample4()
	for i := 0; i < b.N; i++ {
		sinkF = m.Determinant()
	}
}

func BenchmarkRotate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m, err := linalg.Rotate(1, 1, 1, float32(i%360))
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
