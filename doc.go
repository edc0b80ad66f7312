// SPDX-License-Identifier: MIT

// Package raytrace is the root of a small 3D graphics toolkit.
//
// Packages:
//
//   - linalg: Vector3, Vector4, Matrix3 and Matrix4 with named constructors,
//     dot/cross products, determinants, products, affine transform builders
//     (translate, scale, rotate about any axis) and a JSON "values" codec.
//   - render: per-pixel image generation into any tinygo drivers.Displayer,
//     tinyfont captions and PNG output.
//   - cmd/rtdemo: a command that exercises every construction path and writes
//     the demo images.
//
// Quick start:
//
//	m := linalg.Compose(linalg.Translate(10, 0, 0), linalg.Scale(2, 2, 2))
//	p := m.MulVector4(linalg.PointVector4(0, 1, 0))
//	fmt.Println(p) // Vector4(10, 2, 0, 1)
package raytrace
