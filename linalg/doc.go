// SPDX-License-Identifier: MIT

// Package linalg is a small fixed-size linear-algebra kernel for 3D graphics.
//
// The package provides:
//
//   - Vector3 and Vector4 (homogeneous) float32 vectors with dot, cross,
//     magnitude and in-place normalization.
//   - Matrix3 and Matrix4 row-major float32 matrices with determinants,
//     matrix·vector and matrix·matrix products.
//   - Affine transform builders: Translate, Scale, RotateX/Y/Z and the
//     axis-angle Rotate family (Rodrigues' formula).
//   - A flat {"values": [...]} JSON form for Vector4 and Matrix4.
//
// Every type is built through a closed set of named constructors, one per
// accepted argument shape (ZeroVector3, NewVector3, Vector3FromVector4,
// LoadVector4, ...). A shape without a constructor does not compile.
//
// Conventions worth knowing before use:
//
//   - Vector4 points carry w=1 (PointVector4, Vector4FromVector3,
//     OriginVector4); the zero vector carries w=0 (ZeroVector4).
//   - Matrix3FromColumns treats its vectors as columns while Matrix4FromRows
//     treats its vectors as rows.
//   - Angles are in degrees.
//
// Constructors report the path they took as slog Debug records on the logger
// installed with SetLogger; by default nothing is logged.
package linalg
