// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every fallible
// operation returns one of these (possibly wrapped with a call-site tag) and
// tests match them via errors.Is. No operation panics on user input.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING
// --------------
// Every message is prefixed with "linalg: ...". Call sites wrap with
// linalgErrorf(tag, ErrX) so the failing entry point is visible in the text
// while errors.Is still matches the sentinel.
//
// There is no sentinel for an unsupported constructor argument shape: such a
// call has no constructor to resolve to and is rejected by the compiler.

var (
	// ErrRead is returned when a JSON source cannot be opened or read.
	// The underlying *fs.PathError stays reachable through errors.As.
	ErrRead = errors.New("linalg: cannot read source")

	// ErrFormat is returned when a JSON source is malformed, lacks the
	// "values" key, or carries the wrong number of numeric entries.
	ErrFormat = errors.New("linalg: malformed values document")

	// ErrNaNInf signals a value that is NaN or ±Inf after narrowing to
	// float32. Only reported when WithRejectNonFinite is in effect.
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")

	// ErrZeroMagnitude is returned by Normalize when the vector's spatial
	// length is zero; dividing would produce NaN/Inf components.
	ErrZeroMagnitude = errors.New("linalg: cannot normalize zero-length vector")

	// ErrZeroAxis is returned by the axis-angle rotation builders when the
	// rotation axis has zero length.
	ErrZeroAxis = errors.New("linalg: rotation axis has zero length")

	// ErrOutOfRange indicates a row or column index outside the fixed shape.
	ErrOutOfRange = errors.New("linalg: index out of range")
)

// linalgErrorf tags err with the name of the failing entry point.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
