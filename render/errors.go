// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrBadSize is returned when a width or height is not positive, or when a
	// target display does not match the renderer's size.
	ErrBadSize = errors.New("render: invalid image size")

	// ErrNilFragment is returned when a renderer is configured without a fragment.
	ErrNilFragment = errors.New("render: nil fragment")
)
