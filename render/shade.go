// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/He-Is-HaZaRdOuS/raytrace/linalg"
)

// SphereShade returns a Fragment that draws a unit sphere filling the image,
// lit by a directional light coming from light (Lambert term, no ambient).
// Pixels outside the sphere get background.
func SphereShade(light linalg.Vector3, base, background color.RGBA) (Fragment, error) {
	dir := light.Clone()
	if err := dir.Normalize(); err != nil {
		return nil, fmt.Errorf("SphereShade: %w", err)
	}

	return func(u, v float32) color.RGBA {
		x, y := 2*u-1, 2*v-1
		r2 := x*x + y*y
		if r2 > 1 {
			return background
		}
		n := linalg.NewVector3(x, y, math32.Sqrt(1-r2))
		k := n.Dot(dir)
		if k < 0 {
			k = 0
		}

		return color.RGBA{
			R: saturate(float32(base.R) * k),
			G: saturate(float32(base.G) * k),
			B: saturate(float32(base.B) * k),
			A: base.A,
		}
	}, nil
}
