// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
)

// NoiseScale is the per-pixel slope of the red (x) and blue (y) ramps.
const NoiseScale = 0.3

// Noise returns an opaque width×height image whose red channel ramps with x,
// blue ramps with y, and green is uniform noise in 0..63 drawn from rng.
// The same rng seed always yields the same image.
func Noise(width, height int, rng *rand.Rand) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Noise(%d,%d): %w", width, height, ErrBadSize)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		b := saturate(NoiseScale * float32(y))
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: saturate(NoiseScale * float32(x)),
				G: uint8(rng.Intn(256)) / 4,
				B: b,
				A: 0xFF,
			})
		}
	}

	return img, nil
}
