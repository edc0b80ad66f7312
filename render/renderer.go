// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// maxDim is the largest side drivers.Displayer can address (int16 coordinates).
const maxDim = 1<<15 - 1

// Fragment computes the color of one pixel from its normalized coordinates.
// u grows left to right and v grows bottom to top, both in [0, 1).
type Fragment func(u, v float32) color.RGBA

// Option configures a Renderer.
type Option func(*Renderer)

// WithFragment replaces the default Gradient fragment.
func WithFragment(f Fragment) Option {
	return func(r *Renderer) { r.frag = f }
}

// WithFlip controls whether v=0 maps to the bottom row (true, the default)
// or to the top row (false, raw image order).
func WithFlip(flip bool) Option {
	return func(r *Renderer) { r.flip = flip }
}

// Renderer runs a Fragment over every pixel of a fixed-size target.
type Renderer struct {
	width, height int
	frag          Fragment
	flip          bool
}

// NewRenderer returns a width×height renderer using Gradient unless
// WithFragment says otherwise.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 || width > maxDim || height > maxDim {
		return nil, fmt.Errorf("NewRenderer(%d,%d): %w", width, height, ErrBadSize)
	}
	r := &Renderer{width: width, height: height, frag: Gradient, flip: true}
	for _, opt := range opts {
		opt(r)
	}
	if r.frag == nil {
		return nil, fmt.Errorf("NewRenderer: %w", ErrNilFragment)
	}

	return r, nil
}

// Bounds returns the renderer's pixel rectangle.
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Render draws into a new Canvas and returns its image.
func (r *Renderer) Render() (*image.RGBA, error) {
	c, err := NewCanvas(r.width, r.height)
	if err != nil {
		return nil, err
	}
	if err = r.RenderTo(c); err != nil {
		return nil, err
	}

	return c.Image(), nil
}

// RenderTo draws every pixel into d and then calls d.Display.
// d must report exactly the renderer's size.
func (r *Renderer) RenderTo(d drivers.Displayer) error {
	w, h := d.Size()
	if int(w) != r.width || int(h) != r.height {
		return fmt.Errorf("RenderTo: display is %dx%d, renderer is %dx%d: %w", w, h, r.width, r.height, ErrBadSize)
	}

	fw, fh := float32(r.width), float32(r.height)
	for y := 0; y < r.height; y++ {
		row := y
		if r.flip {
			row = r.height - 1 - y
		}
		v := float32(y) / fh
		for x := 0; x < r.width; x++ {
			d.SetPixel(int16(x), int16(row), r.frag(float32(x)/fw, v))
		}
	}

	return d.Display()
}

// Gradient maps u to red and v to green: (255u, 255v, 0, 255).
func Gradient(u, v float32) color.RGBA {
	return color.RGBA{R: unitToByte(u), G: unitToByte(v), B: 0, A: 0xFF}
}

// unitToByte scales a [0,1] value to 0..255, saturating outside that range.
func unitToByte(f float32) uint8 {
	return saturate(f * 255)
}

// saturate truncates f toward zero and clamps it to 0..255.
func saturate(f float32) uint8 {
	switch {
	case f <= 0 || f != f:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}
