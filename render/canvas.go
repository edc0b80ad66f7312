// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// DefaultFont is the font used by Caption when none is given.
var DefaultFont tinyfont.Fonter = &freemono.Regular9pt7b

// Canvas is an in-memory RGBA image that satisfies drivers.Displayer, so the
// same drawing code can target it or a real display.
type Canvas struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*Canvas)(nil)

// NewCanvas allocates a transparent width×height canvas.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 || width > maxDim || height > maxDim {
		return nil, ErrBadSize
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Size implements drivers.Displayer.
func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel implements drivers.Displayer. Out-of-bounds writes are dropped.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.SetRGBA(int(x), int(y), col)
}

// Display implements drivers.Displayer. The canvas has nothing to flush.
func (c *Canvas) Display() error { return nil }

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Caption writes text with its baseline at (x, y). A nil font selects DefaultFont.
// It returns the advance width of the text in pixels.
func (c *Canvas) Caption(font tinyfont.Fonter, x, y int16, text string, col color.RGBA) int {
	if font == nil {
		font = DefaultFont
	}
	tinyfont.WriteLine(c, font, x, y, text, col)
	_, outbox := tinyfont.LineWidth(font, text)
	return int(outbox)
}
