// SPDX-License-Identifier: MIT
// Package render_test contains unit tests for the image generator.
package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/He-Is-HaZaRdOuS/raytrace/linalg"
	"github.com/He-Is-HaZaRdOuS/raytrace/render"
)

// countingDisplay records how often Display is called.
type countingDisplay struct {
	*render.Canvas
	displays int
}

func (d *countingDisplay) Display() error {
	d.displays++
	return d.Canvas.Display()
}

func TestNewRenderer_Validation(t *testing.T) {
	t.Parallel()

	for _, sz := range [][2]int{{0, 4}, {4, 0}, {-1, -1}, {1 << 15, 1}} {
		_, err := render.NewRenderer(sz[0], sz[1])
		require.ErrorIs(t, err, render.ErrBadSize)
	}
	_, err := render.NewRenderer(4, 4, render.WithFragment(nil))
	require.ErrorIs(t, err, render.ErrNilFragment)
}

func TestRender_GradientIsFlipped(t *testing.T) {
	t.Parallel()

	r, err := render.NewRenderer(4, 4)
	require.NoError(t, err)
	img, err := r.Render()
	require.NoError(t, err)
	require.Equal(t, r.Bounds(), img.Bounds())

	// Top row holds v = 3/4; bottom row holds v = 0.
	require.Equal(t, color.RGBA{R: 0, G: 191, B: 0, A: 255}, img.RGBAAt(0, 0))
	require.Equal(t, color.RGBA{R: 191, G: 0, B: 0, A: 255}, img.RGBAAt(3, 3))
	require.Equal(t, color.RGBA{R: 127, G: 127, B: 0, A: 255}, img.RGBAAt(2, 1))
}

func TestRender_NoFlip(t *testing.T) {
	t.Parallel()

	r, err := render.NewRenderer(4, 4, render.WithFlip(false))
	require.NoError(t, err)
	img, err := r.Render()
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, img.RGBAAt(0, 0))
	require.Equal(t, color.RGBA{R: 191, G: 191, B: 0, A: 255}, img.RGBAAt(3, 3))
}

func TestRenderTo_Display(t *testing.T) {
	t.Parallel()

	c, err := render.NewCanvas(8, 2)
	require.NoError(t, err)
	d := &countingDisplay{Canvas: c}

	r, err := render.NewRenderer(8, 2, render.WithFragment(func(u, v float32) color.RGBA {
		return color.RGBA{R: 9, A: 255}
	}))
	require.NoError(t, err)
	require.NoError(t, r.RenderTo(d))
	require.Equal(t, 1, d.displays)
	require.Equal(t, color.RGBA{R: 9, A: 255}, c.Image().RGBAAt(7, 1))

	small, err := render.NewCanvas(4, 2)
	require.NoError(t, err)
	require.ErrorIs(t, r.RenderTo(small), render.ErrBadSize)
}

func TestNoise_DeterministicAndBounded(t *testing.T) {
	t.Parallel()

	a, err := render.Noise(64, 32, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := render.Noise(64, 32, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, a.Pix, b.Pix)

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			p := a.RGBAAt(x, y)
			require.LessOrEqual(t, p.G, uint8(63))
			require.Equal(t, uint8(255), p.A)
		}
	}
	require.Equal(t, uint8(3), a.RGBAAt(10, 0).R)
	require.Equal(t, uint8(6), a.RGBAAt(0, 20).B)

	_, err = render.Noise(0, 1, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, render.ErrBadSize)
}

func TestNoise_RampSaturates(t *testing.T) {
	t.Parallel()

	img, err := render.Noise(1000, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, uint8(255), img.RGBAAt(999, 0).R)
}

func TestCanvas_Caption(t *testing.T) {
	t.Parallel()

	c, err := render.NewCanvas(96, 24)
	require.NoError(t, err)
	x, y := c.Size()
	require.Equal(t, [2]int16{96, 24}, [2]int16{x, y})

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	w := c.Caption(nil, 2, 16, "det", white)
	require.Positive(t, w)

	lit := 0
	for _, p := range c.Image().Pix {
		if p == 255 {
			lit++
		}
	}
	require.Positive(t, lit, "caption drew no pixels")

	// Writes outside the canvas are dropped rather than panicking.
	require.NotPanics(t, func() { c.SetPixel(-1, 500, white) })
}

func TestSphereShade(t *testing.T) {
	t.Parallel()

	base := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	bg := color.RGBA{A: 255}
	frag, err := render.SphereShade(linalg.NewVector3(0, 0, 2), base, bg)
	require.NoError(t, err)

	require.Equal(t, base, frag(0.5, 0.5), "centre faces the light")
	require.Equal(t, bg, frag(0, 0), "corner is outside the sphere")

	_, err = render.SphereShade(linalg.ZeroVector3(), base, bg)
	require.ErrorIs(t, err, linalg.ErrZeroMagnitude)
}

func TestSavePNG_RoundTrip(t *testing.T) {
	t.Parallel()

	r, err := render.NewRenderer(16, 8)
	require.NoError(t, err)
	img, err := r.Render()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gradient.png")
	require.NoError(t, render.SavePNG(path, img))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())

	gr, gg, gb, ga := decoded.At(5, 3).RGBA()
	wr, wg, wb, wa := img.At(5, 3).RGBA()
	require.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gg, gb, ga})

	require.Error(t, render.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img))
}
