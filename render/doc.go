// SPDX-License-Identifier: MIT

// Package render is a minimal per-pixel image generator used as a smoke test
// for the linalg kernel.
//
// A Renderer evaluates a Fragment for every pixel of a width×height target
// and writes it through the drivers.Displayer interface, so the target can be
// an in-memory Canvas or any tinygo display driver. Canvas can overlay text
// with tinyfont, and SavePNG writes the result to disk.
//
// Noise draws a red/blue ramp with a random green channel.
package render
