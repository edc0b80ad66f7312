// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, creating or truncating the file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: save %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %q: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = EncodePNG(bw, img); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("render: save %q: %w", path, err)
	}

	return nil
}
