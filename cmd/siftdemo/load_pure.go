//go:build purego || js

package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/lukevanin/gosift/pkg/sift"
)

// loadNonFITSImage decodes a JPEG or PNG file using only the standard
// library and converts it to a normalized grayscale Image.
func loadNonFITSImage(path string) (sift.Image, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return sift.Image{}, 0, 0, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return sift.Image{}, 0, 0, fmt.Errorf("decoding image: %w", err)
	}

	bounds := decoded.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	img := sift.NewImage(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := decoded.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			gray := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
			img.Set(x, y, float32(gray)/65535.0)
		}
	}
	return img, w, h, nil
}
