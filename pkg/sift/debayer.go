package sift

// DebayerRGGB performs bilinear interpolation on a raw RGGB Bayer-pattern
// image and returns a luminance image: (R + G + B) / 3 per pixel.
//
// RGGB layout (row-major, 0-indexed):
//
//	(even row, even col) = R
//	(even row, odd  col) = G  (Gr)
//	(odd  row, even col) = G  (Gb)
//	(odd  row, odd  col) = B
//
// Edge pixels use clamped (replicated) neighbor lookups.
func DebayerRGGB(data []float32, width, height int) Image {
	out := NewImage(width, height)

	clampX := func(x int) int {
		if x < 0 {
			return 0
		}
		if x >= width {
			return width - 1
		}
		return x
	}
	clampY := func(y int) int {
		if y < 0 {
			return 0
		}
		if y >= height {
			return height - 1
		}
		return y
	}
	px := func(x, y int) float32 {
		return data[clampY(y)*width+clampX(x)]
	}

	for y := 0; y < height; y++ {
		evenRow := y%2 == 0
		for x := 0; x < width; x++ {
			evenCol := x%2 == 0
			var r, g, b float32

			switch {
			case evenRow && evenCol:
				r = px(x, y)
				g = (px(x-1, y) + px(x+1, y) + px(x, y-1) + px(x, y+1)) / 4
				b = (px(x-1, y-1) + px(x+1, y-1) + px(x-1, y+1) + px(x+1, y+1)) / 4

			case evenRow && !evenCol:
				r = (px(x-1, y) + px(x+1, y)) / 2
				g = px(x, y)
				b = (px(x, y-1) + px(x, y+1)) / 2

			case !evenRow && evenCol:
				r = (px(x, y-1) + px(x, y+1)) / 2
				g = px(x, y)
				b = (px(x-1, y) + px(x+1, y)) / 2

			default:
				r = (px(x-1, y-1) + px(x+1, y-1) + px(x-1, y+1) + px(x+1, y+1)) / 4
				g = (px(x-1, y) + px(x+1, y) + px(x, y-1) + px(x, y+1)) / 4
				b = px(x, y)
			}

			out.Set(x, y, (r+g+b)/3)
		}
	}

	return out
}

// DebayerUint16RGGB converts raw uint16 Bayer-pattern samples to a
// debayered, normalized Image, for cameras that deliver a single raw
// channel instead of an already-demosaiced image.
func DebayerUint16RGGB(pixels []uint16, bitDepth, width, height int) Image {
	maxVal := float32(uint32(1)<<uint(bitDepth) - 1)
	data := make([]float32, len(pixels))
	for i, p := range pixels {
		data[i] = float32(p) / maxVal
	}
	return DebayerRGGB(data, width, height)
}
