package sift

import (
	"fmt"
	stdimage "image"
	"image/color"
	"image/jpeg"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderKeypointOverlay draws every keypoint in keypointsPerOctave onto a
// grayscale rendering of input as a circle sized to its sigma with a
// radial line marking its orientation, plus a one-line summary, and
// writes the result as a JPEG file.
func RenderKeypointOverlay(input Image, keypointsPerOctave [][]Keypoint, outputPath string) error {
	img := renderOverlayImage(input, keypointsPerOctave)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create overlay file: %w", err)
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func renderOverlayImage(input Image, keypointsPerOctave [][]Keypoint) *stdimage.RGBA {
	w, h := input.Width(), input.Height()
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))

	minV, maxV := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, v := range input.Raw() {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	rng := maxV - minV
	if rng <= 0 {
		rng = 1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := uint8(255 * (input.At(x, y) - minV) / rng)
			img.Set(x, y, color.RGBA{g, g, g, 255})
		}
	}

	total := 0
	markerColor := color.RGBA{80, 220, 80, 255}
	for _, kps := range keypointsPerOctave {
		for _, kp := range kps {
			total++
			cx, cy := int(math.Round(kp.AbsX)), int(math.Round(kp.AbsY))
			radius := int(math.Round(kp.Sigma))
			if radius < 2 {
				radius = 2
			}
			drawCircle(img, cx, cy, radius, markerColor)
			ex := cx + int(math.Round(float64(radius)*math.Cos(kp.Theta)))
			ey := cy + int(math.Round(float64(radius)*math.Sin(kp.Theta)))
			drawLine(img, cx, cy, ex, ey, markerColor)
		}
	}

	face := basicfont.Face7x13
	drawText(img, face, fmt.Sprintf("keypoints: %d", total), 10, h-10, color.RGBA{255, 255, 255, 255})

	return img
}

func drawText(img *stdimage.RGBA, face font.Face, s string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  stdimage.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawCircle draws a circle outline using the midpoint algorithm.
func drawCircle(img *stdimage.RGBA, cx, cy, radius int, c color.RGBA) {
	x, y, err := radius, 0, 0
	for x >= y {
		img.Set(cx+x, cy+y, c)
		img.Set(cx+y, cy+x, c)
		img.Set(cx-y, cy+x, c)
		img.Set(cx-x, cy+y, c)
		img.Set(cx-x, cy-y, c)
		img.Set(cx-y, cy-x, c)
		img.Set(cx+y, cy-x, c)
		img.Set(cx+x, cy-y, c)

		y++
		err += 1 + 2*y
		if 2*(err-x)+1 > 0 {
			x--
			err += 1 - 2*x
		}
	}
}

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(img *stdimage.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := intAbs(x1 - x0)
	dy := -intAbs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
