//go:build purego || js

package sift

import "math"

// pureBackend is a deterministic CPU-only implementation of Backend, for
// builds without cgo. Blur runs a two-pass separable convolution (rows
// then columns) against a reflected boundary.
type pureBackend struct{}

func newPlatformBackend() Backend {
	return pureBackend{}
}

func (pureBackend) Name() string { return "pure" }

func reflectIndex(idx, size int) int {
	if idx < 0 {
		idx = -idx
	}
	for idx >= size {
		idx = 2*size - 2 - idx
		if idx < 0 {
			idx = -idx
		}
	}
	return idx
}

func gaussianKernel1D(sigma float32) []float32 {
	radius := int(4*sigma) + 1
	size := 2*radius + 1
	k := make([]float32, size)
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - radius)
		v := math.Exp(-x * x / (2 * float64(sigma) * float64(sigma)))
		k[i] = float32(v)
		sum += v
	}
	for i := range k {
		k[i] = float32(float64(k[i]) / sum)
	}
	return k
}

func (pureBackend) Blur(src Image, sigma float32) (Image, error) {
	if sigma <= 0 {
		return Image{}, &BackendError{Op: "Blur", Err: errNonPositiveSigma}
	}
	k := gaussianKernel1D(sigma)
	half := len(k) / 2
	rows, cols := src.Height(), src.Width()
	srcData := src.Raw()

	temp := make([]float32, rows*cols)
	for r := 0; r < rows; r++ {
		rowOff := r * cols
		for c := 0; c < cols; c++ {
			var sum float32
			for j, kv := range k {
				cc := reflectIndex(c+j-half, cols)
				sum += srcData[rowOff+cc] * kv
			}
			temp[rowOff+c] = sum
		}
	}

	out := NewImage(cols, rows)
	dstData := out.Raw()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var sum float32
			for j, kv := range k {
				rr := reflectIndex(r+j-half, rows)
				sum += temp[rr*cols+c] * kv
			}
			dstData[r*cols+c] = sum
		}
	}

	return out, nil
}

func (pureBackend) UpsampleNearest2x(src Image) (Image, error) {
	w, h := src.Width()*2, src.Height()*2
	out := NewImage(w, h)
	for y := 0; y < h; y++ {
		sy := y / 2
		for x := 0; x < w; x++ {
			sx := x / 2
			out.Set(x, y, src.At(sx, sy))
		}
	}
	return out, nil
}

func (pureBackend) DownsampleNearest2x(src Image) (Image, error) {
	w, h := src.Width()/2, src.Height()/2
	if w < 1 || h < 1 {
		return Image{}, &BackendError{Op: "DownsampleNearest2x", Err: errImageTooSmall}
	}
	out := NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, src.At(x*2, y*2))
		}
	}
	return out, nil
}
