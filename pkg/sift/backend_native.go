//go:build !purego && !js

package sift

import (
	"image"

	"gocv.io/x/gocv"
)

// nativeBackend dispatches the separable-blur and resampling kernels to
// OpenCV via gocv. Image values are marshaled to and from gocv.Mat at each
// call boundary; this costs a copy per call but keeps the rest of the
// pipeline free of any gocv dependency.
type nativeBackend struct{}

func newPlatformBackend() Backend {
	return nativeBackend{}
}

func (nativeBackend) Name() string { return "gocv" }

func toMat(src Image) gocv.Mat {
	m := gocv.NewMatWithSize(src.Height(), src.Width(), gocv.MatTypeCV32F)
	data, _ := m.DataPtrFloat32()
	copy(data, src.Raw())
	return m
}

func fromMat(m gocv.Mat) Image {
	out := NewImage(m.Cols(), m.Rows())
	data, _ := m.DataPtrFloat32()
	copy(out.Raw(), data)
	return out
}

func (nativeBackend) Blur(src Image, sigma float32) (Image, error) {
	if sigma <= 0 {
		return Image{}, &BackendError{Op: "Blur", Err: errNonPositiveSigma}
	}
	// Odd kernel size wide enough to hold +/-4 sigma.
	radius := int(4*sigma) + 1
	size := 2*radius + 1

	srcMat := toMat(src)
	defer srcMat.Close()

	kernel := gocv.GetGaussianKernel(size, float64(sigma))
	defer kernel.Close()

	dstMat := gocv.NewMat()
	defer dstMat.Close()

	gocv.SepFilter2D(srcMat, &dstMat, gocv.MatTypeCV32F, kernel, kernel, image.Pt(-1, -1), 0, gocv.BorderReflect101)

	return fromMat(dstMat), nil
}

func (nativeBackend) UpsampleNearest2x(src Image) (Image, error) {
	srcMat := toMat(src)
	defer srcMat.Close()

	dstMat := gocv.NewMat()
	defer dstMat.Close()

	sz := image.Pt(src.Width()*2, src.Height()*2)
	gocv.Resize(srcMat, &dstMat, sz, 0, 0, gocv.InterpolationNearestNeighbor)

	return fromMat(dstMat), nil
}

func (nativeBackend) DownsampleNearest2x(src Image) (Image, error) {
	w, h := src.Width()/2, src.Height()/2
	if w < 1 || h < 1 {
		return Image{}, &BackendError{Op: "DownsampleNearest2x", Err: errImageTooSmall}
	}

	srcMat := toMat(src)
	defer srcMat.Close()

	dstMat := gocv.NewMat()
	defer dstMat.Close()

	gocv.Resize(srcMat, &dstMat, image.Pt(w, h), 0, 0, gocv.InterpolationNearestNeighbor)

	return fromMat(dstMat), nil
}
