//go:build !purego && !js

package main

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/lukevanin/gosift/pkg/sift"
)

// loadNonFITSImage decodes any image format OpenCV supports and converts
// it to a normalized grayscale Image via gocv.
func loadNonFITSImage(path string) (sift.Image, int, int, error) {
	src := gocv.IMRead(path, gocv.IMReadGrayScale)
	if src.Empty() {
		return sift.Image{}, 0, 0, fmt.Errorf("could not load image: %s", path)
	}
	defer src.Close()

	w, h := src.Cols(), src.Rows()

	floatMat := gocv.NewMat()
	defer floatMat.Close()
	src.ConvertTo(&floatMat, gocv.MatTypeCV32F)

	data, _ := floatMat.DataPtrFloat32()
	img := sift.NewImage(w, h)
	out := img.Raw()
	for i := range out {
		out[i] = data[i] / 255.0
	}
	return img, w, h, nil
}
