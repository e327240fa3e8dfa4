package sift

import "math"

// GradientField holds the precomputed gradient magnitude and angle at
// every interior pixel of one Gaussian level, with zeroed borders.
type GradientField struct {
	Magnitude Image
	Angle     Image // radians in [-pi, pi): atan2, with +pi mapped to -pi
}

// BuildGradientFields computes one GradientField per Gaussian level in
// octave, using centered differences over the 1-pixel interior. Border
// pixels are left at zero in both Magnitude and Angle; orientation
// assignment and descriptor construction never sample them because their
// patch-radius checks keep away from the image edge.
func BuildGradientFields(octave *Octave) []GradientField {
	fields := make([]GradientField, len(octave.Gaussian))
	for s, g := range octave.Gaussian {
		fields[s] = buildGradientField(g)
	}
	return fields
}

func buildGradientField(g Image) GradientField {
	w, h := g.Width(), g.Height()
	mag := NewImage(w, h)
	ang := NewImage(w, h)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := g.At(x+1, y) - g.At(x-1, y)
			gy := g.At(x, y+1) - g.At(x, y-1)
			m := float32(math.Sqrt(float64(gx*gx+gy*gy))) / 2
			a := math.Atan2(float64(gy), float64(gx))
			if a >= math.Pi {
				a -= 2 * math.Pi
			}
			mag.Set(x, y, m)
			ang.Set(x, y, float32(a))
		}
	}
	return GradientField{Magnitude: mag, Angle: ang}
}
