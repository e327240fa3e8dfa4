package sift

import (
	"math"
	"testing"
)

func TestBuildGradientFieldMagnitudeAndAngle(t *testing.T) {
	w, h := 10, 10
	g := NewImage(w, h)
	// g(x,y) = x, so Gx = 2, Gy = 0 everywhere in the interior.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, float32(x))
		}
	}

	field := buildGradientField(g)

	wantMag := float32(2) / 2 // (gx*gx+gy*gy) = 4, sqrt = 2, halved
	gotMag := field.Magnitude.At(5, 5)
	if math.Abs(float64(gotMag-wantMag)) > 1e-6 {
		t.Errorf("interior magnitude = %v, want %v", gotMag, wantMag)
	}

	gotAngle := field.Angle.At(5, 5)
	if math.Abs(float64(gotAngle)) > 1e-6 {
		t.Errorf("interior angle = %v, want 0 (gradient points along +x)", gotAngle)
	}

	if field.Magnitude.At(0, 0) != 0 || field.Angle.At(0, 0) != 0 {
		t.Errorf("border pixel should stay zero, got mag=%v angle=%v", field.Magnitude.At(0, 0), field.Angle.At(0, 0))
	}
}

func TestBuildGradientFieldNegativeAngleStaysNegative(t *testing.T) {
	w, h := 10, 10
	g := NewImage(w, h)
	// g(x,y) = -y, so Gy = -2 everywhere in the interior, Gx = 0: atan2(-2, 0) = -pi/2.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, float32(-y))
		}
	}

	field := buildGradientField(g)
	gotAngle := field.Angle.At(5, 5)
	wantAngle := -math.Pi / 2
	if math.Abs(float64(gotAngle)-wantAngle) > 1e-6 {
		t.Errorf("angle = %v, want %v (left unwrapped, in [-pi, pi))", gotAngle, wantAngle)
	}
}

func TestBuildGradientFieldsCountMatchesGaussianLevels(t *testing.T) {
	octave := &Octave{
		Width:  10,
		Height: 10,
		Gaussian: []Image{
			NewImage(10, 10),
			NewImage(10, 10),
			NewImage(10, 10),
		},
	}
	fields := BuildGradientFields(octave)
	if len(fields) != len(octave.Gaussian) {
		t.Fatalf("len(fields) = %d, want %d", len(fields), len(octave.Gaussian))
	}
}
