package sift

import "testing"

func TestBuildDescriptorShapeAndRange(t *testing.T) {
	w, h := 80, 80
	fields := []GradientField{uniformGradientField(w, h, 1, 0.7)}
	octave := &Octave{Width: w, Height: h, Delta: 1, Sigmas: []float64{2}}
	kp := Keypoint{Scale: 0, ScaledX: 40, ScaledY: 40, Sigma: 2}
	cfg := DefaultConfig(128, 128)

	d, ok := BuildDescriptor(octave, fields, kp, 0.0, cfg)
	if !ok {
		t.Fatalf("expected the descriptor patch to fit the interior")
	}
	if len(d.Values) != 128 {
		t.Fatalf("Values length = %d, want 128", len(d.Values))
	}
	nonZero := false
	for i, v := range d.Values {
		if v < 0 {
			t.Errorf("Values[%d] = %d, want a non-negative accumulator", i, v)
		}
		if v != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Errorf("expected at least one non-zero histogram bin for a uniform gradient patch")
	}
}

func TestBuildDescriptorRejectsPatchOffInterior(t *testing.T) {
	w, h := 20, 20
	fields := []GradientField{uniformGradientField(w, h, 1, 0)}
	octave := &Octave{Width: w, Height: h, Delta: 1}
	kp := Keypoint{Scale: 0, ScaledX: 1, ScaledY: 1, Sigma: 5}
	cfg := DefaultConfig(128, 128)

	_, ok := BuildDescriptor(octave, fields, kp, 0.0, cfg)
	if ok {
		t.Fatalf("expected the descriptor patch to be rejected as out-of-interior")
	}
}
