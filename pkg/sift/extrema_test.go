package sift

import "testing"

func constDoGOctave(w, h int, value float32) *Octave {
	levels := make([]Image, 3)
	for i := range levels {
		img := NewImage(w, h)
		for j := range img.Raw() {
			img.Raw()[j] = value
		}
		levels[i] = img
	}
	return &Octave{Width: w, Height: h, DoG: levels, Gaussian: make([]Image, len(levels)+1)}
}

func TestFindExtremaConstantImageHasNone(t *testing.T) {
	octave := constDoGOctave(10, 10, 0.1)
	cfg := DefaultConfig(64, 64)
	_, candidates := FindExtrema(octave, cfg)
	if len(candidates) != 0 {
		t.Fatalf("constant DoG should have no extrema, got %d", len(candidates))
	}
}

func TestFindExtremaDetectsIsolatedPeak(t *testing.T) {
	w, h := 10, 10
	octave := constDoGOctave(w, h, 0.0)
	octave.DoG[1].Set(5, 5, 1.0)

	cfg := DefaultConfig(64, 64)
	cfg.DoGThreshold = 0.01
	markers, candidates := FindExtrema(octave, cfg)

	if len(markers) != 1 {
		t.Fatalf("expected 1 marker image (ns=1 from 3 DoG levels), got %d", len(markers))
	}
	if markers[0].At(5, 5) != 1 {
		t.Fatalf("marker at peak location should be 1")
	}

	found := false
	for _, c := range candidates {
		if c.X == 5 && c.Y == 5 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a candidate at (5,5), got %v", candidates)
	}
}

func TestFindExtremaSoftThresholdDiscardsWeakPeaks(t *testing.T) {
	w, h := 10, 10
	octave := constDoGOctave(w, h, 0.0)
	octave.DoG[1].Set(5, 5, 0.001) // weak peak, below 0.8*DoGThreshold

	cfg := DefaultConfig(64, 64)
	cfg.DoGThreshold = 0.1
	_, candidates := FindExtrema(octave, cfg)
	if len(candidates) != 0 {
		t.Fatalf("weak peak below the soft threshold should not become a candidate, got %d", len(candidates))
	}
}
