package sift

import (
	"math"
	"testing"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig(4, 4) // below the 16x16 minimum
	_, err := New(cfg)
	if err == nil {
		t.Fatal("expected an error for an undersized config, got nil")
	}
}

func TestDescribeBeforeDetectFails(t *testing.T) {
	s, err := New(DefaultConfig(64, 64))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := s.Describe([][]Keypoint{{}}); err == nil {
		t.Fatal("expected Describe to fail before any Detect call")
	}
}

func TestDescribeRejectsMismatchedOctaveCount(t *testing.T) {
	s, err := New(DefaultConfig(64, 64))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	input := NewImage(64, 64)
	if _, err := s.Detect(input); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if _, err := s.Describe([][]Keypoint{}); err == nil {
		t.Fatal("expected Describe to reject a keypointsPerOctave slice of the wrong length")
	}
}

func TestTotalSumsPerOctaveCounters(t *testing.T) {
	got := Total([]int{1, 2, 3})
	if got != 6 {
		t.Fatalf("Total([1,2,3]) = %d, want 6", got)
	}
}

func TestDetectConstantImageYieldsNoKeypoints(t *testing.T) {
	s, err := New(DefaultConfig(64, 64))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	input := NewImage(64, 64)
	for i := range input.Raw() {
		input.Raw()[i] = 0.5
	}

	keypointsPerOctave, err := s.Detect(input)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	for o, kps := range keypointsPerOctave {
		if len(kps) != 0 {
			t.Errorf("octave %d: got %d keypoints on a constant image, want 0", o, len(kps))
		}
	}
}

func TestDetectDiskFindsKeypointNearCenter(t *testing.T) {
	width, height := 128, 128
	cx, cy := 64.0, 64.0
	radius := 8.0
	wantSigma := 0.7 * radius / math.Sqrt2

	input := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= radius*radius {
				input.Set(x, y, 1)
			}
		}
	}

	s, err := New(DefaultConfig(width, height))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	keypointsPerOctave, err := s.Detect(input)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	var best Keypoint
	found := false
	bestDist := math.Inf(1)
	for _, kps := range keypointsPerOctave {
		for _, kp := range kps {
			dist := math.Hypot(kp.AbsX-cx, kp.AbsY-cy)
			if dist < bestDist {
				bestDist = dist
				best = kp
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected at least one keypoint for a disk of radius %v at (%v, %v), got none", radius, cx, cy)
	}
	if bestDist > 4 {
		t.Errorf("nearest keypoint is %v px from the disk center (%v, %v), got (%v, %v)", bestDist, cx, cy, best.AbsX, best.AbsY)
	}
	if best.Sigma < 0.4*wantSigma || best.Sigma > 2.0*wantSigma {
		t.Errorf("nearest keypoint sigma = %v, want roughly %v", best.Sigma, wantSigma)
	}

	descriptorsPerOctave, err := s.Describe(keypointsPerOctave)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	totalDescriptors := 0
	for _, ds := range descriptorsPerOctave {
		totalDescriptors += len(ds)
	}
	if totalDescriptors == 0 {
		t.Errorf("expected at least one descriptor for the disk image, got 0")
	}
}
