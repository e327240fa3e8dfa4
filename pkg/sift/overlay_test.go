package sift

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRenderOverlayImageMatchesInputDimensions(t *testing.T) {
	input := NewImage(20, 10)
	for i := range input.Raw() {
		input.Raw()[i] = 0.5
	}
	kps := []Keypoint{{AbsX: 10, AbsY: 5, Sigma: 3, Theta: 0}}

	img := renderOverlayImage(input, [][]Keypoint{kps})
	bounds := img.Bounds()
	if bounds.Dx() != 20 || bounds.Dy() != 10 {
		t.Fatalf("overlay image size = %dx%d, want 20x10", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderKeypointOverlayWritesAJPEGFile(t *testing.T) {
	input := NewImage(16, 16)
	kps := []Keypoint{{AbsX: 8, AbsY: 8, Sigma: 2, Theta: 1.0}}
	outPath := filepath.Join(t.TempDir(), "overlay.jpg")

	if err := RenderKeypointOverlay(input, [][]Keypoint{kps}, outPath); err != nil {
		t.Fatalf("RenderKeypointOverlay failed: %v", err)
	}
	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("expected the overlay file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected a non-empty JPEG file")
	}
}
