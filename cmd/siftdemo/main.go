package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lukevanin/gosift/pkg/sift"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: siftdemo <input-file> [overlay.jpg]")
	}
	inputPath := args[0]

	img, width, height, err := loadImage(inputPath)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %s: %dx%d\n", inputPath, width, height)

	cfg := sift.DefaultConfig(width, height)
	detector, err := sift.New(cfg)
	if err != nil {
		return fmt.Errorf("creating detector: %w", err)
	}

	keypointsPerOctave, err := detector.Detect(img)
	if err != nil {
		return fmt.Errorf("detecting keypoints: %w", err)
	}

	descriptorsPerOctave, err := detector.Describe(keypointsPerOctave)
	if err != nil {
		return fmt.Errorf("building descriptors: %w", err)
	}

	totalKeypoints, totalDescriptors := 0, 0
	for o := range keypointsPerOctave {
		totalKeypoints += len(keypointsPerOctave[o])
		totalDescriptors += len(descriptorsPerOctave[o])
	}

	fmt.Println()
	fmt.Println("=== SIFT Detection Results ===")
	fmt.Printf("  Octaves:          %d\n", len(keypointsPerOctave))
	fmt.Printf("  Keypoints:        %d\n", totalKeypoints)
	fmt.Printf("  Descriptors:      %d\n", totalDescriptors)

	m := detector.Metrics
	fmt.Printf("  Candidates:       %d\n", sift.Total(m.Candidates))
	fmt.Printf("  Rejected/refine:  %d\n", sift.Total(m.RejectedRefine))
	fmt.Printf("  Rejected/contrast:%d\n", sift.Total(m.RejectedContrast))
	fmt.Printf("  Rejected/edge:    %d\n", sift.Total(m.RejectedEdge))
	fmt.Printf("  Rejected/orient:  %d\n", sift.Total(m.RejectedOrientation))
	fmt.Printf("  Rejected/descr:   %d\n", sift.Total(m.RejectedDescriptor))
	fmt.Println("===============================")

	summary := sift.SummarizeZones(keypointsPerOctave, width, height)
	fmt.Println()
	fmt.Println("=== Keypoint Density (3x3) ===")
	for _, z := range []sift.Zone{
		sift.ZoneTopLeft, sift.ZoneTop, sift.ZoneTopRight,
		sift.ZoneLeft, sift.ZoneCenter, sift.ZoneRight,
		sift.ZoneBottomLeft, sift.ZoneBottom, sift.ZoneBottomRight,
	} {
		zs := summary.Zones[z]
		fmt.Printf("  %-8s n=%-5d sigma(median)=%.3f\n", zs.Label, zs.Count, zs.MedianSigma)
	}
	fmt.Println("===============================")

	if len(args) >= 2 {
		outputPath := args[1]
		if err := sift.RenderKeypointOverlay(img, keypointsPerOctave, outputPath); err != nil {
			return fmt.Errorf("rendering overlay: %w", err)
		}
		fmt.Printf("\nOverlay written to %s\n", outputPath)
	}

	return nil
}

func loadImage(path string) (sift.Image, int, int, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".fits") || strings.HasSuffix(lower, ".fit") {
		img, _, err := sift.ReadFITS(path)
		if err != nil {
			return sift.Image{}, 0, 0, fmt.Errorf("reading FITS: %w", err)
		}
		return img, img.Width(), img.Height(), nil
	}
	return loadNonFITSImage(path)
}
