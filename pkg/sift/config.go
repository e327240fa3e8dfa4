package sift

import "fmt"

// Config holds every tunable parameter of the detection and description
// pipeline. All fields are immutable for the lifetime of a Sift instance;
// there is no dynamic reconfiguration once New has validated them.
type Config struct {
	Width  int // required: input image width in pixels
	Height int // required: input image height in pixels

	DoGThreshold  float64 // low-contrast rejection on DoG response
	EdgeThreshold float64 // principal-curvature ratio threshold

	MaxInterpIterations int // cap on sub-pixel/sub-scale refinement steps
	ImageBorder         int // pixels at the octave edge where sub-pixel refinement drops a candidate

	NumScalesPerOctave int // ns; produces ns+3 Gaussian levels, ns+2 DoG levels

	LambdaOrientation              float64 // patch radius multiplier for orientation histogram
	OrientationBins                int     // bins in the circular orientation histogram
	OrientationThreshold           float64 // fraction of global max required to emit a second peak
	OrientationSmoothingIterations int     // boxcar smoothing passes over the orientation histogram

	DescriptorHistogramsPerAxis int     // nh; spatial grid is nh x nh
	DescriptorOrientationBins   int     // bins per spatial cell
	LambdaDescriptor            float64 // patch half-width multiplier

	SigmaMin float64 // seed blur (in each octave's own grid units)
	DeltaMin float64 // pixel spacing of octave 0 relative to the input (upsample factor)
	SigmaIn  float64 // assumed nominal blur already present in the caller-supplied image
}

// DefaultConfig returns the standard Lowe-style parameter set, bound to a
// concrete input size. Width and Height must still satisfy the minimum
// size checked by Validate.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:  width,
		Height: height,

		DoGThreshold:  0.0133,
		EdgeThreshold: 10.0,

		MaxInterpIterations: 5,
		ImageBorder:         5,

		NumScalesPerOctave: 3,

		LambdaOrientation:              1.5,
		OrientationBins:                36,
		OrientationThreshold:           0.8,
		OrientationSmoothingIterations: 6,

		DescriptorHistogramsPerAxis: 4,
		DescriptorOrientationBins:   8,
		LambdaDescriptor:            6,

		SigmaMin: 0.8,
		DeltaMin: 0.5,
		SigmaIn:  0.5,
	}
}

// Validate reports a ConfigError for any setting that would make the
// pipeline meaningless: undersized images or non-positive thresholds.
// This is the only place construction can fail fatally.
func (c Config) Validate() error {
	if c.Width < 16 || c.Height < 16 {
		return &ConfigError{Msg: fmt.Sprintf("image size %dx%d is below the minimum 16x16", c.Width, c.Height)}
	}
	if c.DoGThreshold <= 0 {
		return &ConfigError{Msg: "DoGThreshold must be positive"}
	}
	if c.EdgeThreshold <= 0 {
		return &ConfigError{Msg: "EdgeThreshold must be positive"}
	}
	if c.MaxInterpIterations <= 0 {
		return &ConfigError{Msg: "MaxInterpIterations must be positive"}
	}
	if c.ImageBorder <= 0 {
		return &ConfigError{Msg: "ImageBorder must be positive"}
	}
	if c.NumScalesPerOctave <= 0 {
		return &ConfigError{Msg: "NumScalesPerOctave must be positive"}
	}
	if c.LambdaOrientation <= 0 {
		return &ConfigError{Msg: "LambdaOrientation must be positive"}
	}
	if c.OrientationBins <= 0 {
		return &ConfigError{Msg: "OrientationBins must be positive"}
	}
	if c.OrientationThreshold <= 0 {
		return &ConfigError{Msg: "OrientationThreshold must be positive"}
	}
	if c.DescriptorHistogramsPerAxis <= 0 {
		return &ConfigError{Msg: "DescriptorHistogramsPerAxis must be positive"}
	}
	if c.DescriptorOrientationBins <= 0 {
		return &ConfigError{Msg: "DescriptorOrientationBins must be positive"}
	}
	if c.LambdaDescriptor <= 0 {
		return &ConfigError{Msg: "LambdaDescriptor must be positive"}
	}
	if c.SigmaMin <= 0 || c.DeltaMin <= 0 {
		return &ConfigError{Msg: "SigmaMin and DeltaMin must be positive"}
	}
	return nil
}
