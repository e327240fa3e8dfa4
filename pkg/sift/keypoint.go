package sift

// Keypoint is a refined scale-space extremum: a sub-pixel, sub-scale
// location together with the absolute sigma and response value it was
// found at.
type Keypoint struct {
	Octave int
	Scale  int     // interior DoG scale index the extremum converged to
	SubX   float64 // sub-pixel offset relative to X, in (-0.6, 0.6)
	SubY   float64 // sub-pixel offset relative to Y, in (-0.6, 0.6)
	SubS   float64 // sub-scale offset added to Scale, in (-0.6, 0.6)

	X, Y int // integer octave-grid coordinates after the last accepted step

	ScaledX float64 // == float64(X), in octave-grid units; SubX is tracked separately, not folded in
	ScaledY float64 // == float64(Y), in octave-grid units; SubY is tracked separately, not folded in

	AbsX  float64 // ScaledX * octave delta, in input-image pixels
	AbsY  float64 // ScaledY * octave delta, in input-image pixels
	Sigma float64 // absolute sigma at (Scale + SubS), in input-image pixels

	Value float64 // interpolated DoG response at the refined location

	Theta float64 // dominant orientation in radians; set by Describe on the copy stored in each Descriptor, zero on keypoints returned by Detect
}

// Descriptor is the 128-dimensional gradient histogram built around a
// Keypoint at one of its assigned orientations: a raw, unnormalized
// accumulation of weighted gradient magnitude per bin, rounded to the
// nearest non-negative integer. Normalization and any byte-range clipping
// are left to the caller.
type Descriptor struct {
	Keypoint Keypoint
	Theta    float64
	Values   [128]int
}
