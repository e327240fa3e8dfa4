package sift

// DetectionMetrics counts candidates and rejections per octave over one
// Detect call and the Describe call that follows it, broken down by the
// reason a candidate never became a Keypoint or a keypoint never became a
// Descriptor. It is purely diagnostic: nothing in the pipeline consults it
// to make decisions.
type DetectionMetrics struct {
	Candidates          []int // raw 3D extrema found per octave, after the soft pre-threshold
	RejectedRefine      []int // dropped by non-convergence, out-of-bounds walk, or a near-singular Hessian
	RejectedContrast    []int // dropped by the low-contrast test
	RejectedEdge        []int // dropped by the edge-response test
	RejectedOrientation []int // keypoints with no orientation: patch didn't fit the interior, or no histogram peak
	RejectedDescriptor  []int // (keypoint, orientation) pairs whose descriptor patch didn't fit the interior
	Accepted            []int // refined into a Keypoint
}

// NewDetectionMetrics allocates a DetectionMetrics sized for numOctaves
// octaves, all counters zeroed.
func NewDetectionMetrics(numOctaves int) *DetectionMetrics {
	return &DetectionMetrics{
		Candidates:          make([]int, numOctaves),
		RejectedRefine:      make([]int, numOctaves),
		RejectedContrast:    make([]int, numOctaves),
		RejectedEdge:        make([]int, numOctaves),
		RejectedOrientation: make([]int, numOctaves),
		RejectedDescriptor:  make([]int, numOctaves),
		Accepted:            make([]int, numOctaves),
	}
}

// Total sums a per-octave counter slice across all octaves.
func Total(perOctave []int) int {
	sum := 0
	for _, v := range perOctave {
		sum += v
	}
	return sum
}
