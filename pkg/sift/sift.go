package sift

import (
	"errors"

	"go.uber.org/multierr"
)

var errNoBackend = errors.New("no compute backend available")

// Sift runs the full detection and description pipeline over one input
// image: pyramid construction, extrema detection, sub-pixel refinement,
// orientation assignment, and descriptor construction. A single Sift
// instance is reused across Detect/Describe calls; it holds no state
// tied to one particular input beyond the pyramid built by the most
// recent Detect call, which Describe reads back.
type Sift struct {
	cfg     Config
	backend Backend

	octaves []*Octave
	fields  [][]GradientField

	Metrics *DetectionMetrics
}

// New validates cfg and allocates the compute backend for this build. Any
// number of independent failures are combined into one returned error via
// multierr rather than stopping at the first one found.
func New(cfg Config) (*Sift, error) {
	var errs error
	if err := cfg.Validate(); err != nil {
		errs = multierr.Append(errs, err)
	}

	backend := NewBackend()
	if backend == nil {
		errs = multierr.Append(errs, errNoBackend)
	}

	if errs != nil {
		return nil, errs
	}
	return &Sift{cfg: cfg, backend: backend}, nil
}

// Detect builds the scale-space pyramid for input and returns its
// keypoints, grouped by octave index. It records per-octave rejection
// counts in s.Metrics and caches the pyramid and gradient fields for a
// following Describe call.
func (s *Sift) Detect(input Image) ([][]Keypoint, error) {
	octaves, err := BuildPyramid(input, s.cfg, s.backend)
	if err != nil {
		return nil, err
	}

	s.octaves = octaves
	s.fields = make([][]GradientField, len(octaves))
	s.Metrics = NewDetectionMetrics(len(octaves))

	result := make([][]Keypoint, len(octaves))
	for o, octave := range octaves {
		s.fields[o] = BuildGradientFields(octave)

		_, candidates := FindExtrema(octave, s.cfg)
		s.Metrics.Candidates[o] = len(candidates)

		var kps []Keypoint
		for _, cand := range candidates {
			kp, outcome := RefineCandidate(octave, cand, s.cfg)
			switch outcome {
			case refineAccepted:
				s.Metrics.Accepted[o]++
				kps = append(kps, kp)
			case refineLowContrast:
				s.Metrics.RejectedContrast[o]++
			case refineEdge:
				s.Metrics.RejectedEdge[o]++
			default:
				s.Metrics.RejectedRefine[o]++
			}
		}
		result[o] = kps
	}
	return result, nil
}

// Describe assigns dominant orientations to each keypoint in
// keypointsPerOctave and builds a Descriptor for every resulting
// orientation. It must be called after Detect on the same Sift instance,
// since it reuses the pyramid and gradient fields Detect computed.
func (s *Sift) Describe(keypointsPerOctave [][]Keypoint) ([][]Descriptor, error) {
	if s.octaves == nil {
		return nil, errors.New("sift: Describe called before Detect")
	}
	if len(keypointsPerOctave) != len(s.octaves) {
		return nil, errors.New("sift: keypointsPerOctave does not match the last Detect call")
	}

	result := make([][]Descriptor, len(s.octaves))
	for o, octave := range s.octaves {
		fields := s.fields[o]
		var descriptors []Descriptor
		for _, kp := range keypointsPerOctave[o] {
			angles := AssignOrientations(octave, fields, kp, s.cfg)
			if angles == nil {
				s.Metrics.RejectedOrientation[o]++
				continue
			}
			for _, theta := range angles {
				d, ok := BuildDescriptor(octave, fields, kp, theta, s.cfg)
				if !ok {
					s.Metrics.RejectedDescriptor[o]++
					continue
				}
				kp.Theta = theta
				d.Keypoint = kp
				descriptors = append(descriptors, d)
			}
		}
		result[o] = descriptors
	}
	return result, nil
}
