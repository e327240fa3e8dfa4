package sift

import "math"

// Candidate is a raw 3D extremum found in the DoG stack, before any
// sub-pixel refinement, contrast, or edge rejection.
type Candidate struct {
	Scale int // index into octave.DoG, 1 <= Scale <= ns
	X, Y  int // octave-grid pixel coordinates
}

// FindExtrema scans the interior of every DoG scale s = 1..ns for 3D local
// extrema against all 26 neighbors in DoG[s-1], DoG[s], DoG[s+1]. It
// returns one marker Image per interior scale (value 1.0 at an extremum,
// 0.0 elsewhere) together with the host-side candidate list. Candidates
// with |value| <= 0.8*DoGThreshold are discarded here rather than kept,
// sparing the refinement stage from chasing values that the later
// contrast test would reject anyway.
func FindExtrema(octave *Octave, cfg Config) ([]Image, []Candidate) {
	ns := octave.numScales()
	markers := make([]Image, ns)
	var candidates []Candidate

	softThreshold := 0.8 * cfg.DoGThreshold
	w, h := octave.Width, octave.Height

	for s := 1; s <= ns; s++ {
		marker := NewImage(w, h)
		prev, cur, next := octave.DoG[s-1], octave.DoG[s], octave.DoG[s+1]

		for y := 1; y <= h-2; y++ {
			for x := 1; x <= w-2; x++ {
				v := cur.At(x, y)
				if isExtremum(v, prev, cur, next, x, y) {
					marker.Set(x, y, 1)
					if math.Abs(float64(v)) > softThreshold {
						candidates = append(candidates, Candidate{Scale: s, X: x, Y: y})
					}
				}
			}
		}
		markers[s-1] = marker
	}
	return markers, candidates
}

func isExtremum(v float32, prev, cur, next Image, x, y int) bool {
	isMax, isMin := true, true
	layers := [3]Image{prev, cur, next}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			for li := range layers {
				if li == 1 && dx == 0 && dy == 0 {
					continue
				}
				n := layers[li].At(x+dx, y+dy)
				if n >= v {
					isMax = false
				}
				if n <= v {
					isMin = false
				}
				if !isMax && !isMin {
					return false
				}
			}
		}
	}
	return isMax || isMin
}
