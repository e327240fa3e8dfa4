package sift

import "math"

// Octave holds one level of the scale-space pyramid: a fixed spatial
// resolution hosting ns+3 Gaussian-blurred images spanning one doubling of
// sigma, plus the DoG stack derived from them (filled in by buildDoG).
// Octaves are created in order 0..O-1 during pyramid construction and are
// never mutated afterward, so no octave aliases another's buffers.
type Octave struct {
	Index  int
	Delta  float64 // pixel spacing of this octave's grid, in input-image units
	Width  int
	Height int

	// Sigmas holds sigma_{o,s} in absolute (input-pixel) units, one per
	// Gaussian level: Sigmas[s] = Delta * SigmaMin * 2^(s/ns).
	Sigmas []float64

	// Gaussian holds len(Sigmas) = ns+3 blurred images.
	Gaussian []Image

	// DoG holds ns+2 difference-of-Gaussians images, populated by buildDoG.
	DoG []Image
}

// numScales returns ns, the configured scales per octave.
func (o *Octave) numScales() int {
	return len(o.Gaussian) - 3
}

// nearestScale returns the index of the Gaussian level whose absolute
// sigma is closest to the given target sigma.
func (o *Octave) nearestScale(sigma float64) int {
	best := 0
	bestDiff := math.Abs(o.Sigmas[0] - sigma)
	for s := 1; s < len(o.Sigmas); s++ {
		d := math.Abs(o.Sigmas[s] - sigma)
		if d < bestDiff {
			bestDiff = d
			best = s
		}
	}
	return best
}

// numOctaves computes O = max{o : min(w_o, h_o) >= 12}, where octave 0 has
// size (2W, 2H) after the seed upsample and each subsequent octave halves.
func numOctaves(width, height int) int {
	w, h := width*2, height*2
	n := 1
	for {
		nw, nh := w/2, h/2
		if min(nw, nh) < 12 {
			break
		}
		n++
		w, h = nw, nh
	}
	return n
}

// BuildPyramid constructs the full Gaussian scale-space for input. Octave
// 0 seeds from a nearest-neighbor 2x upsample of input, every later octave
// seeds from a nearest-neighbor 2x downsample of the previous octave's
// ns-th Gaussian level, and each level within an octave is reached from
// its predecessor by convolving with the incremental blur needed to hit
// the next target sigma.
func BuildPyramid(input Image, cfg Config, backend Backend) ([]*Octave, error) {
	ns := cfg.NumScalesPerOctave
	levels := ns + 3

	O := numOctaves(cfg.Width, cfg.Height)
	octaves := make([]*Octave, O)

	seed, err := backend.UpsampleNearest2x(input)
	if err != nil {
		return nil, &BackendError{Op: "BuildPyramid", Err: err}
	}
	delta := cfg.DeltaMin
	// Blur already present in the seed image, expressed in octave 0's own
	// grid units (the caller's assumed nominal blur, projected through the
	// upsample factor).
	seedSigmaGrid := cfg.SigmaIn / delta

	for o := 0; o < O; o++ {
		sigmasGrid := make([]float64, levels)
		for s := 0; s < levels; s++ {
			sigmasGrid[s] = cfg.SigmaMin * math.Pow(2, float64(s)/float64(ns))
		}

		gaussians := make([]Image, levels)
		cur := seed
		curSigmaGrid := seedSigmaGrid
		for s := 0; s < levels; s++ {
			target := sigmasGrid[s]
			incSq := target*target - curSigmaGrid*curSigmaGrid
			if incSq < 0 {
				incSq = 0
			}
			inc := math.Sqrt(incSq)
			if inc > 1e-6 {
				blurred, err := backend.Blur(cur, float32(inc))
				if err != nil {
					return nil, &BackendError{Op: "BuildPyramid", Err: err}
				}
				cur = blurred
			} else {
				cur = cur.Clone()
			}
			gaussians[s] = cur
			curSigmaGrid = target
		}

		absSigmas := make([]float64, levels)
		for s := range absSigmas {
			absSigmas[s] = delta * sigmasGrid[s]
		}

		octaves[o] = &Octave{
			Index:    o,
			Delta:    delta,
			Width:    gaussians[0].Width(),
			Height:   gaussians[0].Height(),
			Sigmas:   absSigmas,
			Gaussian: gaussians,
		}
		buildDoG(octaves[o])

		if o == O-1 {
			break
		}

		// Seed the next octave from this one's ns-th Gaussian level,
		// downsampled by 2. The same absolute blur, re-expressed in the
		// next octave's (2x coarser) grid units, is exactly half of this
		// octave's grid-sigma at level ns — independent of delta.
		next, err := backend.DownsampleNearest2x(gaussians[ns])
		if err != nil {
			return nil, &BackendError{Op: "BuildPyramid", Err: err}
		}
		seed = next
		seedSigmaGrid = sigmasGrid[ns] / 2.0
		delta *= 2
	}

	return octaves, nil
}
