package sift

import "math"

// AssignOrientations computes the dominant orientation(s) of kp from the
// smoothed gradient-angle histogram of its surrounding patch. It returns
// one angle in radians per detected peak (at least 0.8 of the histogram
// maximum), so a single Keypoint can expand into several oriented copies
// downstream. A patch that would run off the interior of the octave
// returns nil, matching the rejection the descriptor stage applies for
// the same reason.
func AssignOrientations(octave *Octave, fields []GradientField, kp Keypoint, cfg Config) []float64 {
	sigmaGrid := kp.Sigma / octave.Delta
	patchSigma := cfg.LambdaOrientation * sigmaGrid
	radius := int(math.Ceil(3 * patchSigma))

	xg, yg := math.Round(kp.ScaledX), math.Round(kp.ScaledY)
	w, h := octave.Width, octave.Height
	if xg-float64(radius) < 1 || xg+float64(radius) > float64(w-2) ||
		yg-float64(radius) < 1 || yg+float64(radius) > float64(h-2) {
		return nil
	}

	field := fields[octave.nearestScale(kp.Sigma)]
	bins := cfg.OrientationBins
	hist := make([]float64, bins)

	twoSigmaSq := 2 * patchSigma * patchSigma
	ix, iy := int(xg), int(yg)
	for dy := -radius; dy <= radius; dy++ {
		y := iy + dy
		for dx := -radius; dx <= radius; dx++ {
			x := ix + dx
			fdx, fdy := float64(x)-xg, float64(y)-yg
			distSq := fdx*fdx + fdy*fdy
			if distSq > float64(radius*radius) {
				continue
			}
			weight := math.Exp(-distSq / twoSigmaSq)
			m := float64(field.Magnitude.At(x, y))
			a := float64(field.Angle.At(x, y))

			binF := a / (2 * math.Pi) * float64(bins)
			bin := int(math.Floor(binF)) % bins
			if bin < 0 {
				bin += bins
			}
			hist[bin] += weight * m
		}
	}

	smoothHistogram(hist, cfg.OrientationSmoothingIterations)

	maxVal := 0.0
	for _, v := range hist {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		return nil
	}

	var angles []float64
	for i := 0; i < bins; i++ {
		prev := hist[(i-1+bins)%bins]
		cur := hist[i]
		next := hist[(i+1)%bins]
		if cur <= prev || cur <= next {
			continue
		}
		if cur < cfg.OrientationThreshold*maxVal {
			continue
		}
		denom := prev - 2*cur + next
		offset := 0.0
		if denom != 0 {
			offset = 0.5 * (prev - next) / denom
		}
		theta := (float64(i) + offset) * 2 * math.Pi / float64(bins)
		if theta < 0 {
			theta += 2 * math.Pi
		}
		if theta >= 2*math.Pi {
			theta -= 2 * math.Pi
		}
		angles = append(angles, theta)
	}
	return angles
}

// smoothHistogram applies iterations passes of a circular 3-tap boxcar
// filter in place.
func smoothHistogram(hist []float64, iterations int) {
	n := len(hist)
	buf := make([]float64, n)
	for it := 0; it < iterations; it++ {
		for i := 0; i < n; i++ {
			prev := hist[(i-1+n)%n]
			cur := hist[i]
			next := hist[(i+1)%n]
			buf[i] = (prev + cur + next) / 3
		}
		copy(hist, buf)
	}
}
