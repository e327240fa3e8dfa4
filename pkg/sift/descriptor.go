package sift

import "math"

// BuildDescriptor constructs the oriented gradient histogram for kp at
// orientation theta. The patch is divided into an nh x nh grid of
// histograms, each with nb orientation bins, and every gradient sample is
// spread trilinearly (two spatial bins x two orientation bins) to reduce
// boundary effects. The result is the raw weighted accumulator, rounded to
// the nearest integer per bin: unnormalized, since normalization and any
// byte-range clipping is left to the caller. It returns false if the
// oriented patch does not fit entirely within the interior of the octave.
func BuildDescriptor(octave *Octave, fields []GradientField, kp Keypoint, theta float64, cfg Config) (Descriptor, bool) {
	nh := cfg.DescriptorHistogramsPerAxis
	nb := cfg.DescriptorOrientationBins
	lambda := cfg.LambdaDescriptor

	sigmaGrid := kp.Sigma / octave.Delta
	radius := int(math.Ceil(math.Sqrt2 * lambda * sigmaGrid * float64(nh+1) / float64(nh)))

	xg, yg := math.Round(kp.ScaledX), math.Round(kp.ScaledY)
	w, h := octave.Width, octave.Height
	if xg-float64(radius) < 1 || xg+float64(radius) > float64(w-2) ||
		yg-float64(radius) < 1 || yg+float64(radius) > float64(h-2) {
		return Descriptor{}, false
	}

	field := fields[octave.nearestScale(kp.Sigma)]
	hist := make([]float64, nh*nh*nb)

	cosT, sinT := math.Cos(theta), math.Sin(theta)
	bound := lambda * float64(nh+1) / float64(nh)
	binWeightSigma := float64(nh) / 2

	ix, iy := int(xg), int(yg)
	for dy := -radius; dy <= radius; dy++ {
		y := iy + dy
		for dx := -radius; dx <= radius; dx++ {
			x := ix + dx

			px, py := float64(x)-xg, float64(y)-yg
			xHat := (px*cosT + py*sinT) / sigmaGrid
			yHat := (-px*sinT + py*cosT) / sigmaGrid

			if math.Abs(xHat) >= bound || math.Abs(yHat) >= bound {
				continue
			}

			iHat := xHat/lambda*float64(nh) + float64(nh-1)/2
			jHat := yHat/lambda*float64(nh) + float64(nh-1)/2
			if iHat <= -1 || iHat >= float64(nh) || jHat <= -1 || jHat >= float64(nh) {
				continue
			}

			m := float64(field.Magnitude.At(x, y))
			if m == 0 {
				continue
			}
			a := float64(field.Angle.At(x, y))
			angleRel := math.Mod(a-theta+4*math.Pi, 2*math.Pi)
			kHat := angleRel / (2 * math.Pi) * float64(nb)

			weight := math.Exp(-(xHat*xHat + yHat*yHat) / (2 * binWeightSigma * binWeightSigma))
			contrib := weight * m

			distributeTrilinear(hist, nh, nb, iHat, jHat, kHat, contrib)
		}
	}

	var d Descriptor
	d.Keypoint = kp
	d.Theta = theta
	for i, v := range hist {
		q := int(math.Round(v))
		if q < 0 {
			q = 0
		}
		d.Values[i] = q
	}
	return d, true
}

// distributeTrilinear spreads one weighted gradient sample across the two
// spatial bins and two orientation bins nearest (iHat, jHat, kHat).
func distributeTrilinear(hist []float64, nh, nb int, iHat, jHat, kHat, contrib float64) {
	i0 := int(math.Floor(iHat))
	j0 := int(math.Floor(jHat))
	k0 := int(math.Floor(kHat))

	for _, di := range [2]int{0, 1} {
		i := i0 + di
		if i < 0 || i >= nh {
			continue
		}
		wi := 1 - math.Abs(iHat-float64(i))
		if wi <= 0 {
			continue
		}
		for _, dj := range [2]int{0, 1} {
			j := j0 + dj
			if j < 0 || j >= nh {
				continue
			}
			wj := 1 - math.Abs(jHat-float64(j))
			if wj <= 0 {
				continue
			}
			for _, dk := range [2]int{0, 1} {
				k := ((k0 + dk) % nb + nb) % nb
				wk := 1 - math.Abs(kHat-float64(k0+dk))
				if wk <= 0 {
					continue
				}
				hist[(i*nh+j)*nb+k] += contrib * wi * wj * wk
			}
		}
	}
}
