package sift

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const hessianSingularityFloor = 1e-12

// refineOutcome classifies why RefineCandidate did or did not produce a
// Keypoint, for DetectionMetrics' per-reason rejection counts.
type refineOutcome int

const (
	refineAccepted refineOutcome = iota
	refineNonConvergent
	refineLowContrast
	refineEdge
)

// RefineCandidate performs the quadratic sub-pixel/sub-scale interpolation
// step: starting from an integer extremum (octave, candidate.Scale,
// candidate.X, candidate.Y), it repeatedly fits a local quadratic to the
// DoG value and walks to the next integer sample whenever the fitted
// offset reaches 0.6 of a sample in any dimension, until it converges, runs out of
// iterations, or falls off the edge of the valid region. A converged
// candidate still has to pass the low-contrast and edge-response tests
// below to become a Keypoint.
func RefineCandidate(octave *Octave, cand Candidate, cfg Config) (Keypoint, refineOutcome) {
	x, y, s := cand.X, cand.Y, cand.Scale
	ns := octave.numScales()

	var dx, dy, ds float64
	var value float64

	converged := false
	for iter := 0; iter < cfg.MaxInterpIterations; iter++ {
		if x < cfg.ImageBorder || x >= octave.Width-cfg.ImageBorder ||
			y < cfg.ImageBorder || y >= octave.Height-cfg.ImageBorder ||
			s < 1 || s > ns {
			return Keypoint{}, refineNonConvergent
		}

		grad, hess := gradientHessian(octave, x, y, s)

		if math.Abs(mat.Det(hess)) < hessianSingularityFloor {
			return Keypoint{}, refineNonConvergent
		}

		var step mat.VecDense
		negGrad := mat.NewVecDense(3, []float64{-grad.AtVec(0), -grad.AtVec(1), -grad.AtVec(2)})
		if err := step.SolveVec(hess, negGrad); err != nil {
			return Keypoint{}, refineNonConvergent
		}
		dx, dy, ds = step.AtVec(0), step.AtVec(1), step.AtVec(2)

		if math.Abs(dx) < 0.6 && math.Abs(dy) < 0.6 && math.Abs(ds) < 0.6 {
			value = float64(octave.DoG[s].At(x, y)) + 0.5*(grad.AtVec(0)*dx+grad.AtVec(1)*dy+grad.AtVec(2)*ds)
			converged = true
			break
		}

		x += int(math.Round(dx))
		y += int(math.Round(dy))
		s += int(math.Round(ds))
	}
	if !converged {
		return Keypoint{}, refineNonConvergent
	}

	if math.Abs(value) < cfg.DoGThreshold {
		return Keypoint{}, refineLowContrast
	}

	if !passesEdgeTest(octave, x, y, s, cfg.EdgeThreshold) {
		return Keypoint{}, refineEdge
	}

	// scaled_coord is the converged integer (x, y): the sub-pixel offset is
	// tracked separately as SubX/SubY and is not folded into ScaledX/ScaledY,
	// so the border check above (on the integer x, y) also bounds ScaledX/Y.
	scaledX := float64(x)
	scaledY := float64(y)
	subS := float64(s) + ds
	ns64 := float64(ns)

	sigmaGrid := cfg.SigmaMin * math.Pow(2, subS/ns64)

	kp := Keypoint{
		Octave:  octave.Index,
		Scale:   s,
		SubX:    dx,
		SubY:    dy,
		SubS:    ds,
		X:       x,
		Y:       y,
		ScaledX: scaledX,
		ScaledY: scaledY,
		AbsX:    scaledX * octave.Delta,
		AbsY:    scaledY * octave.Delta,
		Sigma:   octave.Delta * sigmaGrid,
		Value:   value,
	}
	return kp, refineAccepted
}

// gradientHessian computes the gradient and Hessian of the DoG scalar
// field at the integer sample (x, y, s) using centered finite differences:
// 2-point stencils for the first derivatives, 3-point stencils for the
// diagonal second derivatives, and 4-point
// stencils (divided by 4) for the mixed partials.
func gradientHessian(octave *Octave, x, y, s int) (*mat.VecDense, *mat.SymDense) {
	prev, cur, next := octave.DoG[s-1], octave.DoG[s], octave.DoG[s+1]

	dx := (cur.At(x+1, y) - cur.At(x-1, y)) / 2
	dy := (cur.At(x, y+1) - cur.At(x, y-1)) / 2
	ds := (next.At(x, y) - prev.At(x, y)) / 2

	center := cur.At(x, y)
	dxx := float64(cur.At(x+1, y) - 2*center + cur.At(x-1, y))
	dyy := float64(cur.At(x, y+1) - 2*center + cur.At(x, y-1))
	dss := float64(next.At(x, y) - 2*center + prev.At(x, y))

	dxy := float64(cur.At(x+1, y+1)-cur.At(x+1, y-1)-cur.At(x-1, y+1)+cur.At(x-1, y-1)) / 4
	dxs := float64(next.At(x+1, y)-next.At(x-1, y)-prev.At(x+1, y)+prev.At(x-1, y)) / 4
	dys := float64(next.At(x, y+1)-next.At(x, y-1)-prev.At(x, y+1)+prev.At(x, y-1)) / 4

	grad := mat.NewVecDense(3, []float64{float64(dx), float64(dy), float64(ds)})
	hess := mat.NewSymDense(3, []float64{
		dxx, dxy, dxs,
		dxy, dyy, dys,
		dxs, dys, dss,
	})
	return grad, hess
}

// passesEdgeTest rejects candidates lying along a straight edge, where the
// DoG response is dominated by a single large principal curvature. It
// looks only at the 2x2 spatial block of the Hessian (Dxx, Dyy, Dxy).
func passesEdgeTest(octave *Octave, x, y, s int, edgeThreshold float64) bool {
	cur := octave.DoG[s]
	center := cur.At(x, y)
	dxx := float64(cur.At(x+1, y) - 2*center + cur.At(x-1, y))
	dyy := float64(cur.At(x, y+1) - 2*center + cur.At(x, y-1))
	dxy := float64(cur.At(x+1, y+1)-cur.At(x+1, y-1)-cur.At(x-1, y+1)+cur.At(x-1, y-1)) / 4

	tr := dxx + dyy
	det := dxx*dyy - dxy*dxy
	if det <= 0 {
		return false
	}
	return tr*tr*edgeThreshold < (edgeThreshold+1)*(edgeThreshold+1)*det
}
