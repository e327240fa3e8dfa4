package sift

import "sort"

// Zone identifies one cell of the 3x3 grid ZoneSummary buckets keypoints
// into, named by its position in the image.
type Zone int

const (
	ZoneTopLeft Zone = iota
	ZoneTop
	ZoneTopRight
	ZoneLeft
	ZoneCenter
	ZoneRight
	ZoneBottomLeft
	ZoneBottom
	ZoneBottomRight
)

var zoneLabels = [...]string{
	ZoneTopLeft: "TL", ZoneTop: "T", ZoneTopRight: "TR",
	ZoneLeft: "L", ZoneCenter: "Center", ZoneRight: "R",
	ZoneBottomLeft: "BL", ZoneBottom: "B", ZoneBottomRight: "BR",
}

const zoneEdgeFraction = 0.25

// ZoneStats holds the keypoint count and median sigma for one zone.
type ZoneStats struct {
	Label      string
	Count      int
	MedianSigma float64
}

// ZoneSummary buckets every keypoint across all octaves into a 3x3 grid
// over the full input image and reports per-zone density and scale, the
// same shape of diagnostic a focus/tilt report would use but expressed
// purely in terms of keypoint count and sigma.
type ZoneSummary struct {
	Zones map[Zone]ZoneStats
}

// SummarizeZones classifies every keypoint in keypointsPerOctave by its
// absolute image position and computes per-zone statistics.
func SummarizeZones(keypointsPerOctave [][]Keypoint, width, height int) ZoneSummary {
	xLo := float64(width) * zoneEdgeFraction
	xHi := float64(width) * (1 - zoneEdgeFraction)
	yLo := float64(height) * zoneEdgeFraction
	yHi := float64(height) * (1 - zoneEdgeFraction)

	bucket := make(map[Zone][]float64)
	for _, kps := range keypointsPerOctave {
		for _, kp := range kps {
			z := classifyZone(kp.AbsX, kp.AbsY, xLo, xHi, yLo, yHi)
			bucket[z] = append(bucket[z], kp.Sigma)
		}
	}

	zones := make(map[Zone]ZoneStats, 9)
	for z := ZoneTopLeft; z <= ZoneBottomRight; z++ {
		sigmas := bucket[z]
		zones[z] = ZoneStats{
			Label:       zoneLabels[z],
			Count:       len(sigmas),
			MedianSigma: medianFloat64(sigmas),
		}
	}
	return ZoneSummary{Zones: zones}
}

func classifyZone(x, y, xLo, xHi, yLo, yHi float64) Zone {
	var col, row int
	switch {
	case x < xLo:
		col = 0
	case x < xHi:
		col = 1
	default:
		col = 2
	}
	switch {
	case y < yLo:
		row = 0
	case y < yHi:
		row = 1
	default:
		row = 2
	}
	grid := [3][3]Zone{
		{ZoneTopLeft, ZoneTop, ZoneTopRight},
		{ZoneLeft, ZoneCenter, ZoneRight},
		{ZoneBottomLeft, ZoneBottom, ZoneBottomRight},
	}
	return grid[row][col]
}

func medianFloat64(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
