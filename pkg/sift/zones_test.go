package sift

import "testing"

func TestClassifyZoneBoundaries(t *testing.T) {
	xLo, xHi, yLo, yHi := 25.0, 75.0, 25.0, 75.0

	cases := []struct {
		x, y float64
		want Zone
	}{
		{10, 10, ZoneTopLeft},
		{50, 10, ZoneTop},
		{90, 10, ZoneTopRight},
		{10, 50, ZoneLeft},
		{50, 50, ZoneCenter},
		{90, 50, ZoneRight},
		{10, 90, ZoneBottomLeft},
		{50, 90, ZoneBottom},
		{90, 90, ZoneBottomRight},
	}
	for _, c := range cases {
		if got := classifyZone(c.x, c.y, xLo, xHi, yLo, yHi); got != c.want {
			t.Errorf("classifyZone(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestSummarizeZonesCountsAndMedian(t *testing.T) {
	width, height := 100, 100
	kps := []Keypoint{
		{AbsX: 50, AbsY: 50, Sigma: 1.0},
		{AbsX: 51, AbsY: 49, Sigma: 2.0},
		{AbsX: 49, AbsY: 51, Sigma: 3.0},
		{AbsX: 10, AbsY: 10, Sigma: 5.0},
	}
	summary := SummarizeZones([][]Keypoint{kps}, width, height)

	center := summary.Zones[ZoneCenter]
	if center.Count != 3 {
		t.Fatalf("center count = %d, want 3", center.Count)
	}
	if center.MedianSigma != 2.0 {
		t.Errorf("center median sigma = %v, want 2.0", center.MedianSigma)
	}

	topLeft := summary.Zones[ZoneTopLeft]
	if topLeft.Count != 1 || topLeft.MedianSigma != 5.0 {
		t.Errorf("top-left zone = %+v, want count 1, median 5.0", topLeft)
	}

	empty := summary.Zones[ZoneBottomRight]
	if empty.Count != 0 || empty.MedianSigma != 0 {
		t.Errorf("bottom-right zone should be empty, got %+v", empty)
	}
}
