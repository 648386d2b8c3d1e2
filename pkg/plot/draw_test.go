// pkg/plot/draw_test.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import (
	"testing"

	"github.com/19wintersp/route-plotter/pkg/math"
)

func TestPolylines(t *testing.T) {
	a := Node{Position: math.Point2LL{0, 1}}
	b := Node{Position: math.Point2LL{1, 2}}
	c := Node{Position: math.Point2LL{2, 3}}
	d := Discontinuity()

	for _, tc := range []struct {
		route Route
		want  []int // lengths of the expected polylines
	}{
		{Route{}, nil},
		{Route{a}, []int{1}},
		{Route{a, b, c}, []int{3}},
		{Route{a, b, d, c}, []int{2, 1}},
		{Route{d, a, d, d, b, c, d}, []int{1, 2}},
	} {
		lines := tc.route.Polylines()
		if len(lines) != len(tc.want) {
			t.Errorf("%v: got %d polylines, expected %d", tc.route, len(lines), len(tc.want))
			continue
		}
		for i, line := range lines {
			if len(line) != tc.want[i] {
				t.Errorf("%v: polyline %d has %d points, expected %d",
					tc.route, i, len(line), tc.want[i])
			}
		}
	}
}

func TestSegmentColor(t *testing.T) {
	for _, tc := range []struct {
		t    float32
		want [3]float32
	}{
		{0, [3]float32{1, 0, 0}},   // pure red at the start
		{0.5, [3]float32{1, 0, 1}}, // magenta in the middle
		{1, [3]float32{0, 0, 1}},   // pure blue at the end
	} {
		if got := SegmentColor(tc.t); got != tc.want {
			t.Errorf("SegmentColor(%v) = %v, expected %v", tc.t, got, tc.want)
		}
	}

	// Monotonic fades on either side of the midpoint.
	if c := SegmentColor(0.25); c[0] != 1 || c[2] <= 0 || c[2] >= 1 {
		t.Errorf("SegmentColor(0.25) = %v", c)
	}
	if c := SegmentColor(0.75); c[2] != 1 || c[0] <= 0 || c[0] >= 1 {
		t.Errorf("SegmentColor(0.75) = %v", c)
	}
}

func TestHoldOutline(t *testing.T) {
	const nmPerLongitude = 38

	p := math.Point2LL{-0.4614, 51.4775}
	h := Hold{Length: 5, Course: 90, LeftTurns: false}

	outline := HoldOutline(p, h, nmPerLongitude)
	if len(outline) < 10 {
		t.Fatalf("outline has only %d points", len(outline))
	}

	// The outline is closed.
	first, last := outline[0], outline[len(outline)-1]
	if math.NMDistance2LL(first, last) > 0.01 {
		t.Errorf("outline not closed: %v to %v", first, last)
	}

	// The fix itself is the end of the inbound leg.
	if math.NMDistance2LL(outline[1], p) > 0.01 {
		t.Errorf("second point %v is not the fix %v", outline[1], p)
	}

	// The start of the inbound leg is one leg length before the fix.
	if d := math.NMDistance2LL(outline[0], p); math.Abs(d-h.Length) > 0.05 {
		t.Errorf("inbound leg is %v nm, expected %v", d, h.Length)
	}

	// Everything stays within the racetrack's bounding circle.
	limit := h.Length + 2*HoldRadius + 0.1
	for i, q := range outline {
		if d := math.NMDistance2LL(q, p); d > limit {
			t.Errorf("point %d is %v nm from the fix, limit %v", i, d, limit)
		}
	}

	// Left and right turns mirror each other across the inbound course.
	left := HoldOutline(p, Hold{Length: 5, Course: 90, LeftTurns: true}, nmPerLongitude)
	if len(left) != len(outline) {
		t.Fatalf("left outline has %d points, right %d", len(left), len(outline))
	}
	for i := range left {
		dr := outline[i].Latitude() - p.Latitude()
		dl := left[i].Latitude() - p.Latitude()
		if math.Abs(dr+dl) > 1e-4 {
			t.Errorf("point %d: latitudes %v and %v not mirrored", i, dr, dl)
		}
	}
}
