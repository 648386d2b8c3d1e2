// pkg/plot/draw.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

// Geometry helpers for consumers that draw routes. The radar client
// owns the lat-long to screen projection, so everything here stays in
// lat-long, computed via a locally flat earth in nautical-mile space.

import (
	gomath "math"

	"github.com/19wintersp/route-plotter/pkg/math"
	"github.com/19wintersp/route-plotter/pkg/util"
)

// HoldRadius is the turn radius used when drawing racetrack outlines,
// in nautical miles.
const HoldRadius = 2

// SegmentColor returns the RGB colour (components in [0,1]) for the
// fraction t in [0,1] along a route: red at the start fading through
// magenta to blue at the end.
func SegmentColor(t float32) [3]float32 {
	x := 1 - math.Abs(1-2*t)
	r, b := x, x
	if t < 0.5 {
		r = 1
	}
	if t > 0.5 {
		b = 1
	}
	return [3]float32{r, 0, b}
}

// HoldOutline returns a closed polyline approximating the racetrack of
// the given hold at position p: the inbound leg ending at p, a
// half-turn, the outbound leg and the closing half-turn. Turns are to
// the right unless the hold says otherwise.
func HoldOutline(p math.Point2LL, h Hold, nmPerLongitude float32) []math.Point2LL {
	const arcSteps = 12

	inEnd := math.LL2NM(p, nmPerLongitude)

	// Unit vector along the inbound course and the leg back to the
	// start of the inbound leg.
	crs := math.Radians(h.Course)
	dir := [2]float32{math.Sin(crs), math.Cos(crs)}
	inStart := math.Sub2f(inEnd, math.Scale2f(dir, h.Length))

	// Perpendicular offset towards the outbound side.
	perp := [2]float32{dir[1], -dir[0]}
	if h.LeftTurns {
		perp = math.Scale2f(perp, -1)
	}
	offset := math.Scale2f(perp, HoldRadius)

	// Rotate v by angle a, flipping the direction for left turns.
	rotate := func(v [2]float32, a float32) [2]float32 {
		if h.LeftTurns {
			a = -a
		}
		s, c := math.Sin(a), math.Cos(a)
		return [2]float32{c*v[0] + s*v[1], -s*v[0] + c*v[1]}
	}

	var nm [][2]float32
	nm = append(nm, inStart, inEnd)

	// Half-turn from the end of the inbound leg onto the outbound side.
	c1 := math.Add2f(inEnd, offset)
	for k := 1; k <= arcSteps; k++ {
		a := float32(gomath.Pi) * float32(k) / arcSteps
		nm = append(nm, math.Add2f(c1, rotate(math.Scale2f(offset, -1), a)))
	}

	// Outbound leg, then the half-turn back to the start of the inbound
	// leg.
	outEnd := math.Add2f(inStart, math.Scale2f(offset, 2))
	nm = append(nm, outEnd)

	c2 := math.Add2f(inStart, offset)
	for k := 1; k <= arcSteps; k++ {
		a := float32(gomath.Pi) * float32(k) / arcSteps
		nm = append(nm, math.Add2f(c2, rotate(offset, a)))
	}

	return util.MapSlice(nm, func(v [2]float32) math.Point2LL {
		return math.NM2LL(v, nmPerLongitude)
	})
}
