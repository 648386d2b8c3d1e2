// pkg/plot/route.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import (
	"fmt"

	"github.com/19wintersp/route-plotter/pkg/math"
)

// Hold describes a racetrack holding pattern at a route point.
type Hold struct {
	Length    float32 // leg length in nautical miles
	Course    float32 // inbound course, degrees
	LeftTurns bool
}

// Node is one point of a plotted route. A discontinuity Node has NaN for
// both latitude and longitude and carries no hold, highlight or label;
// lat and lon are never NaN individually.
type Node struct {
	Position  math.Point2LL
	Highlight bool
	Label     string
	Hold      *Hold
}

// Discontinuity returns the sentinel Node that breaks a route into
// separately drawn polylines.
func Discontinuity() Node {
	return Node{Position: math.Point2LL{math.NaN(), math.NaN()}}
}

func (n Node) IsDiscontinuity() bool {
	return n.Position.IsNaN()
}

func (n Node) String() string {
	if n.IsDiscontinuity() {
		return "(discontinuity)"
	}
	s := n.Position.DDString()
	if n.Label != "" {
		s += " " + n.Label
	}
	if n.Hold != nil {
		s += fmt.Sprintf(" hold %03.0f %s %.0fnm", n.Hold.Course,
			map[bool]string{true: "left", false: "right"}[n.Hold.LeftTurns], n.Hold.Length)
	}
	return s
}

// Route is an ordered sequence of Nodes, possibly interrupted by
// discontinuities. An empty Route means "nothing resolved" and should
// not be stored.
type Route []Node

// Polylines returns the maximal runs of consecutive non-discontinuity
// node positions; consumers draw each one as a connected polyline and
// never connect across the gaps between them.
func (r Route) Polylines() [][]math.Point2LL {
	var lines [][]math.Point2LL
	var current []math.Point2LL
	for _, n := range r {
		if n.IsDiscontinuity() {
			if len(current) > 0 {
				lines = append(lines, current)
				current = nil
			}
		} else {
			current = append(current, n.Position)
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
