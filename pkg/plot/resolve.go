// pkg/plot/resolve.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import (
	"fmt"
	"slices"

	"github.com/19wintersp/route-plotter/pkg/math"
	"github.com/19wintersp/route-plotter/pkg/nav"
	"github.com/19wintersp/route-plotter/pkg/util"
)

// ResolveRoute parses a route description given as whitespace-split
// tokens and resolves it against the navigation database into a Route.
// Resolution is atomic: any failure discards the whole in-progress
// route. The database is scanned exactly once and nothing from it is
// retained afterward.
func ResolveRoute(args []string, db nav.Database) (string, Route, error) {
	name, points, connectors, err := tokenizeRoute(args)
	if err != nil {
		return "", nil, err
	}

	sid, star, airways := scanDatabase(points, connectors, db)

	route, err := stitch(points, connectors, sid, star, airways)
	if err != nil {
		return "", nil, err
	}
	return name, route, nil
}

// scanDatabase makes the single pass over the navigation database,
// filling in resolved positions for the points and accumulating the
// geometry of any SID, STAR and airways the connectors name. Point
// order is irrelevant to the scan; a later database entry with the same
// name overwrites an earlier one, so enumeration order decides
// duplicates.
func scanDatabase(points []routePoint, connectors []string, db nav.Database) (sid, star []math.Point2LL, airways map[string][]math.Point2LL) {
	first, last := 0, len(points)-1

	airways = make(map[string][]math.Point2LL)
	for _, c := range connectors {
		if c != "" {
			airways[c] = nil
		}
	}

	for el := range db.Elements() {
		switch el.Type {
		case nav.Airport:
			// An airport resolves the departure or destination point if
			// no runway constrains it, and also resolves any interior
			// point that names it.
			for i := range points {
				if points[i].name != el.Name {
					continue
				}
				if (i != first && i != last) || points[i].runway == "" {
					points[i].pos = el.Position()
				}
			}

		case nav.VOR, nav.NDB, nav.Fix:
			for i := range points {
				if points[i].name == el.Name {
					points[i].pos = el.Position()
				}
			}

		case nav.Runway:
			// A runway suffix on the departure or destination point
			// selects that runway end's threshold; the point's name is
			// matched against the runway's airport by its first four
			// characters.
			for _, i := range []int{first, last} {
				pt := &points[i]
				if pt.runway == "" || len(pt.name) < 4 || len(el.Airport) < 4 ||
					pt.name[:4] != el.Airport[:4] {
					continue
				}
				for end := 0; end < 2 && end < len(el.Positions); end++ {
					if el.Runways[end] == pt.runway {
						pt.pos = el.Positions[end]
					}
				}
			}

		case nav.SID:
			// The SID is anchored at the first point and the connector
			// following it; first match wins. A DCT connector is ""
			// and so never matches a procedure name.
			if len(connectors) > 0 && sid == nil &&
				points[first].name == el.Airport &&
				(points[first].runway == "" || points[first].runway == el.Runways[0]) &&
				connectors[0] == el.Name {
				sid = util.DuplicateSlice(el.Positions)
			}

		case nav.STAR:
			if len(connectors) > 0 && star == nil &&
				points[last].name == el.Airport &&
				(points[last].runway == "" || points[last].runway == el.Runways[0]) &&
				connectors[len(connectors)-1] == el.Name {
				star = util.DuplicateSlice(el.Positions)
			}

		case nav.LowAirway, nav.HighAirway:
			if acc, ok := airways[el.Name]; ok {
				for _, pos := range el.Positions {
					// Sector files repeat segment endpoints; drop a
					// position equal to the last one accumulated.
					if len(acc) == 0 || pos != acc[len(acc)-1] {
						acc = append(acc, pos)
					}
				}
				airways[el.Name] = acc
			}
		}
	}

	if star != nil {
		// The destination airport is an implicit final waypoint of the
		// STAR.
		star = append(star, points[last].pos)
	}
	return
}

// stitch walks the points in order and emits the final node sequence,
// splicing in the directionally correct interior slice of each named
// connector's geometry.
func stitch(points []routePoint, connectors []string, sid, star []math.Point2LL, airways map[string][]math.Point2LL) (Route, error) {
	var route Route
	var segStart math.Point2LL

	for i, pt := range points {
		segEnd := pt.pos
		if segEnd.IsNaN() {
			return nil, fmt.Errorf("could not find point %q: %w", pt.name, ErrUnresolved)
		}

		if i > 0 && connectors[i-1] != "" {
			var geom []math.Point2LL
			var isSID, isSTAR bool

			switch {
			case i == 1 && sid != nil:
				geom, isSID = sid, true
			case i == len(points)-1 && star != nil:
				geom, isSTAR = star, true
			default:
				geom = airways[connectors[i-1]]
				if len(geom) == 0 {
					return nil, fmt.Errorf("could not find airway %q: %w",
						connectors[i-1], ErrUnresolved)
				}
			}

			// The slice to splice runs from the previous segment
			// endpoint to this one, located by position equality; a SID
			// starts at its own first element and a STAR ends at its
			// last (the appended destination airport).
			from := 0
			if !isSID {
				if from = slices.Index(geom, segStart); from == -1 {
					return nil, fmt.Errorf("discontinuity (%s to %s): %w",
						points[i-1].name, connectors[i-1], ErrDiscontinuous)
				}
			}
			to := len(geom) - 1
			if !isSTAR {
				if to = slices.Index(geom, segEnd); to == -1 {
					return nil, fmt.Errorf("discontinuity (%s to %s): %w",
						connectors[i-1], pt.name, ErrDiscontinuous)
				}
			}

			// Interior positions only: both endpoints are excluded, in
			// either direction of travel along the geometry.
			if from < to {
				for j := from + 1; j < to; j++ {
					route = append(route, Node{Position: geom[j]})
				}
			} else {
				for j := from - 1; j > to; j-- {
					route = append(route, Node{Position: geom[j]})
				}
			}
		}

		node := Node{Position: segEnd, Hold: pt.hold}
		// Coordinate-shaped names make noisy labels; leave those nodes
		// unlabeled.
		if len(pt.name) > 0 && (pt.name[0] < '0' || pt.name[0] > '9') {
			node.Label = pt.name
		}
		route = append(route, node)

		segStart = segEnd
	}

	return route, nil
}
