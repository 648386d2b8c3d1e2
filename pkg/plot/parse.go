// pkg/plot/parse.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/19wintersp/route-plotter/pkg/math"
	"github.com/19wintersp/route-plotter/pkg/util"
)

// routePoint is one classified point token of a route description. pos
// is NaN until the point is resolved, either here from a coordinate
// literal or later by the database scan.
type routePoint struct {
	name   string
	runway string
	hold   *Hold
	pos    math.Point2LL
}

// tokenizeRoute splits a route description into its explicit name (if
// any), classified points, and the connectors between them. Tokens
// alternate point, connector, ..., point, so a well-formed description
// has an odd number of tokens; an even count means the first token names
// the route. A connector is "" for DCT and otherwise names an airway or
// procedure.
func tokenizeRoute(args []string) (name string, points []routePoint, connectors []string, err error) {
	if len(args) == 0 {
		return "", nil, nil, fmt.Errorf("missing route: %w", ErrMalformedInput)
	}
	if len(args)%2 == 0 {
		name = args[0]
		args = args[1:]
	}

	for i, token := range args {
		if i%2 == 1 {
			if token == "DCT" {
				connectors = append(connectors, "")
			} else {
				connectors = append(connectors, token)
			}
			continue
		}

		pt, err := classifyPoint(token, i == 0 || i == len(args)-1)
		if err != nil {
			return "", nil, nil, err
		}
		points = append(points, pt)
	}

	return name, points, connectors, nil
}

// classifyPoint classifies a single point token. A '/' suffix longer
// than three characters commits to the hold grammar (three digit course,
// L or R, optional leg length); a shorter suffix is a runway designator,
// legal only on the first or last point. A name that starts with a digit
// gets a try at parsing as a coordinate literal, falling through to
// database lookup if that fails.
func classifyPoint(token string, terminal bool) (routePoint, error) {
	pt := routePoint{pos: math.Point2LL{math.NaN(), math.NaN()}}

	name, suffix, slash := strings.Cut(token, "/")
	pt.name = name

	if slash {
		if len(suffix) > 3 {
			if !util.IsAllNumbers(suffix[:3]) {
				return pt, fmt.Errorf("invalid integer %q: %w", suffix[:3], ErrMalformedInput)
			}
			course, _ := strconv.Atoi(suffix[:3])

			length := 4
			switch suffix[3] {
			case 'L', 'l':
				pt.hold = &Hold{Course: float32(course), LeftTurns: true}
			case 'R', 'r':
				pt.hold = &Hold{Course: float32(course)}
			default:
				return pt, fmt.Errorf("invalid hold direction %q: %w", suffix[3:4], ErrInvalidRoute)
			}

			if len(suffix) > 4 {
				if !util.IsAllNumbers(suffix[4:]) {
					return pt, fmt.Errorf("invalid integer %q: %w", suffix[4:], ErrMalformedInput)
				}
				length, _ = strconv.Atoi(suffix[4:])
			}
			if length == 0 {
				// An explicit zero length means no hold at all.
				pt.hold = nil
			} else {
				pt.hold.Length = float32(length)
			}
		} else if terminal {
			pt.runway = suffix
		} else {
			return pt, fmt.Errorf("runway in nonterminal location: %w", ErrInvalidRoute)
		}
	}

	if len(pt.name) > 0 && pt.name[0] >= '0' && pt.name[0] <= '9' {
		if pos, ok := parseCoordinate(pt.name); ok {
			pt.pos = pos
		}
	}

	return pt, nil
}

// parseCoordinate parses a strict coordinate literal of the form
// DD[MM[SS]] N|S DDD[MM[SS]] E|W, e.g. "5130N00045W". The digit groups
// are variable width: trailing two-digit groups are minutes and then
// seconds. The whole token must be consumed; anything else fails, which
// is not an error since the name may yet match a database point.
func parseCoordinate(s string) (math.Point2LL, bool) {
	scan := func(i int) (uint64, int) {
		var v uint64
		n := 0
		for ; i+n < len(s) && s[i+n] >= '0' && s[i+n] <= '9'; n++ {
			v = 10*v + uint64(s[i+n]-'0')
		}
		return v, n
	}

	// Peel two-digit minutes and seconds groups off the end of the
	// number; whatever is left over is whole degrees.
	degrees := func(v uint64, digits int) float32 {
		var d float64
		for k := digits / 2; k > 1; k-- {
			d += float64(v % 100)
			d /= 60
			v /= 100
		}
		return float32(d + float64(v))
	}

	latVal, latDigits := scan(0)
	i := latDigits
	if latDigits == 0 || i >= len(s) || (s[i] != 'N' && s[i] != 'S') {
		return math.Point2LL{}, false
	}
	south := s[i] == 'S'
	i++

	lonVal, lonDigits := scan(i)
	i += lonDigits
	if lonDigits == 0 || i != len(s)-1 || (s[i] != 'E' && s[i] != 'W') {
		return math.Point2LL{}, false
	}
	west := s[i] == 'W'

	lat, lon := degrees(latVal, latDigits), degrees(lonVal, lonDigits)
	if south {
		lat = -lat
	}
	if west {
		lon = -lon
	}
	return math.Point2LL{lon, lat}, true
}
