// pkg/plot/coords.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import (
	"fmt"
	"strings"

	"github.com/19wintersp/route-plotter/pkg/math"
	"github.com/19wintersp/route-plotter/pkg/util"
)

// The legacy coordinate format packs each point into seven symbols of a
// base-62 alphabet. Symbol 0 holds flag bits, symbols 1-3 the latitude
// degrees/minutes/seconds and symbols 4-6 the longitude. Flag bit 0
// announces one or two extension symbols carrying a highlight mark or a
// hold; '-' inserts a discontinuity, '(text)' attaches a label to the
// point just decoded, and a leading '@' is skipped.

// decodeSymbol maps A-Z to 0-25, a-z to 26-51 and 0-9 to 52-61;
// everything else returns -1.
func decodeSymbol(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return 26 + int(c-'a')
	case c >= '0' && c <= '9':
		return 52 + int(c-'0')
	}
	return -1
}

// DecodeCoords decodes a legacy-format coordinate string into a Route.
// If more than one argument is given and the first contains no '(', the
// first argument names the route. No partial Route is returned: the
// first bad character aborts the whole decode.
func DecodeCoords(args []string) (string, Route, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("missing string: %w", ErrMalformedInput)
	}

	var name string
	if len(args) > 1 && !strings.Contains(args[0], "(") {
		name = args[0]
		args = args[1:]
	}
	body := strings.Join(args, " ")

	if strings.HasPrefix(body, "@") {
		body = body[1:]
	}
	if body == "" {
		return "", nil, fmt.Errorf("missing string: %w", ErrMalformedInput)
	}

	var route Route
	for i := 0; i < len(body); {
		switch c := body[i]; {
		case c == '(':
			if len(route) == 0 {
				return "", nil, fmt.Errorf("label before any point: %w", ErrMalformedInput)
			}
			depth := 1
			j := i + 1
			for ; j < len(body) && depth > 0; j++ {
				switch body[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
			}
			if depth > 0 {
				return "", nil, fmt.Errorf("missing closing bracket: %w", ErrMalformedInput)
			}
			// j is just past the matching ')'; the label is attached
			// verbatim, inner brackets included. A discontinuity never
			// carries a label, so one following '-' is consumed and
			// dropped.
			if last := &route[len(route)-1]; !last.IsDiscontinuity() {
				last.Label = body[i+1 : j-1]
			}
			i = j

		case c == '-':
			route = append(route, Discontinuity())
			i++

		case decodeSymbol(c) >= 0:
			var w [7]int
			for k := 0; k < 7; k++ {
				if i+k >= len(body) || decodeSymbol(body[i+k]) < 0 {
					return "", nil, fmt.Errorf("invalid character: %w", ErrMalformedInput)
				}
				w[k] = decodeSymbol(body[i+k])
			}
			i += 7

			lat := float32(w[1]) + (float32(w[2])+float32(w[3])/60)/60
			lon := float32(w[4]) + (float32(w[5])+float32(w[6])/60)/60

			lat += 60 * float32((w[0]>>2)&0b01)
			lon += 60 * float32((w[0]>>4)&0b11)

			if w[0]&0b0010 != 0 {
				lat = -lat
			}
			if w[0]&0b1000 != 0 {
				lon = -lon
			}

			node := Node{Position: math.Point2LL{lon, lat}}

			if w[0]&1 != 0 {
				if i == len(body) || decodeSymbol(body[i]) < 0 {
					return "", nil, fmt.Errorf("invalid character: %w", ErrMalformedInput)
				}
				extra1 := decodeSymbol(body[i])
				i++

				if extra1 >= 60 {
					node.Highlight = true
				} else {
					if i == len(body) || decodeSymbol(body[i]) < 0 {
						return "", nil, fmt.Errorf("invalid character: %w", ErrMalformedInput)
					}
					extra2 := decodeSymbol(body[i])
					i++

					// A zero length field still yields a Hold; drawing
					// degenerate holds is the consumer's problem.
					node.Hold = &Hold{
						Length:    float32(extra2 & 0b1111),
						Course:    6*float32(extra1) + util.Select(extra2>>5 != 0, float32(3), 0),
						LeftTurns: (extra2>>4)&1 == 1,
					}
				}
			}

			route = append(route, node)

		default:
			return "", nil, fmt.Errorf("invalid structural character: %w", ErrMalformedInput)
		}
	}

	return name, route, nil
}
