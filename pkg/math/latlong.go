// pkg/math/latlong.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

const NMPerLatitude = 60

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude
type Point2LL [2]float32

func (p Point2LL) Longitude() float32 {
	return p[0]
}

func (p Point2LL) Latitude() float32 {
	return p[1]
}

// DDString returns the position in decimal degrees, e.g.:
// (51.477500, -0.461389)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

// DMSString returns the position in degrees minutes, seconds, e.g.
// N051.28.39.000,W000.27.41.000
func (p Point2LL) DMSString() string {
	format := func(v float32) string {
		s := fmt.Sprintf("%03d", int(v))
		v -= Floor(v)
		v *= 60
		s += fmt.Sprintf(".%02d", int(v))
		v -= Floor(v)
		v *= 60
		s += fmt.Sprintf(".%02d", int(v))
		v -= Floor(v)
		v *= 1000
		s += fmt.Sprintf(".%03d", int(v))
		return s
	}

	var s string
	if p[1] > 0 {
		s = "N"
	} else {
		s = "S"
	}
	s += format(Abs(p[1]))

	if p[0] > 0 {
		s += ",E"
	} else {
		s += ",W"
	}
	s += format(Abs(p[0]))

	return s
}

// ParseDMS parses a single coordinate component of the dotted form used
// in sector files, e.g. "N051.28.39.000" or "W000.27.41.000". The
// hemisphere letter is required; fractional seconds are optional, so
// "N051.28.39" also parses. It is written by hand rather than with a
// regexp since sector files contain tens of thousands of these.
func ParseDMS(s string) (float32, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty coordinate")
	}

	var negate bool
	switch s[0] {
	case 'N', 'E', 'n', 'e':
	case 'S', 'W', 's', 'w':
		negate = true
	default:
		return 0, fmt.Errorf("%s: invalid hemisphere letter", s)
	}

	b := s[1:]
	// Scan off the leading digits of b, returning the value and the
	// number of digits consumed.
	scan := func() (value, n int) {
		for ; n < len(b) && b[n] >= '0' && b[n] <= '9'; n++ {
			value = 10*value + int(b[n]-'0')
		}
		return
	}

	var v float64
	scales := [4]float64{1, 60, 3600, 3600}
	for i := 0; i < 4; i++ {
		group, n := scan()
		if n == 0 {
			return 0, fmt.Errorf("%s: invalid DMS coordinate", s)
		}
		if i == 3 {
			// The final group is a decimal fraction of the seconds, so
			// that N51.28.39.1 is handled like N51.28.39.100.
			frac := float64(group)
			for d := 0; d < n; d++ {
				frac /= 10
			}
			v += frac / scales[i]
		} else {
			v += float64(group) / scales[i]
		}
		b = b[n:]

		if len(b) == 0 {
			break
		}
		if b[0] != '.' || i == 3 {
			return 0, fmt.Errorf("%s: invalid DMS coordinate", s)
		}
		b = b[1:]
	}
	if len(b) > 0 {
		return 0, fmt.Errorf("%s: invalid DMS coordinate", s)
	}

	if negate {
		v = -v
	}
	return float32(v), nil
}

// ParseLatLong parses a latitude-longitude pair given as two dotted DMS
// components, e.g. ("N051.28.39.000", "W000.27.41.000").
func ParseLatLong(lat, long string) (Point2LL, error) {
	la, err := ParseDMS(lat)
	if err != nil {
		return Point2LL{}, err
	}
	if lat[0] != 'N' && lat[0] != 'S' && lat[0] != 'n' && lat[0] != 's' {
		return Point2LL{}, fmt.Errorf("%s: not a latitude", lat)
	}
	lo, err := ParseDMS(long)
	if err != nil {
		return Point2LL{}, err
	}
	if long[0] != 'E' && long[0] != 'W' && long[0] != 'e' && long[0] != 'w' {
		return Point2LL{}, fmt.Errorf("%s: not a longitude", long)
	}
	return Point2LL{lo, la}, nil
}

func (p Point2LL) IsZero() bool {
	return p[0] == 0 && p[1] == 0
}

func (p Point2LL) IsNaN() bool {
	return IsNaN(p[0]) || IsNaN(p[1])
}

// NMDistance2LL returns the distance in nautical miles between two
// provided lat-long coordinates.
func NMDistance2LL(a Point2LL, b Point2LL) float32 {
	// https://www.movable-type.co.uk/scripts/latlong.html
	const R = 6371000 // metres
	rad := func(d float64) float64 { return float64(d) / 180 * gomath.Pi }
	lat1, lon1 := rad(float64(a[1])), rad(float64(a[0]))
	lat2, lon2 := rad(float64(b[1])), rad(float64(b[0]))
	dlat, dlon := lat2-lat1, lon2-lon1

	x := Sqr(gomath.Sin(dlat/2)) + gomath.Cos(lat1)*gomath.Cos(lat2)*Sqr(gomath.Sin(dlon/2))
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))
	dm := R * c // in metres

	return float32(dm * 0.000539957)
}

// NM2LL converts a point expressed in nautical mile coordinates to
// lat-long.
func NM2LL(p [2]float32, nmPerLongitude float32) Point2LL {
	return Point2LL{p[0] / nmPerLongitude, p[1] / NMPerLatitude}
}

// LL2NM converts a point expressed in latitude-longitude coordinates to
// nautical mile coordinates; this is useful for example for reasoning
// about distances, since both axes then have the same measure.
func LL2NM(p Point2LL, nmPerLongitude float32) [2]float32 {
	return [2]float32{p[0] * nmPerLongitude, p[1] * NMPerLatitude}
}

// Offset2LL returns the point at distance dist along the vector with heading hdg from
// the given point. It assumes a (locally) flat earth.
func Offset2LL(pll Point2LL, hdg float32, dist float32, nmPerLongitude float32) Point2LL {
	p := LL2NM(pll, nmPerLongitude)
	h := Radians(hdg)
	v := [2]float32{Sin(h), Cos(h)}
	v = Scale2f(v, dist)
	p = Add2f(p, v)
	return NM2LL(p, nmPerLongitude)
}
