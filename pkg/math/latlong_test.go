// pkg/math/latlong_test.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"strings"
	"testing"
)

func TestParseDMS(t *testing.T) {
	for _, c := range []struct {
		s    string
		want float32
	}{
		{"N051.28.39.000", 51 + 28.0/60 + 39.0/3600},
		{"W000.27.41.000", -(27.0/60 + 41.0/3600)},
		{"E151.10.38.000", 151 + 10.0/60 + 38.0/3600},
		{"S033.56.46.000", -(33 + 56.0/60 + 46.0/3600)},
		{"N051.28.39", 51 + 28.0/60 + 39.0/3600}, // fractional seconds optional
		{"N051.28.39.5", 51 + 28.0/60 + 39.5/3600},
		{"N051.28.39.500", 51 + 28.0/60 + 39.5/3600},
		{"n051.28.39.000", 51 + 28.0/60 + 39.0/3600}, // lowercase hemisphere
		{"N051", 51},
		{"N051.30", 51.5},
	} {
		v, err := ParseDMS(c.s)
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.s, err)
			continue
		}
		if Abs(v-c.want) > 1e-5 {
			t.Errorf("%q: got %v, expected %v", c.s, v, c.want)
		}
	}

	for _, s := range []string{"", "051.28.39.000", "N", "N051.", "N051.28.39.000.1",
		"N051.28.39.000X", "N05x.28.39"} {
		if v, err := ParseDMS(s); err == nil {
			t.Errorf("%q: expected error, got %v", s, v)
		}
	}
}

func TestParseLatLong(t *testing.T) {
	p, err := ParseLatLong("N051.28.39.000", "W000.27.41.000")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if Abs(p.Latitude()-51.4775) > 1e-4 || Abs(p.Longitude()-(-0.46139)) > 1e-4 {
		t.Errorf("got %v", p)
	}

	// Swapped components must be rejected even though they parse.
	if p, err := ParseLatLong("W000.27.41.000", "N051.28.39.000"); err == nil {
		t.Errorf("swapped components: expected error, got %v", p)
	}
}

func TestDMSStringRoundTrip(t *testing.T) {
	for _, p := range []Point2LL{
		{-0.4614, 51.4775},
		{151.1772, -33.9461},
		{-73.7789, 40.6397},
	} {
		s := p.DMSString()
		lat, long, ok := strings.Cut(s, ",")
		if !ok {
			t.Fatalf("%v: bad DMS string %q", p, s)
		}
		q, err := ParseLatLong(lat, long)
		if err != nil {
			t.Errorf("%q: unexpected error %v", s, err)
			continue
		}
		if NMDistance2LL(p, q) > 0.01 {
			t.Errorf("%v formats as %q which parses back to %v", p, s, q)
		}
	}
}

func TestNMConversions(t *testing.T) {
	const nmPerLongitude = 38

	p := Point2LL{-0.4614, 51.4775}
	q := NM2LL(LL2NM(p, nmPerLongitude), nmPerLongitude)
	if Abs(p[0]-q[0]) > 1e-5 || Abs(p[1]-q[1]) > 1e-5 {
		t.Errorf("round trip %v -> %v", p, q)
	}

	// One degree of latitude is sixty nautical miles.
	a, b := Point2LL{0, 51}, Point2LL{0, 52}
	if d := NMDistance2LL(a, b); Abs(d-60) > 0.2 {
		t.Errorf("one degree of latitude is %v nm", d)
	}

	// Offsetting north by 60 nm moves one degree of latitude.
	o := Offset2LL(a, 0, 60, nmPerLongitude)
	if Abs(o.Latitude()-52) > 1e-3 || Abs(o.Longitude()) > 1e-5 {
		t.Errorf("offset north gives %v", o)
	}
}
