// pkg/plot/parse_test.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import (
	"errors"
	"slices"
	"testing"

	"github.com/19wintersp/route-plotter/pkg/math"
)

func TestTokenizeRoute(t *testing.T) {
	// Odd token count: no name; even: the first token is the name.
	name, points, connectors, err := tokenizeRoute([]string{"WOD", "L9", "OCK"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if name != "" {
		t.Errorf("name %q, expected none", name)
	}
	if len(points) != 2 || points[0].name != "WOD" || points[1].name != "OCK" {
		t.Errorf("points %+v", points)
	}
	if !slices.Equal(connectors, []string{"L9"}) {
		t.Errorf("connectors %v", connectors)
	}

	name, points, connectors, err = tokenizeRoute([]string{"myplot", "WOD", "DCT", "OCK"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if name != "myplot" {
		t.Errorf("name %q, expected myplot", name)
	}
	if len(points) != 2 || !slices.Equal(connectors, []string{""}) {
		t.Errorf("points %+v connectors %v", points, connectors)
	}

	if _, _, _, err := tokenizeRoute(nil); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("empty route: expected ErrMalformedInput, got %v", err)
	}
}

func TestClassifyPoint(t *testing.T) {
	for _, c := range []struct {
		token    string
		terminal bool
		name     string
		runway   string
		hold     *Hold
	}{
		{"WOD", false, "WOD", "", nil},
		{"EGLL/27L", true, "EGLL", "27L", nil},
		{"WOD/090L3", false, "WOD", "", &Hold{Length: 3, Course: 90, LeftTurns: true}},
		{"WOD/090R", false, "WOD", "", &Hold{Length: 4, Course: 90}}, // default length
		{"WOD/270l10", false, "WOD", "", &Hold{Length: 10, Course: 270, LeftTurns: true}},
		{"WOD/090R0", false, "WOD", "", nil}, // explicit zero length: no hold
	} {
		pt, err := classifyPoint(c.token, c.terminal)
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.token, err)
			continue
		}
		if pt.name != c.name || pt.runway != c.runway {
			t.Errorf("%q: got name %q runway %q", c.token, pt.name, pt.runway)
		}
		if (pt.hold == nil) != (c.hold == nil) || (pt.hold != nil && *pt.hold != *c.hold) {
			t.Errorf("%q: hold %+v, expected %+v", c.token, pt.hold, c.hold)
		}
		if !pt.pos.IsNaN() {
			t.Errorf("%q: expected unresolved position, got %v", c.token, pt.pos)
		}
	}

	if _, err := classifyPoint("WOD/27", false); !errors.Is(err, ErrInvalidRoute) {
		t.Errorf("nonterminal runway: expected ErrInvalidRoute, got %v", err)
	}
	if _, err := classifyPoint("WOD/090X3", false); !errors.Is(err, ErrInvalidRoute) {
		t.Errorf("bad hold direction: expected ErrInvalidRoute, got %v", err)
	}
	if _, err := classifyPoint("WOD/abcL", false); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("bad hold course: expected ErrMalformedInput, got %v", err)
	}
	if _, err := classifyPoint("WOD/-90L3", false); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("signed hold course: expected ErrMalformedInput, got %v", err)
	}
	if _, err := classifyPoint("WOD/090L+5", false); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("signed hold length: expected ErrMalformedInput, got %v", err)
	}
}

func TestParseCoordinate(t *testing.T) {
	for _, c := range []struct {
		s    string
		want math.Point2LL
		ok   bool
	}{
		{"51N000W", math.Point2LL{0, 51}, true},
		{"5130N00045W", math.Point2LL{-0.75, 51.5}, true},
		{"513000N0004500E", math.Point2LL{0.75, 51.5}, true},
		{"5130S00045W", math.Point2LL{-0.75, -51.5}, true},
		{"510030N0000030E", math.Point2LL{30.0 / 3600, 51 + 30.0/3600}, true},
		{"51N", math.Point2LL{}, false},         // no longitude
		{"5130N00045", math.Point2LL{}, false},  // no hemisphere letter
		{"5130N00045WX", math.Point2LL{}, false}, // trailing junk
		{"N00045W", math.Point2LL{}, false},     // no latitude digits
		{"5130X00045W", math.Point2LL{}, false}, // bad hemisphere letter
	} {
		pos, ok := parseCoordinate(c.s)
		if ok != c.ok {
			t.Errorf("%q: ok %v, expected %v", c.s, ok, c.ok)
			continue
		}
		if ok && (math.Abs(pos[0]-c.want[0]) > 1e-5 || math.Abs(pos[1]-c.want[1]) > 1e-5) {
			t.Errorf("%q: got %v, expected %v", c.s, pos, c.want)
		}
	}
}
