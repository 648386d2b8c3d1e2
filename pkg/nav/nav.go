// pkg/nav/nav.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"iter"
	"slices"

	"github.com/19wintersp/route-plotter/pkg/math"
)

// ElementType tags the kinds of navigation entities that a Database
// enumerates. The set is closed; it mirrors what sector files can
// describe.
type ElementType int

const (
	Fix ElementType = iota
	VOR
	NDB
	Airport
	Runway
	LowAirway
	HighAirway
	SID
	STAR
)

func (t ElementType) String() string {
	return [...]string{"fix", "VOR", "NDB", "airport", "runway",
		"low airway", "high airway", "SID", "STAR"}[t]
}

// Element is one navigation entity. Fixes, VORs, NDBs and airports carry
// a single position; runways carry up to two threshold positions, with
// the identifiers of the two ends in Runways; airways and procedures
// carry an ordered list of positions. SIDs and STARs name their owning
// airport and, optionally, a runway in Runways[0].
type Element struct {
	Type      ElementType
	Name      string
	Airport   string
	Runways   [2]string
	Positions []math.Point2LL
}

// Position returns the element's primary position: the fix/VOR/NDB
// position or the airport reference point.
func (el Element) Position() math.Point2LL {
	if len(el.Positions) == 0 {
		return math.Point2LL{math.NaN(), math.NaN()}
	}
	return el.Positions[0]
}

// Database is the read-only navigation data consumed by route
// resolution. Resolution scans the full enumeration exactly once per
// call and retains nothing afterward, so implementations are free to
// mutate their contents between calls.
type Database interface {
	Elements() iter.Seq[Element]
}

// SliceDatabase is a trivial Database backed by a slice of elements,
// enumerated in order.
type SliceDatabase []Element

func (s SliceDatabase) Elements() iter.Seq[Element] {
	return slices.Values(s)
}
