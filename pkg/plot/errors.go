// pkg/plot/errors.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import "errors"

// Broad classes of failure; every error returned from decoding or
// resolution wraps exactly one of these, so callers can distinguish them
// with errors.Is while still getting a message that names the offending
// token.
var (
	// ErrMalformedInput covers lexical problems: a bad character, a
	// truncated symbol group, an unmatched label bracket, a bad integer.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidRoute covers well-formed input that doesn't make sense:
	// a runway suffix on an interior point, a bad hold direction letter.
	ErrInvalidRoute = errors.New("invalid route")

	// ErrUnresolved indicates a point, airway or procedure name that the
	// navigation database doesn't know.
	ErrUnresolved = errors.New("unresolved name")

	// ErrDiscontinuous indicates that a segment boundary wasn't found
	// within a named airway or procedure geometry.
	ErrDiscontinuous = errors.New("discontinuous route")
)
