// pkg/plot/source.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import "github.com/19wintersp/route-plotter/pkg/nav"

// A Source turns command arguments into a named Route. The set of
// sources is closed: routes come either from the legacy coordinate
// encoding or from the flight-plan route grammar, with the latter as
// the fallback for unrecognized command keywords.
type Source interface {
	HelpArguments() string
	HelpDescription() string
	Parse(args []string, db nav.Database) (name string, route Route, err error)
}

type coordsSource struct{}

func (coordsSource) HelpArguments() string { return "<STRING>" }
func (coordsSource) HelpDescription() string {
	return "Plot a string of coordinates, encoded in the legacy format"
}

func (coordsSource) Parse(args []string, _ nav.Database) (string, Route, error) {
	return DecodeCoords(args)
}

type routeSource struct{}

func (routeSource) HelpArguments() string { return "<ROUTE>" }
func (routeSource) HelpDescription() string {
	return "Plot a flight plan route"
}

func (routeSource) Parse(args []string, db nav.Database) (string, Route, error) {
	return ResolveRoute(args, db)
}

var sources = map[string]Source{
	"coords": coordsSource{},
	"route":  routeSource{},
}
