// pkg/plot/store.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import (
	"iter"
	"strconv"

	"github.com/19wintersp/route-plotter/pkg/util"
)

// Store holds the currently plotted routes by name. Plotting to an
// existing name replaces that route; unnamed plots get successive
// numeric names. The Store lives only as long as the process; routes
// are never persisted.
type Store struct {
	routes      map[string]Route
	nameCounter int
}

func NewStore() *Store {
	return &Store{routes: make(map[string]Route)}
}

func (s *Store) nextName() string {
	s.nameCounter++
	return strconv.Itoa(s.nameCounter)
}

// Set stores the route under the given name. Empty routes must not be
// stored; the caller checks.
func (s *Store) Set(name string, route Route) {
	s.routes[name] = route
}

func (s *Store) Get(name string) (Route, bool) {
	r, ok := s.routes[name]
	return r, ok
}

// Clear removes the named routes, or all routes if no names are given.
func (s *Store) Clear(names ...string) {
	if len(names) == 0 {
		clear(s.routes)
	} else {
		for _, n := range names {
			delete(s.routes, n)
		}
	}
}

func (s *Store) Len() int {
	return len(s.routes)
}

// All returns the stored routes ordered by name, so that consumers draw
// them deterministically.
func (s *Store) All() iter.Seq2[string, Route] {
	return func(yield func(string, Route) bool) {
		for _, name := range util.SortedMapKeys(s.routes) {
			if !yield(name, s.routes[name]) {
				return
			}
		}
	}
}
