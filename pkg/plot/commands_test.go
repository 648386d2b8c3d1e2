// pkg/plot/commands_test.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import (
	"errors"
	"testing"
)

func TestProcessCommandHelp(t *testing.T) {
	store := NewStore()
	for _, command := range []string{"help", "", ".plot help", ".plot"} {
		msgs, changed, err := ProcessCommand(store, testDB(), command)
		if err != nil || changed {
			t.Errorf("%q: err %v changed %v", command, err, changed)
		}
		if len(msgs) == 0 || msgs[0] != "Available commands:" {
			t.Errorf("%q: unexpected help %v", command, msgs)
		}
	}
}

func TestProcessCommandRoute(t *testing.T) {
	store := NewStore()

	// Unnamed plots get successive numeric names.
	_, changed, err := ProcessCommand(store, testDB(), "route WOD DCT OCK")
	if err != nil || !changed {
		t.Fatalf("err %v changed %v", err, changed)
	}
	if route, ok := store.Get("1"); !ok || len(route) != 2 {
		t.Errorf("stored route %v %v", route, ok)
	}

	// The route keyword is optional and the name comes from the tokens.
	_, changed, err = ProcessCommand(store, testDB(), "mine EGLL/27L DCT EGKK")
	if err != nil || !changed {
		t.Fatalf("err %v changed %v", err, changed)
	}
	if _, ok := store.Get("mine"); !ok {
		t.Errorf("named route not stored; have %d routes", store.Len())
	}

	// Replotting an existing name replaces it.
	_, _, err = ProcessCommand(store, testDB(), "route mine WOD L9 OCK")
	if err != nil {
		t.Fatal(err)
	}
	if route, _ := store.Get("mine"); len(route) != 3 {
		t.Errorf("replaced route %v", route)
	}
	if store.Len() != 2 {
		t.Errorf("store has %d routes, expected 2", store.Len())
	}
}

func TestProcessCommandCoords(t *testing.T) {
	store := NewStore()
	enc := encodeGroup(51, 28, 39, 0, 27, 41, false, true, false)
	_, changed, err := ProcessCommand(store, testDB(), "coords "+enc)
	if err != nil || !changed {
		t.Fatalf("err %v changed %v", err, changed)
	}
	if route, ok := store.Get("1"); !ok || len(route) != 1 {
		t.Errorf("stored route %v %v", route, ok)
	}
}

func TestProcessCommandClear(t *testing.T) {
	store := NewStore()
	for _, command := range []string{"a WOD", "b OCK", "c BPK"} {
		if _, _, err := ProcessCommand(store, testDB(), command); err != nil {
			t.Fatal(err)
		}
	}

	_, changed, err := ProcessCommand(store, testDB(), "clear b")
	if err != nil || !changed {
		t.Fatalf("err %v changed %v", err, changed)
	}
	if _, ok := store.Get("b"); ok || store.Len() != 2 {
		t.Errorf("clear b left %d routes", store.Len())
	}

	if _, _, err := ProcessCommand(store, testDB(), ".plot clear"); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 0 {
		t.Errorf("clear left %d routes", store.Len())
	}
}

func TestProcessCommandError(t *testing.T) {
	store := NewStore()
	if _, _, err := ProcessCommand(store, testDB(), "route WOD DCT OCK"); err != nil {
		t.Fatal(err)
	}

	// A failed plot leaves the store untouched.
	msgs, changed, err := ProcessCommand(store, testDB(), "route XXXXX")
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	if changed || len(msgs) != 0 {
		t.Errorf("changed %v msgs %v on error", changed, msgs)
	}
	if store.Len() != 1 {
		t.Errorf("store has %d routes after failed plot", store.Len())
	}
}

func TestStoreAllOrdered(t *testing.T) {
	store := NewStore()
	store.Set("b", Route{{}})
	store.Set("a", Route{{}})
	store.Set("c", Route{{}})

	var names []string
	for name := range store.All() {
		names = append(names, name)
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("enumeration order %v", names)
	}
}
