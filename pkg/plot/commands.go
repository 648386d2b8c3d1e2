// pkg/plot/commands.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package plot

import (
	"fmt"
	"strings"

	"github.com/19wintersp/route-plotter/pkg/nav"
	"github.com/19wintersp/route-plotter/pkg/util"
)

// CommandPrefix is accepted (and ignored) at the start of a command for
// muscle-memory compatibility with the radar-client command line.
const CommandPrefix = ".plot"

// ProcessCommand interprets one operator command against the store and
// navigation database. It returns informational messages to show the
// operator and whether the set of stored routes changed; an error is an
// urgent notice, and in that case the store is guaranteed untouched.
//
// Commands: "help"; "clear [NAME]..."; "<source> [NAME] <ARGS>" for each
// registered source; anything else is shorthand for "route ...".
func ProcessCommand(store *Store, db nav.Database, command string) (msgs []string, changed bool, err error) {
	fields := strings.Fields(command)
	if len(fields) > 0 && fields[0] == CommandPrefix {
		fields = fields[1:]
	}

	if len(fields) == 0 || fields[0] == "help" {
		return helpText(), false, nil
	}

	if fields[0] == "clear" {
		store.Clear(fields[1:]...)
		return nil, true, nil
	}

	source, ok := sources[fields[0]]
	offset := 1
	if !ok {
		source = sources["route"]
		offset = 0
	}

	name, route, err := source.Parse(fields[offset:], db)
	if err != nil {
		return nil, false, err
	}
	if name == "" {
		name = store.nextName()
	}

	// An empty route is meaningful ("nothing resolved") but is not
	// stored.
	if len(route) > 0 {
		store.Set(name, route)
		return nil, true, nil
	}
	return nil, false, nil
}

func helpText() []string {
	// Align the descriptions across all commands.
	kws := util.SortedMapKeys(sources)
	width := util.ReduceSlice(kws, func(kw string, width int) int {
		return max(width, len(kw)+len(sources[kw].HelpArguments())+len(" [NAME] "))
	}, len("clear [NAME]..."))

	cmd := func(command, help string) string {
		return fmt.Sprintf("  %s %-*s - %s", CommandPrefix, width, command, help)
	}

	msgs := []string{
		"Available commands:",
		cmd("help", "Display this help text"),
		cmd("clear [NAME]...", "Remove the named plot, or all plots"),
	}
	for _, kw := range kws {
		source := sources[kw]
		msgs = append(msgs, cmd(fmt.Sprintf("%s [NAME] %s", kw, source.HelpArguments()),
			source.HelpDescription()))
	}
	msgs = append(msgs, cmd("[NAME] <ROUTE>", "Shortcut for \""+CommandPrefix+" route [NAME] <ROUTE>\""))
	return msgs
}
