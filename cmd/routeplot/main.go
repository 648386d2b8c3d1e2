// cmd/routeplot/main.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// routeplot is a terminal radar display for plotted routes: it loads a
// sector file, then takes plot commands on a command line and draws the
// stored routes in a pannable, zoomable lat-long viewport.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/19wintersp/route-plotter/pkg/log"
	"github.com/19wintersp/route-plotter/pkg/math"
	"github.com/19wintersp/route-plotter/pkg/nav"
	"github.com/19wintersp/route-plotter/pkg/plot"
	"github.com/19wintersp/route-plotter/pkg/util"

	"github.com/gdamore/tcell/v2"
)

// AppState holds the runtime state of the application.
type AppState struct {
	screen tcell.Screen
	sector *nav.SectorFile
	store  *plot.Store
	lg     *log.Logger

	center  math.Point2LL // viewport centre
	nmPerCh float32       // nautical miles per character column

	command   string // command being typed, "" if none
	messages  []string
	urgent    bool
	statusMsg string
}

func main() {
	sectorFile := flag.String("sector", "", "sector file (.sct/.sct2, optionally .zst) to load")
	logLevel := flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir := flag.String("logdir", "", "log directory (defaults to user config dir)")
	flag.Parse()

	if *sectorFile == "" {
		fmt.Fprintln(os.Stderr, "usage: routeplot -sector <file.sct>")
		os.Exit(1)
	}

	lg := log.New(*logLevel, *logDir)

	sf, err := nav.LoadSectorFile(*sectorFile, lg)
	if err != nil {
		lg.Errorf("%s: %v", *sectorFile, err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", *sectorFile, err)
		os.Exit(1)
	}
	lg.Infof("%s: %d navigation elements", sf.Name, len(sf.Elements))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "unable to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	app := &AppState{
		screen:    screen,
		sector:    sf,
		store:     plot.NewStore(),
		lg:        lg,
		center:    sf.Center,
		nmPerCh:   4,
		statusMsg: "type a command and press enter; \"help\" lists commands; ctrl-c quits",
	}

	for {
		app.draw()
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !app.handleKey(ev) {
				return
			}
		}
	}
}

func (app *AppState) handleKey(ev *tcell.EventKey) bool {
	pan := 8 * app.nmPerCh

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		app.command = ""
	case tcell.KeyEnter:
		app.execute()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(app.command) > 0 {
			app.command = app.command[:len(app.command)-1]
		}
	case tcell.KeyUp:
		app.center = offsetNM(app.center, 0, pan, app.sector.NMPerLongitude)
	case tcell.KeyDown:
		app.center = offsetNM(app.center, 0, -pan, app.sector.NMPerLongitude)
	case tcell.KeyLeft:
		app.center = offsetNM(app.center, -pan, 0, app.sector.NMPerLongitude)
	case tcell.KeyRight:
		app.center = offsetNM(app.center, pan, 0, app.sector.NMPerLongitude)
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == '+' && app.command == "":
			app.nmPerCh = math.Max(app.nmPerCh/2, 0.125)
		case r == '-' && app.command == "":
			app.nmPerCh = math.Min(app.nmPerCh*2, 64)
		default:
			app.command += string(r)
		}
	}
	return true
}

// execute runs the typed command and records the messages it produces.
func (app *AppState) execute() {
	command := app.command
	app.command = ""
	if command == "" {
		return
	}

	msgs, changed, err := plot.ProcessCommand(app.store, app.sector.Elements, command)
	app.messages = msgs
	app.urgent = false
	if err != nil {
		app.messages = []string{err.Error()}
		app.urgent = true
		app.lg.Warnf("%q: %v", command, err)
		return
	}
	if changed {
		app.lg.Infof("%q: %d routes stored", command, app.store.Len())
		app.statusMsg = fmt.Sprintf("%d route(s) stored", app.store.Len())
	}
}

func offsetNM(p math.Point2LL, dx, dy float32, nmPerLongitude float32) math.Point2LL {
	nm := math.LL2NM(p, nmPerLongitude)
	return math.NM2LL(math.Add2f(nm, [2]float32{dx, dy}), nmPerLongitude)
}

// toCell projects a lat-long position into screen cells. Character
// cells are roughly twice as tall as wide, so vertical distances get
// half the resolution.
func (app *AppState) toCell(p math.Point2LL) (int, int) {
	w, h := app.screen.Size()
	nm := math.LL2NM(p, app.sector.NMPerLongitude)
	cnm := math.LL2NM(app.center, app.sector.NMPerLongitude)
	x := float32(w)/2 + (nm[0]-cnm[0])/app.nmPerCh
	y := float32(h-3)/2 - (nm[1]-cnm[1])/(2*app.nmPerCh)
	return int(x + 0.5), int(y + 0.5)
}

func (app *AppState) draw() {
	app.screen.Clear()
	w, h := app.screen.Size()
	mapH := h - 2 // bottom rows: status, command line

	for _, route := range allRoutes(app.store) {
		app.drawRoute(route, mapH)
	}

	// Status line: sector name, centre, scale, then transient status.
	status := fmt.Sprintf(" %s | %s | %.3gnm/ch | %s",
		app.sector.Name, app.center.DMSString(), app.nmPerCh, app.statusMsg)
	drawString(app.screen, 0, h-2, w, status,
		tcell.StyleDefault.Reverse(true))

	// Message area overlays the top of the map, with long messages
	// wrapped to the screen width.
	msgStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	if app.urgent {
		msgStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	row := 0
	for _, msg := range app.messages {
		wrapped, _ := util.WrapText(msg, w-1, 4, true)
		for _, line := range strings.Split(wrapped, "\n") {
			if row >= mapH {
				break
			}
			drawString(app.screen, 0, row, w, line, msgStyle)
			row++
		}
	}

	drawString(app.screen, 0, h-1, w, "> "+app.command, tcell.StyleDefault)
	app.screen.ShowCursor(len("> ")+len(app.command), h-1)
}

func allRoutes(store *plot.Store) []plot.Route {
	var routes []plot.Route
	for _, r := range store.All() {
		routes = append(routes, r)
	}
	return routes
}

func (app *AppState) drawRoute(route plot.Route, mapH int) {
	n := len(route) - 1
	frac := func(i int) float32 {
		if n == 0 {
			return 0
		}
		return float32(i) / float32(n)
	}

	// Segments, coloured by position along the route.
	for i := 1; i < len(route); i++ {
		if route[i].IsDiscontinuity() || route[i-1].IsDiscontinuity() {
			continue
		}
		x0, y0 := app.toCell(route[i-1].Position)
		x1, y1 := app.toCell(route[i].Position)
		app.drawLine(x0, y0, x1, y1, mapH, colorStyle(plot.SegmentColor(frac(i))))
	}

	// Markers, labels and hold outlines on top.
	for i, node := range route {
		if node.IsDiscontinuity() {
			continue
		}

		if node.Hold != nil {
			outline := plot.HoldOutline(node.Position, *node.Hold, app.sector.NMPerLongitude)
			for j := 1; j < len(outline); j++ {
				x0, y0 := app.toCell(outline[j-1])
				x1, y1 := app.toCell(outline[j])
				app.drawLine(x0, y0, x1, y1, mapH, colorStyle(plot.SegmentColor(frac(i))))
			}
		}

		x, y := app.toCell(node.Position)
		w, _ := app.screen.Size()
		if x < 0 || x >= w || y < 0 || y >= mapH {
			continue
		}
		marker := 'o'
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if node.Highlight {
			marker = 'O'
			style = style.Bold(true)
		}
		app.screen.SetContent(x, y, marker, nil, style)

		if node.Label != "" {
			drawString(app.screen, x+2, y, len(node.Label), node.Label, style)
		}
	}
}

// drawLine draws a straight cell line with the usual Bresenham walk,
// clipped to the map area.
func (app *AppState) drawLine(x0, y0, x1, y1, mapH int, style tcell.Style) {
	w, _ := app.screen.Size()

	dx, dy := math.Abs(x1-x0), -math.Abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < mapH {
			app.screen.SetContent(x0, y0, '·', nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

func colorStyle(rgb [3]float32) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(rgb[0]*255), int32(rgb[1]*255), int32(rgb[2]*255)))
}

func drawString(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	for i, r := range text {
		if i >= maxWidth {
			return
		}
		s.SetContent(x+i, y, r, nil, style)
	}
}
