// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/launcher/launcher.go
// Summary: The home app: an icon grid over the registry. Arrows move the
// selection, OK launches, and running instances are reused so app state
// survives a trip through the launcher.

package launcher

import (
	"github.com/framegrace/pixelos/pixel"
	"github.com/framegrace/pixelos/registry"
)

const (
	cellPitch = 12 // icon cell including padding
	iconPad   = 2
)

// LoggerFunc builds the logger handed to a newly launched app.
type LoggerFunc func(appName string) *pixel.Logger

// App is the launcher.
type App struct {
	pixel.Base
	reg       *registry.Registry
	sched     *pixel.Scheduler
	loggerFor LoggerFunc

	entries  []*registry.AppEntry
	selected int
	message  string
}

// New creates the launcher over a registry. loggerFor may be nil, in which
// case launched apps log nowhere.
func New(reg *registry.Registry, sched *pixel.Scheduler, loggerFor LoggerFunc, logger *pixel.Logger) *App {
	if loggerFor == nil {
		loggerFor = func(string) *pixel.Logger { return nil }
	}
	a := &App{reg: reg, sched: sched, loggerFor: loggerFor}
	a.Base = pixel.NewBase("launcher", logger)
	return a
}

func (a *App) Activate() {
	a.entries = a.list()
	if a.selected >= len(a.entries) {
		a.selected = 0
	}
	a.message = ""
	a.MarkDirty()
	a.Log().Info("launcher showing %d apps", len(a.entries))
}

// list hides the launcher itself from its own grid.
func (a *App) list() []*registry.AppEntry {
	var entries []*registry.AppEntry
	for _, e := range a.reg.List() {
		if e.Manifest.Name == a.Name() {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

func (a *App) Deactivate() {}

func (a *App) Update(dt float64) {}

func (a *App) BackgroundTick() {}

func (a *App) HandleEvent(ev pixel.InputEvent) bool {
	if len(a.entries) == 0 {
		return false
	}
	switch ev.Key {
	case pixel.KeyLeft:
		a.move(-1)
	case pixel.KeyRight:
		a.move(1)
	case pixel.KeyUp:
		a.move(-a.columns())
	case pixel.KeyDown:
		a.move(a.columns())
	case pixel.KeyOK:
		a.launch()
	default:
		return false
	}
	return true
}

func (a *App) move(delta int) {
	next := a.selected + delta
	if next < 0 || next >= len(a.entries) {
		return
	}
	a.selected = next
	a.message = ""
	a.MarkDirty()
}

func (a *App) columns() int {
	w, _ := a.sched.DisplaySize()
	cols := w / cellPitch
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (a *App) launch() {
	entry := a.entries[a.selected]
	name := entry.Manifest.Name

	// A running instance keeps its state; only first launches construct.
	if app, ok := a.sched.Lookup(name); ok {
		a.switchTo(app)
		return
	}
	app := a.reg.CreateApp(name, a.loggerFor(name))
	if app == nil {
		a.message = "NOT INSTALLED"
		a.MarkDirty()
		a.Log().Warning("launch %s: no factory", name)
		return
	}
	a.switchTo(app)
}

func (a *App) switchTo(app pixel.App) {
	if err := a.sched.SwitchTo(app); err != nil {
		a.message = "LAUNCH FAILED"
		a.MarkDirty()
		a.Log().Error("launch %s: %v", app.Name(), err)
	}
}

func (a *App) Render(s pixel.Surface) {
	defer a.ClearDirty()
	w, h := s.Size()

	if len(a.entries) == 0 {
		s.CenteredText("NO APPS", h/2-4, pixel.Red)
		return
	}

	cols := w / cellPitch
	if cols < 1 {
		cols = 1
	}
	for i, entry := range a.entries {
		col, row := i%cols, i/cols
		x := col*cellPitch + iconPad
		y := row*cellPitch + iconPad

		entry.Icon.Draw(s, x, y)
		if i == a.selected {
			iw, ih := entry.Icon.Size()
			s.Rect(x-iconPad, y-iconPad, iw+2*iconPad, ih+2*iconPad, pixel.White, false)
		}
	}

	label := a.entries[a.selected].Manifest.DisplayName
	if a.message != "" {
		label = a.message
	}
	s.CenteredText(label, h-10, pixel.Cyan)
}

// Attr exposes launcher internals for black-box tests.
func (a *App) Attr(name string) (any, bool) {
	switch name {
	case "selected":
		if len(a.entries) == 0 {
			return "", true
		}
		return a.entries[a.selected].Manifest.Name, true
	case "count":
		return len(a.entries), true
	}
	return nil, false
}
