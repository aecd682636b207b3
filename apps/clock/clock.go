// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/clock/clock.go
// Summary: Digital clock app. Repaints only when the displayed second
// changes; ACTION toggles 12/24 hour format, persisted per app.

package clock

import (
	"time"

	"github.com/framegrace/pixelos/pixel"
)

const formatKey = "format"

// App shows the current time and date.
type App struct {
	pixel.Base
	shown    string
	date     string
	format24 bool
	now      func() time.Time
}

// New creates the clock app.
func New(logger *pixel.Logger) *App {
	a := &App{format24: true, now: time.Now}
	a.Base = pixel.NewBase("clock", logger)
	return a
}

func (a *App) layout() string {
	if a.format24 {
		return "15:04:05"
	}
	return "03:04:05"
}

func (a *App) Activate() {
	if v, ok := a.Storage().Get(formatKey); ok {
		a.format24 = v != "12h"
	}
	a.shown = ""
	a.MarkDirty()
	a.Log().Info("clock activated, 24h=%v", a.format24)
}

func (a *App) Deactivate() {}

func (a *App) Update(dt float64) {
	t := a.now()
	s := t.Format(a.layout())
	if s != a.shown {
		a.shown = s
		a.date = t.Format("2006-01-02")
		a.MarkDirty()
	}
}

func (a *App) BackgroundTick() {}

func (a *App) HandleEvent(ev pixel.InputEvent) bool {
	if ev.Key != pixel.KeyAction {
		return false
	}
	a.format24 = !a.format24
	value := "12h"
	if a.format24 {
		value = "24h"
	}
	if err := a.Storage().Put(formatKey, value); err != nil {
		a.Log().Error("persist format: %v", err)
	}
	a.shown = ""
	a.MarkDirty()
	return true
}

func (a *App) Render(s pixel.Surface) {
	_, h := s.Size()
	s.CenteredText(a.shown, h/2-8, pixel.Cyan)
	s.CenteredText(a.date, h/2+4, pixel.White)
	a.ClearDirty()
}

// Attr exposes clock internals for black-box tests.
func (a *App) Attr(name string) (any, bool) {
	switch name {
	case "time":
		return a.shown, true
	case "format24":
		return a.format24, true
	}
	return nil, false
}
