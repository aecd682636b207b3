// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/qrbadge/qrbadge.go
// Summary: Shows a QR code on the matrix, for badge payloads like contact
// URLs or wifi credentials. The code is generated once per payload change.

package qrbadge

import (
	"errors"

	"github.com/framegrace/pixelos/pixel"
	"github.com/skip2/go-qrcode"
)

// App renders one QR code centered on the display.
type App struct {
	pixel.Base
	payload string
	bitmap  [][]bool
	genErr  error
}

// New creates a badge showing payload.
func New(payload string, logger *pixel.Logger) *App {
	a := &App{}
	a.Base = pixel.NewBase("qrbadge", logger)
	a.SetPayload(payload)
	return a
}

// SetPayload regenerates the code for a new payload.
func (a *App) SetPayload(payload string) {
	a.payload = payload
	a.bitmap, a.genErr = encode(payload)
	if a.genErr != nil {
		a.Log().Error("encode %q: %v", payload, a.genErr)
	}
	a.MarkDirty()
}

func encode(payload string) ([][]bool, error) {
	if payload == "" {
		return nil, errors.New("empty payload")
	}
	q, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	return q.Bitmap(), nil
}

func (a *App) Activate() {
	a.MarkDirty()
	a.Log().Info("showing badge for %q", a.payload)
}

func (a *App) Deactivate() {}

func (a *App) Update(dt float64) {}

func (a *App) BackgroundTick() {}

func (a *App) HandleEvent(ev pixel.InputEvent) bool { return false }

func (a *App) Render(s pixel.Surface) {
	defer a.ClearDirty()

	w, h := s.Size()
	if a.genErr != nil || len(a.bitmap) == 0 {
		s.CenteredText("NO CODE", h/2-4, pixel.Red)
		return
	}

	n := len(a.bitmap)
	if n > w || n > h {
		// A 64x64 panel fits QR versions up to 11; anything larger is a
		// payload problem, not a rendering one.
		a.Log().Warning("code %d modules does not fit %dx%d", n, w, h)
		s.CenteredText("TOO BIG", h/2-4, pixel.Red)
		return
	}

	scale := 1
	if n*2 <= w && n*2 <= h {
		scale = 2
	}
	offX := (w - n*scale) / 2
	offY := (h - n*scale) / 2

	// Light background behind the modules keeps the code scannable on a
	// black panel.
	s.Rect(offX-1, offY-1, n*scale+2, n*scale+2, pixel.White, true)
	for y, row := range a.bitmap {
		for x, dark := range row {
			if dark {
				s.Rect(offX+x*scale, offY+y*scale, scale, scale, pixel.Black, true)
			}
		}
	}
}

// Attr exposes badge internals for black-box tests.
func (a *App) Attr(name string) (any, bool) {
	switch name {
	case "payload":
		return a.payload, true
	case "modules":
		return len(a.bitmap), true
	}
	return nil, false
}
