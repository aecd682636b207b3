// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: devices/terminal/terminal.go
// Summary: Renders the matrix into a terminal via tcell, two character cells
// per pixel, with a status line underneath. Also translates terminal keys
// into logical input events.

package terminal

import (
	"fmt"
	"log"

	"github.com/framegrace/pixelos/pixel"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Display presents the framebuffer on a tcell screen. Each matrix pixel
// becomes two side-by-side cells so the aspect ratio stays roughly square.
type Display struct {
	*pixel.Canvas
	screen tcell.Screen
	width  int
	height int
	status string
}

// Input adapts tcell key events to pixel input events. A pump goroutine
// feeds a buffered channel; Poll drains it without blocking.
type Input struct {
	events chan pixel.InputEvent
	stop   chan struct{}
}

// Open initializes the terminal and returns the display and input pair.
// Close the display to restore the terminal.
func Open(width, height int) (*Display, *Input, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	d := &Display{
		Canvas: pixel.NewCanvas(pixel.NewFramebuffer(width, height)),
		screen: screen,
		width:  width,
		height: height,
		status: fmt.Sprintf("pixelos %dx%d  [esc] back  [home] launcher", width, height),
	}

	in := &Input{
		events: make(chan pixel.InputEvent, 64),
		stop:   make(chan struct{}),
	}
	go in.pump(screen)

	return d, in, nil
}

// SetStatus replaces the status line under the matrix.
func (d *Display) SetStatus(s string) { d.status = s }

// Show pushes the framebuffer to the terminal.
func (d *Display) Show() {
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			c := d.Get(x, y)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			d.screen.SetContent(x*2, y, ' ', nil, style)
			d.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	d.drawStatus()
	d.screen.Show()
}

func (d *Display) drawStatus() {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	max := d.width * 2
	text := d.status
	if runewidth.StringWidth(text) > max {
		text = runewidth.Truncate(text, max, "…")
	}
	x := 0
	for _, r := range text {
		d.screen.SetContent(x, d.height, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < max; x++ {
		d.screen.SetContent(x, d.height, ' ', nil, style)
	}
}

// Close restores the terminal.
func (d *Display) Close() {
	d.screen.Fini()
}

func (in *Input) pump(screen tcell.Screen) {
	for {
		select {
		case <-in.stop:
			return
		default:
		}
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := translate(ev)
		if !ok {
			continue
		}
		select {
		case in.events <- pixel.InputEvent{Key: key}:
		default:
			log.Printf("Terminal: input queue full, dropping %s", key)
		}
	}
}

// Poll drains queued events, stamping them with the current frame.
func (in *Input) Poll(currentFrame int) []pixel.InputEvent {
	var out []pixel.InputEvent
	for {
		select {
		case ev := <-in.events:
			ev.Frame = currentFrame
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Stop ends the pump after the next terminal event arrives.
func (in *Input) Stop() { close(in.stop) }

func translate(ev tcell.Event) (pixel.Key, bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return "", false
	}
	switch kev.Key() {
	case tcell.KeyUp:
		return pixel.KeyUp, true
	case tcell.KeyDown:
		return pixel.KeyDown, true
	case tcell.KeyLeft:
		return pixel.KeyLeft, true
	case tcell.KeyRight:
		return pixel.KeyRight, true
	case tcell.KeyEnter:
		return pixel.KeyOK, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return pixel.KeyBack, true
	case tcell.KeyHome:
		return pixel.KeyHome, true
	case tcell.KeyF1:
		return pixel.KeyHelp, true
	case tcell.KeyRune:
		switch kev.Rune() {
		case ' ':
			return pixel.KeyAction, true
		case 'h', 'H':
			return pixel.KeyHome, true
		case '?':
			return pixel.KeyHelp, true
		case '[':
			return pixel.KeyL1, true
		case ']':
			return pixel.KeyR1, true
		default:
			return pixel.Key(string(kev.Rune())), true
		}
	}
	return "", false
}
