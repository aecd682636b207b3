// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: devices/fbdev/fbdev_linux.go
// Summary: Direct /dev/fb0 backend for dedicated hardware. Pixels are
// scaled to fill the panel; input is raw keyboard bytes from stdin.

//go:build linux

package fbdev

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	"github.com/framegrace/pixelos/pixel"
	"github.com/gonutz/framebuffer"
	"golang.org/x/term"
)

// Display scales the matrix onto the Linux framebuffer device.
type Display struct {
	*pixel.Canvas
	fb            draw.Image
	closer        interface{ Close() }
	width, height int
	cell          int
	offX, offY    int
}

// Open maps the framebuffer device and computes the largest integer scale
// that fits the panel, centering the matrix.
func Open(device string, width, height int) (*Display, error) {
	fb, err := framebuffer.Open(device)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", device, err)
	}

	bounds := fb.Bounds()
	cell := bounds.Dx() / width
	if c := bounds.Dy() / height; c < cell {
		cell = c
	}
	if cell < 1 {
		fb.Close()
		return nil, fmt.Errorf("panel %dx%d smaller than matrix %dx%d",
			bounds.Dx(), bounds.Dy(), width, height)
	}

	return &Display{
		Canvas: pixel.NewCanvas(pixel.NewFramebuffer(width, height)),
		fb:     fb,
		closer: fb,
		width:  width,
		height: height,
		cell:   cell,
		offX:   (bounds.Dx() - width*cell) / 2,
		offY:   (bounds.Dy() - height*cell) / 2,
	}, nil
}

// Show scales each matrix pixel to a cell×cell block on the panel.
func (d *Display) Show() {
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			c := d.Get(x, y)
			rgba := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
			rect := image.Rect(
				d.offX+x*d.cell, d.offY+y*d.cell,
				d.offX+(x+1)*d.cell, d.offY+(y+1)*d.cell,
			)
			draw.Draw(d.fb, rect, &image.Uniform{C: rgba}, image.Point{}, draw.Src)
		}
	}
}

// Close unmaps the device.
func (d *Display) Close() {
	d.closer.Close()
}

// Input reads raw key bytes from a terminal put into raw mode, decoding
// the common escape sequences for arrows and navigation keys.
type Input struct {
	events   chan pixel.InputEvent
	oldState *term.State
	fd       int
}

// OpenInput switches stdin to raw mode and starts the read loop.
func OpenInput() (*Input, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	in := &Input{
		events:   make(chan pixel.InputEvent, 64),
		oldState: oldState,
		fd:       fd,
	}
	go in.readLoop()
	return in, nil
}

func (in *Input) readLoop() {
	buf := make([]byte, 8)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		key, ok := decode(buf[:n])
		if !ok {
			continue
		}
		select {
		case in.events <- pixel.InputEvent{Key: key}:
		default:
			log.Printf("Framebuffer: input queue full, dropping %s", key)
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

// Restore puts the terminal back into cooked mode.
func (in *Input) Restore() {
	if in.oldState != nil {
		term.Restore(in.fd, in.oldState)
	}
}

func decode(b []byte) (pixel.Key, bool) {
	if len(b) >= 3 && b[0] == 0x1b && b[1] == '[' {
		switch b[2] {
		case 'A':
			return pixel.KeyUp, true
		case 'B':
			return pixel.KeyDown, true
		case 'C':
			return pixel.KeyRight, true
		case 'D':
			return pixel.KeyLeft, true
		case 'H':
			return pixel.KeyHome, true
		}
		return "", false
	}
	switch b[0] {
	case '\r', '\n':
		return pixel.KeyOK, true
	case ' ':
		return pixel.KeyAction, true
	case 0x1b, 0x03: // bare escape or Ctrl+C
		return pixel.KeyBack, true
	case 'h', 'H':
		return pixel.KeyHome, true
	case '?':
		return pixel.KeyHelp, true
	case '[':
		return pixel.KeyL1, true
	case ']':
		return pixel.KeyR1, true
	}
	if b[0] >= 0x20 && b[0] < 0x7f {
		return pixel.Key(string(rune(b[0]))), true
	}
	return "", false
}
