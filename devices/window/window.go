// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: devices/window/window.go
// Summary: Desktop window backend built on ebiten. The ebiten game loop
// drives the scheduler: one ebiten update is one scheduler tick, and the
// presented framebuffer is blitted as RGBA pixels each draw.

package window

import (
	"github.com/framegrace/pixelos/pixel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// scale is the default window magnification per matrix pixel.
const scale = 8

// Display buffers draws and hands Show()n frames to the ebiten draw pass.
type Display struct {
	*pixel.Canvas
	width, height int
	presented     []byte
}

// NewDisplay allocates the window display buffer.
func NewDisplay(width, height int) *Display {
	return &Display{
		Canvas:    pixel.NewCanvas(pixel.NewFramebuffer(width, height)),
		width:     width,
		height:    height,
		presented: make([]byte, width*height*4),
	}
}

// Show snapshots the framebuffer as RGBA for the next draw pass.
func (d *Display) Show() {
	i := 0
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			c := d.Get(x, y)
			d.presented[i] = c.R
			d.presented[i+1] = c.G
			d.presented[i+2] = c.B
			d.presented[i+3] = 0xff
			i += 4
		}
	}
}

// Close is a no-op; ebiten tears the window down when Run returns.
func (d *Display) Close() {}

// Input collects key edges during the ebiten update and hands them to the
// scheduler's poll in the same tick.
type Input struct {
	queue []pixel.InputEvent
}

// NewInput returns an empty collector.
func NewInput() *Input { return &Input{} }

var keymap = map[ebiten.Key]pixel.Key{
	ebiten.KeyArrowUp:    pixel.KeyUp,
	ebiten.KeyArrowDown:  pixel.KeyDown,
	ebiten.KeyArrowLeft:  pixel.KeyLeft,
	ebiten.KeyArrowRight: pixel.KeyRight,
	ebiten.KeyEnter:      pixel.KeyOK,
	ebiten.KeySpace:      pixel.KeyAction,
	ebiten.KeyEscape:     pixel.KeyBack,
	ebiten.KeyH:          pixel.KeyHome,
	ebiten.KeyF1:         pixel.KeyHelp,
	ebiten.KeyQ:          pixel.KeyL1,
	ebiten.KeyE:          pixel.KeyR1,
}

func (in *Input) collect(frame int) {
	for key, logical := range keymap {
		if inpututil.IsKeyJustPressed(key) {
			in.queue = append(in.queue, pixel.InputEvent{Key: logical, Frame: frame})
		}
	}
}

// Poll returns the key edges collected since the previous tick.
func (in *Input) Poll(currentFrame int) []pixel.InputEvent {
	out := in.queue
	in.queue = nil
	return out
}

// Game adapts the scheduler to ebiten's game interface.
type Game struct {
	sched   *pixel.Scheduler
	display *Display
	input   *Input
}

// NewGame wires a scheduler to the window backend. The caller passes the
// same display and input the scheduler was built with.
func NewGame(sched *pixel.Scheduler, display *Display, input *Input) *Game {
	return &Game{sched: sched, display: display, input: input}
}

// Update runs exactly one scheduler tick per ebiten tick.
func (g *Game) Update() error {
	g.input.collect(g.sched.Frame())
	g.sched.Tick()
	if g.sched.Stopping() {
		return ebiten.Termination
	}
	return nil
}

// Draw blits the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.display.presented)
}

// Layout keeps the logical resolution at the matrix size; ebiten scales it
// to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.display.width, g.display.height
}

// Run opens the window and blocks until the scheduler stops or the window
// closes.
func Run(sched *pixel.Scheduler, display *Display, input *Input, fps int) error {
	ebiten.SetTPS(fps)
	ebiten.SetWindowSize(display.width*scale, display.height*scale)
	ebiten.SetWindowTitle("pixelos")
	err := ebiten.RunGame(NewGame(sched, display, input))
	if err == ebiten.Termination {
		return nil
	}
	return err
}
