// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixeltest/display.go
// Summary: Headless display adapter. A drop-in pixel.Display that captures
// drawing into an inspectable buffer instead of presenting anything.

package pixeltest

import "github.com/framegrace/pixelos/pixel"

// historyLimit bounds the rolling frame history: one second at 60 fps.
const historyLimit = 60

type textCall struct {
	text        string
	x, y        int
	renderCount int
}

// Display satisfies pixel.Display by writing into an in-memory framebuffer
// and exposes the read side tests need: pixel queries, color search, blob
// detection, snapshots and a bounded history of presented frames.
type Display struct {
	*pixel.Canvas
	renderCount int
	history     []*pixel.Framebuffer
	textLog     []textCall
}

// NewDisplay allocates a headless width×height display.
func NewDisplay(width, height int) *Display {
	return &Display{
		Canvas: pixel.NewCanvas(pixel.NewFramebuffer(width, height)),
	}
}

// Show counts the present call and appends a buffer copy to the history.
// No output is produced anywhere.
func (d *Display) Show() {
	d.renderCount++
	d.history = append(d.history, d.Framebuffer.Clone())
	if len(d.history) > historyLimit {
		d.history = d.history[len(d.history)-historyLimit:]
	}
}

// Close is a no-op; the adapter owns no device.
func (d *Display) Close() {}

// Text records the call for TextDrawn before rasterizing normally.
func (d *Display) Text(s string, x, y int, c pixel.Color) {
	d.textLog = append(d.textLog, textCall{text: s, x: x, y: y, renderCount: d.renderCount})
	d.Canvas.Text(s, x, y, c)
}

// CenteredText records the call, then centers through the canvas.
func (d *Display) CenteredText(s string, y int, c pixel.Color) {
	w, _ := d.Size()
	d.Text(s, (w-d.TextWidth(s))/2, y, c)
}

// RenderCount returns the number of completed Show calls.
func (d *Display) RenderCount() int { return d.renderCount }

// Pixel returns the color at (x, y); out of bounds reads return black.
func (d *Display) Pixel(x, y int) pixel.Color { return d.Get(x, y) }

// FindColor returns every coordinate whose color matches c within a
// per-channel absolute tolerance, in row-major order.
func (d *Display) FindColor(c pixel.Color, tolerance int) []pixel.Point {
	var matches []pixel.Point
	w, h := d.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if d.Get(x, y).Match(c, tolerance) {
				matches = append(matches, pixel.Point{X: x, Y: y})
			}
		}
	}
	return matches
}

// CountColor counts matching pixels.
func (d *Display) CountColor(c pixel.Color, tolerance int) int {
	return len(d.FindColor(c, tolerance))
}

// FindBlobs groups matching pixels into 4-connected components and returns
// those of at least minSize pixels.
func (d *Display) FindBlobs(c pixel.Color, tolerance, minSize int) [][]pixel.Point {
	remaining := make(map[pixel.Point]bool)
	matches := d.FindColor(c, tolerance)
	for _, p := range matches {
		remaining[p] = true
	}

	var blobs [][]pixel.Point
	for _, start := range matches {
		if !remaining[start] {
			continue
		}
		delete(remaining, start)
		blob := []pixel.Point{start}
		queue := []pixel.Point{start}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, n := range []pixel.Point{
				{X: p.X, Y: p.Y + 1},
				{X: p.X + 1, Y: p.Y},
				{X: p.X, Y: p.Y - 1},
				{X: p.X - 1, Y: p.Y},
			} {
				if remaining[n] {
					delete(remaining, n)
					blob = append(blob, n)
					queue = append(queue, n)
				}
			}
		}
		if len(blob) >= minSize {
			blobs = append(blobs, blob)
		}
	}
	return blobs
}

// Centroid returns the arithmetic mean coordinate of a pixel set.
func Centroid(pixels []pixel.Point) (float64, float64) {
	if len(pixels) == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, p := range pixels {
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	n := float64(len(pixels))
	return sx / n, sy / n
}

// BoundingBox returns (x, y, w, h) enclosing a pixel set.
func BoundingBox(pixels []pixel.Point) (x, y, w, h int) {
	if len(pixels) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := pixels[0].X, pixels[0].Y
	maxX, maxY := minX, minY
	for _, p := range pixels[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX - minX + 1, maxY - minY + 1
}

// Snapshot returns an immutable copy of the current buffer.
func (d *Display) Snapshot() *pixel.Framebuffer { return d.Framebuffer.Clone() }

// Compare scores the current buffer against a snapshot in [0, 1]:
// 1 minus the normalized per-channel absolute difference over all pixels.
func (d *Display) Compare(snapshot *pixel.Framebuffer) float64 {
	return d.Framebuffer.Similarity(snapshot)
}

// IsChanging reports whether any two of the last window history entries
// differ. With fewer than window entries recorded it reports false.
func (d *Display) IsChanging(window int) bool {
	if window < 2 || len(d.history) < window {
		return false
	}
	recent := d.history[len(d.history)-window:]
	for i := 0; i < len(recent)-1; i++ {
		if !recent[i].Equal(recent[i+1]) {
			return true
		}
	}
	return false
}

// TextDrawn reports whether Text or CenteredText was ever called with s.
func (d *Display) TextDrawn(s string) bool {
	for _, call := range d.textLog {
		if call.text == s {
			return true
		}
	}
	return false
}

// TextCalls returns every string drawn so far, in call order.
func (d *Display) TextCalls() []string {
	out := make([]string, 0, len(d.textLog))
	for _, call := range d.textLog {
		out = append(out, call.text)
	}
	return out
}
