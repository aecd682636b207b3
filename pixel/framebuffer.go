// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/framebuffer.go
// Summary: The in-memory pixel grid all surfaces render into.

package pixel

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Framebuffer is a fixed-size grid of RGB pixels. It is never resized after
// construction. Writes outside the bounds are clipped silently; reads outside
// the bounds return black. Both are deliberate: example-app math glitches must
// not crash the display path.
type Framebuffer struct {
	width, height int
	pix           []Color
}

// NewFramebuffer allocates a width×height buffer cleared to black.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Size returns the buffer dimensions.
func (f *Framebuffer) Size() (int, int) { return f.width, f.height }

// Buffer exposes the buffer to presentation effects. Displays that embed a
// Framebuffer satisfy Buffered for free.
func (f *Framebuffer) Buffer() *Framebuffer { return f }

// SetPixel writes c at (x, y). Out-of-bounds writes are dropped.
func (f *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

// Get returns the color at (x, y), or black outside the bounds.
func (f *Framebuffer) Get(x, y int) Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Color{}
	}
	return f.pix[y*f.width+x]
}

// Clear resets every cell to c.
func (f *Framebuffer) Clear(c Color) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// Fill is Clear under the name apps expect from the drawing surface.
func (f *Framebuffer) Fill(c Color) { f.Clear(c) }

// Clone returns an independent copy of the buffer.
func (f *Framebuffer) Clone() *Framebuffer {
	cp := &Framebuffer{width: f.width, height: f.height, pix: make([]Color, len(f.pix))}
	copy(cp.pix, f.pix)
	return cp
}

// Equal reports whether two buffers have identical dimensions and pixels.
func (f *Framebuffer) Equal(other *Framebuffer) bool {
	if other == nil || f.width != other.width || f.height != other.height {
		return false
	}
	for i := range f.pix {
		if f.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// Similarity compares two buffers as 1 minus the normalized per-channel
// absolute difference summed over all pixels. Identical buffers score 1.0;
// mismatched dimensions score 0.
func (f *Framebuffer) Similarity(other *Framebuffer) float64 {
	if other == nil || f.width != other.width || f.height != other.height {
		return 0
	}
	total := 0
	for i := range f.pix {
		total += absDiff(f.pix[i].R, other.pix[i].R)
		total += absDiff(f.pix[i].G, other.pix[i].G)
		total += absDiff(f.pix[i].B, other.pix[i].B)
	}
	max := 255 * 3 * f.width * f.height
	return 1.0 - float64(total)/float64(max)
}
