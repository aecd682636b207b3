// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/canvas.go
// Summary: Drawing primitives over a Framebuffer. Every primitive decomposes
// into SetPixel calls, so clipping behaviour is uniform across all of them.

package pixel

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas adds the drawing primitives apps use on top of a raw Framebuffer.
type Canvas struct {
	*Framebuffer
	face font.Face
}

// NewCanvas wraps fb with the default font face.
func NewCanvas(fb *Framebuffer) *Canvas {
	return &Canvas{Framebuffer: fb, face: DefaultFace()}
}

// SetFace replaces the font face used by Text and CenteredText.
func (c *Canvas) SetFace(face font.Face) {
	if face != nil {
		c.face = face
	}
}

// Line draws with Bresenham's algorithm, endpoints inclusive.
func (c *Canvas) Line(x1, y1, x2, y2 int, col Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	x, y := x1, y1
	for {
		c.SetPixel(x, y, col)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Rect draws a w×h rectangle with its top-left corner at (x, y).
func (c *Canvas) Rect(x, y, w, h int, col Color, fill bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if fill {
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				c.SetPixel(x+dx, y+dy, col)
			}
		}
		return
	}
	for dx := 0; dx < w; dx++ {
		c.SetPixel(x+dx, y, col)
		c.SetPixel(x+dx, y+h-1, col)
	}
	for dy := 0; dy < h; dy++ {
		c.SetPixel(x, y+dy, col)
		c.SetPixel(x+w-1, y+dy, col)
	}
}

// Circle draws with the midpoint algorithm.
func (c *Canvas) Circle(cx, cy, radius int, col Color, fill bool) {
	if radius < 0 {
		return
	}
	x, y, err := radius, 0, 0
	for x >= y {
		if fill {
			c.Line(cx-x, cy+y, cx+x, cy+y, col)
			c.Line(cx-x, cy-y, cx+x, cy-y, col)
			c.Line(cx-y, cy+x, cx+y, cy+x, col)
			c.Line(cx-y, cy-x, cx+y, cy-x, col)
		} else {
			c.SetPixel(cx+x, cy+y, col)
			c.SetPixel(cx+y, cy+x, col)
			c.SetPixel(cx-y, cy+x, col)
			c.SetPixel(cx-x, cy+y, col)
			c.SetPixel(cx-x, cy-y, col)
			c.SetPixel(cx-y, cy-x, col)
			c.SetPixel(cx+y, cy-x, col)
			c.SetPixel(cx+x, cy-y, col)
		}
		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

// Ellipse draws axis-aligned with radii rx, ry.
func (c *Canvas) Ellipse(cx, cy, rx, ry int, col Color, fill bool) {
	if rx < 0 || ry < 0 {
		return
	}
	if rx == 0 || ry == 0 {
		c.Line(cx-rx, cy-ry, cx+rx, cy+ry, col)
		return
	}
	// Scanline form keeps the fill and outline consistent at small radii.
	prev := rx
	for dy := 0; dy <= ry; dy++ {
		fy := float64(dy) / float64(ry)
		w := int(float64(rx) * math.Sqrt(1-fy*fy))
		if fill {
			c.Line(cx-w, cy+dy, cx+w, cy+dy, col)
			c.Line(cx-w, cy-dy, cx+w, cy-dy, col)
		} else {
			for x := w; x <= prev; x++ {
				c.SetPixel(cx+x, cy+dy, col)
				c.SetPixel(cx-x, cy+dy, col)
				c.SetPixel(cx+x, cy-dy, col)
				c.SetPixel(cx-x, cy-dy, col)
			}
		}
		prev = w
	}
}

// Polygon draws the closed outline through pts.
func (c *Canvas) Polygon(pts []Point, col Color) {
	if len(pts) < 2 {
		if len(pts) == 1 {
			c.SetPixel(pts[0].X, pts[0].Y, col)
		}
		return
	}
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		c.Line(a.X, a.Y, b.X, b.Y, col)
	}
}

// Text draws s with its top-left corner at (x, y). Glyphs are rasterized
// through the current font face and transferred pixel by pixel, so text clips
// exactly like every other primitive.
func (c *Canvas) Text(s string, x, y int, col Color) {
	if s == "" {
		return
	}
	w := font.MeasureString(c.face, s).Ceil()
	if w <= 0 {
		return
	}
	m := c.face.Metrics()
	h := m.Height.Ceil()
	if h <= 0 {
		h = m.Ascent.Ceil() + m.Descent.Ceil()
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Alpha{A: 255}),
		Face: c.face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(s)

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if img.AlphaAt(dx, dy).A >= 128 {
				c.SetPixel(x+dx, y+dy, col)
			}
		}
	}
}

// CenteredText draws s horizontally centered at row y.
func (c *Canvas) CenteredText(s string, y int, col Color) {
	w := font.MeasureString(c.face, s).Ceil()
	bw, _ := c.Size()
	c.Text(s, (bw-w)/2, y, col)
}

// TextWidth returns the pixel width s would occupy with the current face.
func (c *Canvas) TextWidth(s string) int {
	return font.MeasureString(c.face, s).Ceil()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
