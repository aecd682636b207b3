// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/color.go
// Summary: RGB color type and the retro 8-color palette used by icons and apps.

package pixel

// Color is an RGB triple. The zero value is black, which doubles as the
// "empty" sentinel returned for out-of-bounds reads.
type Color struct {
	R, G, B uint8
}

// The classic palette. Icon files reference these by index 0-7.
var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
)

// Palette maps palette indices to colors, in the order icon files use.
var Palette = [8]Color{Black, White, Red, Green, Blue, Yellow, Cyan, Magenta}

// PaletteColor returns the palette entry for idx, or black for indices
// outside the palette.
func PaletteColor(idx int) Color {
	if idx < 0 || idx >= len(Palette) {
		return Black
	}
	return Palette[idx]
}

// Match reports whether c and other agree per channel within tolerance.
func (c Color) Match(other Color, tolerance int) bool {
	return absDiff(c.R, other.R) <= tolerance &&
		absDiff(c.G, other.G) <= tolerance &&
		absDiff(c.B, other.B) <= tolerance
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
