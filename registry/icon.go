// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/icon.go
// Summary: Palette-indexed launcher icons, loaded from icon.json or declared
// in code by built-in apps.

package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/framegrace/pixelos/pixel"
)

// DefaultIconSize is the square icon grid the launcher lays out.
const DefaultIconSize = 8

// Icon is a small grid of palette indices (0-7). Index 0 is transparent when
// drawn, so icons keep the launcher background visible.
type Icon struct {
	Pixels [][]int `json:"pixels"`
}

// LoadIcon reads icon.json from dir. A missing file is not an error; the
// launcher substitutes a placeholder.
func LoadIcon(dir string) (*Icon, error) {
	path := filepath.Join(dir, "icon.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}

	var icon Icon
	if err := json.Unmarshal(data, &icon); err != nil {
		return nil, fmt.Errorf("parse icon: %w", err)
	}
	if err := icon.Validate(); err != nil {
		return nil, err
	}
	return &icon, nil
}

// Validate rejects ragged rows and out-of-palette indices.
func (i *Icon) Validate() error {
	if len(i.Pixels) == 0 {
		return fmt.Errorf("icon has no rows")
	}
	width := len(i.Pixels[0])
	for y, row := range i.Pixels {
		if len(row) != width {
			return fmt.Errorf("icon row %d has %d pixels, want %d", y, len(row), width)
		}
		for x, idx := range row {
			if idx < 0 || idx >= len(pixel.Palette) {
				return fmt.Errorf("icon pixel (%d,%d) index %d outside palette", x, y, idx)
			}
		}
	}
	return nil
}

// Size returns the icon dimensions.
func (i *Icon) Size() (w, h int) {
	if i == nil || len(i.Pixels) == 0 {
		return 0, 0
	}
	return len(i.Pixels[0]), len(i.Pixels)
}

// Draw paints the icon with its top-left corner at (x, y). Palette index 0
// is skipped so the background shows through.
func (i *Icon) Draw(s pixel.Surface, x, y int) {
	if i == nil {
		return
	}
	for dy, row := range i.Pixels {
		for dx, idx := range row {
			if idx == 0 {
				continue
			}
			s.SetPixel(x+dx, y+dy, pixel.PaletteColor(idx))
		}
	}
}

// PlaceholderIcon is drawn for apps that ship no icon: a white outline with
// a red diagonal.
func PlaceholderIcon() *Icon {
	pixels := make([][]int, DefaultIconSize)
	for y := range pixels {
		pixels[y] = make([]int, DefaultIconSize)
		for x := range pixels[y] {
			switch {
			case y == 0 || y == DefaultIconSize-1 || x == 0 || x == DefaultIconSize-1:
				pixels[y][x] = 1
			case x == y:
				pixels[y][x] = 2
			}
		}
	}
	return &Icon{Pixels: pixels}
}
