package pixel

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the built-in bitmap face used when no TTF is configured.
// Face7x13 is legible down to the smallest supported matrix sizes.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// LoadTTF parses a TrueType font file and returns a face rasterized at the
// given point size. Small sizes (8-12pt) work best on matrix displays.
func LoadTTF(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
