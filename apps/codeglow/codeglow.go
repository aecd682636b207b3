// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/codeglow/codeglow.go
// Summary: Ambient "code rain" app: syntax-highlighted source scrolls up
// the matrix, one pixel per character, colored by token type.

package codeglow

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/framegrace/pixelos/pixel"
	"github.com/go-enry/go-enry/v2"
)

const (
	styleName      = "monokai"
	scrollInterval = 0.25 // seconds per row
)

// Sample is one piece of source the app can show.
type Sample struct {
	Filename string
	Code     string
}

// App scrolls highlighted code. L1/R1 cycle through the samples.
type App struct {
	pixel.Base
	samples []Sample
	current int

	language string
	rows     [][]pixel.Color
	offset   int
	acc      float64
}

// New creates the app with the given samples; with none it falls back to
// the built-in ones.
func New(samples []Sample, logger *pixel.Logger) *App {
	if len(samples) == 0 {
		samples = builtinSamples()
	}
	a := &App{samples: samples}
	a.Base = pixel.NewBase("codeglow", logger)
	a.load(0)
	return a
}

// load tokenizes sample i into per-character color rows.
func (a *App) load(i int) {
	a.current = (i + len(a.samples)) % len(a.samples)
	sample := a.samples[a.current]

	a.language = enry.GetLanguage(sample.Filename, []byte(sample.Code))
	lexer := lexers.Get(a.language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	a.rows = tokenRows(lexer, style, sample.Code)
	a.offset = 0
	a.acc = 0
	a.MarkDirty()
	a.Log().Info("showing %s (%s), %d rows", sample.Filename, a.language, len(a.rows))
}

func tokenRows(lexer chroma.Lexer, style *chroma.Style, code string) [][]pixel.Color {
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil
	}

	var rows [][]pixel.Color
	row := []pixel.Color{}
	flush := func() {
		rows = append(rows, row)
		row = []pixel.Color{}
	}

	for _, token := range iterator.Tokens() {
		c := tokenColor(style, token.Type)
		for _, r := range token.Value {
			switch r {
			case '\n':
				flush()
			case '\t':
				row = append(row, pixel.Black, pixel.Black)
			case ' ':
				row = append(row, pixel.Black)
			default:
				row = append(row, c)
			}
		}
	}
	if len(row) > 0 {
		flush()
	}
	return rows
}

func tokenColor(style *chroma.Style, tt chroma.TokenType) pixel.Color {
	entry := style.Get(tt)
	if !entry.Colour.IsSet() {
		return pixel.Color{R: 128, G: 128, B: 128}
	}
	return pixel.Color{
		R: entry.Colour.Red(),
		G: entry.Colour.Green(),
		B: entry.Colour.Blue(),
	}
}

func (a *App) Activate() {
	a.MarkDirty()
}

func (a *App) Deactivate() {}

func (a *App) Update(dt float64) {
	if len(a.rows) == 0 {
		return
	}
	a.acc += dt
	for a.acc >= scrollInterval {
		a.acc -= scrollInterval
		a.offset = (a.offset + 1) % len(a.rows)
		a.MarkDirty()
	}
}

func (a *App) BackgroundTick() {}

func (a *App) HandleEvent(ev pixel.InputEvent) bool {
	switch ev.Key {
	case pixel.KeyL1:
		a.load(a.current - 1)
		return true
	case pixel.KeyR1:
		a.load(a.current + 1)
		return true
	}
	return false
}

func (a *App) Render(s pixel.Surface) {
	defer a.ClearDirty()
	if len(a.rows) == 0 {
		_, h := s.Size()
		s.CenteredText("NO CODE", h/2-4, pixel.Red)
		return
	}

	w, h := s.Size()
	for y := 0; y < h; y++ {
		row := a.rows[(a.offset+y)%len(a.rows)]
		for x := 0; x < w && x < len(row); x++ {
			if row[x] != pixel.Black {
				s.SetPixel(x, y, row[x])
			}
		}
	}
}

// Attr exposes internals for black-box tests.
func (a *App) Attr(name string) (any, bool) {
	switch name {
	case "language":
		return a.language, true
	case "rows":
		return len(a.rows), true
	case "offset":
		return a.offset, true
	case "sample":
		return a.samples[a.current].Filename, true
	}
	return nil, false
}

func builtinSamples() []Sample {
	return []Sample{
		{
			Filename: "main.go",
			Code: strings.TrimLeft(`
package main

import "fmt"

func main() {
	for i := 0; i < 8; i++ {
		fmt.Println("pixel", i)
	}
}
`, "\n"),
		},
		{
			Filename: "glow.py",
			Code: strings.TrimLeft(`
import time

def glow(n):
    for i in range(n):
        print("pixel", i)
        time.sleep(0.1)

glow(8)
`, "\n"),
		},
	}
}
