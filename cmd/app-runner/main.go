// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/app-runner/main.go
// Summary: Headless development tool: runs one built-in app for a number of
// simulated frames, reports render stats and optionally writes the final
// frame as a PNG.

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/framegrace/pixelos/pixeltest"
	"github.com/framegrace/pixelos/registry"

	_ "github.com/framegrace/pixelos/apps/clock"
	_ "github.com/framegrace/pixelos/apps/codeglow"
	_ "github.com/framegrace/pixelos/apps/qrbadge"
	_ "github.com/framegrace/pixelos/apps/snake"
)

// fatalTB adapts the harness failure path to a process exit.
type fatalTB struct{}

func (fatalTB) Helper() {}

func (fatalTB) Fatalf(format string, args ...any) {
	log.Fatalf(format, args...)
}

func main() {
	appName := flag.String("app", "", "name of the built-in app to run (e.g., snake)")
	frames := flag.Int("frames", 300, "number of simulated frames")
	width := flag.Int("width", 64, "display width in pixels")
	height := flag.Int("height", 64, "display height in pixels")
	out := flag.String("out", "", "write the final frame to this PNG file")
	flag.Parse()
	if *appName == "" {
		log.Fatal("please specify -app")
	}

	reg := registry.New()
	registry.RegisterBuiltIns(reg)

	r := pixeltest.NewRunner(fatalTB{}, pixeltest.WithSize(*width, *height))
	app := reg.CreateApp(*appName, r.Logger(*appName))
	if app == nil {
		log.Fatalf("no built-in app named %q", *appName)
	}

	r.Start(app)
	r.WaitFrames(*frames)

	fmt.Printf("app:      %s\n", *appName)
	fmt.Printf("frames:   %d\n", *frames)
	fmt.Printf("presents: %d\n", r.Display().RenderCount())
	fmt.Printf("elapsed:  %.2fs simulated\n", r.Scheduler().Elapsed())
	if logs := r.Logs(*appName); logs != "" {
		fmt.Printf("log:\n%s", logs)
	}

	if *out != "" {
		if err := writePNG(*out, r.Display(), *width, *height); err != nil {
			log.Fatalf("write %s: %v", *out, err)
		}
		fmt.Printf("wrote %s\n", *out)
	}
}

func writePNG(path string, d *pixeltest.Display, w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := d.Pixel(x, y)
			img.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
