// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/pixelos/main.go
// Summary: The pixelos host: loads config, wires the chosen display device,
// registers built-in apps and runs the scheduler with the launcher as home.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/framegrace/pixelos/apps/launcher"
	"github.com/framegrace/pixelos/config"
	"github.com/framegrace/pixelos/devices/fbdev"
	"github.com/framegrace/pixelos/devices/terminal"
	"github.com/framegrace/pixelos/devices/window"
	"github.com/framegrace/pixelos/pixel"
	"github.com/framegrace/pixelos/registry"

	// Built-in apps register themselves with the registry.
	_ "github.com/framegrace/pixelos/apps/clock"
	_ "github.com/framegrace/pixelos/apps/codeglow"
	_ "github.com/framegrace/pixelos/apps/qrbadge"
	_ "github.com/framegrace/pixelos/apps/snake"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("pixelos", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config file (default: user config dir)")
	device := fs.String("device", "", "Override output device: terminal, window or framebuffer")
	fbDevice := fs.String("fb", "/dev/fb0", "Framebuffer device path")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg := config.Load()
	if *configPath != "" {
		cfg = config.LoadFile(*configPath)
	}
	if *device != "" {
		cfg.Device = config.Device(*device)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Per-app log files; the process log goes to stderr via the std logger.
	loggers := newLoggerSet(cfg.LogDir)
	defer loggers.Close()

	storage, err := pixel.OpenStorage(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close()

	reg := registry.New()
	registry.RegisterBuiltIns(reg)
	if err := reg.Scan(cfg.AppsDir); err != nil {
		log.Printf("Registry scan failed: %v", err)
	}

	switch cfg.Device {
	case config.DeviceTerminal:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("stdout is not a terminal; use -device window")
		}
		return runTerminal(cfg, reg, storage, loggers)
	case config.DeviceWindow:
		return runWindow(cfg, reg, storage, loggers)
	case config.DeviceFramebuffer:
		return runFramebuffer(cfg, reg, storage, loggers, *fbDevice)
	}
	return fmt.Errorf("unknown device %q", cfg.Device)
}

func buildScheduler(cfg config.Config, display pixel.Display, input pixel.InputSource,
	reg *registry.Registry, storage pixel.StorageService, loggers *loggerSet) (*pixel.Scheduler, error) {

	sched := pixel.NewScheduler(display, input, pixel.NewWallClock())
	sched.SetStorage(storage)
	sched.SetFPS(cfg.FPS)
	sched.SetBackgroundInterval(cfg.BackgroundInterval)
	sched.SetEffects(effectsFor(cfg)...)
	applyFont(cfg, display)

	home := launcher.New(reg, sched, loggers.For, loggers.For("launcher"))
	if err := sched.SetHome(home); err != nil {
		return nil, err
	}
	if err := sched.SwitchTo(home); err != nil {
		return nil, err
	}
	return sched, nil
}

func runTerminal(cfg config.Config, reg *registry.Registry, storage pixel.StorageService, loggers *loggerSet) error {
	display, input, err := terminal.Open(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer display.Close()
	defer input.Stop()

	sched, err := buildScheduler(cfg, display, input, reg, storage, loggers)
	if err != nil {
		return err
	}
	stopOnSignal(sched)
	sched.Run()
	return nil
}

func runWindow(cfg config.Config, reg *registry.Registry, storage pixel.StorageService, loggers *loggerSet) error {
	display := window.NewDisplay(cfg.Width, cfg.Height)
	input := window.NewInput()

	sched, err := buildScheduler(cfg, display, input, reg, storage, loggers)
	if err != nil {
		return err
	}
	stopOnSignal(sched)
	return window.Run(sched, display, input, cfg.FPS)
}

func runFramebuffer(cfg config.Config, reg *registry.Registry, storage pixel.StorageService,
	loggers *loggerSet, device string) error {

	display, err := fbdev.Open(device, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer display.Close()

	input, err := fbdev.OpenInput()
	if err != nil {
		return err
	}
	defer input.Restore()

	sched, err := buildScheduler(cfg, display, input, reg, storage, loggers)
	if err != nil {
		return err
	}
	stopOnSignal(sched)
	sched.Run()
	return nil
}

// effectsFor builds the presentation chain from the config. Dim runs before
// scanlines so the scanline contrast survives dimming.
func effectsFor(cfg config.Config) []pixel.Effect {
	var effects []pixel.Effect
	if cfg.Dim > 0 {
		effects = append(effects, pixel.NewFadeEffect(pixel.Black, cfg.Dim))
	}
	if cfg.Scanlines > 0 {
		effects = append(effects, &pixel.ScanlineEffect{Level: cfg.Scanlines})
	}
	return effects
}

// fontPointSize suits 64x64 and larger matrices; the built-in bitmap face
// stays in place when no TTF is configured or loading fails.
const fontPointSize = 10

func applyFont(cfg config.Config, display pixel.Display) {
	if cfg.FontPath == "" {
		return
	}
	face, err := pixel.LoadTTF(cfg.FontPath, fontPointSize)
	if err != nil {
		log.Printf("Font: %v; keeping built-in face", err)
		return
	}
	if fs, ok := display.(pixel.FontSetter); ok {
		fs.SetFace(face)
	}
}

func stopOnSignal(sched *pixel.Scheduler) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		sched.Stop()
	}()
}
