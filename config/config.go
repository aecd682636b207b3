// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Host configuration for pixelos: matrix geometry, frame rate,
// output device and data paths, loaded from a JSON file with defaults
// written back on first run.

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const configName = "config.json"

// Device names an output backend.
type Device string

const (
	DeviceTerminal    Device = "terminal"
	DeviceWindow      Device = "window"
	DeviceFramebuffer Device = "framebuffer"
)

// Config is the host configuration. Zero values are filled from defaults at
// load time, so a partial file is fine.
type Config struct {
	// Width and Height are the matrix dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// FPS is the nominal frame rate of the scheduler loop.
	FPS int `json:"fps"`

	// Device selects the output backend: terminal, window or framebuffer.
	Device Device `json:"device"`

	// BackgroundInterval is the seconds between background ticks for
	// inactive apps.
	BackgroundInterval float64 `json:"backgroundInterval"`

	// LogDir receives one append-only log file per app.
	LogDir string `json:"logDir"`

	// AppsDir is scanned for external app manifests.
	AppsDir string `json:"appsDir"`

	// StoragePath is the sqlite database for app key/value storage.
	StoragePath string `json:"storagePath"`

	// FontPath optionally points at a TTF file replacing the built-in
	// bitmap font.
	FontPath string `json:"fontPath,omitempty"`

	// Dim darkens every presented frame toward black, 0 (off) to 1.
	Dim float64 `json:"dim,omitempty"`

	// Scanlines darkens alternate rows for a CRT look, 0 (off) to 1.
	Scanlines float64 `json:"scanlines,omitempty"`
}

// Default returns the stock configuration rooted under the user data dirs.
func Default() Config {
	root := dataRoot()
	return Config{
		Width:              64,
		Height:             64,
		FPS:                60,
		Device:             DeviceTerminal,
		BackgroundInterval: 1.0,
		LogDir:             filepath.Join(root, "logs"),
		AppsDir:            filepath.Join(root, "apps"),
		StoragePath:        filepath.Join(root, "storage.db"),
	}
}

// Load reads the config file under the user config dir, creating it with
// defaults on first run. A broken file is logged and replaced by defaults in
// memory; it is never overwritten.
func Load() Config {
	path, err := configPath()
	if err != nil {
		log.Printf("Config: No config dir available: %v", err)
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads the config at path, filling missing fields with defaults.
// If the file does not exist the defaults are written there, best effort.
func LoadFile(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if werr := cfg.writeTo(path); werr != nil {
			log.Printf("Config: Could not write defaults to %s: %v", path, werr)
		}
		return cfg
	}
	if err != nil {
		log.Printf("Config: Failed to read %s: %v", path, err)
		return cfg
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("Config: Failed to parse %s: %v", path, err)
		return Default()
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		log.Printf("Config: Invalid config in %s: %v", path, err)
		return Default()
	}
	return cfg
}

// Validate rejects values the runtime cannot work with.
func (c *Config) Validate() error {
	if c.Width < 8 || c.Height < 8 {
		return fmt.Errorf("matrix size %dx%d too small, need at least 8x8", c.Width, c.Height)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("fps %d out of range 1-240", c.FPS)
	}
	switch c.Device {
	case DeviceTerminal, DeviceWindow, DeviceFramebuffer:
	default:
		return fmt.Errorf("unknown device %q", c.Device)
	}
	if c.BackgroundInterval <= 0 {
		return fmt.Errorf("backgroundInterval must be positive")
	}
	if c.Dim < 0 || c.Dim > 1 {
		return fmt.Errorf("dim %g out of range 0-1", c.Dim)
	}
	if c.Scanlines < 0 || c.Scanlines > 1 {
		return fmt.Errorf("scanlines %g out of range 0-1", c.Scanlines)
	}
	return nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.FPS == 0 {
		c.FPS = def.FPS
	}
	if c.Device == "" {
		c.Device = def.Device
	}
	if c.BackgroundInterval == 0 {
		c.BackgroundInterval = def.BackgroundInterval
	}
	if c.LogDir == "" {
		c.LogDir = def.LogDir
	}
	if c.AppsDir == "" {
		c.AppsDir = def.AppsDir
	}
	if c.StoragePath == "" {
		c.StoragePath = def.StoragePath
	}
}

func (c Config) writeTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
