// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: devices/fbdev/fbdev_other.go
// Summary: Stub for platforms without a Linux framebuffer device.

//go:build !linux

package fbdev

import (
	"fmt"

	"github.com/framegrace/pixelos/pixel"
)

// Display is unavailable off Linux.
type Display struct {
	*pixel.Canvas
}

// Input is unavailable off Linux.
type Input struct{}

// Open always fails on this platform.
func Open(device string, width, height int) (*Display, error) {
	return nil, fmt.Errorf("framebuffer device not supported on this platform")
}

// OpenInput always fails on this platform.
func OpenInput() (*Input, error) {
	return nil, fmt.Errorf("framebuffer input not supported on this platform")
}

func (d *Display) Show()  {}
func (d *Display) Close() {}

func (in *Input) Poll(currentFrame int) []pixel.InputEvent { return nil }
func (in *Input) Restore()                                 {}
