// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/clock/register.go
// Summary: Registers the clock app with the pixelos registry.

package clock

import (
	"github.com/framegrace/pixelos/pixel"
	"github.com/framegrace/pixelos/registry"
)

func init() {
	registry.RegisterBuiltInProvider(func(reg *registry.Registry) (*registry.Manifest, *registry.Icon, registry.AppFactory) {
		icon := &registry.Icon{Pixels: [][]int{
			{0, 0, 1, 1, 1, 1, 0, 0},
			{0, 1, 0, 0, 0, 0, 1, 0},
			{1, 0, 0, 6, 0, 0, 0, 1},
			{1, 0, 0, 6, 0, 0, 0, 1},
			{1, 0, 0, 6, 6, 6, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 1},
			{0, 1, 0, 0, 0, 0, 1, 0},
			{0, 0, 1, 1, 1, 1, 0, 0},
		}}
		return &registry.Manifest{
				Name:        "clock",
				DisplayName: "Clock",
				Description: "Digital clock",
				Version:     "1.0.0",
				Category:    "utility",
			}, icon, func(logger *pixel.Logger) pixel.App {
				return New(logger)
			}
	})
}
