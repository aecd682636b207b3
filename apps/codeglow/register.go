// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/codeglow/register.go
// Summary: Registers the codeglow app with the pixelos registry.

package codeglow

import (
	"github.com/framegrace/pixelos/pixel"
	"github.com/framegrace/pixelos/registry"
)

func init() {
	registry.RegisterBuiltInProvider(func(reg *registry.Registry) (*registry.Manifest, *registry.Icon, registry.AppFactory) {
		icon := &registry.Icon{Pixels: [][]int{
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 3, 0, 0, 0, 0, 2, 0},
			{0, 0, 3, 0, 0, 2, 0, 0},
			{0, 0, 0, 3, 2, 0, 0, 0},
			{0, 0, 0, 2, 3, 0, 0, 0},
			{0, 0, 2, 0, 0, 3, 0, 0},
			{0, 2, 0, 0, 0, 0, 3, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
		}}
		return &registry.Manifest{
				Name:        "codeglow",
				DisplayName: "Code Glow",
				Description: "Scrolling syntax-highlighted code",
				Version:     "1.0.0",
				Category:    "ambient",
			}, icon, func(logger *pixel.Logger) pixel.App {
				return New(nil, logger)
			}
	})
}
