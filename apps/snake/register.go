// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/snake/register.go
// Summary: Registers the snake game with the pixelos registry.

package snake

import (
	"github.com/framegrace/pixelos/pixel"
	"github.com/framegrace/pixelos/registry"
)

// DefaultSize is used when the registry factory has no display to ask.
const DefaultSize = 64

func init() {
	registry.RegisterBuiltInProvider(func(reg *registry.Registry) (*registry.Manifest, *registry.Icon, registry.AppFactory) {
		icon := &registry.Icon{Pixels: [][]int{
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 3, 3, 3, 3, 0, 0, 0},
			{0, 0, 0, 0, 3, 0, 2, 0},
			{0, 3, 3, 3, 3, 0, 0, 0},
			{0, 3, 0, 0, 0, 0, 0, 0},
			{0, 3, 3, 3, 3, 5, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
		}}
		return &registry.Manifest{
				Name:        "snake",
				DisplayName: "Snake",
				Description: "The classic snake game",
				Version:     "1.0.0",
				Category:    "games",
			}, icon, func(logger *pixel.Logger) pixel.App {
				return New(DefaultSize, DefaultSize, logger)
			}
	})
}
