// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/launcher/register.go
// Summary: Registers the launcher app with the pixelos registry.
//
// The launcher needs the scheduler and the registry it lists, so its
// init-time factory is only a placeholder for the manifest; hosts construct
// the real instance with New and hand it to Scheduler.SetHome.

package launcher

import (
	"github.com/framegrace/pixelos/pixel"
	"github.com/framegrace/pixelos/registry"
)

func init() {
	registry.RegisterBuiltInProvider(func(reg *registry.Registry) (*registry.Manifest, *registry.Icon, registry.AppFactory) {
		icon := &registry.Icon{Pixels: [][]int{
			{1, 1, 1, 0, 0, 1, 1, 1},
			{1, 5, 1, 0, 0, 1, 3, 1},
			{1, 1, 1, 0, 0, 1, 1, 1},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0},
			{1, 1, 1, 0, 0, 1, 1, 1},
			{1, 2, 1, 0, 0, 1, 6, 1},
			{1, 1, 1, 0, 0, 1, 1, 1},
		}}
		return &registry.Manifest{
				Name:        "launcher",
				DisplayName: "Launcher",
				Description: "Application launcher",
				Version:     "1.0.0",
				Category:    "system",
			}, icon, func(logger *pixel.Logger) pixel.App {
				return nil
			}
	})
}
