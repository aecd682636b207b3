// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/qrbadge/register.go
// Summary: Registers the QR badge app with the pixelos registry.

package qrbadge

import (
	"github.com/framegrace/pixelos/pixel"
	"github.com/framegrace/pixelos/registry"
)

// DefaultPayload is shown until a host configures something better.
const DefaultPayload = "https://github.com/framegrace/pixelos"

func init() {
	registry.RegisterBuiltInProvider(func(reg *registry.Registry) (*registry.Manifest, *registry.Icon, registry.AppFactory) {
		icon := &registry.Icon{Pixels: [][]int{
			{1, 1, 1, 0, 0, 1, 1, 1},
			{1, 0, 1, 0, 1, 1, 0, 1},
			{1, 1, 1, 0, 0, 1, 1, 1},
			{0, 0, 0, 1, 0, 0, 0, 0},
			{1, 0, 1, 0, 1, 0, 1, 1},
			{1, 1, 1, 0, 0, 1, 0, 0},
			{1, 0, 1, 0, 1, 0, 1, 0},
			{1, 1, 1, 0, 0, 1, 0, 1},
		}}
		return &registry.Manifest{
				Name:        "qrbadge",
				DisplayName: "QR Badge",
				Description: "Show a QR code badge",
				Version:     "1.0.0",
				Category:    "utility",
			}, icon, func(logger *pixel.Logger) pixel.App {
				return New(DefaultPayload, logger)
			}
	})
}
