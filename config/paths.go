// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for pixelos configuration and data.

package config

import (
	"os"
	"path/filepath"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "pixelos"), nil
}

func configPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configName), nil
}

// dataRoot is where logs, apps and storage live by default. Falls back to
// the working directory when no home is available.
func dataRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pixelos"
	}
	return filepath.Join(home, ".local", "share", "pixelos")
}
