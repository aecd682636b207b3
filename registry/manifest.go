// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/manifest.go
// Summary: Defines the app manifest structure for the registry system.
// Usage: App directories provide a manifest.json describing their metadata.

package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest describes an application's metadata as shown by the launcher.
type Manifest struct {
	// Name is the unique identifier for this app (e.g., "snake", "clock")
	Name string `json:"name"`

	// DisplayName is the human-readable name shown in the launcher
	DisplayName string `json:"displayName"`

	// Description provides a brief explanation of what the app does
	Description string `json:"description"`

	// Version follows semantic versioning (e.g., "1.0.0")
	Version string `json:"version"`

	// Category groups apps in the launcher (e.g., "games", "utility")
	Category string `json:"category"`

	// Author is the creator's name or organization
	Author string `json:"author,omitempty"`

	// Tags are searchable keywords
	Tags []string `json:"tags,omitempty"`
}

// LoadManifest reads and parses a manifest.json file from the given directory.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "manifest.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the manifest is well-formed.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("manifest missing required field: name")
	}
	if m.DisplayName == "" {
		return fmt.Errorf("manifest missing required field: displayName")
	}
	return nil
}
