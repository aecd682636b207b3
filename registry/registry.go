// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: Implements the app registry for discovering and managing apps.
// Usage: The launcher lists entries; the host scans an app directory and
// registers compiled-in built-ins.

package registry

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/framegrace/pixelos/pixel"
)

// AppFactory creates a new app instance logging through the given logger.
type AppFactory func(logger *pixel.Logger) pixel.App

// AppEntry represents a discovered application with its metadata and factory.
type AppEntry struct {
	Manifest *Manifest
	Icon     *Icon
	Dir      string
	Factory  AppFactory
}

// Registry manages the collection of available applications. Built-in apps
// take priority over scanned apps with the same name.
type Registry struct {
	mu      sync.RWMutex
	apps    map[string]*AppEntry
	builtIn map[string]*AppEntry
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		apps:    make(map[string]*AppEntry),
		builtIn: make(map[string]*AppEntry),
	}
}

// RegisterBuiltIn registers an app compiled into the binary.
func (r *Registry) RegisterBuiltIn(manifest *Manifest, icon *Icon, factory AppFactory) error {
	if manifest == nil || factory == nil {
		return fmt.Errorf("built-in registration needs a manifest and a factory")
	}
	if err := manifest.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if icon == nil {
		icon = PlaceholderIcon()
	}
	r.builtIn[manifest.Name] = &AppEntry{
		Manifest: manifest,
		Icon:     icon,
		Factory:  factory,
	}
	log.Printf("Registry: Registered built-in app '%s'", manifest.Name)
	return nil
}

// Scan searches for app metadata in subdirectories of baseDir, each holding
// a manifest.json and optionally an icon.json. A missing directory is not an
// error; a broken app directory is logged and skipped.
//
// Scanned entries carry no factory: metadata-only apps show in the launcher
// as "coming soon" until a built-in claims the name.
func (r *Registry) Scan(baseDir string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.apps = make(map[string]*AppEntry)

	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		log.Printf("Registry: App directory does not exist: %s", baseDir)
		return nil
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return fmt.Errorf("read app directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		appDir := filepath.Join(baseDir, entry.Name())
		if err := r.loadApp(appDir); err != nil {
			log.Printf("Registry: Failed to load app from %s: %v", appDir, err)
		}
	}

	log.Printf("Registry: Loaded %d external apps, %d built-in apps", len(r.apps), len(r.builtIn))
	return nil
}

func (r *Registry) loadApp(dir string) error {
	manifest, err := LoadManifest(dir)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	icon, err := LoadIcon(dir)
	if err != nil {
		log.Printf("Registry: Bad icon for '%s': %v", manifest.Name, err)
		icon = nil
	}
	if icon == nil {
		icon = PlaceholderIcon()
	}

	r.apps[manifest.Name] = &AppEntry{
		Manifest: manifest,
		Icon:     icon,
		Dir:      dir,
	}
	log.Printf("Registry: Loaded app '%s' (%s) from %s", manifest.Name, manifest.DisplayName, dir)
	return nil
}

// Get retrieves an app entry by name, built-ins first. Returns nil if the
// app doesn't exist.
func (r *Registry) Get(name string) *AppEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if entry, ok := r.builtIn[name]; ok {
		return entry
	}
	return r.apps[name]
}

// List returns all available apps sorted by display name. A built-in shadows
// a scanned app with the same name.
func (r *Registry) List() []*AppEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*AppEntry
	for _, entry := range r.builtIn {
		entries = append(entries, entry)
	}
	for name, entry := range r.apps {
		if _, shadowed := r.builtIn[name]; !shadowed {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Manifest.DisplayName < entries[j].Manifest.DisplayName
	})
	return entries
}

// ListByCategory returns apps grouped by category, "other" for the untagged.
func (r *Registry) ListByCategory() map[string][]*AppEntry {
	categories := make(map[string][]*AppEntry)
	for _, entry := range r.List() {
		category := entry.Manifest.Category
		if category == "" {
			category = "other"
		}
		categories[category] = append(categories[category], entry)
	}
	return categories
}

// CreateApp creates a new instance of the named app with the given logger.
// Returns nil if the app doesn't exist or is metadata-only.
func (r *Registry) CreateApp(name string, logger *pixel.Logger) pixel.App {
	entry := r.Get(name)
	if entry == nil {
		log.Printf("Registry: App not found: %s", name)
		return nil
	}
	if entry.Factory == nil {
		log.Printf("Registry: App '%s' has no factory", name)
		return nil
	}
	return entry.Factory(logger)
}

// Count returns the total number of registered apps.
func (r *Registry) Count() int {
	return len(r.List())
}
