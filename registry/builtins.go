// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/builtins.go
// Summary: Supports init-time registration of built-in apps.

package registry

import (
	"log"
	"sync"
)

// BuiltInProvider returns a manifest, icon and factory for a registry
// instance. A nil manifest or factory skips the provider.
type BuiltInProvider func(reg *Registry) (*Manifest, *Icon, AppFactory)

var (
	builtInMu        sync.RWMutex
	builtInProviders []BuiltInProvider
)

// RegisterBuiltInProvider registers an init-time built-in provider.
func RegisterBuiltInProvider(provider BuiltInProvider) {
	if provider == nil {
		return
	}
	builtInMu.Lock()
	builtInProviders = append(builtInProviders, provider)
	builtInMu.Unlock()
}

// RegisterBuiltIns registers all init-time built-ins into the provided registry.
func RegisterBuiltIns(reg *Registry) {
	if reg == nil {
		return
	}
	builtInMu.RLock()
	providers := append([]BuiltInProvider(nil), builtInProviders...)
	builtInMu.RUnlock()

	for _, provider := range providers {
		manifest, icon, factory := provider(reg)
		if manifest == nil || factory == nil {
			continue
		}
		if err := reg.RegisterBuiltIn(manifest, icon, factory); err != nil {
			log.Printf("Registry: built-in '%s' rejected: %v", manifest.Name, err)
		}
	}
}
