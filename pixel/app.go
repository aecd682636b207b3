// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/app.go
// Summary: The app lifecycle contract and the Base state every app embeds.

package pixel

import "github.com/google/uuid"

// App is the lifecycle contract between an app and the Scheduler. Every hook
// is required; there are no silent defaults to forget to override. Concrete
// apps must embed Base (the unexported base method enforces it), which owns
// the name, the dirty flag and the active flag so no subclass can break the
// repaint contract by accident.
//
// Hook rules, all enforced or observed by the Scheduler:
//   - Activate/Deactivate run on foreground transitions only.
//   - Update and HandleEvent run only while active; HandleEvent returns true
//     when the event was consumed.
//   - BackgroundTick runs only while inactive, on a slow cadence.
//   - Render runs only while active and dirty, must not mutate game state,
//     and the app must clear its own dirty flag during the call.
type App interface {
	base() *Base

	Name() string
	Activate()
	Deactivate()
	Update(dt float64)
	BackgroundTick()
	HandleEvent(ev InputEvent) bool
	Render(s Surface)
}

// Base carries the scheduler-owned state of an app. Embed it by value and
// initialize it with NewBase; the zero value has no name or logger.
type Base struct {
	name    string
	id      uuid.UUID
	logger  *Logger
	dirty   bool
	active  bool
	faulted bool

	self    App
	sched   *Scheduler
	storage *AppStorage

	lastBackground float64
}

// NewBase initializes the embedded app state. The logger may be nil, in
// which case the app logs nowhere.
func NewBase(name string, logger *Logger) Base {
	return Base{name: name, id: uuid.New(), logger: logger}
}

func (b *Base) base() *Base { return b }

// Name returns the app's registered name.
func (b *Base) Name() string { return b.name }

// ID returns the unique instance id assigned at construction.
func (b *Base) ID() uuid.UUID { return b.id }

// Log returns the app's logger handle. Safe to call on a nil logger.
func (b *Base) Log() *Logger { return b.logger }

// Dirty reports whether a repaint is pending.
func (b *Base) Dirty() bool { return b.dirty }

// MarkDirty requests a repaint on the next tick's render phase.
func (b *Base) MarkDirty() { b.dirty = true }

// ClearDirty acknowledges the repaint. Apps call this from Render; an app
// that never does keeps re-rendering every tick, which the watchdog test in
// the harness is designed to catch.
func (b *Base) ClearDirty() { b.dirty = false }

// Active reports whether the app is the foreground app.
func (b *Base) Active() bool { return b.active }

// Storage returns the app's persistence handle, or nil when the scheduler
// has no storage service attached.
func (b *Base) Storage() *AppStorage { return b.storage }

// RequestForeground asks the scheduler to bring this app to the front. The
// request is queued and granted at the start of the next tick; it is never
// ignored silently (superseded requests are logged). Safe to call from
// BackgroundTick. A no-op before registration.
func (b *Base) RequestForeground() {
	if b.sched != nil && b.self != nil {
		b.sched.RequestForeground(b.self)
	}
}

// AppStorage is a StorageService view scoped to one app. Reads are
// best-effort: an error behaves like a missing key and is logged by the
// storage layer. All methods are nil-safe.
type AppStorage struct {
	svc StorageService
	app string
}

// Get returns the stored value for key, if any.
func (a *AppStorage) Get(key string) (string, bool) {
	if a == nil || a.svc == nil {
		return "", false
	}
	v, ok, err := a.svc.Get(a.app, key)
	if err != nil {
		return "", false
	}
	return v, ok
}

// Put stores value under key.
func (a *AppStorage) Put(key, value string) error {
	if a == nil || a.svc == nil {
		return nil
	}
	return a.svc.Put(a.app, key, value)
}
