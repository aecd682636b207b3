// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/scheduler.go
// Summary: The cooperative frame loop. Owns the registered app set, the
// active-app pointer, input routing and the dirty-flag repaint contract.

package pixel

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"time"
)

// DefaultBackgroundInterval is the simulated-time cadence for
// BackgroundTick on inactive apps. Deliberately far below the frame rate.
const DefaultBackgroundInterval = 1.0

// Fault records a panic that escaped an app hook. The scheduler survives the
// fault; the host (or the test runner) decides how loudly to fail.
type Fault struct {
	App   string
	Hook  string
	Value any
	Stack []byte
}

func (f *Fault) Error() string {
	return fmt.Sprintf("app %q panicked in %s: %v", f.App, f.Hook, f.Value)
}

// Scheduler drives registered apps frame by frame. Everything runs on the
// caller's goroutine: Run loops over Tick at the nominal frame rate, tests
// call Tick directly for exact frame control.
type Scheduler struct {
	display Display
	input   InputSource
	clock   *FrameClock

	apps   []App
	byName map[string]App
	active App
	home   App

	storage StorageService
	pending []App
	fault   *Fault
	effects []Effect

	bgInterval float64
	elapsed    float64
	fps        int

	quit     chan struct{}
	stopOnce sync.Once
}

// NewScheduler wires a scheduler to its display and input source. A nil
// clock gets a wall clock; tests pass NewFixedClock for determinism.
func NewScheduler(display Display, input InputSource, clock *FrameClock) *Scheduler {
	if clock == nil {
		clock = NewWallClock()
	}
	return &Scheduler{
		display:    display,
		input:      input,
		clock:      clock,
		byName:     make(map[string]App),
		bgInterval: DefaultBackgroundInterval,
		fps:        60,
		quit:       make(chan struct{}),
	}
}

// SetStorage attaches the persistence service apps registered afterwards
// will receive through their Base.
func (s *Scheduler) SetStorage(svc StorageService) { s.storage = svc }

// SetBackgroundInterval overrides the background tick cadence in simulated
// seconds. Values <= 0 are ignored.
func (s *Scheduler) SetBackgroundInterval(seconds float64) {
	if seconds > 0 {
		s.bgInterval = seconds
	}
}

// SetFPS sets the Run loop rate. Values outside 1-240 are ignored. Fixed
// clocks carry their own step; this only paces the wall-clock loop.
func (s *Scheduler) SetFPS(fps int) {
	if fps >= 1 && fps <= 240 {
		s.fps = fps
	}
}

// SetEffects installs the presentation effect chain, applied in order after
// Render and before Show. The display must expose its framebuffer through
// Buffered; otherwise the chain is skipped.
func (s *Scheduler) SetEffects(effects ...Effect) { s.effects = effects }

// SetHome designates the app reserved system keys return to. Registers it
// if needed.
func (s *Scheduler) SetHome(app App) error {
	if _, ok := s.byName[app.Name()]; !ok {
		if err := s.Register(app); err != nil {
			return err
		}
	}
	s.home = app
	return nil
}

// Frame returns the index of the next tick to execute.
func (s *Scheduler) Frame() int { return s.clock.Frame() }

// Elapsed returns total simulated seconds across all ticks.
func (s *Scheduler) Elapsed() float64 { return s.elapsed }

// Active returns the foreground app, or nil before the first activation.
func (s *Scheduler) Active() App { return s.active }

// DisplaySize returns the dimensions of the attached display.
func (s *Scheduler) DisplaySize() (int, int) { return s.display.Size() }

// Lookup finds a registered app by name.
func (s *Scheduler) Lookup(name string) (App, bool) {
	app, ok := s.byName[name]
	return app, ok
}

// Register adds an app to the managed set. Registering two apps with the
// same name is a usage error and is rejected immediately.
func (s *Scheduler) Register(app App) error {
	name := app.Name()
	if name == "" {
		return fmt.Errorf("register: app has no name (Base not initialized?)")
	}
	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("register: app %q already registered", name)
	}
	b := app.base()
	b.self = app
	b.sched = s
	b.lastBackground = s.elapsed
	if s.storage != nil {
		b.storage = &AppStorage{svc: s.storage, app: name}
	}
	s.apps = append(s.apps, app)
	s.byName[name] = app
	log.Printf("Scheduler: registered app '%s' (%s)", name, b.id)
	return nil
}

// SwitchTo makes app the foreground app, registering it first if needed.
// This is the only way the active pointer changes. Switching to the app
// that is already active is a no-op: no Deactivate/Activate pair fires.
func (s *Scheduler) SwitchTo(app App) error {
	if app == s.active {
		return nil
	}
	if existing, ok := s.byName[app.Name()]; !ok {
		if err := s.Register(app); err != nil {
			return err
		}
	} else if existing != app {
		return fmt.Errorf("switch: a different app named %q is registered", app.Name())
	}

	if old := s.active; old != nil {
		old.base().active = false
		s.guard(old, "Deactivate", old.Deactivate)
	}
	s.active = app
	app.base().active = true
	s.guard(app, "Activate", app.Activate)
	if s.display != nil {
		s.display.Clear(Black)
	}
	return nil
}

// RequestForeground queues an attention request. Requests are drained at
// the start of the next tick; when several arrive the newest wins and the
// superseded ones are logged, never dropped silently.
func (s *Scheduler) RequestForeground(app App) {
	s.pending = append(s.pending, app)
	log.Printf("Scheduler: queued foreground request from '%s'", app.Name())
}

// Tick is the atomic unit of simulated time: grant foreground requests,
// deliver due input, update the active app, render it when dirty, then run
// any overdue background ticks.
func (s *Scheduler) Tick() {
	frame, dt := s.clock.Tick()
	s.elapsed += dt

	s.drainForeground()

	if s.input != nil {
		for _, ev := range s.input.Poll(frame) {
			consumed := false
			if a := s.active; a != nil {
				consumed = s.guardEvent(a, ev)
			}
			if !consumed {
				s.systemKey(ev.Key)
			}
		}
	}

	if a := s.active; a != nil {
		s.guard(a, "Update", func() { a.Update(dt) })
	}

	if a := s.active; a != nil && a.base().dirty {
		s.display.Clear(Black)
		s.guard(a, "Render", func() { a.Render(s.display) })
		s.applyEffects()
		s.display.Show()
	}

	for _, app := range s.apps {
		if app == s.active {
			continue
		}
		b := app.base()
		if b.faulted || s.elapsed-b.lastBackground < s.bgInterval {
			continue
		}
		b.lastBackground = s.elapsed
		s.guard(app, "BackgroundTick", app.BackgroundTick)
	}
}

// Run blocks, ticking at the nominal frame rate until Stop is called or a
// reserved quit key fires. Tests drive Tick directly instead.
func (s *Scheduler) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()
	for {
		select {
		case <-s.quit:
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Stop terminates Run. Idempotent.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
}

// Stopping reports whether Stop has been called. Display drivers that own
// their own loop (the window backend) poll this to exit.
func (s *Scheduler) Stopping() bool {
	select {
	case <-s.quit:
		return true
	default:
		return false
	}
}

// TakeFault returns the most recent app fault and clears it. The test
// runner calls this after every tick and re-raises; production hosts may
// just log it.
func (s *Scheduler) TakeFault() *Fault {
	f := s.fault
	s.fault = nil
	return f
}

// systemKey applies the reserved system actions to keys the active app
// declined: HOME returns to the home app, BACK returns home too and quits
// when already there (or when no home is set).
func (s *Scheduler) systemKey(k Key) {
	switch k {
	case KeyHome:
		if s.home != nil && s.home != s.active {
			if err := s.SwitchTo(s.home); err != nil {
				log.Printf("Scheduler: home switch failed: %v", err)
			}
		}
	case KeyBack:
		if s.home == nil || s.home == s.active {
			s.Stop()
			return
		}
		if err := s.SwitchTo(s.home); err != nil {
			log.Printf("Scheduler: home switch failed: %v", err)
		}
	}
}

func (s *Scheduler) applyEffects() {
	if len(s.effects) == 0 {
		return
	}
	b, ok := s.display.(Buffered)
	if !ok {
		return
	}
	for _, e := range s.effects {
		e.Apply(b.Buffer())
	}
}

func (s *Scheduler) drainForeground() {
	if len(s.pending) == 0 {
		return
	}
	target := s.pending[len(s.pending)-1]
	for _, p := range s.pending[:len(s.pending)-1] {
		if p != target {
			log.Printf("Scheduler: foreground request from '%s' superseded by '%s'", p.Name(), target.Name())
			p.base().logger.Warning("foreground request superseded by '%s'", target.Name())
		}
	}
	s.pending = s.pending[:0]
	if err := s.SwitchTo(target); err != nil {
		log.Printf("Scheduler: foreground request from '%s' rejected: %v", target.Name(), err)
	}
}

// guard runs an app hook, converting a panic into a recorded Fault. The
// faulting app is removed from further scheduling; everyone else keeps
// running.
func (s *Scheduler) guard(app App, hook string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.failApp(app, hook, r)
		}
	}()
	fn()
}

func (s *Scheduler) guardEvent(app App, ev InputEvent) (consumed bool) {
	defer func() {
		if r := recover(); r != nil {
			s.failApp(app, "HandleEvent", r)
			// The event died with the app; don't hand it to system handling.
			consumed = true
		}
	}()
	return app.HandleEvent(ev)
}

func (s *Scheduler) failApp(app App, hook string, val any) {
	b := app.base()
	b.faulted = true
	b.logger.Error("panic in %s: %v", hook, val)
	log.Printf("Scheduler: app '%s' panicked in %s: %v", b.name, hook, val)
	if s.active == app {
		b.active = false
		s.active = nil
	}
	s.fault = &Fault{App: b.name, Hook: hook, Value: val, Stack: debug.Stack()}
}
