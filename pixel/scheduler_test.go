// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/scheduler_test.go
// Summary: Exercises the frame loop: registration, switching, the dirty
// repaint contract, input routing, background cadence and fault isolation.

package pixel

import (
	"strings"
	"testing"
)

type stubDisplay struct {
	*Canvas
	showCount int
	closed    bool
}

func newStubDisplay(w, h int) *stubDisplay {
	return &stubDisplay{Canvas: NewCanvas(NewFramebuffer(w, h))}
}

func (d *stubDisplay) Show()  { d.showCount++ }
func (d *stubDisplay) Close() { d.closed = true }

type stubInput struct {
	events map[int][]InputEvent
}

func newStubInput() *stubInput {
	return &stubInput{events: make(map[int][]InputEvent)}
}

func (s *stubInput) add(frame int, key Key) {
	s.events[frame] = append(s.events[frame], InputEvent{Key: key, Frame: frame})
}

func (s *stubInput) Poll(frame int) []InputEvent {
	evs := s.events[frame]
	delete(s.events, frame)
	return evs
}

// testApp is a scriptable App; the default hooks mark dirty on activation
// and clear it on render, the well-behaved baseline.
type testApp struct {
	Base
	activated   int
	deactivated int
	updated     int
	bgTicks     int
	rendered    int
	got         []InputEvent
	trace       []string

	onActivate func(*testApp)
	onUpdate   func(*testApp, float64)
	onRender   func(*testApp, Surface)
	onEvent    func(*testApp, InputEvent) bool
	onBg       func(*testApp)
}

func newTestApp(name string) *testApp {
	a := &testApp{}
	a.Base = NewBase(name, nil)
	return a
}

func (a *testApp) Activate() {
	a.activated++
	a.trace = append(a.trace, "activate")
	if a.onActivate != nil {
		a.onActivate(a)
		return
	}
	a.MarkDirty()
}

func (a *testApp) Deactivate() {
	a.deactivated++
	a.trace = append(a.trace, "deactivate")
}

func (a *testApp) Update(dt float64) {
	a.updated++
	a.trace = append(a.trace, "update")
	if a.onUpdate != nil {
		a.onUpdate(a, dt)
	}
}

func (a *testApp) BackgroundTick() {
	a.bgTicks++
	a.trace = append(a.trace, "background")
	if a.onBg != nil {
		a.onBg(a)
	}
}

func (a *testApp) HandleEvent(ev InputEvent) bool {
	a.got = append(a.got, ev)
	a.trace = append(a.trace, "event:"+string(ev.Key))
	if a.onEvent != nil {
		return a.onEvent(a, ev)
	}
	return true
}

func (a *testApp) Render(s Surface) {
	a.rendered++
	a.trace = append(a.trace, "render")
	if a.onRender != nil {
		a.onRender(a, s)
		return
	}
	a.ClearDirty()
}

func newTestScheduler(t *testing.T) (*Scheduler, *stubDisplay, *stubInput) {
	t.Helper()
	disp := newStubDisplay(16, 16)
	in := newStubInput()
	return NewScheduler(disp, in, NewFixedClock(60)), disp, in
}

func TestRegisterDuplicateRejected(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	if err := s.Register(newTestApp("demo")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := s.Register(newTestApp("demo")); err == nil {
		t.Fatal("expected duplicate register to fail")
	}
}

func TestSwitchToActivatesAndRegisters(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	app := newTestApp("demo")
	if err := s.SwitchTo(app); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if s.Active() != app {
		t.Fatal("app should be active")
	}
	if !app.Active() {
		t.Fatal("active flag not set")
	}
	if app.activated != 1 {
		t.Fatalf("activated %d times, want 1", app.activated)
	}
	if _, ok := s.Lookup("demo"); !ok {
		t.Fatal("switch should have registered the app")
	}
}

func TestSwitchToActiveAppIsNoop(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	app := newTestApp("demo")
	if err := s.SwitchTo(app); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if err := s.SwitchTo(app); err != nil {
		t.Fatalf("second switch: %v", err)
	}
	if app.activated != 1 || app.deactivated != 0 {
		t.Fatalf("no-op switch fired hooks: activated=%d deactivated=%d", app.activated, app.deactivated)
	}
}

func TestSwitchDeactivatesPrevious(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	a, b := newTestApp("a"), newTestApp("b")
	if err := s.SwitchTo(a); err != nil {
		t.Fatal(err)
	}
	if err := s.SwitchTo(b); err != nil {
		t.Fatal(err)
	}
	if a.deactivated != 1 || a.Active() {
		t.Fatalf("previous app not deactivated: count=%d active=%v", a.deactivated, a.Active())
	}
	if s.Active() != b || !b.Active() {
		t.Fatal("new app not active")
	}
}

func TestRenderOnlyWhenDirty(t *testing.T) {
	s, disp, _ := newTestScheduler(t)
	app := newTestApp("demo")
	app.onRender = func(a *testApp, surf Surface) {
		surf.SetPixel(5, 5, Red)
		a.ClearDirty()
	}
	if err := s.SwitchTo(app); err != nil {
		t.Fatal(err)
	}

	s.Tick()
	if got := disp.Get(5, 5); got != Red {
		t.Fatalf("pixel (5,5) = %v, want red", got)
	}
	if disp.showCount != 1 {
		t.Fatalf("show count = %d, want 1", disp.showCount)
	}

	// Clean app, no new dirtying: no further renders.
	s.Tick()
	s.Tick()
	if app.rendered != 1 || disp.showCount != 1 {
		t.Fatalf("re-rendered while clean: renders=%d shows=%d", app.rendered, disp.showCount)
	}
}

func TestAppThatNeverMarksDirtyNeverRenders(t *testing.T) {
	// The "frozen game" defect class: an empty Activate that forgets to
	// mark dirty must yield zero renders, not a crash or a blank present.
	s, disp, _ := newTestScheduler(t)
	app := newTestApp("frozen")
	app.onActivate = func(*testApp) {} // deliberately does not mark dirty
	if err := s.SwitchTo(app); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if app.rendered != 0 || disp.showCount != 0 {
		t.Fatalf("frozen app rendered: renders=%d shows=%d", app.rendered, disp.showCount)
	}
	if app.updated != 10 {
		t.Fatalf("updates = %d, want 10", app.updated)
	}
}

func TestAppThatNeverClearsDirtyRendersEveryTick(t *testing.T) {
	// Explicit, testable behaviour: a dirty flag nobody clears means a
	// render every tick. The watchdog for sloppy apps.
	s, disp, _ := newTestScheduler(t)
	app := newTestApp("sloppy")
	app.onRender = func(a *testApp, surf Surface) {} // never clears dirty
	if err := s.SwitchTo(app); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if app.rendered != 5 || disp.showCount != 5 {
		t.Fatalf("renders=%d shows=%d, want 5/5", app.rendered, disp.showCount)
	}
}

func TestEventDeliveredAtExactFrame(t *testing.T) {
	s, _, in := newTestScheduler(t)
	app := newTestApp("demo")
	if err := s.SwitchTo(app); err != nil {
		t.Fatal(err)
	}
	in.add(3, KeyRight)

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if len(app.got) != 1 {
		t.Fatalf("got %d events, want 1", len(app.got))
	}
	if app.got[0].Key != KeyRight || app.got[0].Frame != 3 {
		t.Fatalf("unexpected event %+v", app.got[0])
	}
}

func TestEventsPrecedeUpdateWithinTick(t *testing.T) {
	s, _, in := newTestScheduler(t)
	app := newTestApp("demo")
	if err := s.SwitchTo(app); err != nil {
		t.Fatal(err)
	}
	in.add(0, KeyOK)
	s.Tick()

	joined := strings.Join(app.trace, ",")
	if !strings.Contains(joined, "event:OK,update") {
		t.Fatalf("event did not precede update: %v", app.trace)
	}
}

func TestUnconsumedHomeKeyReturnsHome(t *testing.T) {
	s, _, in := newTestScheduler(t)
	home := newTestApp("launcher")
	if err := s.SetHome(home); err != nil {
		t.Fatal(err)
	}
	game := newTestApp("game")
	game.onEvent = func(*testApp, InputEvent) bool { return false }
	if err := s.SwitchTo(game); err != nil {
		t.Fatal(err)
	}

	in.add(0, KeyHome)
	s.Tick()
	if s.Active() != home {
		t.Fatalf("active = %v, want home app", s.Active().Name())
	}
}

func TestConsumedHomeKeyStaysPut(t *testing.T) {
	s, _, in := newTestScheduler(t)
	home := newTestApp("launcher")
	if err := s.SetHome(home); err != nil {
		t.Fatal(err)
	}
	game := newTestApp("game") // default handler consumes everything
	if err := s.SwitchTo(game); err != nil {
		t.Fatal(err)
	}

	in.add(0, KeyHome)
	s.Tick()
	if s.Active() != game {
		t.Fatal("consumed HOME must not switch apps")
	}
}

func TestUnconsumedBackQuitsWithoutHome(t *testing.T) {
	s, _, in := newTestScheduler(t)
	app := newTestApp("demo")
	app.onEvent = func(*testApp, InputEvent) bool { return false }
	if err := s.SwitchTo(app); err != nil {
		t.Fatal(err)
	}

	in.add(0, KeyBack)
	s.Tick()
	if !s.Stopping() {
		t.Fatal("unconsumed BACK with no home app should stop the scheduler")
	}
}

func TestBackgroundCadenceDecoupledFromFrameRate(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	a, b := newTestApp("active"), newTestApp("idle")
	if err := s.Register(b); err != nil {
		t.Fatal(err)
	}
	if err := s.SwitchTo(a); err != nil {
		t.Fatal(err)
	}

	// 65 ticks at 60 fps is ~1.08 simulated seconds: the idle app must get
	// its background tick, but nowhere near once per frame.
	for i := 0; i < 65; i++ {
		s.Tick()
	}
	if b.bgTicks < 1 {
		t.Fatal("idle app never got a background tick")
	}
	if b.bgTicks >= 65 {
		t.Fatalf("background ticks ran at frame rate: %d", b.bgTicks)
	}
	if b.updated != 0 || len(b.got) != 0 || b.rendered != 0 {
		t.Fatalf("inactive app received foreground hooks: updates=%d events=%d renders=%d",
			b.updated, len(b.got), b.rendered)
	}
	if a.bgTicks != 0 {
		t.Fatalf("active app received %d background ticks", a.bgTicks)
	}
}

func TestBackgroundFaultDoesNotStallActiveApp(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	a := newTestApp("active")
	b := newTestApp("crashy")
	b.onBg = func(*testApp) { panic("boom") }
	if err := s.Register(b); err != nil {
		t.Fatal(err)
	}
	if err := s.SwitchTo(a); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 130; i++ {
		s.Tick()
	}
	if a.updated != 130 {
		t.Fatalf("active app updates = %d, want 130", a.updated)
	}
	if b.bgTicks != 1 {
		t.Fatalf("faulted app was rescheduled: bg ticks = %d", b.bgTicks)
	}
	f := s.TakeFault()
	if f == nil || f.App != "crashy" || f.Hook != "BackgroundTick" {
		t.Fatalf("fault = %+v", f)
	}
	if s.TakeFault() != nil {
		t.Fatal("TakeFault should clear the fault")
	}
}

func TestActiveAppFaultDeactivates(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	app := newTestApp("crashy")
	app.onUpdate = func(*testApp, float64) { panic("update boom") }
	if err := s.SwitchTo(app); err != nil {
		t.Fatal(err)
	}

	s.Tick()
	if s.Active() != nil {
		t.Fatal("faulted app still active")
	}
	if app.Active() {
		t.Fatal("active flag not cleared on fault")
	}
	f := s.TakeFault()
	if f == nil || f.Hook != "Update" {
		t.Fatalf("fault = %+v", f)
	}

	// Scheduler keeps ticking without an active app.
	s.Tick()
	if app.updated != 1 {
		t.Fatalf("faulted app updated again: %d", app.updated)
	}
}

func TestForegroundRequestGrantedNextTick(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	a, b := newTestApp("front"), newTestApp("waiting")
	if err := s.Register(b); err != nil {
		t.Fatal(err)
	}
	if err := s.SwitchTo(a); err != nil {
		t.Fatal(err)
	}

	b.RequestForeground()
	if s.Active() != a {
		t.Fatal("request must not switch before the next tick")
	}
	s.Tick()
	if s.Active() != b {
		t.Fatal("request not granted at the next tick")
	}
}

func TestNewestForegroundRequestWins(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	a, b, c := newTestApp("front"), newTestApp("first"), newTestApp("second")
	for _, app := range []*testApp{b, c} {
		if err := s.Register(app); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SwitchTo(a); err != nil {
		t.Fatal(err)
	}

	b.RequestForeground()
	c.RequestForeground()
	s.Tick()
	if s.Active() != c {
		t.Fatalf("active = %s, want the newest requester", s.Active().Name())
	}
	if b.activated != 0 {
		t.Fatal("superseded requester must not be activated")
	}
}

func TestEffectsApplyBeforePresent(t *testing.T) {
	s, disp, _ := newTestScheduler(t)
	s.SetEffects(&ScanlineEffect{Level: 1})

	app := newTestApp("crt")
	app.onRender = func(a *testApp, surf Surface) {
		surf.Fill(White)
		a.ClearDirty()
	}
	if err := s.SwitchTo(app); err != nil {
		t.Fatal(err)
	}
	s.Tick()

	if disp.showCount != 1 {
		t.Fatalf("showCount = %d, want 1", disp.showCount)
	}
	if got := disp.Get(3, 0); got != White {
		t.Fatalf("even row pixel = %v, want untouched white", got)
	}
	if got := disp.Get(3, 1); got != Black {
		t.Fatalf("odd row pixel = %v, want scanline black", got)
	}
}

func TestEffectChainAppliesInOrder(t *testing.T) {
	s, disp, _ := newTestScheduler(t)
	s.SetEffects(NewFadeEffect(Red, 1), &ScanlineEffect{Level: 1})

	app := newTestApp("crt")
	app.onRender = func(a *testApp, surf Surface) {
		surf.Fill(White)
		a.ClearDirty()
	}
	if err := s.SwitchTo(app); err != nil {
		t.Fatal(err)
	}
	s.Tick()

	if got := disp.Get(3, 0); got != Red {
		t.Fatalf("even row pixel = %v, want fade target red", got)
	}
	if got := disp.Get(3, 1); got != Black {
		t.Fatalf("odd row pixel = %v, want scanline over the fade", got)
	}
}

func TestSwitchClearsDisplay(t *testing.T) {
	s, disp, _ := newTestScheduler(t)
	disp.SetPixel(1, 1, Green)
	app := newTestApp("demo")
	if err := s.SwitchTo(app); err != nil {
		t.Fatal(err)
	}
	if got := disp.Get(1, 1); got != Black {
		t.Fatalf("display not cleared on switch: %v", got)
	}
}
