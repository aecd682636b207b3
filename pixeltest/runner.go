// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixeltest/runner.go
// Summary: The fluent harness: scheduler + headless display + input
// simulator + log recorder, driven frame by frame with assertions on the
// resulting pixel and log state.

package pixeltest

import (
	"strings"

	"github.com/framegrace/pixelos/pixel"
)

// TB is the slice of testing.TB the runner needs. Non-test hosts (the
// app-runner tool) can satisfy it with a panicking adapter.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Option configures a Runner.
type Option func(*Runner)

// WithSize sets the headless display dimensions (default 64×64).
func WithSize(width, height int) Option {
	return func(r *Runner) { r.width, r.height = width, height }
}

// WithFPS sets the nominal frame rate used to convert seconds to ticks
// (default 60).
func WithFPS(fps int) Option {
	return func(r *Runner) {
		if fps > 0 {
			r.fps = fps
		}
	}
}

// WithBackgroundInterval overrides the scheduler's background tick cadence.
func WithBackgroundInterval(seconds float64) Option {
	return func(r *Runner) { r.bgInterval = seconds }
}

// Runner runs apps deterministically: simulated ticks only, no wall-clock
// sleeping, input injected at exact frames. Faults recovered by the
// scheduler are re-raised here so a crashing hook fails the test loudly.
type Runner struct {
	t TB

	width, height int
	fps           int
	bgInterval    float64

	sched   *pixel.Scheduler
	display *Display
	input   *Input
	logs    *LogRecorder
	storage *pixel.MemoryStorage

	app       pixel.App
	snapshots map[string]*pixel.Framebuffer
}

// NewRunner builds a wired harness. The scheduler uses a fixed-step clock,
// so a tick is always exactly 1/fps simulated seconds.
func NewRunner(t TB, opts ...Option) *Runner {
	r := &Runner{
		t:         t,
		width:     64,
		height:    64,
		fps:       60,
		logs:      NewLogRecorder(),
		storage:   pixel.NewMemoryStorage(),
		snapshots: make(map[string]*pixel.Framebuffer),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.display = NewDisplay(r.width, r.height)
	r.input = NewInput()
	r.sched = pixel.NewScheduler(r.display, r.input, pixel.NewFixedClock(r.fps))
	r.sched.SetStorage(r.storage)
	if r.bgInterval > 0 {
		r.sched.SetBackgroundInterval(r.bgInterval)
	}
	return r
}

// Scheduler exposes the underlying scheduler for direct control.
func (r *Runner) Scheduler() *pixel.Scheduler { return r.sched }

// Display exposes the headless adapter for inspection.
func (r *Runner) Display() *Display { return r.display }

// Input exposes the input simulator for explicit scheduling.
func (r *Runner) Input() *Input { return r.input }

// Logger returns a recording logger for the named app. Construct apps with
// it so log assertions can see their output.
func (r *Runner) Logger(app string) *pixel.Logger { return r.logs.Logger(app) }

// Storage exposes the in-memory storage service the scheduler hands to apps.
func (r *Runner) Storage() *pixel.MemoryStorage { return r.storage }

// Start registers and activates the app under test.
func (r *Runner) Start(app pixel.App) {
	r.t.Helper()
	r.app = app
	if err := r.sched.SwitchTo(app); err != nil {
		r.t.Fatalf("start %s: %v", app.Name(), err)
	}
	r.checkFault()
}

// App returns the app most recently handed to Start.
func (r *Runner) App() pixel.App { return r.app }

// Frame returns the index of the next tick to execute.
func (r *Runner) Frame() int { return r.sched.Frame() }

func (r *Runner) tick() {
	r.t.Helper()
	r.sched.Tick()
	r.checkFault()
}

func (r *Runner) checkFault() {
	r.t.Helper()
	if f := r.sched.TakeFault(); f != nil {
		r.t.Fatalf("%v\n%s", f, f.Stack)
	}
}

// WaitFrames advances exactly n full ticks.
func (r *Runner) WaitFrames(n int) {
	r.t.Helper()
	for i := 0; i < n; i++ {
		r.tick()
	}
}

// Wait advances the equivalent of seconds at the nominal frame rate.
func (r *Runner) Wait(seconds float64) {
	r.t.Helper()
	r.WaitFrames(int(seconds*float64(r.fps) + 0.5))
}

// Inject schedules key for the upcoming tick, never the current one, so a
// hook running inside an in-progress tick can never see it early.
func (r *Runner) Inject(key pixel.Key) {
	r.input.Schedule(key, r.sched.Frame())
}

// InjectSequence schedules keys spaced delayFrames apart starting at the
// upcoming tick.
func (r *Runner) InjectSequence(keys []pixel.Key, delayFrames int) {
	r.input.ScheduleSequence(keys, r.sched.Frame(), delayFrames)
}

// WaitUntil ticks until pred returns true, re-evaluating after every tick.
// On timeout it fails with the number of elapsed ticks.
func (r *Runner) WaitUntil(pred func() bool, timeoutSeconds float64) {
	r.t.Helper()
	if pred() {
		return
	}
	maxTicks := int(timeoutSeconds*float64(r.fps) + 0.5)
	for i := 0; i < maxTicks; i++ {
		r.tick()
		if pred() {
			return
		}
	}
	r.t.Fatalf("condition not met after %d ticks (%.2fs simulated)", maxTicks, timeoutSeconds)
}

// WaitForText waits until s has been drawn to the display.
func (r *Runner) WaitForText(s string, timeoutSeconds float64) {
	r.t.Helper()
	r.WaitUntil(func() bool { return r.display.TextDrawn(s) }, timeoutSeconds)
}

// WaitForStill ticks until the display has stopped changing for duration
// seconds, giving up after timeout.
func (r *Runner) WaitForStill(duration, timeoutSeconds float64) {
	r.t.Helper()
	need := int(duration*float64(r.fps) + 0.5)
	maxTicks := int(timeoutSeconds*float64(r.fps) + 0.5)
	stable := 0
	for i := 0; i < maxTicks; i++ {
		r.tick()
		if r.display.IsChanging(2) {
			stable = 0
		} else {
			stable++
		}
		if stable >= need {
			return
		}
	}
	r.t.Fatalf("display still changing after %d ticks (%.2fs simulated)", maxTicks, timeoutSeconds)
}

// FindSprite locates the centroid of the largest blob of a color, the
// black-box way of tracking an app object on screen.
func (r *Runner) FindSprite(c pixel.Color, tolerance int) (x, y float64, ok bool) {
	blobs := r.display.FindBlobs(c, tolerance, 4)
	if len(blobs) == 0 {
		return 0, 0, false
	}
	largest := blobs[0]
	for _, b := range blobs[1:] {
		if len(b) > len(largest) {
			largest = b
		}
	}
	x, y = Centroid(largest)
	return x, y, true
}

// TakeSnapshot stores a named copy of the current buffer.
func (r *Runner) TakeSnapshot(name string) {
	r.snapshots[name] = r.display.Snapshot()
}

// AssertSnapshotMatches fails unless the current buffer is within tolerance
// of the named snapshot (similarity >= 1-tolerance).
func (r *Runner) AssertSnapshotMatches(name string, tolerance float64) {
	r.t.Helper()
	snap, ok := r.snapshots[name]
	if !ok {
		r.t.Fatalf("no snapshot named %q", name)
	}
	required := 1.0 - tolerance
	got := r.display.Compare(snap)
	if got < required {
		r.t.Fatalf("display does not match snapshot %q: similarity %.4f, required %.4f", name, got, required)
	}
}

// AssertPixel fails unless the pixel at (x, y) matches want within a
// per-channel tolerance.
func (r *Runner) AssertPixel(x, y int, want pixel.Color, tolerance int) {
	r.t.Helper()
	got := r.display.Pixel(x, y)
	if !got.Match(want, tolerance) {
		r.t.Fatalf("pixel (%d,%d) = %v, expected %v (tolerance %d)", x, y, got, want, tolerance)
	}
}

// AssertRenderCountMin fails unless at least min presents completed.
func (r *Runner) AssertRenderCountMin(min int) {
	r.t.Helper()
	if got := r.display.RenderCount(); got < min {
		r.t.Fatalf("render count = %d, expected at least %d", got, min)
	}
}

// AssertTextVisible fails unless s was drawn, listing what was.
func (r *Runner) AssertTextVisible(s string) {
	r.t.Helper()
	if !r.display.TextDrawn(s) {
		r.t.Fatalf("text %q not drawn; drawn texts: %v", s, r.display.TextCalls())
	}
}

// AssertBlobCount fails unless exactly want blobs of the color exist.
func (r *Runner) AssertBlobCount(c pixel.Color, tolerance, minSize, want int) {
	r.t.Helper()
	got := len(r.display.FindBlobs(c, tolerance, minSize))
	if got != want {
		r.t.Fatalf("found %d blobs of %v (min size %d), expected %d", got, c, minSize, want)
	}
}

// AppAttr reads a named attribute from the app under test through the
// optional introspection capability.
func (r *Runner) AppAttr(name string) (any, bool) {
	intr, ok := r.app.(pixel.Introspector)
	if !ok {
		return nil, false
	}
	return intr.Attr(name)
}

// AssertAttr fails unless the app exposes name with exactly the value want.
func (r *Runner) AssertAttr(name string, want any) {
	r.t.Helper()
	got, ok := r.AppAttr(name)
	if !ok {
		r.t.Fatalf("app %s does not expose attribute %q", r.app.Name(), name)
	}
	if got != want {
		r.t.Fatalf("attribute %q = %v, expected %v", name, got, want)
	}
}

// MarkLogs scopes later log reads and assertions for app to entries written
// from now on.
func (r *Runner) MarkLogs(app string) { r.logs.Mark(app) }

// Logs returns app's log text since the last MarkLogs (or all of it).
func (r *Runner) Logs(app string) string { return r.logs.Since(app) }

// AssertLogContains fails unless app's scoped log contains text.
func (r *Runner) AssertLogContains(app, text string) {
	r.t.Helper()
	logs := r.logs.Since(app)
	if !strings.Contains(logs, text) {
		tail := logs
		if len(tail) > 500 {
			tail = tail[len(tail)-500:]
		}
		r.t.Fatalf("log for %q does not contain %q; recent logs:\n%s", app, text, tail)
	}
}

// AssertNoErrorsLogged fails if any ERROR line appears in app's scoped log.
func (r *Runner) AssertNoErrorsLogged(app string) {
	r.t.Helper()
	var errLines []string
	for _, line := range strings.Split(r.logs.Since(app), "\n") {
		if strings.Contains(line, "ERROR") {
			errLines = append(errLines, line)
		}
	}
	if len(errLines) > 0 {
		r.t.Fatalf("found %d error line(s) in %q logs:\n%s", len(errLines), app, strings.Join(errLines, "\n"))
	}
}
