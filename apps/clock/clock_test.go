package clock

import (
	"testing"
	"time"

	"github.com/framegrace/pixelos/pixel"
	"github.com/framegrace/pixelos/pixeltest"
)

func newFixedClock(t *testing.T, r *pixeltest.Runner) *App {
	t.Helper()
	app := New(r.Logger("clock"))
	// Deterministic wall time: advances one second every 60 ticks.
	base := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	start := r.Frame()
	app.now = func() time.Time {
		return base.Add(time.Duration(r.Frame()-start) * time.Second / 60)
	}
	return app
}

func TestClockRendersOncePerSecond(t *testing.T) {
	r := pixeltest.NewRunner(t)
	app := newFixedClock(t, r)
	r.Start(app)

	r.WaitFrames(30) // still within the same second
	first := r.Display().RenderCount()
	if first < 1 {
		t.Fatal("clock never rendered")
	}
	r.WaitFrames(29)
	if got := r.Display().RenderCount(); got != first {
		t.Fatalf("render count rose to %d within one second", got)
	}

	r.WaitFrames(60)
	if got := r.Display().RenderCount(); got != first+1 {
		t.Fatalf("render count = %d after second rollover, want %d", got, first+1)
	}
}

func TestClockShowsTimeAndDate(t *testing.T) {
	r := pixeltest.NewRunner(t)
	app := newFixedClock(t, r)
	r.Start(app)
	r.WaitFrames(1)

	r.AssertTextVisible("10:30:00")
	r.AssertTextVisible("2026-08-25")
	r.AssertAttr("time", "10:30:00")
}

func TestClockFormatTogglePersists(t *testing.T) {
	r := pixeltest.NewRunner(t)
	app := newFixedClock(t, r)
	r.Start(app)
	r.WaitFrames(1)
	r.AssertAttr("format24", true)

	r.Inject(pixel.KeyAction)
	r.WaitFrames(1)
	r.AssertAttr("format24", false)
	if v, ok, _ := r.Storage().Get("clock", "format"); !ok || v != "12h" {
		t.Fatalf("format not persisted: (%q, %v)", v, ok)
	}

	// A fresh instance picks the stored format up on activation.
	r2 := pixeltest.NewRunner(t)
	if err := r2.Storage().Put("clock", "format", "12h"); err != nil {
		t.Fatal(err)
	}
	r2.Start(newFixedClock(t, r2))
	r2.WaitFrames(1)
	r2.AssertAttr("format24", false)
}

func TestClockIgnoresNavigationKeys(t *testing.T) {
	r := pixeltest.NewRunner(t)
	r.Start(newFixedClock(t, r))
	r.WaitFrames(1)
	r.Inject(pixel.KeyUp)
	r.WaitFrames(1) // unconsumed, and UP is not reserved: nothing happens
	if r.Scheduler().Active().Name() != "clock" {
		t.Fatal("clock lost focus over a plain key")
	}
}
