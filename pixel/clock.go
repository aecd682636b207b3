package pixel

import "time"

// FrameClock produces the monotonically increasing frame counter and the
// per-tick delta. A fixed-step clock makes test runs exactly reproducible;
// the wall clock variant is used by Scheduler.Run in production.
type FrameClock struct {
	frame int
	step  float64 // fixed step in seconds, 0 = wall clock
	last  time.Time
}

// NewFixedClock returns a clock that always reports a delta of 1/fps.
func NewFixedClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	return &FrameClock{step: 1.0 / float64(fps)}
}

// NewWallClock returns a clock that measures real elapsed time per tick.
// The first tick reports a zero delta.
func NewWallClock() *FrameClock {
	return &FrameClock{}
}

// Frame returns the index of the next tick to execute. It starts at zero
// and increases by exactly one per Tick call.
func (c *FrameClock) Frame() int { return c.frame }

// Tick returns the current frame index and the elapsed delta in seconds,
// then advances the counter. The delta is never negative.
func (c *FrameClock) Tick() (frame int, dt float64) {
	frame = c.frame
	c.frame++

	if c.step > 0 {
		return frame, c.step
	}

	now := time.Now()
	if !c.last.IsZero() {
		dt = now.Sub(c.last).Seconds()
		if dt < 0 {
			dt = 0
		}
	}
	c.last = now
	return frame, dt
}
