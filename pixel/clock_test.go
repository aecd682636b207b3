package pixel

import "testing"

func TestFixedClockDeterministic(t *testing.T) {
	c := NewFixedClock(60)
	want := 1.0 / 60.0
	for i := 0; i < 5; i++ {
		if got := c.Frame(); got != i {
			t.Fatalf("Frame() before tick %d = %d", i, got)
		}
		frame, dt := c.Tick()
		if frame != i {
			t.Fatalf("tick %d reported frame %d", i, frame)
		}
		if dt != want {
			t.Fatalf("tick %d dt = %v, want %v", i, dt, want)
		}
	}
	if c.Frame() != 5 {
		t.Fatalf("Frame() after 5 ticks = %d", c.Frame())
	}
}

func TestFixedClockRejectsBadRate(t *testing.T) {
	c := NewFixedClock(0)
	_, dt := c.Tick()
	if dt != 1.0/60.0 {
		t.Fatalf("zero fps fallback dt = %v, want 1/60", dt)
	}
}

func TestWallClockFirstTickZeroDelta(t *testing.T) {
	c := NewWallClock()
	frame, dt := c.Tick()
	if frame != 0 || dt != 0 {
		t.Fatalf("first wall tick = (%d, %v), want (0, 0)", frame, dt)
	}
	_, dt = c.Tick()
	if dt < 0 {
		t.Fatalf("wall clock reported negative delta %v", dt)
	}
}
