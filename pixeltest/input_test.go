package pixeltest

import (
	"testing"

	"github.com/framegrace/pixelos/pixel"
)

func TestPollReleasesOnlyDueEvents(t *testing.T) {
	in := NewInput()
	in.Schedule(pixel.KeyUp, 2)
	in.Schedule(pixel.KeyDown, 5)

	if got := in.Poll(0); got != nil {
		t.Fatalf("frame 0 released %v", got)
	}
	got := in.Poll(2)
	if len(got) != 1 || got[0].Key != pixel.KeyUp || got[0].Frame != 2 {
		t.Fatalf("frame 2 released %v", got)
	}
	if in.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", in.Pending())
	}
	if got := in.Poll(2); got != nil {
		t.Fatal("released event delivered twice")
	}
}

func TestPollPreservesOrderWithinFrame(t *testing.T) {
	in := NewInput()
	in.Schedule(pixel.KeyLeft, 3)
	in.Schedule(pixel.KeyRight, 3)
	in.Schedule(pixel.KeyOK, 3)

	got := in.Poll(3)
	want := []pixel.Key{pixel.KeyLeft, pixel.KeyRight, pixel.KeyOK}
	if len(got) != 3 {
		t.Fatalf("released %d events, want 3", len(got))
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Fatalf("event %d = %s, want %s", i, got[i].Key, k)
		}
	}
}

func TestScheduleSequenceSpacing(t *testing.T) {
	in := NewInput()
	in.ScheduleSequence([]pixel.Key{pixel.KeyUp, pixel.KeyUp, pixel.KeyOK}, 10, 4)

	for frame, want := range map[int]pixel.Key{10: pixel.KeyUp, 14: pixel.KeyUp, 18: pixel.KeyOK} {
		got := in.Poll(frame)
		if len(got) != 1 || got[0].Key != want {
			t.Fatalf("frame %d released %v, want %s", frame, got, want)
		}
	}
}

func TestScheduleRepeat(t *testing.T) {
	in := NewInput()
	in.ScheduleRepeat(pixel.KeyRight, 3, 0, 2)
	total := 0
	for f := 0; f <= 4; f++ {
		total += len(in.Poll(f))
	}
	if total != 3 || in.Pending() != 0 {
		t.Fatalf("delivered %d events with %d pending, want 3 and 0", total, in.Pending())
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	in := NewInput()
	in.Schedule(pixel.KeyBack, 7)
	frame, key, ok := in.Peek()
	if !ok || frame != 7 || key != pixel.KeyBack {
		t.Fatalf("Peek = (%d, %s, %v)", frame, key, ok)
	}
	if in.Pending() != 1 {
		t.Fatal("Peek consumed the entry")
	}
}

func TestHistoryAndClear(t *testing.T) {
	in := NewInput()
	in.Schedule(pixel.KeyOK, 1)
	in.Schedule(pixel.KeyBack, 9)
	in.Poll(1)
	in.Clear()
	if in.Pending() != 0 {
		t.Fatal("Clear left entries behind")
	}
	h := in.History()
	if len(h) != 1 || h[0].Key != pixel.KeyOK {
		t.Fatalf("history = %v", h)
	}
}
