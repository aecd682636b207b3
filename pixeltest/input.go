// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixeltest/input.go
// Summary: Deterministic input source. Holds (frame, key) entries and
// releases them when the scheduler reaches their frame.

package pixeltest

import (
	"sort"

	"github.com/framegrace/pixelos/pixel"
)

type scheduledInput struct {
	frame int
	seq   int
	key   pixel.Key
}

// Input replaces a live input device with a schedule of key events. It is a
// pixel.InputSource; the scheduler polls it once per tick.
type Input struct {
	entries []scheduledInput
	history []pixel.InputEvent
	nextSeq int
}

// NewInput returns an empty simulator.
func NewInput() *Input {
	return &Input{}
}

// Schedule records key for delivery at atFrame. Multiple entries may share
// a frame; they are delivered in insertion order.
func (in *Input) Schedule(key pixel.Key, atFrame int) {
	in.entries = append(in.entries, scheduledInput{frame: atFrame, seq: in.nextSeq, key: key})
	in.nextSeq++
}

// ScheduleSequence schedules keys starting at startFrame, spaced
// delayFrames apart.
func (in *Input) ScheduleSequence(keys []pixel.Key, startFrame, delayFrames int) {
	for i, key := range keys {
		in.Schedule(key, startFrame+i*delayFrames)
	}
}

// ScheduleRepeat schedules the same key count times.
func (in *Input) ScheduleRepeat(key pixel.Key, count, startFrame, delayFrames int) {
	for i := 0; i < count; i++ {
		in.Schedule(key, startFrame+i*delayFrames)
	}
}

// Poll returns and removes every entry due at currentFrame. Overdue entries
// are flushed rather than dropped.
func (in *Input) Poll(currentFrame int) []pixel.InputEvent {
	var due []scheduledInput
	rest := in.entries[:0]
	for _, e := range in.entries {
		if e.frame <= currentFrame {
			due = append(due, e)
		} else {
			rest = append(rest, e)
		}
	}
	in.entries = rest
	if len(due) == 0 {
		return nil
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].frame != due[j].frame {
			return due[i].frame < due[j].frame
		}
		return due[i].seq < due[j].seq
	})

	events := make([]pixel.InputEvent, 0, len(due))
	for _, e := range due {
		ev := pixel.InputEvent{Key: e.key, Frame: e.frame}
		events = append(events, ev)
		in.history = append(in.history, ev)
	}
	return events
}

// Peek returns the earliest scheduled entry without consuming it.
func (in *Input) Peek() (frame int, key pixel.Key, ok bool) {
	if len(in.entries) == 0 {
		return 0, "", false
	}
	best := in.entries[0]
	for _, e := range in.entries[1:] {
		if e.frame < best.frame || (e.frame == best.frame && e.seq < best.seq) {
			best = e
		}
	}
	return best.frame, best.key, true
}

// Pending returns the number of undelivered entries.
func (in *Input) Pending() int { return len(in.entries) }

// History returns every event delivered so far.
func (in *Input) History() []pixel.InputEvent { return in.history }

// Clear drops all scheduled entries.
func (in *Input) Clear() { in.entries = in.entries[:0] }
