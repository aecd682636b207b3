// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/input.go
// Summary: Logical input keys and the timestamped event wrapper delivered to apps.

package pixel

// Key is a logical input symbol. The named constants form a closed set;
// anything else is a raw single character (e.g. Key("a")).
type Key string

const (
	KeyUp     Key = "UP"
	KeyDown   Key = "DOWN"
	KeyLeft   Key = "LEFT"
	KeyRight  Key = "RIGHT"
	KeyOK     Key = "OK"
	KeyAction Key = "ACTION"
	KeyBack   Key = "BACK"
	KeyHome   Key = "HOME"
	KeyHelp   Key = "HELP"
	KeyL1     Key = "L1"
	KeyR1     Key = "R1"
)

// InputEvent is an immutable input value. Frame is the scheduler frame the
// event was produced for; value equality is the only identity it has.
type InputEvent struct {
	Key   Key
	Frame int
}

// InputSource produces input events. Implemented by real device readers and
// by the test input simulator. Poll returns every event due at or before
// currentFrame and must never block.
type InputSource interface {
	Poll(currentFrame int) []InputEvent
}
