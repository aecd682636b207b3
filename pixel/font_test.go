// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/font_test.go
// Summary: Covers TTF loading failures and the built-in face fallback.

package pixel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFaceUsable(t *testing.T) {
	face := DefaultFace()
	if face == nil {
		t.Fatal("no default face")
	}
	if face.Metrics().Height.Ceil() <= 0 {
		t.Fatal("default face has no line height")
	}
}

func TestLoadTTFMissingFile(t *testing.T) {
	if _, err := LoadTTF(filepath.Join(t.TempDir(), "nope.ttf"), 10); err == nil {
		t.Fatal("missing font file accepted")
	}
}

func TestLoadTTFRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.ttf")
	if err := os.WriteFile(path, []byte("definitely not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTTF(path, 10); err == nil {
		t.Fatal("garbage font file accepted")
	}
}

func TestSetFaceNilKeepsCurrent(t *testing.T) {
	c := NewCanvas(NewFramebuffer(64, 16))
	c.SetFace(nil)
	c.Text("HI", 2, 2, White)

	lit := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			if c.Get(x, y) == White {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("text drew nothing after SetFace(nil)")
	}
}
