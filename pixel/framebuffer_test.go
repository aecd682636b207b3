package pixel

import "testing"

func TestFramebufferClipsSilently(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	for _, p := range []Point{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		fb.SetPixel(p.X, p.Y, Red) // must not panic
		if got := fb.Get(p.X, p.Y); got != Black {
			t.Fatalf("out-of-bounds read at %v = %v, want black", p, got)
		}
	}
	fb.SetPixel(7, 7, Green)
	if fb.Get(7, 7) != Green {
		t.Fatal("in-bounds corner write lost")
	}
}

func TestFramebufferClearAndClone(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(Blue)
	if fb.Get(0, 0) != Blue || fb.Get(3, 3) != Blue {
		t.Fatal("clear did not fill the buffer")
	}

	cp := fb.Clone()
	if !fb.Equal(cp) {
		t.Fatal("clone differs from original")
	}
	cp.SetPixel(1, 1, Red)
	if fb.Get(1, 1) != Blue {
		t.Fatal("clone shares pixels with the original")
	}
	if fb.Equal(cp) {
		t.Fatal("Equal missed a differing pixel")
	}
}

func TestFramebufferSimilarity(t *testing.T) {
	a := NewFramebuffer(4, 4)
	b := a.Clone()
	if got := a.Similarity(b); got != 1.0 {
		t.Fatalf("identical buffers score %v, want 1.0", got)
	}

	a.Clear(Black)
	b.Clear(White)
	if got := a.Similarity(b); got != 0.0 {
		t.Fatalf("opposite buffers score %v, want 0.0", got)
	}

	if got := a.Similarity(NewFramebuffer(2, 2)); got != 0.0 {
		t.Fatalf("mismatched dimensions score %v, want 0.0", got)
	}
	if got := a.Similarity(nil); got != 0.0 {
		t.Fatalf("nil comparison score %v, want 0.0", got)
	}
}

func TestFramebufferMinimumSize(t *testing.T) {
	fb := NewFramebuffer(0, -3)
	w, h := fb.Size()
	if w != 1 || h != 1 {
		t.Fatalf("size = %dx%d, want 1x1", w, h)
	}
}

func TestColorMatchTolerance(t *testing.T) {
	base := Color{R: 100, G: 100, B: 100}
	if !base.Match(Color{R: 105, G: 95, B: 100}, 5) {
		t.Fatal("within-tolerance colors did not match")
	}
	if base.Match(Color{R: 106, G: 100, B: 100}, 5) {
		t.Fatal("out-of-tolerance red channel matched")
	}
	if !base.Match(base, 0) {
		t.Fatal("identical colors must match at zero tolerance")
	}
}

func TestPaletteColorBounds(t *testing.T) {
	if PaletteColor(0) != Black || PaletteColor(1) != White {
		t.Fatal("palette order changed")
	}
	if PaletteColor(8) != Black || PaletteColor(-1) != Black {
		t.Fatal("out-of-range palette index should read as black")
	}
}
