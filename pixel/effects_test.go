package pixel

import "testing"

func TestFadeEffectLevels(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(White)

	NewFadeEffect(Black, 0).Apply(fb)
	if fb.Get(0, 0) != White {
		t.Fatal("zero-level fade changed the buffer")
	}

	NewFadeEffect(Black, 1).Apply(fb)
	if fb.Get(0, 0) != Black {
		t.Fatalf("full fade left %v, want black", fb.Get(0, 0))
	}

	fb.Clear(White)
	NewFadeEffect(Black, 0.5).Apply(fb)
	got := fb.Get(2, 2)
	if !got.Match(Color{R: 128, G: 128, B: 128}, 10) {
		t.Fatalf("half fade produced %v, want mid gray", got)
	}
}

func TestScanlineEffectDarkensOddRowsOnly(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(White)
	(&ScanlineEffect{Level: 1}).Apply(fb)

	for y := 0; y < 4; y++ {
		got := fb.Get(1, y)
		if y%2 == 0 && got != White {
			t.Fatalf("even row %d changed to %v", y, got)
		}
		if y%2 == 1 && got != Black {
			t.Fatalf("odd row %d = %v, want black", y, got)
		}
	}
}
