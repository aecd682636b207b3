package pixel

import "testing"

func TestLineEndpointsInclusive(t *testing.T) {
	c := NewCanvas(NewFramebuffer(16, 16))
	c.Line(2, 3, 10, 3, Red)
	if c.Get(2, 3) != Red || c.Get(10, 3) != Red {
		t.Fatal("horizontal line missing an endpoint")
	}
	if c.Get(1, 3) != Black || c.Get(11, 3) != Black {
		t.Fatal("horizontal line overshot an endpoint")
	}

	c.Line(5, 1, 5, 8, Green)
	for y := 1; y <= 8; y++ {
		if c.Get(5, y) != Green {
			t.Fatalf("vertical line missing pixel at y=%d", y)
		}
	}

	c.Line(0, 0, 7, 7, Blue)
	for i := 0; i <= 7; i++ {
		if c.Get(i, i) != Blue {
			t.Fatalf("diagonal line missing pixel at (%d,%d)", i, i)
		}
	}
}

func TestRectFillAndOutline(t *testing.T) {
	c := NewCanvas(NewFramebuffer(16, 16))
	c.Rect(2, 2, 4, 3, Yellow, true)
	for y := 2; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if c.Get(x, y) != Yellow {
				t.Fatalf("filled rect missing (%d,%d)", x, y)
			}
		}
	}
	if c.Get(6, 2) != Black || c.Get(2, 5) != Black {
		t.Fatal("filled rect leaked outside its bounds")
	}

	c.Clear(Black)
	c.Rect(1, 1, 5, 5, Cyan, false)
	if c.Get(1, 1) != Cyan || c.Get(5, 5) != Cyan {
		t.Fatal("outline corners missing")
	}
	if c.Get(3, 3) != Black {
		t.Fatal("outline rect filled its interior")
	}
}

func TestCircleStaysOffCenterWhenOutlined(t *testing.T) {
	c := NewCanvas(NewFramebuffer(16, 16)) // radius 5 outline around (8,8)
	c.Circle(8, 8, 5, Magenta, false)
	if c.Get(13, 8) != Magenta || c.Get(3, 8) != Magenta ||
		c.Get(8, 13) != Magenta || c.Get(8, 3) != Magenta {
		t.Fatal("circle cardinal points missing")
	}
	if c.Get(8, 8) != Black {
		t.Fatal("outlined circle painted its center")
	}

	c.Circle(8, 8, 5, Magenta, true)
	if c.Get(8, 8) != Magenta {
		t.Fatal("filled circle left its center empty")
	}
}

func TestPrimitivesClipAtEdges(t *testing.T) {
	c := NewCanvas(NewFramebuffer(8, 8))
	// All of these reach outside the buffer; none may panic.
	c.Line(-5, -5, 12, 12, Red)
	c.Rect(-2, -2, 20, 20, Green, true)
	c.Circle(0, 0, 10, Blue, false)
	c.Ellipse(7, 7, 6, 3, White, true)
	c.Polygon([]Point{{-3, 4}, {10, -1}, {4, 12}}, Yellow)
	c.Text("clip me far beyond the edge", -4, 1, Cyan)
}

func TestTextMarksPixels(t *testing.T) {
	c := NewCanvas(NewFramebuffer(64, 16))
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
		t.Fatal("text drew no pixels")
	}
	if w := c.TextWidth("HI"); w <= 0 {
		t.Fatalf("text width = %d, want positive", w)
	}
}

func TestCenteredTextIsCentered(t *testing.T) {
	c := NewCanvas(NewFramebuffer(64, 16))
	c.CenteredText("AB", 2, White)

	minX, maxX := 64, -1
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			if c.Get(x, y) == White {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	if maxX < 0 {
		t.Fatal("centered text drew nothing")
	}
	left, right := minX, 63-maxX
	if d := left - right; d < -2 || d > 2 {
		t.Fatalf("text not centered: %d px left, %d px right", left, right)
	}
}

func TestPolygonClosesItself(t *testing.T) {
	c := NewCanvas(NewFramebuffer(16, 16))
	c.Polygon([]Point{{2, 2}, {12, 2}, {7, 10}}, Red)
	// The closing edge from the last vertex back to the first.
	if c.Get(2, 2) != Red || c.Get(12, 2) != Red || c.Get(7, 10) != Red {
		t.Fatal("polygon vertices not drawn")
	}
	if c.Get(7, 2) != Red {
		t.Fatal("polygon top edge missing, outline not closed")
	}
}
