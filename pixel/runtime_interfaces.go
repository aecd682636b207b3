package pixel

import "golang.org/x/image/font"

// Surface is the drawable capability handed to an app's Render hook. It is
// implemented by the real device displays and by the headless test adapter.
// Apps never present the surface themselves; the scheduler does that.
type Surface interface {
	Size() (int, int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
	Fill(c Color)
	Line(x1, y1, x2, y2 int, c Color)
	Rect(x, y, w, h int, c Color, fill bool)
	Circle(cx, cy, radius int, c Color, fill bool)
	Ellipse(cx, cy, rx, ry int, c Color, fill bool)
	Polygon(pts []Point, c Color)
	Text(s string, x, y int, c Color)
	CenteredText(s string, y int, c Color)
}

// Display is a Surface bound to an output device. Show presents the current
// buffer; only the scheduler may call it.
type Display interface {
	Surface
	Show()
	Close()
}

// Buffered is implemented by displays that expose their backing framebuffer.
// The scheduler applies presentation effects through it before Show; a
// display without it presents unmodified.
type Buffered interface {
	Buffer() *Framebuffer
}

// FontSetter is implemented by displays whose text face can be replaced,
// for hosts that configure a TTF instead of the built-in bitmap font.
type FontSetter interface {
	SetFace(face font.Face)
}

// StorageService provides best-effort per-app key/value persistence.
type StorageService interface {
	Get(app, key string) (string, bool, error)
	Put(app, key, value string) error
	Close() error
}

// Introspector is an optional capability apps can implement to expose named
// internal attributes to white-box tests. It is a narrow accessor, not
// reflection; apps decide exactly what they publish.
type Introspector interface {
	Attr(name string) (any, bool)
}
