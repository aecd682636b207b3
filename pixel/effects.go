package pixel

import "github.com/lucasb-eyer/go-colorful"

// Effect transforms a rendered framebuffer before a display presents it.
// Effects are presentation-only: they run after the app's Render and never
// feed back into app state.
type Effect interface {
	Apply(fb *Framebuffer)
}

// FadeEffect blends every pixel toward a target color. Level 0 leaves the
// buffer untouched, 1 replaces it entirely.
type FadeEffect struct {
	Target Color
	Level  float64
}

// NewFadeEffect fades toward target by level.
func NewFadeEffect(target Color, level float64) *FadeEffect {
	return &FadeEffect{Target: target, Level: level}
}

func (e *FadeEffect) Apply(fb *Framebuffer) {
	level := e.Level
	if level <= 0 {
		return
	}
	if level > 1 {
		level = 1
	}
	target := toColorful(e.Target)
	w, h := fb.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := toColorful(fb.Get(x, y))
			fb.SetPixel(x, y, fromColorful(src.BlendRgb(target, level)))
		}
	}
}

// ScanlineEffect darkens every other row, the cheap CRT look.
type ScanlineEffect struct {
	Level float64
}

func (e *ScanlineEffect) Apply(fb *Framebuffer) {
	level := e.Level
	if level <= 0 {
		return
	}
	if level > 1 {
		level = 1
	}
	black := toColorful(Black)
	w, h := fb.Size()
	for y := 1; y < h; y += 2 {
		for x := 0; x < w; x++ {
			src := toColorful(fb.Get(x, y))
			fb.SetPixel(x, y, fromColorful(src.BlendRgb(black, level)))
		}
	}
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) Color {
	cl := c.Clamped()
	return Color{
		R: uint8(cl.R*255 + 0.5),
		G: uint8(cl.G*255 + 0.5),
		B: uint8(cl.B*255 + 0.5),
	}
}
