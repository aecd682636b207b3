// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/snake/snake.go
// Summary: The classic snake game on a 2x2-pixel cell grid. High score is
// persisted; internals are exposed through Attr for black-box tests.

package snake

import (
	"math/rand"
	"strconv"

	"github.com/framegrace/pixelos/pixel"
)

const (
	cellSize     = 2
	stepInterval = 0.15 // seconds per snake step
	highScoreKey = "highscore"
)

// App is the snake game. Construct with New; the grid is derived from the
// display size at construction so game logic never depends on the surface.
type App struct {
	pixel.Base

	cols, rows int
	rng        *rand.Rand

	body    []pixel.Point // head first
	dir     pixel.Point
	nextDir pixel.Point
	food    pixel.Point
	score   int
	high    int
	dead    bool
	acc     float64
}

// New creates a snake game for a width x height pixel display.
func New(width, height int, logger *pixel.Logger) *App {
	return NewSeeded(width, height, rand.Int63(), logger)
}

// NewSeeded fixes the food sequence, for reproducible tests.
func NewSeeded(width, height int, seed int64, logger *pixel.Logger) *App {
	a := &App{
		cols: width / cellSize,
		rows: height / cellSize,
		rng:  rand.New(rand.NewSource(seed)),
	}
	a.Base = pixel.NewBase("snake", logger)
	a.reset()
	return a
}

func (a *App) reset() {
	cx, cy := a.cols/2, a.rows/2
	a.body = []pixel.Point{{X: cx, Y: cy}, {X: cx - 1, Y: cy}, {X: cx - 2, Y: cy}}
	a.dir = pixel.Point{X: 1, Y: 0}
	a.nextDir = a.dir
	a.score = 0
	a.dead = false
	a.acc = 0
	a.placeFood()
}

func (a *App) placeFood() {
	for {
		p := pixel.Point{X: a.rng.Intn(a.cols), Y: a.rng.Intn(a.rows)}
		if !a.occupied(p) {
			a.food = p
			return
		}
	}
}

func (a *App) occupied(p pixel.Point) bool {
	for _, b := range a.body {
		if b == p {
			return true
		}
	}
	return false
}

func (a *App) Activate() {
	if v, ok := a.Storage().Get(highScoreKey); ok {
		if n, err := strconv.Atoi(v); err == nil {
			a.high = n
		}
	}
	a.reset()
	a.MarkDirty()
	a.Log().Info("new game, high score %d", a.high)
}

func (a *App) Deactivate() {}

func (a *App) Update(dt float64) {
	if a.dead {
		return
	}
	a.acc += dt
	for a.acc >= stepInterval {
		a.acc -= stepInterval
		a.step()
	}
}

func (a *App) step() {
	a.dir = a.nextDir
	head := pixel.Point{X: a.body[0].X + a.dir.X, Y: a.body[0].Y + a.dir.Y}

	if head.X < 0 || head.X >= a.cols || head.Y < 0 || head.Y >= a.rows || a.occupied(head) {
		a.die()
		return
	}

	a.body = append([]pixel.Point{head}, a.body...)
	if head == a.food {
		a.score++
		a.Log().Info("ate food, score %d", a.score)
		a.placeFood()
	} else {
		a.body = a.body[:len(a.body)-1]
	}
	a.MarkDirty()
}

func (a *App) die() {
	a.dead = true
	a.Log().Info("game over, score %d", a.score)
	if a.score > a.high {
		a.high = a.score
		if err := a.Storage().Put(highScoreKey, strconv.Itoa(a.high)); err != nil {
			a.Log().Error("persist high score: %v", err)
		}
	}
	a.MarkDirty()
}

func (a *App) BackgroundTick() {}

func (a *App) HandleEvent(ev pixel.InputEvent) bool {
	if a.dead {
		if ev.Key == pixel.KeyOK || ev.Key == pixel.KeyAction {
			a.reset()
			a.MarkDirty()
			return true
		}
		return false
	}

	var d pixel.Point
	switch ev.Key {
	case pixel.KeyUp:
		d = pixel.Point{X: 0, Y: -1}
	case pixel.KeyDown:
		d = pixel.Point{X: 0, Y: 1}
	case pixel.KeyLeft:
		d = pixel.Point{X: -1, Y: 0}
	case pixel.KeyRight:
		d = pixel.Point{X: 1, Y: 0}
	default:
		return false
	}
	// No reversing into yourself.
	if d.X == -a.dir.X && d.Y == -a.dir.Y {
		return true
	}
	a.nextDir = d
	return true
}

func (a *App) Render(s pixel.Surface) {
	a.cell(s, a.food, pixel.Red)
	for i, b := range a.body {
		c := pixel.Green
		if i == 0 {
			c = pixel.Yellow
		}
		a.cell(s, b, c)
	}
	if a.dead {
		_, h := s.Size()
		s.CenteredText("GAME OVER", h/2-6, pixel.White)
		s.CenteredText(strconv.Itoa(a.score), h/2+4, pixel.Yellow)
	}
	a.ClearDirty()
}

func (a *App) cell(s pixel.Surface, p pixel.Point, c pixel.Color) {
	s.Rect(p.X*cellSize, p.Y*cellSize, cellSize, cellSize, c, true)
}

// Attr exposes game internals for black-box tests.
func (a *App) Attr(name string) (any, bool) {
	switch name {
	case "score":
		return a.score, true
	case "high":
		return a.high, true
	case "length":
		return len(a.body), true
	case "dead":
		return a.dead, true
	case "head":
		return a.body[0], true
	case "food":
		return a.food, true
	}
	return nil, false
}
