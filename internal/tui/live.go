package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/sim"
)

const (
	width       = 70
	height      = 24
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer draws the pendulum on a plain ANSI canvas. It implements
// sim.Observer, throttling itself to frameRate.
type LiveRenderer struct {
	dyn       *pendulum.DoublePendulum
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
	trail     []struct{ x, y int }
}

func NewLiveRenderer(dyn *pendulum.DoublePendulum, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		dyn:       dyn,
		frameRate: frameRate,
		canvas:    canvas,
		trail:     make([]struct{ x, y int }, 0, 60),
	}
}

func (r *LiveRenderer) OnStep(x sim.State, t float64) {
	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	r.clear()
	r.draw(x)
	r.render(x, t)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) line(x1, y1, x2, y2 int, c rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		r.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (r *LiveRenderer) draw(x sim.State) {
	pos := r.dyn.Positions(x)

	// Fit both links into the canvas regardless of configured lengths.
	reach := math.Abs(r.dyn.P.L1) + math.Abs(r.dyn.P.L2)
	if reach == 0 {
		reach = 1
	}
	scale := float64(height-4) / 2 / reach

	px, py := width/2, height/2
	b1x := px + int(2*scale*pos.X1)
	b1y := py + int(scale*pos.Y1)
	b2x := px + int(2*scale*pos.X2)
	b2y := py + int(scale*pos.Y2)

	r.trail = append(r.trail, struct{ x, y int }{b2x, b2y})
	if len(r.trail) > 60 {
		r.trail = r.trail[1:]
	}

	for _, pt := range r.trail {
		r.set(pt.x, pt.y, '.')
	}

	r.set(px, py, '+')
	r.line(px, py, b1x, b1y, '|')
	r.set(b1x, b1y, 'o')
	r.line(b1x, b1y, b2x, b2y, '|')
	r.set(b2x, b2y, 'O')
}

func (r *LiveRenderer) render(x sim.State, t float64) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  double pendulum  t=%.2fs\n", t))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	e := r.dyn.EnergyParts(x)
	b.WriteString(fmt.Sprintf("  θ1=%.2f ω1=%.2f θ2=%.2f ω2=%.2f\n",
		x[pendulum.Theta1], x[pendulum.Omega1], x[pendulum.Theta2], x[pendulum.Omega2]))
	b.WriteString(fmt.Sprintf("  KE=%.2f PE=%.2f E=%.2f\n", e.Kinetic, e.Potential, e.Total))

	fmt.Print(b.String())
}

func (r *LiveRenderer) Start() { fmt.Print(hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Print(showCursor) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
