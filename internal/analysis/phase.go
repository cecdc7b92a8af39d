package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/pendlab/internal/sim"
)

type Point struct{ X, Y float64 }

// PhasePortrait holds a 2D projection of a simulated trajectory.
type PhasePortrait struct {
	XIndex, YIndex int
	Points         []Point
}

// GeneratePhasePortrait runs a simulation and records the (xIdx, yIdx)
// projection of the trajectory.
func GeneratePhasePortrait(
	dyn sim.Dynamics,
	integ sim.Integrator,
	x0 sim.State,
	xIdx, yIdx int,
	dt, duration float64,
) *PhasePortrait {
	if xIdx >= len(x0) || yIdx >= len(x0) || dt <= 0 {
		return nil
	}

	portrait := &PhasePortrait{
		XIndex: xIdx,
		YIndex: yIdx,
		Points: make([]Point, 0, int(duration/dt)),
	}

	x := x0.Clone()
	for t := 0.0; t < duration; t += dt {
		x = integ.Step(dyn, x, t, dt)
		portrait.Points = append(portrait.Points, Point{X: x[xIdx], Y: x[yIdx]})
	}

	return portrait
}

// ToASCII renders the portrait on a width×height character canvas.
func (p *PhasePortrait) ToASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// PoincareSection records the (recordX, recordY) projection each time the
// crossIdx component crosses threshold in the positive direction.
type PoincareSection struct {
	Points []Point
}

func GeneratePoincareSection(
	dyn sim.Dynamics,
	integ sim.Integrator,
	x0 sim.State,
	crossIdx int,
	threshold float64,
	recordX, recordY int,
	dt, duration float64,
) *PoincareSection {
	if crossIdx >= len(x0) || recordX >= len(x0) || recordY >= len(x0) || dt <= 0 {
		return nil
	}

	section := &PoincareSection{Points: make([]Point, 0)}

	x := x0.Clone()
	prev := x[crossIdx]

	for t := 0.0; t < duration; t += dt {
		x = integ.Step(dyn, x, t, dt)
		curr := x[crossIdx]

		if prev < threshold && curr >= threshold {
			section.Points = append(section.Points, Point{X: x[recordX], Y: x[recordY]})
		}

		prev = curr
	}

	return section
}

func (s *PoincareSection) ToASCII(width, height int) string {
	if s == nil || len(s.Points) == 0 {
		return "No crossings detected"
	}
	portrait := &PhasePortrait{Points: s.Points}
	return portrait.ToASCII(width, height)
}
