package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pendlab/internal/pendulum"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// maxBacklog bounds the accumulated wall-clock time fed into stepping, so
// a stalled terminal never triggers an unbounded catch-up burst.
const maxBacklog = 0.25

var paramOrder = []string{"m1", "m2", "l1", "l2", "gravity", "drag"}

type trailPoint struct{ x, y int }

type model struct {
	sim *pendulum.Simulation
	dt  float64

	paused      bool
	speed       float64
	accumulator float64
	lastTick    time.Time

	paramCursor int

	trail   []trailPoint
	history []float64

	width  int
	height int
}

// newModel builds the bubbletea app around an existing simulation.
func newModel(sim *pendulum.Simulation, dt float64) *model {
	return &model{
		sim:     sim,
		dt:      dt,
		speed:   1.0,
		trail:   make([]trailPoint, 0, 80),
		history: make([]float64, 0, 64),
		width:   80,
		height:  24,
	}
}

// RunInteractive starts the interactive viewer and blocks until exit.
func RunInteractive(sim *pendulum.Simulation, dt float64) error {
	p := tea.NewProgram(newModel(sim, dt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *model) Init() tea.Cmd {
	m.lastTick = time.Now()
	return tick()
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.advance()
		return m, tick()
	}
	return m, nil
}

// advance drains the wall-clock accumulator in fixed dt steps.
func (m *model) advance() {
	now := time.Now()
	elapsed := now.Sub(m.lastTick).Seconds()
	m.lastTick = now

	if m.paused {
		return
	}

	m.accumulator += elapsed * m.speed
	if m.accumulator > maxBacklog {
		m.accumulator = maxBacklog
	}

	for m.accumulator >= m.dt {
		m.sim.Step(m.dt)
		m.accumulator -= m.dt
	}

	m.history = append(m.history, m.sim.Energy().Total)
	if len(m.history) > 64 {
		m.history = m.history[1:]
	}
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "r":
		m.sim.Reset(pendulum.Overrides{}, nil)
		m.trail = m.trail[:0]
		m.history = m.history[:0]
	case "+", "=":
		if m.speed < 8 {
			m.speed *= 2
		}
	case "-":
		if m.speed > 0.25 {
			m.speed /= 2
		}
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(paramOrder)-1 {
			m.paramCursor++
		}
	case "left", "h":
		m.adjustParam(0.9)
	case "right", "l":
		m.adjustParam(1.1)
	}
	return m, nil
}

func (m *model) adjustParam(factor float64) {
	name := paramOrder[m.paramCursor]
	v := m.sim.Params().GetParams()[name]

	if v == 0 {
		// multiplicative nudge does nothing at zero
		if factor > 1 {
			v = 0.01
		}
	} else {
		v *= factor
	}

	m.sim.UpdateParams(overrideFor(name, v))
}

func overrideFor(name string, v float64) pendulum.Overrides {
	switch name {
	case "m1":
		return pendulum.Overrides{M1: &v}
	case "m2":
		return pendulum.Overrides{M2: &v}
	case "l1":
		return pendulum.Overrides{L1: &v}
	case "l2":
		return pendulum.Overrides{L2: &v}
	case "gravity":
		return pendulum.Overrides{Gravity: &v}
	case "drag":
		return pendulum.Overrides{Drag: &v}
	}
	return pendulum.Overrides{}
}

func (m *model) View() string {
	var b strings.Builder

	status := green.Render("running")
	if m.paused {
		status = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		cyan.Render("pendlab"),
		status,
		dim.Render(fmt.Sprintf("t=%.2fs  speed=%gx", m.sim.Time(), m.speed))))

	b.WriteString(m.renderCanvas())
	b.WriteString(m.renderParams())
	b.WriteString(m.renderEnergy())

	b.WriteString(dim.Render("  space pause · r reset · ←/→ adjust · ↑/↓ select · +/- speed · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *model) renderCanvas() string {
	cw, ch := 56, 17
	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = make([]rune, cw)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	set := func(x, y int, c rune) {
		if x >= 0 && x < cw && y >= 0 && y < ch {
			canvas[y][x] = c
		}
	}

	p := m.sim.Params()
	pos := m.sim.Positions()
	reach := math.Abs(p.L1) + math.Abs(p.L2)
	if reach == 0 {
		reach = 1
	}
	scale := float64(ch-2) / 2 / reach

	px, py := cw/2, ch/2
	b1x := px + int(2*scale*pos.X1)
	b1y := py + int(scale*pos.Y1)
	b2x := px + int(2*scale*pos.X2)
	b2y := py + int(scale*pos.Y2)

	m.trail = append(m.trail, trailPoint{b2x, b2y})
	if len(m.trail) > 80 {
		m.trail = m.trail[1:]
	}
	for _, pt := range m.trail {
		set(pt.x, pt.y, '·')
	}

	drawLine(set, px, py, b1x, b1y, '│')
	set(px, py, '┼')
	set(b1x, b1y, 'o')
	drawLine(set, b1x, b1y, b2x, b2y, '│')
	set(b2x, b2y, '●')

	var b strings.Builder
	border := dim.Render("  " + strings.Repeat("─", cw))
	b.WriteString(border + "\n")
	for _, row := range canvas {
		b.WriteString("  " + string(row) + "\n")
	}
	b.WriteString(border + "\n")
	return b.String()
}

func drawLine(set func(int, int, rune), x1, y1, x2, y2 int, c rune) {
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
		set(x1, y1, c)
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

func (m *model) renderParams() string {
	p := m.sim.Params().GetParams()

	var b strings.Builder
	b.WriteString("  ")
	for i, name := range paramOrder {
		entry := fmt.Sprintf("%s=%.3g", name, p[name])
		if i == m.paramCursor {
			b.WriteString(magenta.Render("[" + entry + "]"))
		} else {
			b.WriteString(white.Render(" " + entry + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")
	return b.String()
}

func (m *model) renderEnergy() string {
	e := m.sim.Energy()
	x := m.sim.State()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s θ1=%6.2f ω1=%6.2f θ2=%6.2f ω2=%6.2f\n",
		dim.Render("state"),
		x[pendulum.Theta1], x[pendulum.Omega1], x[pendulum.Theta2], x[pendulum.Omega2]))
	b.WriteString(fmt.Sprintf("  %s KE=%8.2f PE=%8.2f E=%8.2f %s\n",
		dim.Render("energy"), e.Kinetic, e.Potential, e.Total, m.sparkline()))
	return b.String()
}

// sparkline renders the recent total-energy history as unicode bars.
func (m *model) sparkline() string {
	if len(m.history) < 2 {
		return ""
	}
	bars := []rune("▁▂▃▄▅▆▇█")

	lo, hi := m.history[0], m.history[0]
	for _, v := range m.history {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		return dim.Render(strings.Repeat("▄", len(m.history)))
	}

	var sb strings.Builder
	for _, v := range m.history {
		idx := int((v - lo) / (hi - lo) * float64(len(bars)-1))
		sb.WriteRune(bars[idx])
	}
	return dim.Render(sb.String())
}
