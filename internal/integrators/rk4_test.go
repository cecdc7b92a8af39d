package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/pendlab/internal/sim"
)

// harmonic oscillator: x'' = -x, exact solution cos(t) for x0 = (1, 0)
type harmonic struct{}

func (h *harmonic) StateDim() int { return 2 }
func (h *harmonic) Derivative(x sim.State, t float64) sim.State {
	return sim.State{x[1], -x[0]}
}

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()
	dyn := &harmonic{}

	x := sim.State{1.0, 0.0}
	dt := 0.01
	steps := 1000

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	tFinal := float64(steps) * dt
	expected := math.Cos(tFinal)

	if math.Abs(x[0]-expected) > 1e-8 {
		t.Errorf("expected x=%f, got %f", expected, x[0])
	}
}

func TestRK4ZeroStep(t *testing.T) {
	integ := NewRK4()
	dyn := &harmonic{}

	x := sim.State{0.7, -1.3}
	newX := integ.Step(dyn, x, 0, 0)

	for i := range x {
		if newX[i] != x[i] {
			t.Errorf("component %d changed on zero step: %f != %f", i, newX[i], x[i])
		}
	}
}

func TestRK4InputUntouched(t *testing.T) {
	integ := NewRK4()
	dyn := &harmonic{}

	x := sim.State{0.5, 0.5}
	orig := x.Clone()
	integ.Step(dyn, x, 0, 0.1)

	for i := range x {
		if x[i] != orig[i] {
			t.Errorf("input state mutated at %d: %f != %f", i, x[i], orig[i])
		}
	}
}

func TestRK4BeatsEuler(t *testing.T) {
	rk4 := NewRK4()
	euler := NewEuler()
	dyn := &harmonic{}

	dt := 0.05
	steps := 400
	tFinal := float64(steps) * dt
	expected := math.Cos(tFinal)

	xRK := sim.State{1.0, 0.0}
	xEu := sim.State{1.0, 0.0}
	for i := 0; i < steps; i++ {
		ti := float64(i) * dt
		xRK = rk4.Step(dyn, xRK, ti, dt)
		xEu = euler.Step(dyn, xEu, ti, dt)
	}

	errRK := math.Abs(xRK[0] - expected)
	errEu := math.Abs(xEu[0] - expected)

	if errRK >= errEu {
		t.Errorf("expected RK4 error (%e) below Euler error (%e)", errRK, errEu)
	}
}
