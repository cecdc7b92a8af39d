package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/sim"
)

func TestEnergyDriftZeroForConstantEnergy(t *testing.T) {
	d := pendulum.New(pendulum.DefaultParams())
	m := NewEnergyDrift(d)

	x := sim.State{0.5, 0, 0.5, 0}
	m.Observe(x, 0)
	m.Observe(x, 1)
	m.Observe(x, 2)

	if m.Value() != 0 {
		t.Errorf("drift = %v, want 0 for identical states", m.Value())
	}
}

func TestEnergyDriftDetectsChange(t *testing.T) {
	d := pendulum.New(pendulum.DefaultParams())
	m := NewEnergyDrift(d)

	m.Observe(sim.State{0.5, 0, 0.5, 0}, 0)
	m.Observe(sim.State{0.5, 2.0, 0.5, 0}, 1) // kinetic energy appears

	if m.Value() <= 0 {
		t.Errorf("drift = %v, want > 0 after energy change", m.Value())
	}
}

func TestEnergyDriftReset(t *testing.T) {
	d := pendulum.New(pendulum.DefaultParams())
	m := NewEnergyDrift(d)

	m.Observe(sim.State{0.5, 0, 0.5, 0}, 0)
	m.Observe(sim.State{0.5, 2.0, 0.5, 0}, 1)
	m.Reset()

	if m.Value() != 0 {
		t.Errorf("drift = %v, want 0 after reset", m.Value())
	}
}

func TestFlipCounter(t *testing.T) {
	m := NewFlipCounter("flips2", pendulum.Theta2)

	// theta2 winds through two full revolutions, theta1 stays put.
	angles := []float64{0, 2, 4, 6, 8, 10, 12, 13}
	for i, a := range angles {
		m.Observe(sim.State{0, 0, a, 0}, float64(i))
	}

	if m.Value() != 2 {
		t.Errorf("flips = %v, want 2", m.Value())
	}
}

func TestFlipCounterNegativeDirection(t *testing.T) {
	m := NewFlipCounter("flips2", pendulum.Theta2)

	for i, a := range []float64{0, -4, -8} {
		m.Observe(sim.State{0, 0, a, 0}, float64(i))
	}

	if m.Value() != 1 {
		t.Errorf("flips = %v, want 1 for one reverse revolution", m.Value())
	}
}

func TestFlipCounterStationary(t *testing.T) {
	m := NewFlipCounter("flips1", pendulum.Theta1)

	for i := 0; i < 10; i++ {
		m.Observe(sim.State{math.Pi - 0.01, 0, 0, 0}, float64(i))
	}

	if m.Value() != 0 {
		t.Errorf("flips = %v, want 0 for stationary angle", m.Value())
	}
}
