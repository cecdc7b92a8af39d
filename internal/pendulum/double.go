package pendulum

import (
	"math"

	"github.com/san-kum/pendlab/internal/sim"
)

// State layout: [theta1, omega1, theta2, omega2]. Angles are measured
// from the downward vertical in radians and never wrapped.
const (
	Theta1 = 0
	Omega1 = 1
	Theta2 = 2
	Omega2 = 3

	StateDim = 4
)

// denomEpsilon replaces the shared denominator when it is exactly zero.
// Near-zero denominators are deliberately left alone: any tolerance would
// change trajectories near degenerate configurations.
const denomEpsilon = 1e-12

// DoublePendulum is the planar two-link pendulum: two point masses on
// massless rigid rods, the first hinged at the origin.
type DoublePendulum struct {
	P Params
}

func New(p Params) *DoublePendulum {
	return &DoublePendulum{P: p}
}

func (d *DoublePendulum) StateDim() int { return StateDim }

// DefaultState is the canonical initial condition: both links near
// horizontal, at rest.
func DefaultState() sim.State {
	return sim.State{math.Pi/2 - 0.2, 0, math.Pi/2 + 0.1, 0}
}

// Derivative evaluates the Lagrangian equations of motion. Pure and total:
// finite inputs never fault, the epsilon substitution guards the one
// exact-zero denominator.
func (d *DoublePendulum) Derivative(x sim.State, t float64) sim.State {
	theta1, omega1, theta2, omega2 := x[Theta1], x[Omega1], x[Theta2], x[Omega2]
	m1, m2, l1, l2, g := d.P.M1, d.P.M2, d.P.L1, d.P.L2, d.P.Gravity

	delta := theta1 - theta2
	sinD, cosD := math.Sin(delta), math.Cos(delta)

	denom := 2*m1 + m2 - m2*math.Cos(2*delta)
	if denom == 0 {
		denom = denomEpsilon
	}

	alpha1 := (-g*(2*m1+m2)*math.Sin(theta1) -
		m2*g*math.Sin(theta1-2*theta2) -
		2*sinD*m2*(omega2*omega2*l2+omega1*omega1*l1*cosD)) / (l1 * denom)

	alpha2 := (2 * sinD * (omega1*omega1*l1*(m1+m2) +
		g*(m1+m2)*math.Cos(theta1) +
		omega2*omega2*l2*m2*cosD)) / (l2 * denom)

	alpha1 -= d.P.Drag * omega1
	alpha2 -= d.P.Drag * omega2

	return sim.State{omega1, alpha1, omega2, alpha2}
}

// Positions holds the cartesian bob coordinates relative to the pivot.
// y grows downward, matching the angle-from-downward-vertical convention.
type Positions struct {
	X1, Y1 float64
	X2, Y2 float64
}

func (d *DoublePendulum) Positions(x sim.State) Positions {
	theta1, theta2 := x[Theta1], x[Theta2]
	l1, l2 := d.P.L1, d.P.L2

	x1 := l1 * math.Sin(theta1)
	y1 := l1 * math.Cos(theta1)

	return Positions{
		X1: x1,
		Y1: y1,
		X2: x1 + l2*math.Sin(theta2),
		Y2: y1 + l2*math.Cos(theta2),
	}
}

// Energy holds the mechanical energy split of a state. With zero drag the
// total is conserved up to integrator error.
type Energy struct {
	Kinetic   float64
	Potential float64
	Total     float64
}

func (d *DoublePendulum) EnergyParts(x sim.State) Energy {
	theta1, omega1, theta2, omega2 := x[Theta1], x[Omega1], x[Theta2], x[Omega2]
	m1, m2, l1, l2, g := d.P.M1, d.P.M2, d.P.L1, d.P.L2, d.P.Gravity

	// v2 is the vector sum of the two tangential link velocities.
	v1sq := l1 * l1 * omega1 * omega1
	v2sq := v1sq + l2*l2*omega2*omega2 +
		2*l1*l2*omega1*omega2*math.Cos(theta1-theta2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq

	y1 := l1 * math.Cos(theta1)
	y2 := y1 + l2*math.Cos(theta2)
	pe := -(m1*g*y1 + m2*g*y2)

	return Energy{Kinetic: ke, Potential: pe, Total: ke + pe}
}

// Energy implements sim.Hamiltonian.
func (d *DoublePendulum) Energy(x sim.State) float64 {
	return d.EnergyParts(x).Total
}
