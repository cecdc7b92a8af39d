package pendulum

import (
	"math"
	"testing"

	"github.com/san-kum/pendlab/internal/sim"
)

func TestDerivativePassthrough(t *testing.T) {
	d := New(DefaultParams())

	states := []sim.State{
		{0.3, 1.7, -0.4, 2.2},
		{math.Pi, -5, 12.0, 0.001},
		{0, 0, 0, 0},
	}

	for _, x := range states {
		dx := d.Derivative(x, 0)
		if dx[Theta1] != x[Omega1] {
			t.Errorf("dtheta1 = %v, want omega1 = %v", dx[Theta1], x[Omega1])
		}
		if dx[Theta2] != x[Omega2] {
			t.Errorf("dtheta2 = %v, want omega2 = %v", dx[Theta2], x[Omega2])
		}
	}
}

func TestDerivativeEquilibrium(t *testing.T) {
	d := New(DefaultParams())

	dx := d.Derivative(sim.State{0, 0, 0, 0}, 0)
	for i, v := range dx {
		if math.Abs(v) > 1e-12 {
			t.Errorf("component %d nonzero at rest equilibrium: %v", i, v)
		}
	}
}

// Both links horizontal and at rest: gravity torque acts, so the
// accelerations are nonzero and known in closed form. With delta = 0 the
// shared denominator is 2m1+m2-m2 = 2m1 and alpha2 vanishes with sin(delta).
func TestDerivativeRestHorizontal(t *testing.T) {
	d := New(DefaultParams())
	p := d.P

	dx := d.Derivative(sim.State{math.Pi / 2, 0, math.Pi / 2, 0}, 0)

	wantAlpha1 := (-p.Gravity*(2*p.M1+p.M2)*math.Sin(math.Pi/2) -
		p.M2*p.Gravity*math.Sin(math.Pi/2-2*(math.Pi/2))) / (p.L1 * 2 * p.M1)

	if dx[Omega1] != wantAlpha1 {
		t.Errorf("alpha1 = %v, want %v", dx[Omega1], wantAlpha1)
	}
	if math.Abs(dx[Omega1]-(-2*9.81/300)) > 1e-15 {
		t.Errorf("alpha1 = %v, want -2g/(2*l1) = %v", dx[Omega1], -2*9.81/300)
	}
	if dx[Omega2] != 0 {
		t.Errorf("alpha2 = %v, want 0", dx[Omega2])
	}
	if dx[Omega1] == 0 {
		t.Error("expected nonzero alpha1 under gravity torque")
	}
}

func TestDerivativeSymmetry(t *testing.T) {
	d := New(DefaultParams())

	dx1 := d.Derivative(sim.State{0.1, 0, 0.1, 0}, 0)
	dx2 := d.Derivative(sim.State{-0.1, 0, -0.1, 0}, 0)

	if math.Abs(dx1[Omega1]+dx2[Omega1]) > 1e-9 {
		t.Errorf("expected mirrored alpha1: %v vs %v", dx1[Omega1], dx2[Omega1])
	}
	if math.Abs(dx1[Omega2]+dx2[Omega2]) > 1e-9 {
		t.Errorf("expected mirrored alpha2: %v vs %v", dx1[Omega2], dx2[Omega2])
	}
}

func TestDerivativeDrag(t *testing.T) {
	base := New(DefaultParams())
	drag := 0.5
	damped := New(DefaultParams().Merge(Overrides{Drag: &drag}))

	x := sim.State{0.4, 1.0, -0.2, -2.0}
	dx0 := base.Derivative(x, 0)
	dx1 := damped.Derivative(x, 0)

	if got, want := dx0[Omega1]-dx1[Omega1], drag*x[Omega1]; math.Abs(got-want) > 1e-12 {
		t.Errorf("drag torque on link 1 = %v, want %v", got, want)
	}
	if got, want := dx0[Omega2]-dx1[Omega2], drag*x[Omega2]; math.Abs(got-want) > 1e-12 {
		t.Errorf("drag torque on link 2 = %v, want %v", got, want)
	}
}

// m1 = 0 with aligned links drives the shared denominator to exactly zero;
// the epsilon substitution must keep the result finite.
func TestDerivativeDegenerateDenominator(t *testing.T) {
	zero := 0.0
	d := New(DefaultParams().Merge(Overrides{M1: &zero}))

	for _, x := range []sim.State{
		{0, 0, 0, 0},
		{0.3, 1.0, 0.3, -1.0},
	} {
		dx := d.Derivative(x, 0)
		if !dx.IsValid() {
			t.Errorf("non-finite derivative at degenerate configuration %v: %v", x, dx)
		}
	}
}

func TestPositionsHangingDown(t *testing.T) {
	d := New(DefaultParams())

	pos := d.Positions(sim.State{0, 0, 0, 0})

	if pos.X1 != 0 || pos.X2 != 0 {
		t.Errorf("expected bobs on the vertical, got x1=%v x2=%v", pos.X1, pos.X2)
	}
	if pos.Y1 != 150 {
		t.Errorf("y1 = %v, want 150", pos.Y1)
	}
	if pos.Y2 != 300 {
		t.Errorf("y2 = %v, want 300", pos.Y2)
	}
}

func TestPositionsChain(t *testing.T) {
	d := New(DefaultParams())
	x := sim.State{0.7, 0, -1.2, 0}

	pos := d.Positions(x)

	if got, want := pos.X2-pos.X1, 150*math.Sin(-1.2); math.Abs(got-want) > 1e-12 {
		t.Errorf("link 2 x extent = %v, want %v", got, want)
	}
	if got, want := pos.Y2-pos.Y1, 150*math.Cos(-1.2); math.Abs(got-want) > 1e-12 {
		t.Errorf("link 2 y extent = %v, want %v", got, want)
	}
}

func TestEnergyAtRest(t *testing.T) {
	d := New(DefaultParams())

	e := d.EnergyParts(sim.State{0, 0, 0, 0})
	if e.Kinetic != 0 {
		t.Errorf("kinetic energy at rest = %v, want 0", e.Kinetic)
	}
	// Hanging straight down is the potential minimum.
	eUp := d.EnergyParts(sim.State{math.Pi, 0, math.Pi, 0})
	if e.Potential >= eUp.Potential {
		t.Errorf("hanging-down PE (%v) should be below inverted PE (%v)", e.Potential, eUp.Potential)
	}
	if e.Total != e.Kinetic+e.Potential {
		t.Errorf("total %v != KE+PE %v", e.Total, e.Kinetic+e.Potential)
	}
}
