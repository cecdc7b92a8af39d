package pendulum

import (
	"fmt"
	"math"

	"github.com/san-kum/pendlab/internal/integrators"
	"github.com/san-kum/pendlab/internal/sim"
)

// Simulation owns one motion state and one resolved parameter set and
// advances them with fixed-step RK4. It is the single stateful piece of
// the engine; callers must serialize access to an instance.
type Simulation struct {
	dyn   *DoublePendulum
	integ *integrators.RK4
	state sim.State
	time  float64
}

// NewSimulation builds a simulation from defaults plus overrides, starting
// from initial, or from the canonical near-horizontal state when initial
// is nil.
func NewSimulation(o Overrides, initial sim.State) (*Simulation, error) {
	s := &Simulation{
		dyn:   New(DefaultParams().Merge(o)),
		integ: integrators.NewRK4(),
	}
	if initial == nil {
		s.state = DefaultState()
		return s, nil
	}
	if err := validateState(initial); err != nil {
		return nil, err
	}
	s.state = initial.Clone()
	return s, nil
}

func validateState(x sim.State) error {
	if len(x) != StateDim {
		return fmt.Errorf("%w: state must have exactly %d components, got %d",
			sim.ErrInvalidArgument, StateDim, len(x))
	}
	return nil
}

// Step advances the owned state by dt and returns a copy of the new state.
func (s *Simulation) Step(dt float64) sim.State {
	s.state = s.integ.Step(s.dyn, s.state, s.time, dt)
	s.time += dt
	return s.state.Clone()
}

// State returns a copy of the current motion state.
func (s *Simulation) State() sim.State { return s.state.Clone() }

func (s *Simulation) Time() float64 { return s.time }

// Params returns the resolved parameter set. There is no second copy of
// these values anywhere; this accessor is the one source of truth.
func (s *Simulation) Params() Params { return s.dyn.P }

func (s *Simulation) Positions() Positions { return s.dyn.Positions(s.state) }

func (s *Simulation) Energy() Energy { return s.dyn.EnergyParts(s.state) }

// UpdateParams merges the non-nil fields of o into the owned parameters.
// Fields not named keep their current values.
func (s *Simulation) UpdateParams(o Overrides) {
	s.dyn.P = s.dyn.P.Merge(o)
}

// Reset replaces the parameters with defaults merged with o and the state
// with initial, or the canonical state when initial is nil. The clock
// returns to zero.
func (s *Simulation) Reset(o Overrides, initial sim.State) error {
	if initial != nil {
		if err := validateState(initial); err != nil {
			return err
		}
	}
	s.dyn.P = DefaultParams().Merge(o)
	if initial == nil {
		s.state = DefaultState()
	} else {
		s.state = initial.Clone()
	}
	s.time = 0
	return nil
}

// SetState replaces the state verbatim from ordered components. On a
// wrong-length input the owned state is left untouched.
func (s *Simulation) SetState(x sim.State) error {
	if err := validateState(x); err != nil {
		return err
	}
	s.state = x.Clone()
	return nil
}

// StateComponents names a subset of motion-state fields for SetStateComponents.
type StateComponents struct {
	Theta1 *float64
	Omega1 *float64
	Theta2 *float64
	Omega2 *float64
}

// SetStateComponents replaces the named fields of the state. A nil or
// non-finite field keeps the current value, not a default.
func (s *Simulation) SetStateComponents(c StateComponents) {
	apply := func(idx int, v *float64) {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			return
		}
		s.state[idx] = *v
	}
	apply(Theta1, c.Theta1)
	apply(Omega1, c.Omega1)
	apply(Theta2, c.Theta2)
	apply(Omega2, c.Omega2)
}
