package pendulum

import "fmt"

const (
	DefaultMass    = 1.0
	DefaultLength  = 150.0
	DefaultGravity = 9.81
	DefaultDrag    = 0.0
)

// Params is the fully-resolved physical configuration of the pendulum.
// No positivity is enforced: zero or negative masses and lengths are
// accepted and degrade to singular arithmetic.
type Params struct {
	M1, M2  float64
	L1, L2  float64
	Gravity float64
	Drag    float64
}

func DefaultParams() Params {
	return Params{
		M1: DefaultMass, M2: DefaultMass,
		L1: DefaultLength, L2: DefaultLength,
		Gravity: DefaultGravity,
		Drag:    DefaultDrag,
	}
}

// Overrides is a partial parameter set. Nil fields leave the corresponding
// value untouched when merged, so a partial update never resets the rest.
type Overrides struct {
	M1, M2  *float64
	L1, L2  *float64
	Gravity *float64
	Drag    *float64
}

// Merge returns p with the non-nil fields of o applied. Defaulting happens
// exactly once, at construction or update time, never per evaluation.
func (p Params) Merge(o Overrides) Params {
	if o.M1 != nil {
		p.M1 = *o.M1
	}
	if o.M2 != nil {
		p.M2 = *o.M2
	}
	if o.L1 != nil {
		p.L1 = *o.L1
	}
	if o.L2 != nil {
		p.L2 = *o.L2
	}
	if o.Gravity != nil {
		p.Gravity = *o.Gravity
	}
	if o.Drag != nil {
		p.Drag = *o.Drag
	}
	return p
}

func (p Params) GetParams() map[string]float64 {
	return map[string]float64{
		"m1":      p.M1,
		"m2":      p.M2,
		"l1":      p.L1,
		"l2":      p.L2,
		"gravity": p.Gravity,
		"drag":    p.Drag,
	}
}

func (p *Params) SetParam(name string, value float64) error {
	switch name {
	case "m1":
		p.M1 = value
	case "m2":
		p.M2 = value
	case "l1":
		p.L1 = value
	case "l2":
		p.L2 = value
	case "gravity":
		p.Gravity = value
	case "drag":
		p.Drag = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
