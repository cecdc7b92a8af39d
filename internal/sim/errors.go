package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state vector with invalid dimensions or values.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("sim: dimension mismatch between state and system")

	// ErrInvalidArgument indicates a caller-supplied value of the wrong shape.
	ErrInvalidArgument = errors.New("sim: invalid argument")
)

// SimError wraps an error with the step and time it occurred at.
type SimError struct {
	Step    int
	Time    float64
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("sim: %s at t=%.4f (step %d)", e.Message, e.Time, e.Step)
}
