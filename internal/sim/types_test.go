package sim

import (
	"math"
	"testing"
)

func TestStateClone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()
	c[0] = 99

	if s[0] != 1 {
		t.Error("clone aliases the original")
	}
}

func TestStateIsValid(t *testing.T) {
	tests := []struct {
		state State
		valid bool
	}{
		{State{0, 1, -2}, true},
		{State{}, true},
		{State{math.NaN()}, false},
		{State{1, math.Inf(1)}, false},
		{State{1, math.Inf(-1), 2}, false},
	}

	for _, tt := range tests {
		if got := tt.state.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%v) = %v, want %v", tt.state, got, tt.valid)
		}
	}
}

func TestStateSubNorm(t *testing.T) {
	a := State{3, 0}
	b := State{0, 4}

	if got := a.Sub(b).Norm(); got != 5 {
		t.Errorf("norm = %v, want 5", got)
	}
}
