package pendulum

import "testing"

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	if p.M1 != 1 || p.M2 != 1 {
		t.Errorf("default masses = %v, %v, want 1, 1", p.M1, p.M2)
	}
	if p.L1 != 150 || p.L2 != 150 {
		t.Errorf("default lengths = %v, %v, want 150, 150", p.L1, p.L2)
	}
	if p.Gravity != 9.81 {
		t.Errorf("default gravity = %v, want 9.81", p.Gravity)
	}
	if p.Drag != 0 {
		t.Errorf("default drag = %v, want 0", p.Drag)
	}
}

func TestMergePartial(t *testing.T) {
	m2 := 3.0
	drag := 0.25

	p := DefaultParams().Merge(Overrides{M2: &m2, Drag: &drag})

	if p.M2 != 3.0 || p.Drag != 0.25 {
		t.Errorf("overridden fields not applied: %+v", p)
	}
	if p.M1 != 1 || p.L1 != 150 || p.L2 != 150 || p.Gravity != 9.81 {
		t.Errorf("unnamed fields changed: %+v", p)
	}
}

func TestMergeEmpty(t *testing.T) {
	p := DefaultParams().Merge(Overrides{})
	if p != DefaultParams() {
		t.Errorf("empty merge changed params: %+v", p)
	}
}

func TestMergeAcceptsNonPhysicalValues(t *testing.T) {
	zero := 0.0
	neg := -5.0

	p := DefaultParams().Merge(Overrides{M1: &zero, L2: &neg})

	if p.M1 != 0 || p.L2 != -5 {
		t.Errorf("non-physical values must pass through unvalidated: %+v", p)
	}
}

func TestSetParam(t *testing.T) {
	p := DefaultParams()

	if err := p.SetParam("drag", 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Drag != 0.5 {
		t.Errorf("drag = %v, want 0.5", p.Drag)
	}
	if err := p.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown param")
	}

	m := p.GetParams()
	if m["l1"] != 150 || m["drag"] != 0.5 {
		t.Errorf("GetParams mirror wrong: %v", m)
	}
}
