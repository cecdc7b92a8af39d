package config

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/pendlab/internal/pendulum"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Integrator != "rk4" {
		t.Errorf("expected integrator rk4, got %s", cfg.Integrator)
	}
	if cfg.Dt != 1.0/240.0 {
		t.Errorf("expected dt 1/240, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
}

func TestInitialStateDefaults(t *testing.T) {
	cfg := DefaultConfig()
	state := cfg.InitialState()

	want := pendulum.DefaultState()
	for i := range want {
		if state[i] != want[i] {
			t.Errorf("state[%d] = %f, want canonical %f", i, state[i], want[i])
		}
	}
}

func TestInitialStatePartial(t *testing.T) {
	cfg := DefaultConfig()
	v := 1.0
	cfg.InitState.Theta2 = &v

	state := cfg.InitialState()

	if state[pendulum.Theta2] != 1.0 {
		t.Errorf("theta2 = %f, want 1.0", state[pendulum.Theta2])
	}
	if state[pendulum.Theta1] != math.Pi/2-0.2 {
		t.Errorf("theta1 = %f, want canonical", state[pendulum.Theta1])
	}
}

func TestOverridesMapping(t *testing.T) {
	cfg := DefaultConfig()
	m := 2.0
	cfg.Params.M2 = &m

	p := pendulum.DefaultParams().Merge(cfg.Overrides())

	if p.M2 != 2.0 {
		t.Errorf("m2 = %f, want 2.0", p.M2)
	}
	if p.L1 != pendulum.DefaultLength {
		t.Errorf("l1 = %f, want default", p.L1)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("gentle")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.InitState.Theta1 == nil || *cfg.InitState.Theta1 != 0.3 {
		t.Errorf("expected theta1 0.3, got %v", cfg.InitState.Theta1)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	drag := 0.25
	theta1 := 2.4
	cfg.Params.Drag = &drag
	cfg.InitState.Theta1 = &theta1
	cfg.Duration = 12.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Duration != 12.5 {
		t.Errorf("duration = %f, want 12.5", loaded.Duration)
	}
	if loaded.Params.Drag == nil || *loaded.Params.Drag != 0.25 {
		t.Errorf("drag = %v, want 0.25", loaded.Params.Drag)
	}
	if loaded.InitState.Theta1 == nil || *loaded.InitState.Theta1 != 2.4 {
		t.Errorf("theta1 = %v, want 2.4", loaded.InitState.Theta1)
	}
	if loaded.InitState.Omega1 != nil {
		t.Error("absent omega1 should load as nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
