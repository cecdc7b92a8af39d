package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/sim"
)

const (
	DefaultDt       = 1.0 / 240.0
	DefaultDuration = 30.0
)

type Config struct {
	Integrator string          `yaml:"integrator"`
	Dt         float64         `yaml:"dt"`
	Duration   float64         `yaml:"duration"`
	InitState  InitStateConfig `yaml:"init_state"`
	Params     ParamsConfig    `yaml:"params"`
}

// InitStateConfig selects the initial motion state. Absent fields load as
// nil and fall back to the canonical near-horizontal state component.
type InitStateConfig struct {
	Theta1 *float64 `yaml:"theta1"`
	Omega1 *float64 `yaml:"omega1"`
	Theta2 *float64 `yaml:"theta2"`
	Omega2 *float64 `yaml:"omega2"`
}

// ParamsConfig mirrors pendulum.Overrides: absent fields keep defaults.
type ParamsConfig struct {
	M1      *float64 `yaml:"m1"`
	M2      *float64 `yaml:"m2"`
	L1      *float64 `yaml:"l1"`
	L2      *float64 `yaml:"l2"`
	Gravity *float64 `yaml:"gravity"`
	Drag    *float64 `yaml:"drag"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// InitialState resolves the configured initial state against the canonical
// default, field by field.
func (c *Config) InitialState() sim.State {
	x := pendulum.DefaultState()
	if c.InitState.Theta1 != nil {
		x[pendulum.Theta1] = *c.InitState.Theta1
	}
	if c.InitState.Omega1 != nil {
		x[pendulum.Omega1] = *c.InitState.Omega1
	}
	if c.InitState.Theta2 != nil {
		x[pendulum.Theta2] = *c.InitState.Theta2
	}
	if c.InitState.Omega2 != nil {
		x[pendulum.Omega2] = *c.InitState.Omega2
	}
	return x
}

func (c *Config) Overrides() pendulum.Overrides {
	return pendulum.Overrides{
		M1: c.Params.M1, M2: c.Params.M2,
		L1: c.Params.L1, L2: c.Params.L2,
		Gravity: c.Params.Gravity,
		Drag:    c.Params.Drag,
	}
}
