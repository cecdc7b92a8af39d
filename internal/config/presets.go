package config

import "sort"

func f(v float64) *float64 { return &v }

var Presets = map[string]*Config{
	"canonical": {
		Integrator: "rk4", Dt: DefaultDt, Duration: 30.0,
	},
	"gentle": {
		Integrator: "rk4", Dt: DefaultDt, Duration: 30.0,
		InitState: InitStateConfig{Theta1: f(0.3), Omega1: f(0), Theta2: f(0.3), Omega2: f(0)},
	},
	"symmetric": {
		Integrator: "rk4", Dt: DefaultDt, Duration: 30.0,
		InitState: InitStateConfig{Theta1: f(1.5), Omega1: f(0), Theta2: f(1.5), Omega2: f(0)},
	},
	"chaos": {
		Integrator: "rk4", Dt: DefaultDt, Duration: 60.0,
		InitState: InitStateConfig{Theta1: f(3.0), Omega1: f(0), Theta2: f(3.0), Omega2: f(0)},
	},
	"damped": {
		Integrator: "rk4", Dt: DefaultDt, Duration: 60.0,
		Params: ParamsConfig{Drag: f(0.1)},
	},
	"unequal": {
		Integrator: "rk4", Dt: DefaultDt, Duration: 30.0,
		InitState: InitStateConfig{Theta1: f(2.0), Omega1: f(0), Theta2: f(2.5), Omega2: f(0)},
		Params:    ParamsConfig{M2: f(3.0), L2: f(90)},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
