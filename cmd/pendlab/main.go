package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/pendlab/internal/analysis"
	"github.com/san-kum/pendlab/internal/config"
	"github.com/san-kum/pendlab/internal/export"
	"github.com/san-kum/pendlab/internal/integrators"
	"github.com/san-kum/pendlab/internal/metrics"
	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/sim"
	"github.com/san-kum/pendlab/internal/tui"
)

var (
	dt         float64
	duration   float64
	theta1     float64
	omega1     float64
	theta2     float64
	omega2     float64
	m1         float64
	m2         float64
	l1         float64
	l2         float64
	gravity    float64
	drag       float64
	integrator string
	configFile string
	preset     string
	series     string
	outPath    string
	format     string
	frameRate  int
	perturb    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pendlab",
		Short: "double pendulum simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			s, err := pendulum.NewSimulation(cfg.Overrides(), cfg.InitialState())
			if err != nil {
				return err
			}
			return tui.RunInteractive(s, cfg.Dt)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and report metrics",
		RunE:  runSimulation,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal rendering",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "run and plot a state series in the terminal",
		RunE:  plotSeries,
	}
	plotCmd.Flags().StringVar(&series, "series", "theta1", "series to plot (theta1|omega1|theta2|omega2|energy)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "run and export the trajectory",
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outPath, "out", "run.json", "output path")
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json|csv|png|trace)")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov",
		Short: "estimate the largest Lyapunov exponent",
		RunE:  runLyapunov,
	}
	lyapunovCmd.Flags().Float64Var(&perturb, "perturbation", 1e-8, "initial separation")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDT\tDURATION")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.5f\t%.0fs\n", name, cfg.Dt, cfg.Duration)
			}
			return w.Flush()
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, runCmd, liveCmd, plotCmd, exportCmd, lyapunovCmd} {
		addSimFlags(cmd)
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, exportCmd, lyapunovCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&theta1, "theta1", 0, "initial first angle")
	cmd.Flags().Float64Var(&omega1, "omega1", 0, "initial first angular velocity")
	cmd.Flags().Float64Var(&theta2, "theta2", 0, "initial second angle")
	cmd.Flags().Float64Var(&omega2, "omega2", 0, "initial second angular velocity")
	cmd.Flags().Float64Var(&m1, "m1", pendulum.DefaultMass, "first mass")
	cmd.Flags().Float64Var(&m2, "m2", pendulum.DefaultMass, "second mass")
	cmd.Flags().Float64Var(&l1, "l1", pendulum.DefaultLength, "first link length")
	cmd.Flags().Float64Var(&l2, "l2", pendulum.DefaultLength, "second link length")
	cmd.Flags().Float64Var(&gravity, "gravity", pendulum.DefaultGravity, "gravitational acceleration")
	cmd.Flags().Float64Var(&drag, "drag", pendulum.DefaultDrag, "angular damping coefficient")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (rk4|euler)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset name")
}

// resolveConfig layers preset < config file < explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := func(name string, dst **float64, v float64) {
		if cmd.Flags().Changed(name) {
			val := v
			*dst = &val
		}
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}

	set("theta1", &cfg.InitState.Theta1, theta1)
	set("omega1", &cfg.InitState.Omega1, omega1)
	set("theta2", &cfg.InitState.Theta2, theta2)
	set("omega2", &cfg.InitState.Omega2, omega2)

	set("m1", &cfg.Params.M1, m1)
	set("m2", &cfg.Params.M2, m2)
	set("l1", &cfg.Params.L1, l1)
	set("l2", &cfg.Params.L2, l2)
	set("gravity", &cfg.Params.Gravity, gravity)
	set("drag", &cfg.Params.Drag, drag)

	return cfg, nil
}

func buildIntegrator(name string) (sim.Integrator, error) {
	switch name {
	case "rk4", "":
		return integrators.NewRK4(), nil
	case "euler":
		return integrators.NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

func buildRun(cmd *cobra.Command) (*config.Config, *pendulum.DoublePendulum, *sim.Simulator, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	integ, err := buildIntegrator(cfg.Integrator)
	if err != nil {
		return nil, nil, nil, err
	}

	dyn := pendulum.New(pendulum.DefaultParams().Merge(cfg.Overrides()))
	s := sim.New(dyn, integ)
	s.AddMetric(metrics.NewEnergyDrift(dyn))
	s.AddMetric(metrics.NewFlipCounter("flips_theta2", pendulum.Theta2))

	return cfg, dyn, s, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, dyn, s, err := buildRun(cmd)
	if err != nil {
		return err
	}

	result, err := s.Run(context.Background(), cfg.InitialState(), sim.Config{
		Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true,
	})
	if err != nil {
		return err
	}

	final := result.States[len(result.States)-1]
	e := dyn.EnergyParts(final)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "steps\t%d\n", result.StepsTaken)
	fmt.Fprintf(w, "final θ1\t%.6f\n", final[pendulum.Theta1])
	fmt.Fprintf(w, "final θ2\t%.6f\n", final[pendulum.Theta2])
	fmt.Fprintf(w, "energy\t%.6f\n", e.Total)
	fmt.Fprintf(w, "energy drift\t%.3e\n", result.EnergyDrift)
	for name, v := range result.Metrics {
		fmt.Fprintf(w, "%s\t%g\n", name, v)
	}
	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "errors\t%v\n", result.Errors)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, dyn, s, err := buildRun(cmd)
	if err != nil {
		return err
	}

	renderer := tui.NewLiveRenderer(dyn, frameRate)
	renderer.Start()
	defer renderer.Stop()
	s.AddObserver(renderer)

	_, err = s.Run(context.Background(), cfg.InitialState(), sim.Config{
		Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true,
	})
	return err
}

func plotSeries(cmd *cobra.Command, args []string) error {
	cfg, dyn, s, err := buildRun(cmd)
	if err != nil {
		return err
	}

	result, err := s.Run(context.Background(), cfg.InitialState(), sim.Config{
		Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true,
	})
	if err != nil {
		return err
	}

	data, err := seriesValues(dyn, result, series)
	if err != nil {
		return err
	}

	// thin to terminal width
	if len(data) > 120 {
		stride := len(data) / 120
		thinned := make([]float64, 0, 120)
		for i := 0; i < len(data); i += stride {
			thinned = append(thinned, data[i])
		}
		data = thinned
	}

	fmt.Println(asciigraph.Plot(data, asciigraph.Height(20), asciigraph.Caption(series)))
	return nil
}

func seriesValues(dyn *pendulum.DoublePendulum, result *sim.Result, name string) ([]float64, error) {
	idx := -1
	switch name {
	case "theta1":
		idx = pendulum.Theta1
	case "omega1":
		idx = pendulum.Omega1
	case "theta2":
		idx = pendulum.Theta2
	case "omega2":
		idx = pendulum.Omega2
	case "energy":
	default:
		return nil, fmt.Errorf("unknown series %q", name)
	}

	data := make([]float64, len(result.States))
	for i, x := range result.States {
		if idx >= 0 {
			data[i] = x[idx]
		} else {
			data[i] = dyn.Energy(x)
		}
	}
	return data, nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	cfg, dyn, s, err := buildRun(cmd)
	if err != nil {
		return err
	}

	result, err := s.Run(context.Background(), cfg.InitialState(), sim.Config{
		Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true,
	})
	if err != nil {
		return err
	}

	data := export.NewRunData(cfg.Integrator, cfg.Dt, cfg.Duration, dyn.P, result)

	switch format {
	case "json":
		err = export.WriteJSON(outPath, data)
	case "csv":
		err = export.WriteCSV(outPath, data)
	case "png":
		values, serr := seriesValues(dyn, result, "theta1")
		if serr != nil {
			return serr
		}
		err = export.SaveLinePlot(outPath, "theta1 over time", "t [s]", "theta1 [rad]", result.Times, values)
	case "trace":
		xs := make([]float64, len(result.States))
		ys := make([]float64, len(result.States))
		for i, x := range result.States {
			pos := dyn.Positions(x)
			xs[i] = pos.X2
			ys[i] = pos.Y2
		}
		err = export.SaveTracePlot(outPath, "second bob trace", xs, ys)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	integ, err := buildIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	dyn := pendulum.New(pendulum.DefaultParams().Merge(cfg.Overrides()))
	lambda := analysis.LyapunovExponent(dyn, integ, cfg.InitialState(), cfg.Dt, cfg.Duration, perturb)
	sep := analysis.SeparationGrowth(dyn, integrators.NewRK4(), cfg.InitialState(), cfg.Dt, cfg.Duration, perturb)

	fmt.Printf("lyapunov estimate: %.4f\n", lambda)
	fmt.Printf("separation growth: %.3e -> %.3e\n", perturb, sep)
	return nil
}
