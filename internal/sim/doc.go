// Package sim provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [Dynamics]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical integrator interface
//   - [Simulator]: orchestrates simulation runs
//
// # Example
//
//	dyn := pendulum.New(pendulum.DefaultParams())
//	integ := integrators.NewRK4()
//	s := sim.New(dyn, integ)
//	result, _ := s.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Callers must serialize access
// to a single instance; independent instances are safe to run concurrently.
package sim
