// Package pendulum implements the planar double pendulum: the Lagrangian
// equations of motion, closed-form kinematics and energy, and a stateful
// [Simulation] that owns a motion state and parameter set and advances
// them with fixed-step RK4.
//
// The motion state is [theta1, omega1, theta2, omega2], angles measured
// from the downward vertical and never wrapped. [DoublePendulum]
// implements sim.Dynamics and sim.Hamiltonian, so the generic simulator,
// metrics, and analysis layers all apply to it.
package pendulum
