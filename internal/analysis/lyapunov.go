package analysis

import (
	"math"

	"github.com/san-kum/pendlab/internal/sim"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// trajectory separation method. Larger values indicate stronger
// sensitivity to initial conditions.
//
// Algorithm:
//  1. Run two nearby trajectories
//  2. Measure their divergence over time
//  3. λ ≈ (1/t) * ln(|δx(t)/δx(0)|)
func LyapunovExponent(
	dyn sim.Dynamics,
	integ sim.Integrator,
	x0 sim.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 || dt <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation

	d0 := perturbation
	t := 0.0

	sumLog := 0.0
	count := 0

	for t < duration {
		x = integ.Step(dyn, x, t, dt)
		xp = integ.Step(dyn, xp, t, dt)
		t += dt

		sep := xp.Sub(x).Norm()

		if sep > 0 && d0 > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}

		// Renormalize to prevent overflow
		if sep > 1.0 {
			scale := d0 / sep
			for i := range xp {
				xp[i] = x[i] + (xp[i]-x[i])*scale
			}
		}
	}

	if count == 0 {
		return 0
	}

	return sumLog / (float64(count) * dt)
}

// SeparationGrowth integrates two trajectories started perturbation apart
// and returns their final separation. A chaotic system amplifies the
// initial offset by orders of magnitude.
func SeparationGrowth(
	dyn sim.Dynamics,
	integ sim.Integrator,
	x0 sim.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation

	for t := 0.0; t < duration; t += dt {
		x = integ.Step(dyn, x, t, dt)
		xp = integ.Step(dyn, xp, t, dt)
	}

	return xp.Sub(x).Norm()
}
