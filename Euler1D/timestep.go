package Euler1D

import "gonum.org/v1/gonum/floats"

// MinSignalSpeed floors the global maximum signal speed so the CFL division
// stays finite for the degenerate all-quiescent state.
const MinSignalSpeed = 1.e-9

// ComputeDT scans the whole grid for the largest signal speed |u|+c and
// returns the CFL-limited explicit time step
//
//	dt = cfl * dx / max(|u|+c)
//
// Signal speeds change every step as the solution evolves, so this is
// recomputed every step, never cached.
func ComputeDT(g *Grid, cfl, gamma float64) (dt float64) {
	signals := make([]float64, g.Size())
	for i, c := range g.Cells() {
		signals[i] = MaxWaveSpeed(ConservedToPrimitive(c, gamma), gamma)
	}
	maxSignal := floats.Max(signals)
	if maxSignal < MinSignalSpeed {
		maxSignal = MinSignalSpeed
	}
	dt = cfl * g.Dx() / maxSignal
	return
}
