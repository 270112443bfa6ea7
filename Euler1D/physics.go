package Euler1D

import "math"

/*
	Variable transforms for the 1D compressible Euler equations with an
	ideal gas closure:
		p = (gamma-1) * (E - 0.5*rho*u^2)
*/

const (
	// Floors applied to density and pressure to keep the ideal gas closure
	// out of vacuum states. Near-vacuum inputs are clipped, not reported.
	DensityFloor  = 1.e-14
	PressureFloor = 1.e-14
)

// Cell holds the conserved variables of one finite volume cell
type Cell struct {
	Rho, RhoU, Ener float64 // Density, momentum density, total energy density
}

// Primitive holds the derived (density, velocity, pressure) view of a cell
type Primitive struct {
	Rho, U, P float64
}

func ConservedToPrimitive(c Cell, gamma float64) (p Primitive) {
	p.Rho = math.Max(c.Rho, DensityFloor)
	p.U = c.RhoU / p.Rho
	q := 0.5 * p.Rho * p.U * p.U
	p.P = math.Max((gamma-1.)*(c.Ener-q), PressureFloor)
	return
}

func PrimitiveToConserved(p Primitive, gamma float64) (c Cell) {
	c.Rho = p.Rho
	c.RhoU = p.Rho * p.U
	c.Ener = p.P/(gamma-1.) + 0.5*p.Rho*p.U*p.U
	return
}

// SoundSpeed returns sqrt(gamma*p/rho) with both fields floored
func SoundSpeed(p Primitive, gamma float64) float64 {
	return math.Sqrt(gamma * math.Max(p.P, PressureFloor) / math.Max(p.Rho, DensityFloor))
}

// MaxWaveSpeed is the local signal speed |u| + c used by the CFL condition
func MaxWaveSpeed(p Primitive, gamma float64) float64 {
	return math.Abs(p.U) + SoundSpeed(p, gamma)
}
