package Euler1D

import "math"

// Flux carries the (mass, momentum, energy) flux at one cell interface
type Flux struct {
	Rho, RhoU, Ener float64
}

// PhysicalFlux evaluates the exact Euler flux F(U) for a single state:
//
//	F = (rho*u, rho*u^2 + p, u*(E + p))
func PhysicalFlux(p Primitive, gamma float64) (f Flux) {
	c := PrimitiveToConserved(p, gamma)
	f.Rho = c.RhoU
	f.RhoU = c.RhoU*p.U + p.P
	f.Ener = p.U * (c.Ener + p.P)
	return
}

// HLLFlux computes the two-wave HLL approximate Riemann flux at the
// interface between reconstructed states L and R, using the Davis wave
// speed estimates
//
//	SL = min(uL-aL, uR-aR), SR = max(uL+aL, uR+aR)
func HLLFlux(L, R Primitive, gamma float64) (f Flux) {
	var (
		aL = SoundSpeed(L, gamma)
		aR = SoundSpeed(R, gamma)
		SL = math.Min(L.U-aL, R.U-aR)
		SR = math.Max(L.U+aL, R.U+aR)
		FL = PhysicalFlux(L, gamma)
		FR = PhysicalFlux(R, gamma)
	)
	switch {
	case SL >= 0:
		// Supersonic to the right, the interface sees only the left state
		f = FL
	case SR <= 0:
		// Supersonic to the left
		f = FR
	default:
		// Subsonic: both waves straddle the interface. SL < 0 < SR holds
		// here, so SR-SL > 0 and the division is well defined; the Davis
		// estimates can only collapse SL == SR when both are on the same
		// side of zero, which the two cases above already consumed.
		var (
			UL    = PrimitiveToConserved(L, gamma)
			UR    = PrimitiveToConserved(R, gamma)
			denom = 1. / (SR - SL)
		)
		f.Rho = (SR*FL.Rho - SL*FR.Rho + SL*SR*(UR.Rho-UL.Rho)) * denom
		f.RhoU = (SR*FL.RhoU - SL*FR.RhoU + SL*SR*(UR.RhoU-UL.RhoU)) * denom
		f.Ener = (SR*FL.Ener - SL*FR.Ener + SL*SR*(UR.Ener-UL.Ener)) * denom
	}
	return
}
