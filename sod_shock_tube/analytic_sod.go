// Package sod_shock_tube evaluates the exact similarity solution of Sod's
// shock tube problem: left state (rho,u,p)=(1,0,1), right state
// (0.125,0,0.1), diaphragm at x=0.5, gamma=1.4. Used to validate the
// numerical solver.
package sod_shock_tube

import (
	"math"

	"github.com/cfdlab/shocktube/utils"
)

const (
	xMin, xMax = 0., 1.
	xDiaphragm = 0.5
	rhoL, pL   = 1., 1.
	rhoR, pR   = 0.125, 0.1
	gamma      = 1.4
)

// Solution is the exact Sod solution at one instant. The five regions are
// separated by the rarefaction head X1, rarefaction tail X2, contact X3 and
// shock X4.
type Solution struct {
	T                  float64
	X1, X2, X3, X4     float64
	PPost, VPost       float64
	RhoPost, RhoMiddle float64
	VShock             float64
}

func NewSolution(t float64) (s *Solution) {
	var (
		mu2   = (gamma - 1.) / (gamma + 1.)
		cL    = math.Sqrt(gamma * pL / rhoL)
		pPost = fzero(shockJump, math.Pi)
		vPost = 2 * (math.Sqrt(gamma) / (gamma - 1)) *
			(1 - math.Pow(pPost, (gamma-1)/(2*gamma)))
		rhoPost = rhoR * ((pPost / pR) + mu2) / (1 + mu2*(pPost/pR))
		c2      = cL - 0.5*(gamma-1.)*vPost
	)
	s = &Solution{
		T:         t,
		PPost:     pPost,
		VPost:     vPost,
		RhoPost:   rhoPost,
		RhoMiddle: rhoL * math.Pow(pPost/pL, 1./gamma),
		VShock:    vPost * (rhoPost / rhoR) / ((rhoPost / rhoR) - 1.),
		X1:        xDiaphragm - cL*t,
		X2:        xDiaphragm + t*(vPost-c2),
		X3:        xDiaphragm + vPost*t,
	}
	s.X4 = xDiaphragm + s.VShock*t
	return
}

// At returns (rho, u, p) at position x
func (s *Solution) At(x float64) (rho, u, p float64) {
	var (
		mu2 = (gamma - 1.) / (gamma + 1.)
		cL  = math.Sqrt(gamma * pL / rhoL)
	)
	switch {
	case x < s.X1:
		// Undisturbed left state
		rho, u, p = rhoL, 0, pL
	case x <= s.X2:
		// Inside the rarefaction fan
		c := mu2*((xDiaphragm-x)/s.T) + (1.-mu2)*cL
		rho = rhoL * math.Pow(c/cL, 2/(gamma-1))
		p = pL * math.Pow(rho/rhoL, gamma)
		u = (1. - mu2) * ((x-xDiaphragm)/s.T + cL)
	case x <= s.X3:
		rho, u, p = s.RhoMiddle, s.VPost, s.PPost
	case x <= s.X4:
		rho, u, p = s.RhoPost, s.VPost, s.PPost
	default:
		// Undisturbed right state
		rho, u, p = rhoR, 0, pR
	}
	return
}

// Sample evaluates the solution at each position in X, returning the
// primitive fields plus the specific internal energy e = p/((gamma-1)rho)
func (s *Solution) Sample(X []float64) (Rho, U, P, E []float64) {
	Rho = make([]float64, len(X))
	U = make([]float64, len(X))
	P = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		Rho[i], U[i], P[i] = s.At(x)
		E[i] = P[i] / ((gamma - 1.) * Rho[i])
	}
	return
}

// WavePoints returns sample positions bracketing each wave tightly, plus
// the domain endpoints. Sampling these reproduces the piecewise structure
// with straight line segments between them.
func (s *Solution) WavePoints() []float64 {
	tol := 1.e-8
	return []float64{
		xMin,
		s.X1 - tol, s.X1 + tol,
		s.X2 - tol, s.X2 + tol,
		s.X3 - tol, s.X3 + tol,
		s.X4 - tol, s.X4 + tol,
		xMax,
	}
}

// shockJump is the pressure jump residual across the shock; its root is
// the post-shock pressure
func shockJump(p float64) float64 {
	mu2 := (gamma - 1.) / (gamma + 1.)
	return (p-pR)*math.Sqrt(utils.Square(1-mu2)/(rhoR*(p+mu2*pR))) -
		2*(math.Sqrt(gamma)/(gamma-1))*(1-math.Pow(p, (gamma-1)/(2*gamma)))
}

// fzero finds a root of f by secant iteration from the given start point
func fzero(f func(float64) float64, start float64) float64 {
	var (
		tol      = 1.e-7
		startOld = start / 2
		res      = f(startOld)
	)
	for math.Abs(res) > tol {
		resNew := f(start)
		deriv := (start - startOld) / (resNew - res)
		startNew := math.Abs(start - 0.01*f(start)/deriv)
		startOld = start
		start = startNew
		res = resNew
	}
	return start
}
