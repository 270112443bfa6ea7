package Euler1D

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate"

	"github.com/cfdlab/shocktube/InputParameters"
	"github.com/cfdlab/shocktube/sod_shock_tube"
	"github.com/cfdlab/shocktube/utils"
)

func sodShockTube() *ShockTube {
	return NewShockTube(InputParameters.NewParameters())
}

func totals(g *Grid) (rho, rhoU, ener float64) {
	for _, c := range g.Cells() {
		rho += c.Rho
		rhoU += c.RhoU
		ener += c.Ener
	}
	return
}

// The conservative update must telescope: after one step the change in the
// cell sums equals the net boundary flux through interfaces 0 and nx, with
// every interior transfer cancelling exactly.
func TestStepConservation(t *testing.T) {
	c := sodShockTube()
	rho0, rhoU0, ener0 := totals(c.Grid)

	dt := ComputeDT(c.Grid, c.CFL, c.Gamma)
	c.Step(dt)

	var (
		nx    = c.Grid.Size()
		ratio = dt / c.Grid.Dx()
		fLeft = c.fluxes[0]
		fRght = c.fluxes[nx]
	)
	rho1, rhoU1, ener1 := totals(c.Grid)
	assert.InDelta(t, -ratio*(fRght.Rho-fLeft.Rho), rho1-rho0, 1.e-12)
	assert.InDelta(t, -ratio*(fRght.RhoU-fLeft.RhoU), rhoU1-rhoU0, 1.e-12)
	assert.InDelta(t, -ratio*(fRght.Ener-fLeft.Ener), ener1-ener0, 1.e-12)

	// Outflow boundaries over a quiescent edge state carry no mass
	assert.InDelta(t, 0, fLeft.Rho, 1.e-14)
	assert.InDelta(t, 0, fRght.Rho, 1.e-14)
}

func TestRunLandsOnFinalTime(t *testing.T) {
	c := sodShockTube()
	c.FinalTime = 0.05
	c.Run(nil)
	assert.InDelta(t, 0.05, c.Time, 1.e-12)
}

func TestRunSnapshotSequence(t *testing.T) {
	var (
		steps []int
		times []float64
		c     = sodShockTube()
	)
	c.FinalTime = 0.05
	c.Run(func(step int, time float64, g *Grid) error {
		steps = append(steps, step)
		times = append(times, time)
		assert.Equal(t, 100, g.Size())
		return nil
	})
	// Initial snapshot, cadence snapshots, unconditional final snapshot
	assert.GreaterOrEqual(t, len(steps), 3)
	for i, s := range steps {
		assert.Equal(t, i, s)
	}
	assert.Equal(t, 0.0, times[0])
	assert.InDelta(t, c.FinalTime, times[len(times)-1], 1.e-12)
	assert.True(t, sort.Float64sAreSorted(times))
}

func TestSodShockTube(t *testing.T) {
	c := sodShockTube()
	rho0, _, _ := totals(c.Grid)
	c.Run(nil)

	var (
		g     = c.Grid
		prims = g.Primitives(c.Gamma)
	)
	// Physical sanity at the final time: positive fields, no NaN
	for i, p := range prims {
		assert.False(t, math.IsNaN(p.Rho) || math.IsNaN(p.U) || math.IsNaN(p.P),
			"NaN at cell %d", i)
		assert.Greater(t, p.Rho, 0.0)
		assert.Greater(t, p.P, 0.0)
		assert.LessOrEqual(t, p.Rho, 1.0+1.e-6)
		assert.GreaterOrEqual(t, p.Rho, 0.125-1.e-6)
	}

	// Density decreases monotonically across rarefaction, contact and shock
	for i := 1; i < g.Size(); i++ {
		assert.LessOrEqual(t, prims[i].Rho, prims[i-1].Rho+5.e-3,
			"density not monotone at cell %d", i)
	}

	// At t=0.2 no wave has reached a boundary, so total mass is untouched
	rho1, _, _ := totals(g)
	assert.InDelta(t, rho0, rho1, 1.e-10)

	// Compare against the exact solution: cell-averaged L1 density error of
	// the first order scheme at nx=100 sits well under 0.03
	exact := sod_shock_tube.NewSolution(0.2)
	l1 := 0.0
	for i, p := range prims {
		rhoExact, _, _ := exact.At(g.CellCenter(i))
		l1 += math.Abs(p.Rho - rhoExact)
	}
	l1 /= float64(g.Size())
	assert.Less(t, l1, 0.03)

	// Integral check: exact density integrated over the domain against the
	// model's total mass
	X := utils.Linspace(0, 1, 1001)
	RhoExact, _, _, _ := exact.Sample(X)
	iExact := integrate.Trapezoidal(X, RhoExact)
	iModel := rho1 * g.Dx()
	assert.InDelta(t, iExact, iModel, 1.e-3)
}

// Reflective walls return the waves instead of letting them leave, and the
// closed box conserves mass exactly for as long as we run it.
func TestReflectiveBox(t *testing.T) {
	ip := InputParameters.NewParameters()
	ip.BCType = "reflective"
	ip.TFinal = 0.35
	c := NewShockTube(ip)
	rho0, _, _ := totals(c.Grid)
	c.Run(nil)
	rho1, _, _ := totals(c.Grid)
	assert.InDelta(t, rho0, rho1, 1.e-6)
	for _, p := range c.Grid.Primitives(c.Gamma) {
		assert.False(t, math.IsNaN(p.Rho))
		assert.Greater(t, p.Rho, 0.0)
		assert.Greater(t, p.P, 0.0)
	}
}
