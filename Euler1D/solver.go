package Euler1D

import (
	"fmt"
	"os"

	"github.com/cfdlab/shocktube/InputParameters"
)

// SnapshotFunc receives the grid each time the driver wants a snapshot
// emitted. step is the driver-sequenced snapshot index starting at 0.
// Implementations own all I/O; an error is reported and the run continues.
type SnapshotFunc func(step int, time float64, g *Grid) error

// ShockTube is the first-order finite volume solver for the 1D Euler
// equations: piecewise-constant reconstruction, HLL interface flux,
// forward Euler time integration under a CFL bound.
type ShockTube struct {
	CFL, FinalTime float64
	Gamma          float64
	OutputDT       float64
	BC             BCType
	Grid           *Grid
	Time           float64
	fluxes         []Flux // Interface flux buffer, reused across steps
}

func NewShockTube(ip *InputParameters.Parameters) (c *ShockTube) {
	c = &ShockTube{
		CFL:       ip.CFL,
		FinalTime: ip.TFinal,
		Gamma:     ip.Gamma,
		OutputDT:  ip.OutputDT,
		BC:        NewBCType(ip.BCType),
		Grid:      NewGrid(ip.Nx, ip.X0, ip.X1),
	}
	c.fluxes = make([]Flux, c.Grid.Size()+1)
	c.Grid.Initialize(
		Primitive{Rho: ip.LeftRho, U: ip.LeftU, P: ip.LeftP},
		Primitive{Rho: ip.RightRho, U: ip.RightU, P: ip.RightP},
		ip.InterfacePosition, c.Gamma)
	fmt.Printf("Euler Equations in 1 Dimension\nSolving a shock tube problem with the HLL flux\n")
	fmt.Printf("CFL = %8.4f, Num Cells = %d, Gamma = %5.3f, BC = %s\n\n",
		c.CFL, c.Grid.Size(), c.Gamma, c.BC)
	return
}

// Step advances the grid by one explicit time step of size dt:
// boundary conditions, then all nx+1 interface fluxes, then the
// conservative update
//
//	U_i^{n+1} = U_i^n - (dt/dx)*(F_{i+1} - F_i)
//
// The flux buffer is filled completely before any cell is touched, so the
// stencil is never read after a partial update.
func (c *ShockTube) Step(dt float64) {
	var (
		g     = c.Grid
		nx    = g.Size()
		cells = g.Cells()
	)
	g.ApplyBC(c.BC)
	for i := 0; i <= nx; i++ {
		var L, R Primitive
		switch {
		case i == 0:
			// Ghost state mirrors cell 0; reflective flips the velocity
			R = ConservedToPrimitive(cells[0], c.Gamma)
			L = R
			if c.BC == BC_Reflective {
				L.U = -R.U
			}
		case i == nx:
			L = ConservedToPrimitive(cells[nx-1], c.Gamma)
			R = L
			if c.BC == BC_Reflective {
				R.U = -L.U
			}
		default:
			L = ConservedToPrimitive(cells[i-1], c.Gamma)
			R = ConservedToPrimitive(cells[i], c.Gamma)
		}
		c.fluxes[i] = HLLFlux(L, R, c.Gamma)
	}
	ratio := dt / g.Dx()
	for i := 0; i < nx; i++ {
		cell := cells[i]
		cell.Rho -= ratio * (c.fluxes[i+1].Rho - c.fluxes[i].Rho)
		cell.RhoU -= ratio * (c.fluxes[i+1].RhoU - c.fluxes[i].RhoU)
		cell.Ener -= ratio * (c.fluxes[i+1].Ener - c.fluxes[i].Ener)
		g.SetCell(i, cell)
	}
	c.Time += dt
}

// Run drives the outer loop until FinalTime: an initial snapshot at t=0,
// CFL time steps clamped so the final step lands exactly on FinalTime,
// cadence-gated snapshots every OutputDT of simulated time, and one
// unconditional snapshot at loop exit.
func (c *ShockTube) Run(emit SnapshotFunc) {
	var (
		logFrequency    = 50
		tstep           int
		snapshotIdx     int
		sinceLastOutput float64
	)
	c.emitSnapshot(emit, &snapshotIdx)
	for c.Time < c.FinalTime {
		dt := ComputeDT(c.Grid, c.CFL, c.Gamma)
		if c.Time+dt > c.FinalTime {
			dt = c.FinalTime - c.Time
		}
		c.Step(dt)
		tstep++
		sinceLastOutput += dt
		if sinceLastOutput >= c.OutputDT {
			c.emitSnapshot(emit, &snapshotIdx)
			sinceLastOutput = 0
		}
		if tstep%logFrequency == 0 {
			fmt.Printf("Time = %8.5f, dt = %8.6f, tstep = %d\n", c.Time, dt, tstep)
		}
	}
	c.emitSnapshot(emit, &snapshotIdx)
	fmt.Printf("Finished: Time = %8.5f after %d steps, %d snapshots\n",
		c.Time, tstep, snapshotIdx)
}

func (c *ShockTube) emitSnapshot(emit SnapshotFunc, idx *int) {
	if emit == nil {
		return
	}
	// A failed write loses one snapshot, not the whole run
	if err := emit(*idx, c.Time, c.Grid); err != nil {
		fmt.Fprintf(os.Stderr, "snapshot %d skipped: %v\n", *idx, err)
	}
	*idx++
}
