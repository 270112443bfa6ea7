package Euler1D

import "fmt"

type BCType uint8

const (
	BC_Outflow BCType = iota // Zero-gradient, realized in the interface reconstruction
	BC_Reflective
)

var bc_names = []string{
	"Outflow",
	"Reflective",
}

func (bc BCType) String() string {
	return bc_names[bc]
}

// NewBCType maps a parameter file string onto the closed BC enumeration.
// "transmissive" is the Toro-style alias for outflow. An unrecognized
// string falls back to outflow.
func NewBCType(label string) BCType {
	switch label {
	case "reflective":
		return BC_Reflective
	case "outflow", "transmissive":
		return BC_Outflow
	default:
		return BC_Outflow
	}
}

// Grid owns the conserved state of a uniform 1D mesh. Geometry is fixed at
// construction; the cell array is mutated in place by the solver each step.
type Grid struct {
	nx     int
	x0, x1 float64
	dx     float64
	cells  []Cell
}

func NewGrid(nx int, x0, x1 float64) (g *Grid) {
	if nx <= 0 {
		nx = 100
	}
	g = &Grid{
		nx:    nx,
		x0:    x0,
		x1:    x1,
		dx:    (x1 - x0) / float64(nx),
		cells: make([]Cell, nx),
	}
	return
}

// Initialize sets up the Riemann problem: the left primitive state fills
// every cell whose center lies left of interfacePos, the right state fills
// the rest. The discontinuity is left sharp.
func (g *Grid) Initialize(left, right Primitive, interfacePos, gamma float64) {
	cLeft := PrimitiveToConserved(left, gamma)
	cRight := PrimitiveToConserved(right, gamma)
	for i := range g.cells {
		if g.CellCenter(i) < interfacePos {
			g.cells[i] = cLeft
		} else {
			g.cells[i] = cRight
		}
	}
}

func (g *Grid) Size() int   { return g.nx }
func (g *Grid) Dx() float64 { return g.dx }
func (g *Grid) X0() float64 { return g.x0 }
func (g *Grid) X1() float64 { return g.x1 }

func (g *Grid) CellCenter(i int) float64 {
	return g.x0 + (float64(i)+0.5)*g.dx
}

// Cells returns the backing cell storage in spatial order. Callers must
// treat it as read-only; mutation goes through SetCell.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Primitives derives the primitive view of every cell, freshly computed
func (g *Grid) Primitives(gamma float64) (prims []Primitive) {
	prims = make([]Primitive, g.nx)
	for i, c := range g.cells {
		prims[i] = ConservedToPrimitive(c, gamma)
	}
	return
}

// GetCell panics on an out of range index. Out-of-range access is a
// programmer error here, never part of normal operation.
func (g *Grid) GetCell(i int) Cell {
	g.checkBounds(i)
	return g.cells[i]
}

func (g *Grid) SetCell(i int, c Cell) {
	g.checkBounds(i)
	g.cells[i] = c
}

func (g *Grid) checkBounds(i int) {
	if i < 0 || i >= g.nx {
		panic(fmt.Errorf("cell index %d out of range [0,%d)", i, g.nx))
	}
}

// ApplyBC mutates the edge cells for the wall condition. Outflow needs no
// mutation: the zero-gradient ghost states are synthesized during interface
// reconstruction in the stepper.
func (g *Grid) ApplyBC(bc BCType) {
	if g.nx < 2 {
		return
	}
	if bc == BC_Reflective {
		g.cells[0].RhoU = -g.cells[0].RhoU
		g.cells[g.nx-1].RhoU = -g.cells[g.nx-1].RhoU
	}
}
