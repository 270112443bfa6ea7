// Package snapshot serializes grid state to the row-oriented CSV format
// consumed by the plotting scripts: one file per emitted time, columns
// x,rho,u,p,energy, one row per cell in spatial order.
package snapshot

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cfdlab/shocktube/Euler1D"
)

// Filename formats a driver-sequenced snapshot index, e.g. snapshot_00042.csv
func Filename(step int) string {
	return fmt.Sprintf("snapshot_%05d.csv", step)
}

// WriteCSV writes one snapshot of g under dir. The grid is only read.
func WriteCSV(dir string, step int, g *Euler1D.Grid, gamma float64) error {
	path := filepath.Join(dir, Filename(step))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "x,rho,u,p,energy")
	prims := g.Primitives(gamma)
	for i, c := range g.Cells() {
		p := prims[i]
		fmt.Fprintf(w, "%.6e,%.6e,%.6e,%.6e,%.6e\n",
			g.CellCenter(i), p.Rho, p.U, p.P, c.Ener)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
