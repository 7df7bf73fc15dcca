// Package compose turns one automaton wedge into a square field with 4-fold
// rotational symmetry about its center cell.
package compose

import (
	"fmt"

	"semifractal/internal/core"
	"semifractal/internal/gen"
)

// Square writes the wedge and its 90°, 180° and 270° rotations about the
// shared center into a size*size grid. Live cells from all four copies are
// unioned onto the zeroed grid, so the result is exactly invariant under
// quarter-turn rotation and seam-free where the copies meet on the
// diagonals. The apex lands on the center cell, which every rotation maps
// to itself, so it is written consistently by all four.
func Square(w *gen.Wedge, size int) (*core.Grid, error) {
	if w == nil || w.Size() != size {
		got := 0
		if w != nil {
			got = w.Size()
		}
		return nil, fmt.Errorf("%w: wedge base %d, want %d", core.ErrSizeMismatch, got, size)
	}

	grid := core.NewGrid(size, size)
	c := size / 2
	for i := 0; i < w.Height(); i++ {
		row := w.Row(i)
		for j, cell := range row {
			if cell == 0 {
				continue
			}
			// Offsets from the center: the wedge grows along +x,
			// spreading symmetrically in y.
			x, y := i, j-i
			grid.Set(c+x, c+y, 1)
			grid.Set(c-x, c-y, 1)
			grid.Set(c-y, c+x, 1)
			grid.Set(c+y, c-x, 1)
		}
	}
	return grid, nil
}
