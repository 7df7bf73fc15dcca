package gen

import (
	"fmt"

	"semifractal/internal/core"
)

// Wedge is one quarter of the final picture: the evolution of a single live
// cell under an elementary rule, row i holding the 2i+1 cells of the rule's
// light cone after i generations. The base row is size cells wide, so four
// quarter-turn copies of the wedge tile a size*size square exactly.
type Wedge struct {
	size int
	rows [][]uint8
}

// Size returns the base width of the wedge, which is also the side length
// of the square it composes into.
func (w *Wedge) Size() int { return w.size }

// Height returns the number of rows, (size+1)/2.
func (w *Wedge) Height() int { return len(w.rows) }

// Row exposes the cells of row i. Row i has 2i+1 cells; callers must not
// mutate the slice once composition has begun.
func (w *Wedge) Row(i int) []uint8 { return w.rows[i] }

// Generate grows a wedge from a single live apex cell. Each row is derived
// from the previous one by applying rule to every 3-cell neighborhood, with
// out-of-range neighbors read as dead; that boundary policy is what shapes
// the wedge's edges. When p is non-nil it may override each computed state
// using draws from the seed-derived stream, so output stays a pure function
// of (seed, rule, size, p).
func Generate(seed int64, rule core.Rule, size int, p Perturber) (*Wedge, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: size %d must be a positive odd integer", core.ErrInvalidSize, size)
	}
	rng := core.NewRNG(seed)
	if p != nil {
		p.Reset(seed)
	}

	height := (size + 1) / 2
	rows := make([][]uint8, height)
	rows[0] = []uint8{1}
	for i := 1; i < height; i++ {
		prev := rows[i-1]
		row := make([]uint8, len(prev)+2)
		for j := range row {
			v := rule.Next(at(prev, j-2), at(prev, j-1), at(prev, j))
			if p != nil {
				v = p.Perturb(v, i, j, rng)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return &Wedge{size: size, rows: rows}, nil
}

func at(row []uint8, i int) uint8 {
	if i < 0 || i >= len(row) {
		return 0
	}
	return row[i]
}
