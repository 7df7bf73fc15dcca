package render

import (
	"strings"

	"semifractal/internal/core"
)

// ASCII renders the field as text, one line per row, '#' for live cells and
// a space for dead ones. Handy for eyeballing small grids in a terminal.
func ASCII(g *core.Grid) string {
	var b strings.Builder
	b.Grow((g.W + 3) * g.H)
	for y := 0; y < g.H; y++ {
		b.WriteByte('[')
		for x := 0; x < g.W; x++ {
			if g.Get(x, y) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("]\n")
	}
	return b.String()
}
