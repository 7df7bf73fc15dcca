package core

// Grid stores a 2D field of byte-sized cell states in row-major order.
// Out-of-range coordinates read as dead; the field has no wrapping.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a zeroed (all-dead) grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Get returns the cell state at (x, y), or 0 when out of range.
func (g *Grid) Get(x, y int) uint8 {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0
	}
	return g.data[y*g.W+x]
}

// Set writes the cell state at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, v uint8) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.data[y*g.W+x] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
