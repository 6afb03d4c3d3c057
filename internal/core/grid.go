package core

// MaxSide bounds either grid dimension. Grids larger than this cannot be
// uploaded as a single texture and are rejected at construction.
const MaxSide = 8192

// Grid stores a 2D grid of cells in row-major order with the storage origin at
// the top-left. Simulation coordinates put the origin at the bottom-left.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for storage coordinates (x, row).
func (g *Grid) Index(x, row int) int { return row*g.W + x }

// StorageIndex converts simulation coordinates (origin bottom-left) into a
// linear slice index.
func (g *Grid) StorageIndex(x, y int) int { return g.Index(x, g.H-1-y) }

// ClampPoint clamps simulation coordinates into the grid bounds.
func (g *Grid) ClampPoint(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= g.W {
		x = g.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.H {
		y = g.H - 1
	}
	return x, y
}

// At returns the cell at simulation coordinates (x, y), clamped to the grid.
func (g *Grid) At(x, y int) Cell {
	x, y = g.ClampPoint(x, y)
	return g.data[g.StorageIndex(x, y)]
}

// Set writes a clamped cell at simulation coordinates (x, y). Out-of-range
// coordinates are clamped to the nearest edge.
func (g *Grid) Set(x, y int, c Cell) {
	x, y = g.ClampPoint(x, y)
	g.data[g.StorageIndex(x, y)] = c.Clamp()
}

// Fill writes c into every cell.
func (g *Grid) Fill(c Cell) {
	c = c.Clamp()
	for i := range g.data {
		g.data[i] = c
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]Cell, len(g.data))}
	copy(out.data, g.data)
	return out
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions; mismatched sizes are ignored and reported as false.
func (g *Grid) CopyFrom(src *Grid) bool {
	if src.W != g.W || src.H != g.H {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Raw flattens the grid into width*height*4 floats in storage order.
func (g *Grid) Raw() []float32 {
	out := make([]float32, 0, len(g.data)*NumChannels)
	for _, c := range g.data {
		out = append(out, c[:]...)
	}
	return out
}

// ChannelValues copies one channel of every cell in storage order.
func (g *Grid) ChannelValues(ch Channel) []float32 {
	out := make([]float32, len(g.data))
	for i, c := range g.data {
		out[i] = c[ch]
	}
	return out
}
