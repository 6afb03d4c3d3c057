package core

import "cellsim/pkg/rng"

// Seed fills every cell of g from a Mulberry32 stream in storage order:
// density and temperature uniform, magic uniform in [0, 0.5), organic zero.
func Seed(g *Grid, seed uint32) {
	r := rng.New(seed)
	for i := range g.data {
		density := r.Float32()
		temperature := r.Float32()
		magic := r.Float32() * 0.5
		g.data[i] = Cell{density, temperature, magic, 0}.Clamp()
	}
}
