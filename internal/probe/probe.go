package probe

import "cellsim/internal/core"

// Material is the human-readable classification of a probed cell.
type Material string

const (
	Organic Material = "Organic"
	Magic   Material = "Magic"
	Metal   Material = "Metal"
	Hot     Material = "Hot"
	Unknown Material = "Unknown"
)

// Classify applies the priority cascade; the first matching test wins.
func Classify(c core.Cell) Material {
	switch {
	case c[core.Organic] > 0.5:
		return Organic
	case c[core.Magic] > 0.3:
		return Magic
	case c[core.Density] > 0.7:
		return Metal
	case c[core.Temperature] > 0.5:
		return Hot
	default:
		return Unknown
	}
}

// At reads the cell at simulation coordinates (x, y), clamping out-of-range
// coordinates to the grid edge. The grid is never written.
func At(g *core.Grid, x, y int) (core.Cell, Material) {
	c := g.At(x, y)
	return c, Classify(c)
}
