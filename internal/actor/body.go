package actor

import (
	"math"

	"cellsim/internal/core"
)

// Intent is the movement input sampled once per tick.
type Intent struct {
	Forward bool
	Reverse bool
	Left    bool
	Right   bool
}

// Motion constants, per tick.
const (
	TurnRate = 0.06
	Thrust   = 0.04
	MaxSpeed = 2.0
	Drag     = 0.97
)

// Trail is the attribute vector the body leaves on the cell under it.
var Trail = core.Cell{1, 1, 0, 0}

// Body is a single point moving over the grid in simulation coordinates.
type Body struct {
	X, Y     float64
	Heading  float64
	Velocity float64

	bounds core.Size
}

// NewBody places a body at the centre of a grid of the given size, facing up.
func NewBody(bounds core.Size) *Body {
	return &Body{
		X:       float64(bounds.W-1) / 2,
		Y:       float64(bounds.H-1) / 2,
		Heading: math.Pi / 2,
		bounds:  bounds,
	}
}

// Update integrates one tick of movement and clamps the body into bounds.
func (b *Body) Update(in Intent) {
	if in.Left {
		b.Heading += TurnRate
	}
	if in.Right {
		b.Heading -= TurnRate
	}
	b.Heading = math.Mod(b.Heading, 2*math.Pi)
	if in.Forward {
		b.Velocity += Thrust
	}
	if in.Reverse {
		b.Velocity -= Thrust
	}
	b.Velocity *= Drag
	b.Velocity = math.Max(-MaxSpeed, math.Min(MaxSpeed, b.Velocity))

	b.X += math.Cos(b.Heading) * b.Velocity
	b.Y += math.Sin(b.Heading) * b.Velocity
	b.X = math.Max(0, math.Min(float64(b.bounds.W-1), b.X))
	b.Y = math.Max(0, math.Min(float64(b.bounds.H-1), b.Y))
}

// Cell returns the integer cell the body occupies.
func (b *Body) Cell() (int, int) {
	return int(math.Round(b.X)), int(math.Round(b.Y))
}

// Stamp writes Trail onto the body's cell in g.
func (b *Body) Stamp(g *core.Grid) {
	x, y := b.Cell()
	g.Set(x, y, Trail)
}
