package core

// DoubleBuffer owns two equally sized grids. Exactly one of them is current
// (readable) at any time; the other is scratch for the in-flight update pass.
type DoubleBuffer struct {
	a, b      *Grid
	activeIsA bool
}

// NewDoubleBuffer allocates both grids with A as the current one.
func NewDoubleBuffer(w, h int) *DoubleBuffer {
	return &DoubleBuffer{a: NewGrid(w, h), b: NewGrid(w, h), activeIsA: true}
}

// Size returns the dimensions shared by both grids.
func (d *DoubleBuffer) Size() Size { return d.a.Size() }

// Current returns the readable grid. Callers must not retain it past the next
// Swap.
func (d *DoubleBuffer) Current() *Grid {
	if d.activeIsA {
		return d.a
	}
	return d.b
}

// Scratch returns the grid the next update pass writes into.
func (d *DoubleBuffer) Scratch() *Grid {
	if d.activeIsA {
		return d.b
	}
	return d.a
}

// Swap flips which grid is current. It is the only mutator of that role.
func (d *DoubleBuffer) Swap() { d.activeIsA = !d.activeIsA }

// ActiveIsA reports whether grid A is current.
func (d *DoubleBuffer) ActiveIsA() bool { return d.activeIsA }

// Seed deterministically refills the current grid from seed and mirrors it
// into scratch.
func (d *DoubleBuffer) Seed(seed uint32) {
	Seed(d.Current(), seed)
	d.Scratch().CopyFrom(d.Current())
}
