package rng

// Mulberry32 is a small-state, non-cryptographic generator. The same seed
// always yields the same sequence on every platform.
type Mulberry32 struct {
	state uint32
}

// New creates a generator seeded with the provided 32-bit value.
func New(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Uint32 returns the next raw 32-bit output.
func (m *Mulberry32) Uint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float64 returns a value in [0, 1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296.0
}

// Float32 returns a value in [0, 1). The float64 result is narrowed, which can
// round up to exactly 1 for outputs within 2^-25 of the top; callers clamp.
func (m *Mulberry32) Float32() float32 {
	return float32(m.Float64())
}

// State exposes the internal state so a stream can be resumed.
func (m *Mulberry32) State() uint32 { return m.state }
