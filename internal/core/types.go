package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Channel indexes one attribute of a Cell.
type Channel int

const (
	Density Channel = iota
	Temperature
	Magic
	Organic

	// NumChannels is the number of attributes carried by every cell.
	NumChannels = 4
)

var channelNames = [NumChannels]string{"density", "temperature", "magic", "organic"}

// String returns the lower-case channel name.
func (c Channel) String() string {
	if c < 0 || int(c) >= NumChannels {
		return "unknown"
	}
	return channelNames[c]
}

// ParseChannel maps a channel name back to its index.
func ParseChannel(name string) (Channel, bool) {
	for i, n := range channelNames {
		if n == name {
			return Channel(i), true
		}
	}
	return 0, false
}

// Cell is the attribute vector of one grid cell. Every channel is kept in
// [0, 1].
type Cell [NumChannels]float32

// Clamp returns the cell with every channel clamped to [0, 1].
func (c Cell) Clamp() Cell {
	for i := range c {
		c[i] = Clamp01(c[i])
	}
	return c
}

// Density returns the density channel.
func (c Cell) Density() float32 { return c[Density] }

// Temperature returns the temperature channel.
func (c Cell) Temperature() float32 { return c[Temperature] }

// Magic returns the magic channel.
func (c Cell) Magic() float32 { return c[Magic] }

// Organic returns the organic channel.
func (c Cell) Organic() float32 { return c[Organic] }

// Clamp01 clamps v to [0, 1]. NaN maps to 0.
func Clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
