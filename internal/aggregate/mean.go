package aggregate

import "cellsim/internal/core"

// MeanChannel returns the arithmetic mean of one channel over cells, each
// value clamped to [0, 1] first. An empty slice averages to 0.
func MeanChannel(cells []core.Cell, ch core.Channel) float64 {
	if len(cells) == 0 {
		return 0
	}
	var sum float64
	for _, c := range cells {
		sum += float64(core.Clamp01(c[ch]))
	}
	return sum / float64(len(cells))
}
