package export

import "math"

// Levels is the number of quantization steps for a [0, 1] value.
const Levels = 256

// Quantize maps [0, 1] floats onto 0..Levels-1, clamping out-of-range input.
func Quantize(values []float32) []int {
	out := make([]int, len(values))
	for i, v := range values {
		q := int(math.Round(float64(v) * (Levels - 1)))
		if q < 0 || math.IsNaN(float64(v)) {
			q = 0
		} else if q > Levels-1 {
			q = Levels - 1
		}
		out[i] = q
	}
	return out
}

// Dequantize maps quantized levels back onto [0, 1].
func Dequantize(levels []int) []float32 {
	out := make([]float32, len(levels))
	for i, q := range levels {
		out[i] = float32(q) / (Levels - 1)
	}
	return out
}
