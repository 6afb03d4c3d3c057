package render

import (
	"image"
	"image/color"

	"cellsim/internal/core"
)

// Blend maps a cell to an additive colour. Each channel's contribution is
// clamped to [0, 1] before summing: density adds half-intensity gray,
// temperature adds red, organic adds green and magic adds blue. The sums are
// not clamped again, so a component can exceed 1; it saturates when converted
// to bytes for display.
func Blend(c core.Cell) (r, g, b float32) {
	gray := core.Clamp01(c[core.Density]) * 0.5
	r = gray + core.Clamp01(c[core.Temperature])
	g = gray + core.Clamp01(c[core.Organic])
	b = gray + core.Clamp01(c[core.Magic])
	return r, g, b
}

func toByte(v float32) uint8 {
	if v >= 1 {
		return 255
	}
	if !(v > 0) {
		return 0
	}
	return uint8(v*255 + 0.5)
}

// FillRGBA converts the grid into opaque RGBA pixels in buf, which must hold
// 4*W*H bytes. Rows are written in storage order so row 0 is the top of the
// image.
func FillRGBA(buf []byte, grid *core.Grid) {
	for i, c := range grid.Cells() {
		r, g, b := Blend(c)
		base := i * 4
		buf[base+0] = toByte(r)
		buf[base+1] = toByte(g)
		buf[base+2] = toByte(b)
		buf[base+3] = 0xff
	}
}

// Image renders the grid into a new RGBA image.
func Image(grid *core.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.W, grid.H))
	FillRGBA(img.Pix, grid)
	return img
}

// FillChannelRGBA draws a single channel as a translucent heat map in tint.
// Alpha follows the channel value; colour components are premultiplied.
func FillChannelRGBA(buf []byte, grid *core.Grid, ch core.Channel, tint color.RGBA) {
	for i, c := range grid.Cells() {
		v := core.Clamp01(c[ch])
		base := i * 4
		alpha := v * 0.8
		buf[base+0] = uint8(float32(tint.R) * alpha)
		buf[base+1] = uint8(float32(tint.G) * alpha)
		buf[base+2] = uint8(float32(tint.B) * alpha)
		buf[base+3] = uint8(255 * alpha)
	}
}

// ChannelTint returns the overlay colour used for a channel.
func ChannelTint(ch core.Channel) color.RGBA {
	switch ch {
	case core.Density:
		return color.RGBA{R: 230, G: 230, B: 230, A: 255}
	case core.Temperature:
		return color.RGBA{R: 255, G: 90, B: 40, A: 255}
	case core.Magic:
		return color.RGBA{R: 90, G: 120, B: 255, A: 255}
	case core.Organic:
		return color.RGBA{R: 70, G: 200, B: 80, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

// QuantizeChannels packs the four channels of every cell into bytes for
// texture upload. buf must hold 4*W*H bytes for src0 and src1 alike: src0
// receives density, temperature and magic, src1 receives organic in its red
// component. Both are opaque so premultiplication leaves them untouched.
func QuantizeChannels(src0, src1 []byte, grid *core.Grid) {
	for i, c := range grid.Cells() {
		base := i * 4
		src0[base+0] = toByte(c[core.Density])
		src0[base+1] = toByte(c[core.Temperature])
		src0[base+2] = toByte(c[core.Magic])
		src0[base+3] = 0xff
		src1[base+0] = toByte(c[core.Organic])
		src1[base+1] = 0
		src1[base+2] = 0
		src1[base+3] = 0xff
	}
}
