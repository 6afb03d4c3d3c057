//go:build ebiten

package ui

import (
	"cellsim/internal/core"
	"cellsim/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var channelKeys = [core.NumChannels]ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
}

// Overlay draws a single-channel heat map on top of the grid view. Keys 1-4
// select density, temperature, magic or organic; pressing the active key again
// hides it.
type Overlay struct {
	scale   int
	channel core.Channel
	visible bool

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	return &Overlay{scale: scale}
}

// Update handles the channel toggle keys.
func (o *Overlay) Update() {
	for i, key := range channelKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		ch := core.Channel(i)
		if o.visible && o.channel == ch {
			o.visible = false
			continue
		}
		o.channel = ch
		o.visible = true
	}
}

// Channel reports the displayed channel and whether the overlay is on.
func (o *Overlay) Channel() (core.Channel, bool) { return o.channel, o.visible }

// Draw renders the overlay for grid onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, grid *core.Grid) {
	if !o.visible {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != grid.W || o.maskImg.Bounds().Dy() != grid.H {
		o.maskImg = ebiten.NewImage(grid.W, grid.H)
		o.maskBuf = make([]byte, 4*grid.W*grid.H)
	}
	render.FillChannelRGBA(o.maskBuf, grid, o.channel, render.ChannelTint(o.channel))
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
