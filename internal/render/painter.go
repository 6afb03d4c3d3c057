//go:build ebiten

package render

import (
	"cellsim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter converts the current grid into an image and draws it scaled.
// By default colours are blended on the CPU; UseShader moves the blend onto
// the GPU.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	shader     *ebiten.Shader
	src0, src1 *ebiten.Image
	buf0, buf1 []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// UseShader compiles the blend shader and switches the painter to it.
func (gp *GridPainter) UseShader() error {
	s, err := NewGridShader()
	if err != nil {
		return err
	}
	gp.shader = s
	gp.src0 = ebiten.NewImage(gp.w, gp.h)
	gp.src1 = ebiten.NewImage(gp.w, gp.h)
	gp.buf0 = make([]byte, 4*gp.w*gp.h)
	gp.buf1 = make([]byte, 4*gp.w*gp.h)
	return nil
}

// Blit uploads the grid into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.Grid, scale int) {
	if grid.W != gp.w || grid.H != gp.h {
		return
	}
	if gp.shader != nil {
		QuantizeChannels(gp.buf0, gp.buf1, grid)
		gp.src0.WritePixels(gp.buf0)
		gp.src1.WritePixels(gp.buf1)
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = gp.src0
		op.Images[1] = gp.src1
		gp.img.DrawRectShader(gp.w, gp.h, gp.shader, op)
	} else {
		FillRGBA(gp.buf, grid)
		gp.img.WritePixels(gp.buf)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
