//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// gridShaderSource mirrors Blend. Image 0 carries density, temperature and
// magic in r, g, b; image 1 carries organic in r.
const gridShaderSource = `//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	a := imageSrc0At(srcPos)
	o := imageSrc1At(srcPos)
	gray := a.r * 0.5
	return vec4(gray+a.g, gray+o.r, gray+a.b, 1)
}
`

// GridShaderSource returns the Kage source of the blend shader.
func GridShaderSource() []byte { return []byte(gridShaderSource) }

// NewGridShader compiles the blend shader.
func NewGridShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(GridShaderSource())
	if err != nil {
		return nil, errors.Wrap(err, "compile grid shader")
	}
	return s, nil
}
