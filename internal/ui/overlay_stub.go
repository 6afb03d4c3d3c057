//go:build !ebiten

package ui

import "cellsim/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Channel always reports the overlay as hidden.
func (o *Overlay) Channel() (core.Channel, bool) { return 0, false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, *core.Grid) {}
