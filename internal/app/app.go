//go:build ebiten

package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"cellsim/internal/actor"
	"cellsim/internal/export"
	"cellsim/internal/render"
	"cellsim/internal/sim"
	"cellsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

// HUDWidth is the width in pixels of the readout panel.
const HUDWidth = 220

// Game adapts the simulation engine to the ebiten.Game interface.
type Game struct {
	engine  *sim.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided engine. When shader is set the grid
// colours are blended on the GPU and a shader that fails to compile is
// reported as an error.
func New(engine *sim.Engine, scale int, shader bool) (*Game, error) {
	if scale <= 0 {
		scale = 1
	}
	size := engine.Size()
	gp := render.NewGridPainter(size.W, size.H)
	if shader {
		if err := gp.UseShader(); err != nil {
			return nil, errors.Wrap(err, "app: shader rendering unavailable")
		}
	}
	return &Game{
		engine:  engine,
		painter: gp,
		overlay: ui.NewOverlay(scale),
		hud:     ui.NewHUD(engine, HUDWidth),
		scale:   scale,
	}, nil
}

// Reset reinitializes the simulation with the provided seed.
func (g *Game) Reset(seed uint32) {
	g.engine.Reset(seed)
	g.tickOnce = false
}

// Update handles per-tick input and advances the simulation clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.engine.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(uint32(time.Now().UnixNano()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.dump()
	}

	g.overlay.Update()

	now := time.Now()
	in := sim.Input{
		Intent:  readIntent(),
		Gravity: g.engine.Gravity(),
		Probe:   g.readProbe(),
	}
	switch {
	case !g.paused:
		g.engine.Advance(now, in)
	case g.tickOnce:
		if err := g.engine.Step(); err != nil {
			log.Printf("app: single step failed: %v", err)
		}
		g.engine.Hold(now)
	default:
		g.engine.Hold(now)
	}
	g.tickOnce = false

	var probe *sim.ProbeResult
	if res, ok := g.engine.LastProbe(); ok {
		probe = &res
	}
	g.hud.Update(g.viewWidth(), g.engine.Stats(), probe)
	return nil
}

func readIntent() actor.Intent {
	return actor.Intent{
		Forward: ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Reverse: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

// readProbe converts a click inside the grid view, or P over it, into a probe
// request in simulation coordinates.
func (g *Game) readProbe() sim.ProbeRequest {
	active := inpututil.IsKeyJustPressed(ebiten.KeyP)
	mx, my := ebiten.CursorPosition()
	if mx >= g.viewWidth() {
		return sim.ProbeRequest{}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		active = true
	}
	size := g.engine.Size()
	return sim.ProbeRequest{
		X:      mx / g.scale,
		Y:      size.H - 1 - my/g.scale,
		Active: active,
	}
}

func (g *Game) dump() {
	name := fmt.Sprintf("cellsim-%d-%d", g.engine.Seed(), g.engine.Stats().TotalTicks)
	if err := writeDump(name, g.engine); err != nil {
		log.Printf("app: dump failed: %v", err)
		return
	}
	log.Printf("app: wrote %s.csim and %s.png", name, name)
}

func writeDump(name string, engine *sim.Engine) error {
	f, err := os.Create(name + ".csim")
	if err != nil {
		return err
	}
	if err := engine.Dump().Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	png, err := os.Create(name + ".png")
	if err != nil {
		return err
	}
	if err := export.WritePNG(png, engine.Current()); err != nil {
		png.Close()
		return err
	}
	return png.Close()
}

// Draw renders the current grid, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.engine.Current()
	g.painter.Blit(screen, grid, g.scale)
	g.overlay.Draw(screen, grid)
	g.hud.Draw(screen, g.viewWidth(), grid.H*g.scale)
	g.engine.Frame(time.Now())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}

func (g *Game) viewWidth() int { return g.engine.Size().W * g.scale }
