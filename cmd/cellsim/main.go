//go:build ebiten

package main

import (
	"context"
	"errors"
	"log"

	"cellsim/internal/app"
	"cellsim/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

func main() {
	cfg := sim.DefaultConfig()
	scale := 1
	shader := false

	flaggy.SetName("cellsim")
	flaggy.SetDescription("real-time four-channel cellular automaton")
	cfg.Bind(&flaggy.DefaultParser.Subcommand)
	flaggy.Int(&scale, "", "scale", "pixel scale multiplier")
	flaggy.Bool(&shader, "", "shader", "blend cell colours on the GPU")
	flaggy.Parse()

	engine, err := sim.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("cellsim: %v", err)
	}
	defer engine.Close()

	game, err := app.New(engine, scale, shader)
	if err != nil {
		log.Fatalf("cellsim: %v", err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("cellsim: " + cfg.Rule)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
