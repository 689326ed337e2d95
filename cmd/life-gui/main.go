//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"termlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewLife()
	if err != nil {
		log.Fatalf("setting up board: %v", err)
	}

	game := app.NewGame(sim, cfg.Scale, cfg.Life.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("stopped after %d rounds (seed %d)", sim.Round(), cfg.Life.Seed)
}
