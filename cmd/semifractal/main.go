//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"semifractal/internal/app"
	"semifractal/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	pipeline, err := cfg.Fractal()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = core.NextSeed()
	}

	game, err := app.New(pipeline, seed, cfg.Out)
	if err != nil {
		log.Fatal(err)
	}

	side := pipeline.Size * pipeline.PixelSize
	ebiten.SetWindowTitle("semifractal")
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
